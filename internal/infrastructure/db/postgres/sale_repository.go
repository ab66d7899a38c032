package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// SaleRepository persists sales.
type SaleRepository struct {
	db PgxPool
}

func NewSaleRepository(db PgxPool) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	const q = `
INSERT INTO sales (client_id, job_name, description, quantity, unit_price, total, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	row := r.db.QueryRow(ctx, q,
		sale.ClientID, sale.JobName, sale.Description,
		sale.Quantity, sale.UnitPrice, sale.Total, sale.CreatedBy)
	if err := row.Scan(&sale.ID, &sale.CreatedAt); err != nil {
		return nil, translateConstraintError(err)
	}
	return sale, nil
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	const q = `
SELECT s.id, s.client_id, COALESCE(c.name, ''), s.job_name, s.description,
       s.quantity, s.unit_price, s.total, COALESCE(s.created_by, ''), s.created_at
  FROM sales s
  LEFT JOIN clients c ON c.id = s.client_id
 ORDER BY s.created_at DESC, s.id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return scanSales(rows)
}

func (r *SaleRepository) ListByClientJob(ctx context.Context, clientID int64, jobName string) ([]domain.Sale, error) {
	const q = `
SELECT s.id, s.client_id, COALESCE(c.name, ''), s.job_name, s.description,
       s.quantity, s.unit_price, s.total, COALESCE(s.created_by, ''), s.created_at
  FROM sales s
  LEFT JOIN clients c ON c.id = s.client_id
 WHERE s.client_id = $1 AND s.job_name = $2
 ORDER BY s.created_at ASC, s.id ASC`

	rows, err := r.db.Query(ctx, q, clientID, jobName)
	if err != nil {
		return nil, err
	}
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]domain.Sale, error) {
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.JobName, &s.Description,
			&s.Quantity, &s.UnitPrice, &s.Total, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
