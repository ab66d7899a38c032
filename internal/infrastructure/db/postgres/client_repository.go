package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// ClientRepository persists clients.
type ClientRepository struct {
	db PgxPool
}

func NewClientRepository(db PgxPool) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	const q = `
INSERT INTO clients (name, email, phone, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	row := r.db.QueryRow(ctx, q, client.Name, client.Email, client.Phone, client.Notes)
	if err := row.Scan(&client.ID, &client.CreatedAt); err != nil {
		return nil, translateConstraintError(err)
	}
	return client, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	const q = `
SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''), created_at
FROM clients WHERE id = $1`

	var c domain.Client
	err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns every client with one row per (client, job) sales aggregate,
// folded into ClientSummary values. Clients without sales appear with an
// empty job list.
func (r *ClientRepository) List(ctx context.Context) ([]domain.ClientSummary, error) {
	const q = `
SELECT c.id,
       c.name,
       COALESCE(c.email, ''),
       COALESCE(c.phone, ''),
       COALESCE(c.notes, ''),
       c.created_at,
       COALESCE(j.job_name, ''),
       COALESCE(j.sale_count, 0),
       COALESCE(j.total_amount, 0)
  FROM clients c
  LEFT JOIN (
       SELECT client_id,
              job_name,
              COUNT(*)   AS sale_count,
              SUM(total) AS total_amount
         FROM sales
        GROUP BY client_id, job_name
  ) j ON c.id = j.client_id
 ORDER BY LOWER(c.name), LOWER(j.job_name)`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.ClientSummary, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			c   domain.Client
			job domain.ClientJobSummary
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt,
			&job.JobName, &job.SaleCount, &job.TotalAmount); err != nil {
			return nil, err
		}

		i, seen := index[c.ID]
		if !seen {
			i = len(summaries)
			index[c.ID] = i
			summaries = append(summaries, domain.ClientSummary{Client: c, Jobs: []domain.ClientJobSummary{}})
		}
		if job.JobName != "" {
			summaries[i].Jobs = append(summaries[i].Jobs, job)
		}
	}
	return summaries, rows.Err()
}
