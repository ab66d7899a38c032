package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// QuoteRepository persists quotes. Line items are stored as a JSON snapshot
// in items_json; the stored snapshot is the quote's source of truth and is
// never recomputed from the sales table.
type QuoteRepository struct {
	db PgxPool
}

func NewQuoteRepository(db PgxPool) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	itemsJSON, err := json.Marshal(quote.Items)
	if err != nil {
		return nil, fmt.Errorf("encode quote items: %w", err)
	}

	const q = `
INSERT INTO quotes (client_id, job_name, status, total_amount, notes, items_json, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	row := r.db.QueryRow(ctx, q,
		quote.ClientID, quote.JobName, quote.Status,
		quote.TotalAmount, quote.Notes, string(itemsJSON), quote.CreatedBy)
	if err := row.Scan(&quote.ID, &quote.CreatedAt); err != nil {
		return nil, translateConstraintError(err)
	}
	return quote, nil
}

func (r *QuoteRepository) List(ctx context.Context, filter ports.QuoteFilter) ([]domain.Quote, error) {
	q := `
SELECT q.id, q.client_id, c.name, q.job_name, q.status, q.total_amount,
       COALESCE(q.notes, ''), q.items_json, COALESCE(q.created_by, ''), q.created_at
  FROM quotes q
  JOIN clients c ON c.id = q.client_id`

	var (
		conds []string
		args  []any
	)
	if filter.ClientID != 0 {
		args = append(args, filter.ClientID)
		conds = append(conds, fmt.Sprintf("q.client_id = $%d", len(args)))
	}
	if filter.JobName != "" {
		args = append(args, filter.JobName)
		conds = append(conds, fmt.Sprintf("q.job_name = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			q += "\n WHERE " + cond
		} else {
			q += " AND " + cond
		}
	}
	q += "\n ORDER BY q.created_at DESC, q.id DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]domain.Quote, 0)
	for rows.Next() {
		var (
			quote     domain.Quote
			itemsJSON string
		)
		if err := rows.Scan(&quote.ID, &quote.ClientID, &quote.ClientName, &quote.JobName,
			&quote.Status, &quote.TotalAmount, &quote.Notes, &itemsJSON,
			&quote.CreatedBy, &quote.CreatedAt); err != nil {
			return nil, err
		}
		// A snapshot that fails to decode still lists; items just come back empty.
		if err := json.Unmarshal([]byte(itemsJSON), &quote.Items); err != nil {
			quote.Items = nil
		}
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}
