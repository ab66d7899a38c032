package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// SaleRepository defines persistence for sales.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	// List returns all sales joined with their client's name, newest first.
	List(ctx context.Context) ([]domain.Sale, error)
	// ListByClientJob returns the sales recorded under one (client, job)
	// pair in creation order; quote creation snapshots exactly this set.
	ListByClientJob(ctx context.Context, clientID int64, jobName string) ([]domain.Sale, error)
}
