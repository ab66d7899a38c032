package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// ClientRepository defines persistence for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	// List returns all clients with their per-job sales aggregates, ordered
	// by client name.
	List(ctx context.Context) ([]domain.ClientSummary, error)
}
