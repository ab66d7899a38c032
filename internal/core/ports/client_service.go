package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

type CreateClientInput struct {
	Name  string
	Email string
	Phone string
	Notes string
}

type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]domain.ClientSummary, error)
}
