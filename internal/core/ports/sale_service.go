package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

type CreateSaleInput struct {
	ClientID    int64
	JobName     string
	Description string
	Quantity    float64
	UnitPrice   float64
	CreatedBy   string
}

type SaleService interface {
	Create(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
}
