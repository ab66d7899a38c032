package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

type CreateQuoteInput struct {
	ClientID  int64
	JobName   string
	Notes     string
	CreatedBy string
}

type QuoteService interface {
	Create(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]domain.Quote, error)
}
