package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// QuoteFilter narrows the quote listing. Zero values mean "no filter".
type QuoteFilter struct {
	ClientID int64
	JobName  string
}

// QuoteRepository defines persistence for quotes. Quotes are append-only;
// there is no update or delete.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]domain.Quote, error)
}
