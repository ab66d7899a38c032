package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// QuoteService builds quotes from the sales recorded under a (client, job)
// pair. A quote is a snapshot: once issued it is never recalculated, even if
// the underlying sales change. Re-running creation issues a new quote.
type QuoteService struct {
	repo    ports.QuoteRepository
	sales   ports.SaleRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewQuoteService(repo ports.QuoteRepository, sales ports.SaleRepository, clients ports.ClientRepository, logger zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, sales: sales, clients: clients, logger: logger}
}

// Create snapshots all sales matching (client, job) into a new draft quote.
// The read and the insert are two statements; a sale recorded in between is
// simply not part of this snapshot.
func (s *QuoteService) Create(ctx context.Context, input ports.CreateQuoteInput) (*domain.Quote, error) {
	jobName := strings.TrimSpace(input.JobName)
	if input.ClientID == 0 || jobName == "" {
		return nil, &domain.ValidationError{Msg: "client_id and job_name are required"}
	}

	client, err := s.clients.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	sales, err := s.sales.ListByClientJob(ctx, input.ClientID, jobName)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.ErrNoMatchingSales
	}

	items := make([]domain.QuoteItem, 0, len(sales))
	var total float64
	for _, sale := range sales {
		items = append(items, domain.QuoteItem{
			SaleID:      sale.ID,
			Description: sale.Description,
			Quantity:    sale.Quantity,
			UnitPrice:   sale.UnitPrice,
			Total:       sale.Total,
			CreatedAt:   sale.CreatedAt,
		})
		total += sale.Total
	}

	quote := &domain.Quote{
		ClientID:    input.ClientID,
		ClientName:  client.Name,
		JobName:     jobName,
		Status:      domain.QuoteStatusDraft,
		TotalAmount: domain.RoundCents(total),
		Notes:       strings.TrimSpace(input.Notes),
		Items:       items,
		CreatedBy:   input.CreatedBy,
	}

	created, err := s.repo.Create(ctx, quote)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("quote_id", created.ID).
		Int64("client_id", created.ClientID).
		Str("job_name", created.JobName).
		Int("items", len(created.Items)).
		Float64("total", created.TotalAmount).
		Msg("quote issued")
	return created, nil
}

func (s *QuoteService) List(ctx context.Context, filter ports.QuoteFilter) ([]domain.Quote, error) {
	return s.repo.List(ctx, filter)
}
