package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// SaleService implements sale recording and listing.
type SaleService struct {
	repo    ports.SaleRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, clients ports.ClientRepository, logger zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, clients: clients, logger: logger}
}

// Create records a sale under an existing client. The total is the exact
// product of the submitted quantity and unit price, rounded to cents half
// away from zero; the factors themselves are rounded separately for storage.
func (s *SaleService) Create(ctx context.Context, input ports.CreateSaleInput) (*domain.Sale, error) {
	jobName := strings.TrimSpace(input.JobName)
	if jobName == "" {
		return nil, &domain.MissingValueError{Column: "job_name"}
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, &domain.MissingValueError{Column: "description"}
	}
	if input.Quantity <= 0 {
		return nil, &domain.ValidationError{Msg: "quantity must be greater than zero"}
	}
	if input.UnitPrice < 0 {
		return nil, &domain.ValidationError{Msg: "unit price must be zero or higher"}
	}

	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ClientID:    input.ClientID,
		JobName:     jobName,
		Description: description,
		Quantity:    domain.RoundCents(input.Quantity),
		UnitPrice:   domain.RoundCents(input.UnitPrice),
		Total:       domain.RoundCents(input.Quantity * input.UnitPrice),
		CreatedBy:   input.CreatedBy,
	}

	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("sale_id", created.ID).
		Int64("client_id", created.ClientID).
		Str("job_name", created.JobName).
		Float64("total", created.Total).
		Msg("sale recorded")
	return created, nil
}

func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.List(ctx)
}
