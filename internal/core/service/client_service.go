package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// ClientService implements client creation and listing.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &domain.MissingValueError{Column: "name"}
	}

	client := &domain.Client{
		Name:  name,
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
		Notes: strings.TrimSpace(input.Notes),
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("client_id", created.ID).Str("name", created.Name).Msg("client created")
	return created, nil
}

func (s *ClientService) List(ctx context.Context) ([]domain.ClientSummary, error) {
	return s.repo.List(ctx)
}
