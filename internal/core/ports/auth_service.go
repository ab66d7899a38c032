package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// CreateUserInput is the validated request to create a staff account.
// Password is plaintext here; the service hashes before persisting.
type CreateUserInput struct {
	Identifier string
	Password   string
	Name       string
	Role       string
}

type AuthService interface {
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	// CreateUser registers a new account.
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
