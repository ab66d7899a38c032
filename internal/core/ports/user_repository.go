package ports

import (
	"context"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// CreateUserParams carries the already-hashed values the user repository
// writes into whichever columns the live users table exposes.
type CreateUserParams struct {
	Identifier   string
	PasswordHash string
	Name         string
	Role         string
}

// UserRepository defines persistence for user accounts. Implementations own
// the users-table schema metadata and fail account creation when the table
// carries mandatory columns the service cannot populate.
type UserRepository interface {
	// FindByIdentifier loads a user by login handle, case-insensitively.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// Create inserts a new account and returns it with its assigned id.
	Create(ctx context.Context, params CreateUserParams) (*domain.User, error)
	// Count returns the number of existing accounts (used for bootstrap seeding).
	Count(ctx context.Context) (int64, error)
}
