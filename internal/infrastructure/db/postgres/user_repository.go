package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// UserRepository persists accounts against whatever users-table shape the
// deployment provides. The resolved schema metadata is held here, loaded once
// at startup; Refresh re-reads it after an operator changes the table.
type UserRepository struct {
	db   PgxPool
	mu   sync.RWMutex
	meta *UsersMetadata
}

func NewUserRepository(db PgxPool, meta *UsersMetadata) *UserRepository {
	return &UserRepository{db: db, meta: meta}
}

// Metadata returns the currently resolved users-table descriptor.
func (r *UserRepository) Metadata() *UsersMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.meta
}

// Refresh re-inspects the users table and swaps in the new descriptor.
func (r *UserRepository) Refresh(ctx context.Context) error {
	meta, err := LoadUsersMetadata(ctx, r.db)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.meta = meta
	r.mu.Unlock()
	return nil
}

// FindByIdentifier loads a user by login handle. Matching is case-insensitive
// on the identifier column; the column list is built from the resolved
// metadata since name, role, id and created_at may or may not exist.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	meta := r.Metadata()

	var (
		cols []string
		dest []any

		id           int64
		rawIdent     string
		passwordHash *string
		name         *string
		role         *string
		createdAt    *time.Time
	)

	if meta.IDColumn != "" {
		cols = append(cols, meta.IDColumn)
		dest = append(dest, &id)
	}
	cols = append(cols, meta.IdentifierColumn, meta.PasswordColumn)
	dest = append(dest, &rawIdent, &passwordHash)
	if meta.NameColumn != "" {
		cols = append(cols, meta.NameColumn)
		dest = append(dest, &name)
	}
	if meta.RoleColumn != "" {
		cols = append(cols, meta.RoleColumn)
		dest = append(dest, &role)
	}
	if c, ok := meta.column("created_at"); ok {
		cols = append(cols, c.Name)
		dest = append(dest, &createdAt)
	}

	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE LOWER(%s) = LOWER($1)",
		strings.Join(quoted, ", "),
		pgx.Identifier{meta.IdentifierColumn}.Sanitize(),
	)

	if err := r.db.QueryRow(ctx, query, identifier).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	u := &domain.User{
		ID:         id,
		Identifier: rawIdent,
		Role:       domain.RoleStaff,
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	if name != nil {
		u.Name = *name
	}
	if role != nil && *role != "" {
		u.Role = *role
	}
	if createdAt != nil {
		u.CreatedAt = *createdAt
	}
	return u, nil
}

// Create inserts an account into the resolved column set. The table having a
// mandatory column the service cannot populate is a hard failure, reported
// with the offending column names so an operator can fix the schema.
func (r *UserRepository) Create(ctx context.Context, params ports.CreateUserParams) (*domain.User, error) {
	meta := r.Metadata()

	if len(meta.UnsupportedRequired) > 0 {
		return nil, &domain.UnsupportedSchemaError{Columns: meta.UnsupportedRequired}
	}
	if meta.NameColumn != "" && meta.NameRequired && params.Name == "" {
		return nil, &domain.MissingValueError{Column: meta.NameColumn}
	}

	cols := []string{meta.IdentifierColumn, meta.PasswordColumn}
	values := []any{params.Identifier, params.PasswordHash}
	if meta.NameColumn != "" && params.Name != "" {
		cols = append(cols, meta.NameColumn)
		values = append(values, params.Name)
	}
	if meta.RoleColumn != "" {
		cols = append(cols, meta.RoleColumn)
		values = append(values, params.Role)
	}

	id, err := InsertRow(ctx, r.db, "users", meta.IDColumn, cols, values)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:         id,
		Identifier: params.Identifier,
		Name:       params.Name,
		Role:       params.Role,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Count returns the number of user rows; used by the bootstrap seeder.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
