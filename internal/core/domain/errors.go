package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across layers. The central HTTP error handler maps
// them to status codes; services and repositories return them unwrapped or
// wrapped with %w.
var (
	// ErrInvalidCredentials indicates a failed password check (401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates no account matches the login identifier (404).
	ErrUserNotFound = errors.New("user not found")

	// ErrClientNotFound indicates a referenced client does not exist (404).
	ErrClientNotFound = errors.New("client not found")

	// ErrNoMatchingSales indicates quote creation found no sales for the
	// requested (client, job) pair (400).
	ErrNoMatchingSales = errors.New("no sales found for this client and job")

	// ErrForbidden indicates the caller's role does not allow the operation (403).
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidRole indicates a role outside admin/staff was requested (400).
	ErrInvalidRole = errors.New("role must be admin or staff")

	// ErrStoreNotConfigured indicates the database binding is absent (500).
	ErrStoreNotConfigured = errors.New("database is not configured")

	// ErrMissingIdentifierColumn indicates the users table has no username or
	// email column. A deployment problem, not a per-request one (500).
	ErrMissingIdentifierColumn = errors.New("users table is missing a login column")

	// ErrMissingPasswordColumn indicates the users table has no password column (500).
	ErrMissingPasswordColumn = errors.New("users table is missing a password column")
)

// UnsupportedSchemaError reports mandatory users-table columns the service has
// no value source for. Surfaced distinctly from the missing-column errors so an
// operator can see exactly which columns block account creation.
type UnsupportedSchemaError struct {
	Columns []string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("users table has required columns that are not supported: %s",
		strings.Join(e.Columns, ", "))
}

// ValidationError reports client-supplied data failing a precondition (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// DuplicateError reports a unique-constraint violation on the named column (409).
type DuplicateError struct {
	Column string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Column)
}

// MissingValueError reports a NOT NULL constraint violation on the named column (400).
type MissingValueError struct {
	Column string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s is required", e.Column)
}
