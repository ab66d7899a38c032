package postgres

import (
	"context"
	"strings"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// Column describes one column of an inspected table.
type Column struct {
	Name       string
	Normalized string // lower-cased name, used for all matching
	Required   bool   // NOT NULL, no default, not part of the primary key
	HasDefault bool
	PrimaryKey bool
}

const inspectQuery = `
SELECT c.column_name,
       c.is_nullable,
       c.column_default IS NOT NULL AS has_default,
       EXISTS (
           SELECT 1
             FROM information_schema.table_constraints tc
             JOIN information_schema.key_column_usage kcu
               ON kcu.constraint_name = tc.constraint_name
              AND kcu.table_schema = tc.table_schema
            WHERE tc.table_schema = c.table_schema
              AND tc.table_name = c.table_name
              AND tc.constraint_type = 'PRIMARY KEY'
              AND kcu.column_name = c.column_name
       ) AS is_primary_key
  FROM information_schema.columns c
 WHERE c.table_schema = current_schema()
   AND c.table_name = $1
 ORDER BY c.ordinal_position`

// InspectTable returns the ordered column definitions of table, read from
// information_schema. Column names keep their stored case; matching always
// goes through the lower-cased Normalized form. A missing table yields an
// empty slice, not an error.
func InspectTable(ctx context.Context, db PgxPool, table string) ([]Column, error) {
	if db == nil {
		return nil, domain.ErrStoreNotConfigured
	}

	rows, err := db.Query(ctx, inspectQuery, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			name       string
			isNullable string
			hasDefault bool
			primaryKey bool
		)
		if err := rows.Scan(&name, &isNullable, &hasDefault, &primaryKey); err != nil {
			return nil, err
		}
		cols = append(cols, Column{
			Name:       name,
			Normalized: strings.ToLower(name),
			Required:   isNullable == "NO" && !hasDefault && !primaryKey,
			HasDefault: hasDefault,
			PrimaryKey: primaryKey,
		})
	}
	return cols, rows.Err()
}

// createUsersTable is the bootstrap schema used only when no users table
// exists yet. Creating it on demand is deliberate: users is the one table the
// service owns end to end, everything else arrives via migrations.
const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT,
    role          TEXT NOT NULL DEFAULT 'staff',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureUsersTable inspects the users table, creating the default bootstrap
// schema first when the table is absent.
func EnsureUsersTable(ctx context.Context, db PgxPool) ([]Column, error) {
	cols, err := InspectTable(ctx, db, "users")
	if err != nil {
		return nil, err
	}
	if len(cols) > 0 {
		return cols, nil
	}
	if _, err := db.Exec(ctx, createUsersTable); err != nil {
		return nil, err
	}
	return InspectTable(ctx, db, "users")
}

// UsersMetadata is the resolved shape of the users table: which columns hold
// the login identifier and password, which optional columns exist, and which
// mandatory columns the service cannot populate. It is resolved once at
// startup and injected into the user repository rather than re-queried per
// request.
type UsersMetadata struct {
	Columns          []Column
	IdentifierColumn string
	PasswordColumn   string
	NameColumn       string // empty when the table has no name column
	RoleColumn       string // empty when the table has no role column
	IDColumn         string // empty when the table has no id column
	NameRequired     bool

	// UnsupportedRequired lists NOT NULL columns without defaults that fall
	// outside the supported set. Any entry blocks account creation.
	UnsupportedRequired []string
}

// column looks up a column by normalized name.
func (m *UsersMetadata) column(normalized string) (Column, bool) {
	for _, c := range m.Columns {
		if c.Normalized == normalized {
			return c, true
		}
	}
	return Column{}, false
}

// identifier and password candidates, in priority order.
var (
	identifierCandidates = []string{"username", "email"}
	passwordCandidates   = []string{"password_hash", "password"}
)

// ResolveUsersMetadata classifies the inspected users columns. It fails when
// no identifier or password column can be found; that is a deployment problem
// surfaced as a server-side configuration error, not a per-request failure.
func ResolveUsersMetadata(cols []Column) (*UsersMetadata, error) {
	byNorm := make(map[string]Column, len(cols))
	for _, c := range cols {
		byNorm[c.Normalized] = c
	}

	identifier := pickColumn(cols, byNorm, identifierCandidates, func(norm string) bool {
		return strings.Contains(norm, "user") || strings.Contains(norm, "email")
	})
	if identifier == "" {
		return nil, domain.ErrMissingIdentifierColumn
	}

	password := pickColumn(cols, byNorm, passwordCandidates, func(norm string) bool {
		return strings.Contains(norm, "pass") || strings.Contains(norm, "secret")
	})
	if password == "" {
		return nil, domain.ErrMissingPasswordColumn
	}

	meta := &UsersMetadata{
		Columns:          cols,
		IdentifierColumn: identifier,
		PasswordColumn:   password,
	}
	if c, ok := byNorm["name"]; ok {
		meta.NameColumn = c.Name
		meta.NameRequired = c.Required
	}
	if c, ok := byNorm["role"]; ok {
		meta.RoleColumn = c.Name
	}
	if c, ok := byNorm["id"]; ok {
		meta.IDColumn = c.Name
	}

	supported := map[string]bool{
		strings.ToLower(identifier): true,
		strings.ToLower(password):   true,
		"id":         true,
		"name":       true,
		"role":       true,
		"created_at": true,
		"updated_at": true,
	}
	for _, c := range cols {
		if c.Required && !supported[c.Normalized] {
			meta.UnsupportedRequired = append(meta.UnsupportedRequired, c.Name)
		}
	}
	return meta, nil
}

// pickColumn tries exact candidates in priority order, then falls back to the
// first column (in table order) whose normalized name matches fuzzy.
func pickColumn(cols []Column, byNorm map[string]Column, candidates []string, fuzzy func(string) bool) string {
	for _, cand := range candidates {
		if c, ok := byNorm[cand]; ok {
			return c.Name
		}
	}
	for _, c := range cols {
		if fuzzy(c.Normalized) {
			return c.Name
		}
	}
	return ""
}

// LoadUsersMetadata bootstraps the users table if needed and resolves its
// metadata in one step. Called at startup and on explicit refresh.
func LoadUsersMetadata(ctx context.Context, db PgxPool) (*UsersMetadata, error) {
	if db == nil {
		return nil, domain.ErrStoreNotConfigured
	}
	cols, err := EnsureUsersTable(ctx, db)
	if err != nil {
		return nil, err
	}
	return ResolveUsersMetadata(cols)
}
