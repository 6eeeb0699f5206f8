// Package db defines the database operator contract for codexdb.
package db

import (
	"context"

	"github.com/exobio/codexdb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// so lifecycle components (SchemaManager, Loader, Normalizer) can execute
// their specialized SQL operations internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - Pool() lets components use transactions and batched inserts directly
// - Schema introspection helpers (TableExists, ColumnExists) back the
//   conditional, idempotent migration logic of the normalize phase
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for lifecycle components
	// to execute specialized SQL operations.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// ColumnExists checks if a column exists on a table in the public
	// schema. Absence of a legacy column is a recognized condition, not
	// an error; it narrows which normalization steps run.
	ColumnExists(ctx context.Context, tableName, columnName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema.
	HasTables(ctx context.Context) (bool, error)
}
