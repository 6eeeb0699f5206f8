// Package migration provides discrete, individually-idempotent schema
// migration operations. Each operation is a single SQL statement that
// tolerates the schema already being in the desired state, so any
// sequence of operations can be re-run after a failure without harm.
package migration

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Op is a single idempotent schema change.
type Op interface {
	// SQL returns the statement implementing the operation.
	SQL() string

	// String describes the operation for logs.
	String() string
}

// CreateTableIfAbsent creates a table unless it already exists.
type CreateTableIfAbsent struct {
	Table   string
	Columns string
}

func (op CreateTableIfAbsent) SQL() string {
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		op.Table, op.Columns,
	)
}

func (op CreateTableIfAbsent) String() string {
	return fmt.Sprintf("create table %s", op.Table)
}

// AddColumnIfAbsent adds a column unless it already exists.
type AddColumnIfAbsent struct {
	Table  string
	Column string
	Type   string
}

func (op AddColumnIfAbsent) SQL() string {
	return fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s",
		op.Table, op.Column, op.Type,
	)
}

func (op AddColumnIfAbsent) String() string {
	return fmt.Sprintf("add column %s.%s", op.Table, op.Column)
}

// DropColumnIfPresent removes a column; absence is not an error.
type DropColumnIfPresent struct {
	Table  string
	Column string
}

func (op DropColumnIfPresent) SQL() string {
	return fmt.Sprintf(
		"ALTER TABLE %s DROP COLUMN IF EXISTS %s",
		op.Table, op.Column,
	)
}

func (op DropColumnIfPresent) String() string {
	return fmt.Sprintf("drop column %s.%s", op.Table, op.Column)
}

// DropTableIfPresent removes a table and its dependents; absence is
// not an error.
type DropTableIfPresent struct {
	Table string
}

func (op DropTableIfPresent) SQL() string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", op.Table)
}

func (op DropTableIfPresent) String() string {
	return fmt.Sprintf("drop table %s", op.Table)
}

// Apply executes operations sequentially, stopping at the first
// failure. No rollback is attempted: every operation is idempotent, so
// re-running the whole sequence is the recovery path.
func Apply(ctx context.Context, pool *pgxpool.Pool, ops []Op) error {
	for _, op := range ops {
		if _, err := pool.Exec(ctx, op.SQL()); err != nil {
			return fmt.Errorf("migration %q failed: %w", op.String(), err)
		}
	}
	return nil
}
