package iodb_test

import (
	"context"
	"testing"

	"github.com/exobio/codexdb/internal/iodb"
	"github.com/exobio/codexdb/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: These are integration tests that require PostgreSQL.
//
// Configuration is loaded using the full config system:
//   1. Environment variables (CODEXDB_DATABASE_*)
//   2. Config file (~/.config/codexdb/config.yaml)
//   3. Built-in defaults (postgres/postgres/codexdb_test)
//
// Run PostgreSQL for tests, e.g.:
//   docker run -d -e POSTGRES_PASSWORD=postgres -p 5432:5432 postgres:16
//
// Skip with: go test -short

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig(t))
	require.NoError(t, err, "Connect should succeed with valid config")
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err, "Should be able to query after Connect")
	assert.False(t, exists)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	cfg := iotesting.GetTestDatabaseConfig(t)
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(ctx, cfg)
	assert.Error(t, err, "Connect should fail with invalid host")
}

func TestPgxOperator_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "codex_reports")
	assert.Error(t, err)

	_, err = op.ColumnExists(ctx, "codex_reports", "system")
	assert.Error(t, err)

	_, err = op.HasTables(ctx)
	assert.Error(t, err)

	// Close without Connect is a no-op.
	assert.NoError(t, op.Close())
}

// TestPgxOperator_HasTables verifies the empty-database precondition
// used by the normalize command.
func TestPgxOperator_HasTables(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	require.NoError(t,
		op.Connect(ctx, iotesting.GetTestDatabaseConfig(t)))
	defer op.Close()

	pool := op.Pool()
	_, err := pool.Exec(ctx,
		"CREATE TABLE IF NOT EXISTS has_tables_probe_test (id INT)")
	require.NoError(t, err)
	defer pool.Exec(ctx, "DROP TABLE IF EXISTS has_tables_probe_test")

	hasTables, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, hasTables)
}

func TestPgxOperator_ColumnExists(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	require.NoError(t,
		op.Connect(ctx, iotesting.GetTestDatabaseConfig(t)))
	defer op.Close()

	pool := op.Pool()
	_, err := pool.Exec(ctx,
		"CREATE TABLE IF NOT EXISTS column_probe_test (id INT, name TEXT)")
	require.NoError(t, err)
	defer pool.Exec(ctx, "DROP TABLE IF EXISTS column_probe_test")

	exists, err := op.ColumnExists(ctx, "column_probe_test", "name")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.ColumnExists(ctx, "column_probe_test", "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}
