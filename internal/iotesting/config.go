// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"strconv"
	"testing"

	"github.com/exobio/codexdb/pkg/config"
)

// TestDatabaseName is the database name used for all integration
// tests. This ensures tests never accidentally run against production
// databases.
const TestDatabaseName = "codexdb_test"

// GetTestConfig returns a configuration suitable for integration
// tests. Defaults can be overridden with CODEXDB_DATABASE_* variables;
// the database name is always forced to TestDatabaseName for safety.
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("CODEXDB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("CODEXDB_DATABASE_PORT"); s != "" {
		port, err := strconv.Atoi(s)
		if err != nil {
			t.Fatalf("invalid CODEXDB_DATABASE_PORT: %v", err)
		}
		opts = append(opts, config.OptDatabasePort(port))
	}
	if s := os.Getenv("CODEXDB_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("CODEXDB_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)

	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for
// tests.
func GetTestDatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	cfg := GetTestConfig(t)
	return &cfg.Database
}
