package config_test

import (
	"path/filepath"
	"testing"

	"github.com/exobio/codexdb/pkg/config"
	"github.com/stretchr/testify/assert"
)

// TestNew_Defaults verifies that the default config carries values
// that are valid without further validation.
func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "codex", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 1000, cfg.Database.BatchSize)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Load.InputFile)
	assert.Empty(t, cfg.HomeDir)
}

func TestUpdate_AppliesOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabasePort(5433),
		config.OptDatabaseBatchSize(500),
		config.OptLoadInputFile("/data/codex.json"),
		config.OptLogLevel("debug"),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 500, cfg.Database.BatchSize)
	assert.Equal(t, "/data/codex.json", cfg.Load.InputFile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestUpdate_RejectsInvalid verifies that invalid option values leave
// the config untouched.
func TestUpdate_RejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("   "),
		config.OptDatabasePort(-1),
		config.OptDatabaseBatchSize(0),
		config.OptDatabaseSSLMode("bogus"),
		config.OptLogLevel("loud"),
	})

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 1000, cfg.Database.BatchSize)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestToOptions_RoundTrip verifies that a config survives conversion
// to options and back.
func TestToOptions_RoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseHost("pg.internal"),
		config.OptDatabaseUser("codex"),
		config.OptDatabaseBatchSize(2500),
		config.OptLoadInputFile("dump.json"),
		config.OptLogFormat("text"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Database, dst.Database)
	assert.Equal(t, src.Load, dst.Load)
	assert.Equal(t, src.Log, dst.Log)
}

// TestToOptions_SkipsRuntimeFields verifies HomeDir is not persisted.
func TestToOptions_SkipsRuntimeFields(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{config.OptHomeDir("/home/cmdr")})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Empty(t, dst.HomeDir)
}

func TestPaths(t *testing.T) {
	home := filepath.Join("/home", "cmdr")

	assert.Equal(t,
		filepath.Join(home, ".config", "codexdb"),
		config.ConfigDir(home))
	assert.Equal(t,
		filepath.Join(home, ".config", "codexdb", "config.yaml"),
		config.ConfigFilePath(home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "codexdb", "logs"),
		config.LogDir(home))
}
