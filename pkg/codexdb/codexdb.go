// Package codexdb defines the public contracts of the codexdb lifecycle.
// Implementations live in internal/io* packages; this package has no I/O.
package codexdb

import (
	"context"
)

var (
	// Version is set by the build via ldflags.
	Version = "v0.0.0"
	// Build is set by the build via ldflags.
	Build = "n/a"
)

// SchemaManager creates the flat codex_reports table.
// Creation is idempotent - safe to run before every load.
type SchemaManager interface {
	// Create brings the flat table into existence if it is absent.
	Create(ctx context.Context) error
}

// Loader streams codex discovery records from a JSON document and
// persists the biological subset into the flat table in fixed-size
// batches.
type Loader interface {
	// Load runs phase 1. It returns the number of rows written.
	// Any insert failure aborts the whole run.
	Load(ctx context.Context) (int, error)
}

// Normalizer converts the flat table into the relational schema
// (species, regions, systems, bodies) and drops superseded columns.
// A Normalize run is idempotent: its first stage tears down artifacts
// left by earlier, possibly failed, runs.
type Normalizer interface {
	// Normalize runs phase 2: teardown, create, populate and backfill,
	// column cleanup. Stages run sequentially; the first failure aborts.
	Normalize(ctx context.Context) error
}
