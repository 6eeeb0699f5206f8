// Package ionormalize implements the Normalizer interface: the second,
// independently-run phase that restructures the flat report table into
// species, regions, systems and bodies reference tables with foreign-key
// linkage, then drops the superseded denormalized columns.
//
// The phase runs four stages in order: teardown, create, populate &
// backfill, cleanup. Every stage is idempotent, so the recovery path
// after any failure is simply running the whole phase again.
package ionormalize

import (
	"context"
	"log/slog"
	"time"

	"github.com/exobio/codexdb/pkg/codexdb"
	"github.com/exobio/codexdb/pkg/config"
	"github.com/exobio/codexdb/pkg/db"
	"github.com/exobio/codexdb/pkg/migration"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// normalizer implements the codexdb.Normalizer interface.
type normalizer struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Normalizer.
func New(cfg *config.Config, op db.Operator) codexdb.Normalizer {
	return &normalizer{cfg: cfg, operator: op}
}

// Normalize runs the four migration stages sequentially, stopping at the
// first failure. No partial-stage rollback is attempted: the teardown
// stage of the next run removes whatever a failed run left behind.
func (n *normalizer) Normalize(ctx context.Context) error {
	pool := n.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting normalization")

	// The probe gates the whole destructive pass. No legacy columns
	// means a prior run completed: its reference data is the only copy
	// left, so tearing it down would destroy it with nothing to
	// re-derive. Teardown remains the recovery path for the
	// partially-normalized case, where legacy columns still exist.
	cols, err := n.probeLegacyColumns(ctx)
	if err != nil {
		return err
	}
	if !cols.anyPresent() {
		slog.Info("Flat table already normalized, nothing to do")
		gn.Info("Reports are already normalized, nothing to do")
		return nil
	}

	gn.Info("Removing artifacts of any prior normalization")
	if err := migration.Apply(ctx, pool, teardownOps()); err != nil {
		return TeardownError(err)
	}

	gn.Info("Creating reference tables")
	if err := migration.Apply(ctx, pool, createOps()); err != nil {
		return CreateError(err)
	}

	gn.Info("Populating reference tables")
	if err := n.execAll(ctx, populateStatements(cols), PopulateError); err != nil {
		return err
	}

	gn.Info("Backfilling report references")
	if err := n.execAll(ctx, backfillStatements(cols), BackfillError); err != nil {
		return err
	}

	gn.Info("Dropping superseded columns")
	if err := migration.Apply(ctx, pool, cleanupOps()); err != nil {
		return CleanupError(err)
	}

	duration := time.Since(startTime)
	slog.Info("Normalization complete",
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Normalized reports in %s", gnfmt.TimeString(duration.Seconds()))

	return nil
}

// execAll runs statements sequentially, wrapping the first failure with
// wrap. Statements carry their own WHERE/JOIN gating, so each is issued
// unconditionally once assembled.
func (n *normalizer) execAll(
	ctx context.Context,
	stmts []statement,
	wrap func(desc string, err error) error,
) error {
	pool := n.operator.Pool()

	for _, st := range stmts {
		slog.Info("Executing normalization statement", "step", st.desc)
		if _, err := pool.Exec(ctx, st.sql); err != nil {
			return wrap(st.desc, err)
		}
	}
	return nil
}
