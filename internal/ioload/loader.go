// Package ioload implements the Loader interface: streaming the codex
// JSON document, filtering the biological subset, and writing flat
// rows to PostgreSQL in fixed-size batches.
package ioload

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/exobio/codexdb/pkg/codexdb"
	"github.com/exobio/codexdb/pkg/config"
	"github.com/exobio/codexdb/pkg/db"
	"github.com/exobio/codexdb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const insertReportSQL = `
INSERT INTO codex_reports (
	entry_id, name, category, sub_category, hud_category,
	english_name, system, x, y, z, system_address,
	body, latitude, longitude,
	region_name, region_name_localised,
	cmdr_name, created_at, reported_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	$11, $12, $13, $14, $15, $16, $17, $18, $19
)`

// loader implements the codexdb.Loader interface.
type loader struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Loader.
func New(cfg *config.Config, op db.Operator) codexdb.Loader {
	return &loader{cfg: cfg, operator: op}
}

// Load streams the configured input document and persists every
// biological record. Rows are written in batches of
// cfg.Database.BatchSize; while a batch is being flushed the stream is
// not consumed. Any failing insert aborts the run with the current
// batch rolled back.
func (l *loader) Load(ctx context.Context) (int, error) {
	pool := l.operator.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}

	runID := uuid.New().String()
	path := l.cfg.Load.InputFile
	startTime := time.Now()

	slog.Info("Starting codex load",
		"run_id", runID,
		"input", path,
		"batch_size", l.cfg.Database.BatchSize,
	)

	file, err := os.Open(path)
	if err != nil {
		return 0, InputOpenError(path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, InputOpenError(path, err)
	}

	// Progress over consumed input bytes; the record count is unknown
	// until the stream ends.
	bar := pb.Full.Start64(info.Size())
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", "Reading codex: ")
	bar.Set(pb.CleanOnFinish, true)
	reader := bar.NewProxyReader(file)

	batch := newBatcher(l.cfg.Database.BatchSize, l.flushBatch)

	err = streamRecords(reader, func(rec rawRecord) error {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		if !accepted(rec) {
			return nil
		}
		return batch.add(ctx, toReport(rec))
	})
	if err == nil {
		err = batch.finish(ctx)
	}
	bar.Finish()
	if err != nil {
		return 0, err
	}

	duration := time.Since(startTime)
	slog.Info("Codex load complete",
		"run_id", runID,
		"rows", batch.total,
		"batches", batch.flushes,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Loaded <em>%s</em> biological reports in %s",
		humanize.Comma(int64(batch.total)),
		gnfmt.TimeString(duration.Seconds()),
	)

	return batch.total, nil
}

// flushBatch writes one batch inside a transaction. All-or-nothing per
// batch: a failed insert rolls the whole batch back, so a re-run after
// an abort never leaves silently half-written batches behind.
func (l *loader) flushBatch(
	ctx context.Context,
	rows []schema.Report,
) error {
	pool := l.operator.Pool()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return TxError(err)
	}
	// no-op once committed
	defer tx.Rollback(ctx)

	for _, row := range rows {
		if err := insertReport(ctx, tx, row); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return TxError(err)
	}

	return nil
}

func insertReport(ctx context.Context, tx pgx.Tx, row schema.Report) error {
	_, err := tx.Exec(ctx, insertReportSQL,
		row.EntryID, row.Name, row.Category, row.SubCategory,
		row.HudCategory, row.EnglishName, row.System,
		row.X, row.Y, row.Z, row.SystemAddress,
		row.Body, row.Latitude, row.Longitude,
		row.RegionName, row.RegionNameLocalised,
		row.CmdrName, row.CreatedAt, row.ReportedAt,
	)
	if err != nil {
		return InsertError(err)
	}
	return nil
}
