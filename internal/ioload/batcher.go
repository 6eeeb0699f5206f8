package ioload

import (
	"context"
	"log/slog"

	"github.com/exobio/codexdb/pkg/schema"
)

// flushFunc persists one batch of flat rows.
type flushFunc func(context.Context, []schema.Report) error

// batcher accumulates rows and hands them to flush in fixed-size
// batches. It is driven synchronously by the record stream, so the
// stream stays suspended for the duration of every flush.
type batcher struct {
	size    int
	rows    []schema.Report
	flush   flushFunc
	total   int
	flushes int
}

func newBatcher(size int, flush flushFunc) *batcher {
	return &batcher{
		size:  size,
		rows:  make([]schema.Report, 0, size),
		flush: flush,
	}
}

// add appends a row, flushing when the batch is full.
func (b *batcher) add(ctx context.Context, row schema.Report) error {
	b.rows = append(b.rows, row)
	if len(b.rows) >= b.size {
		return b.drain(ctx)
	}
	return nil
}

// finish flushes the remaining partial batch.
func (b *batcher) finish(ctx context.Context) error {
	if len(b.rows) == 0 {
		return nil
	}
	return b.drain(ctx)
}

func (b *batcher) drain(ctx context.Context) error {
	if err := b.flush(ctx, b.rows); err != nil {
		return err
	}

	b.total += len(b.rows)
	b.flushes++
	b.rows = b.rows[:0]

	slog.Info("Batch flushed",
		"batch", b.flushes,
		"rows_total", b.total,
	)

	return nil
}
