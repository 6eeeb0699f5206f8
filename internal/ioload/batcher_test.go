package ioload

import (
	"context"
	"errors"
	"testing"

	"github.com/exobio/codexdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatcher_FlushCount(t *testing.T) {
	tests := []struct {
		name        string
		rows        int
		size        int
		wantFlushes int
	}{
		{"even split", 20, 10, 2},
		{"partial tail", 25, 10, 3},
		{"single partial", 3, 10, 1},
		{"no rows", 0, 10, 0},
		{"batch of one", 4, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			var flushes int
			var written int
			b := newBatcher(tt.size,
				func(_ context.Context, rows []schema.Report) error {
					flushes++
					written += len(rows)
					return nil
				})

			for i := 0; i < tt.rows; i++ {
				require.NoError(t, b.add(ctx, schema.Report{}))
			}
			require.NoError(t, b.finish(ctx))

			assert.Equal(t, tt.wantFlushes, flushes)
			assert.Equal(t, tt.rows, written)
			assert.Equal(t, tt.rows, b.total)
		})
	}
}

// TestBatcher_FullBatches verifies each non-final flush carries
// exactly the configured batch size.
func TestBatcher_FullBatches(t *testing.T) {
	ctx := context.Background()

	var sizes []int
	b := newBatcher(4, func(_ context.Context, rows []schema.Report) error {
		sizes = append(sizes, len(rows))
		return nil
	})

	for i := 0; i < 10; i++ {
		require.NoError(t, b.add(ctx, schema.Report{}))
	}
	require.NoError(t, b.finish(ctx))

	assert.Equal(t, []int{4, 4, 2}, sizes)
}

func TestBatcher_FlushErrorAborts(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("insert failed")

	b := newBatcher(2, func(context.Context, []schema.Report) error {
		return wantErr
	})

	require.NoError(t, b.add(ctx, schema.Report{}))
	err := b.add(ctx, schema.Report{})

	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, b.total)
}
