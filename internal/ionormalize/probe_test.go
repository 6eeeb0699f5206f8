package ionormalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLegacyColumns_AnyPresent verifies the gate that keeps a re-run on
// an already-normalized table from tearing down the reference data.
func TestLegacyColumns_AnyPresent(t *testing.T) {
	tests := []struct {
		name string
		cols legacyColumns
		want bool
	}{
		{"nothing present", legacyColumns{}, false},
		{"all present", allColumns(), true},
		{"only species", legacyColumns{HasEnglishName: true}, true},
		{"only region", legacyColumns{HasRegionName: true}, true},
		{
			"only localised region",
			legacyColumns{HasRegionNameLocalised: true},
			true,
		},
		{"only system", legacyColumns{HasSystemName: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cols.anyPresent())
		})
	}
}

// TestStatements_NormalizedTable verifies that a fully normalized flat
// table assembles no populate or backfill work at all. Combined with
// the anyPresent gate this makes a repeated run content-preserving
// rather than destructive.
func TestStatements_NormalizedTable(t *testing.T) {
	cols := legacyColumns{}

	assert.False(t, cols.anyPresent(),
		"normalized table must short-circuit before teardown")
	assert.Empty(t, populateStatements(cols))
	assert.Empty(t, backfillStatements(cols))
}
