package ionormalize

import (
	"context"
	"log/slog"

	"github.com/exobio/codexdb/pkg/schema"
)

// legacyColumns records which denormalized columns are still present on
// the flat table. The flags are computed once, up front, and gate every
// populate and backfill statement: an absent column degrades the steps
// depending on it to skipped no-ops.
type legacyColumns struct {
	HasEnglishName         bool
	HasRegionName          bool
	HasRegionNameLocalised bool
	HasSystemName          bool
}

// anyPresent reports whether at least one legacy column survives on the
// flat table. When none does, normalization has already completed and
// there is nothing left to re-derive.
func (c legacyColumns) anyPresent() bool {
	return c.HasEnglishName || c.HasRegionName ||
		c.HasRegionNameLocalised || c.HasSystemName
}

// probeLegacyColumns inspects the flat table's column set. Absence of a
// column is a recognized condition, not an error.
func (n *normalizer) probeLegacyColumns(
	ctx context.Context,
) (legacyColumns, error) {
	var cols legacyColumns
	var err error

	probes := []struct {
		column string
		flag   *bool
	}{
		{"english_name", &cols.HasEnglishName},
		{"region_name", &cols.HasRegionName},
		{"region_name_localised", &cols.HasRegionNameLocalised},
		{"system", &cols.HasSystemName},
	}

	for _, p := range probes {
		*p.flag, err = n.operator.ColumnExists(
			ctx, schema.ReportsTable, p.column,
		)
		if err != nil {
			return cols, ProbeError(p.column, err)
		}
	}

	slog.Info("Probed legacy columns",
		"english_name", cols.HasEnglishName,
		"region_name", cols.HasRegionName,
		"region_name_localised", cols.HasRegionNameLocalised,
		"system", cols.HasSystemName,
	)

	return cols, nil
}
