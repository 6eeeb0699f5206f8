package ionormalize

import (
	"github.com/exobio/codexdb/pkg/migration"
	"github.com/exobio/codexdb/pkg/schema"
)

// teardownOps removes every normalization artifact a prior run may have
// left behind, in dependency order: reference columns first, then the
// tables from the leaf of the FK graph upward.
func teardownOps() []migration.Op {
	return []migration.Op{
		migration.DropColumnIfPresent{
			Table: schema.ReportsTable, Column: "species_id",
		},
		migration.DropColumnIfPresent{
			Table: schema.ReportsTable, Column: "system_id",
		},
		migration.DropColumnIfPresent{
			Table: schema.ReportsTable, Column: "body_id",
		},
		migration.DropTableIfPresent{Table: "bodies"},
		migration.DropTableIfPresent{Table: "systems"},
		migration.DropTableIfPresent{Table: "regions"},
		migration.DropTableIfPresent{Table: "species"},
	}
}

// createOps builds the reference tables and adds the reference columns
// to the flat table. Tables are created parents-first so the FK clauses
// resolve.
func createOps() []migration.Op {
	models := []schema.DDLGenerator{
		schema.Species{},
		schema.Region{},
		schema.System{},
		schema.Body{},
	}

	var ops []migration.Op
	for _, m := range models {
		ops = append(ops, migration.CreateTableIfAbsent{
			Table:   m.TableName(),
			Columns: m.ColumnsDDL(),
		})
	}

	refs := []struct {
		column string
		typ    string
	}{
		{"species_id", "INT REFERENCES species (id)"},
		{"system_id", "INT REFERENCES systems (id)"},
		{"body_id", "INT REFERENCES bodies (id)"},
	}
	for _, r := range refs {
		ops = append(ops, migration.AddColumnIfAbsent{
			Table:  schema.ReportsTable,
			Column: r.column,
			Type:   r.typ,
		})
	}

	return ops
}

// supersededColumns are the denormalized flat-table columns replaced by
// the reference columns. Location fields (latitude, longitude) and
// reporting metadata stay: they are per-report, not per-entity.
var supersededColumns = []string{
	"english_name",
	"system",
	"x",
	"y",
	"z",
	"body",
	"region_name",
	"region_name_localised",
	"name",
	"category",
	"sub_category",
	"hud_category",
}

// cleanupOps drops every column superseded by normalization. Absence of
// a column is tolerated, so cleanup is safe to re-run.
func cleanupOps() []migration.Op {
	ops := make([]migration.Op, 0, len(supersededColumns))
	for _, col := range supersededColumns {
		ops = append(ops, migration.DropColumnIfPresent{
			Table:  schema.ReportsTable,
			Column: col,
		})
	}
	return ops
}
