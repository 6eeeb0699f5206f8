package schema_test

import (
	"testing"

	"github.com/exobio/codexdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "codex_reports", schema.Report{}.TableName())
	assert.Equal(t, "species", schema.Species{}.TableName())
	assert.Equal(t, "regions", schema.Region{}.TableName())
	assert.Equal(t, "systems", schema.System{}.TableName())
	assert.Equal(t, "bodies", schema.Body{}.TableName())
}

// TestSpeciesColumnsDDL verifies ddl tags are assembled in field order.
func TestSpeciesColumnsDDL(t *testing.T) {
	ddl := schema.Species{}.ColumnsDDL()
	assert.Equal(t,
		"id SERIAL PRIMARY KEY, "+
			"english_name VARCHAR(255) NOT NULL UNIQUE",
		ddl)
}

func TestRegionColumnsDDL(t *testing.T) {
	ddl := schema.Region{}.ColumnsDDL()
	assert.Equal(t,
		"id SERIAL PRIMARY KEY, "+
			"name VARCHAR(255) NOT NULL UNIQUE, "+
			"name_localised VARCHAR(255)",
		ddl)
}

func TestSystemColumnsDDL(t *testing.T) {
	ddl := schema.System{}.ColumnsDDL()
	assert.Contains(t, ddl, "name VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, ddl, "x DOUBLE PRECISION")
	assert.Contains(t, ddl, "region_id INT REFERENCES regions (id)")
}

// TestBodyColumnsDDL verifies the composite natural key constraint is
// appended after the columns.
func TestBodyColumnsDDL(t *testing.T) {
	ddl := schema.Body{}.ColumnsDDL()
	assert.Equal(t,
		"id SERIAL PRIMARY KEY, "+
			"name VARCHAR(255) NOT NULL, "+
			"system_id INT NOT NULL REFERENCES systems (id), "+
			"UNIQUE (name, system_id)",
		ddl)
}
