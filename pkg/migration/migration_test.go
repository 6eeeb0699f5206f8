package migration_test

import (
	"testing"

	"github.com/exobio/codexdb/pkg/migration"
	"github.com/stretchr/testify/assert"
)

func TestOpSQL(t *testing.T) {
	tests := []struct {
		name string
		op   migration.Op
		sql  string
		desc string
	}{
		{
			name: "create table",
			op: migration.CreateTableIfAbsent{
				Table:   "species",
				Columns: "id SERIAL PRIMARY KEY, english_name VARCHAR(255) NOT NULL UNIQUE",
			},
			sql: "CREATE TABLE IF NOT EXISTS species " +
				"(id SERIAL PRIMARY KEY, english_name VARCHAR(255) NOT NULL UNIQUE)",
			desc: "create table species",
		},
		{
			name: "add column",
			op: migration.AddColumnIfAbsent{
				Table:  "codex_reports",
				Column: "species_id",
				Type:   "INT REFERENCES species (id)",
			},
			sql: "ALTER TABLE codex_reports ADD COLUMN IF NOT EXISTS " +
				"species_id INT REFERENCES species (id)",
			desc: "add column codex_reports.species_id",
		},
		{
			name: "drop column",
			op: migration.DropColumnIfPresent{
				Table:  "codex_reports",
				Column: "region_name",
			},
			sql:  "ALTER TABLE codex_reports DROP COLUMN IF EXISTS region_name",
			desc: "drop column codex_reports.region_name",
		},
		{
			name: "drop table",
			op:   migration.DropTableIfPresent{Table: "bodies"},
			sql:  "DROP TABLE IF EXISTS bodies CASCADE",
			desc: "drop table bodies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sql, tt.op.SQL())
			assert.Equal(t, tt.desc, tt.op.String())
		})
	}
}
