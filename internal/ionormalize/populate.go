package ionormalize

// statement is one populate or backfill step with a log description.
type statement struct {
	desc string
	sql  string
}

// populateStatements assembles the reference-table inserts allowed by
// the probed legacy columns. Every insert skips natural-key duplicates,
// so the first written value wins and a re-run is a no-op.
func populateStatements(cols legacyColumns) []statement {
	var stmts []statement

	if cols.HasEnglishName {
		stmts = append(stmts, statement{
			desc: "populate species",
			sql: `
INSERT INTO species (english_name)
SELECT DISTINCT english_name
FROM codex_reports
WHERE english_name IS NOT NULL
ON CONFLICT (english_name) DO NOTHING`,
		})
	}

	if cols.HasRegionName {
		sql := `
INSERT INTO regions (name)
SELECT DISTINCT region_name
FROM codex_reports
WHERE region_name IS NOT NULL
ON CONFLICT (name) DO NOTHING`
		if cols.HasRegionNameLocalised {
			sql = `
INSERT INTO regions (name, name_localised)
SELECT DISTINCT ON (region_name) region_name, region_name_localised
FROM codex_reports
WHERE region_name IS NOT NULL
ON CONFLICT (name) DO NOTHING`
		}
		stmts = append(stmts, statement{desc: "populate regions", sql: sql})
	}

	if cols.HasSystemName {
		// A region-less schema still yields systems, just without the
		// region reference (left-join semantics when the column exists).
		sql := `
INSERT INTO systems (name, x, y, z)
SELECT DISTINCT ON (system) system, x, y, z
FROM codex_reports
WHERE system IS NOT NULL
ON CONFLICT (name) DO NOTHING`
		if cols.HasRegionName {
			sql = `
INSERT INTO systems (name, x, y, z, region_id)
SELECT DISTINCT ON (cr.system) cr.system, cr.x, cr.y, cr.z, r.id
FROM codex_reports cr
LEFT JOIN regions r ON r.name = cr.region_name
WHERE cr.system IS NOT NULL
ON CONFLICT (name) DO NOTHING`
		}
		stmts = append(stmts, statement{desc: "populate systems", sql: sql})

		// Bodies are meaningless without an owning system, hence the
		// inner join: a body whose system did not resolve is skipped.
		stmts = append(stmts, statement{
			desc: "populate bodies",
			sql: `
INSERT INTO bodies (name, system_id)
SELECT DISTINCT cr.body, s.id
FROM codex_reports cr
JOIN systems s ON s.name = cr.system
WHERE cr.body IS NOT NULL
ON CONFLICT (name, system_id) DO NOTHING`,
		})
	}

	return stmts
}

// backfillStatements assembles the flat-table reference updates allowed
// by the probed legacy columns. Each clause depends only on its own
// legacy column, so a missing column skips exactly one update.
func backfillStatements(cols legacyColumns) []statement {
	var stmts []statement

	if cols.HasEnglishName {
		stmts = append(stmts, statement{
			desc: "backfill species_id",
			sql: `
UPDATE codex_reports cr
SET species_id = s.id
FROM species s
WHERE s.english_name = cr.english_name`,
		})
	}

	if cols.HasSystemName {
		stmts = append(stmts, statement{
			desc: "backfill system_id",
			sql: `
UPDATE codex_reports cr
SET system_id = s.id
FROM systems s
WHERE s.name = cr.system`,
		})

		stmts = append(stmts, statement{
			desc: "backfill body_id",
			sql: `
UPDATE codex_reports cr
SET body_id = b.id
FROM bodies b
JOIN systems s ON s.id = b.system_id
WHERE b.name = cr.body AND s.name = cr.system`,
		})
	}

	return stmts
}
