package ioload

import (
	"database/sql"
	"strings"
	"time"

	"github.com/exobio/codexdb/pkg/schema"
)

// BiologyCategory is the hud_category value selecting the records this
// pipeline persists. Every other category is discarded silently.
const BiologyCategory = "Biology"

// timeLayouts are the timestamp formats observed in codex dumps.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// accepted reports whether a raw record belongs to the biological
// category.
func accepted(rec rawRecord) bool {
	return rec.HudCategory == BiologyCategory
}

// toReport converts an accepted raw record into a flat table row.
// Coercion failures have already been absorbed into NULLs during
// decoding; here only timestamps still need tolerant parsing.
func toReport(rec rawRecord) schema.Report {
	return schema.Report{
		EntryID:             rec.EntryID.NullInt64,
		Name:                nullString(rec.Name),
		Category:            nullString(rec.Category),
		SubCategory:         nullString(rec.SubCategory),
		HudCategory:         nullString(rec.HudCategory),
		EnglishName:         nullString(rec.EnglishName),
		System:              nullString(rec.System),
		X:                   rec.X.NullFloat64,
		Y:                   rec.Y.NullFloat64,
		Z:                   rec.Z.NullFloat64,
		SystemAddress:       rec.SystemAddress.NullInt64,
		Body:                nullString(rec.Body),
		Latitude:            rec.Latitude.NullFloat64,
		Longitude:           rec.Longitude.NullFloat64,
		RegionName:          nullString(rec.RegionName),
		RegionNameLocalised: nullString(rec.RegionNameLocalised),
		CmdrName:            nullString(rec.CmdrName),
		CreatedAt:           nullTime(rec.CreatedAt),
		ReportedAt:          nullTime(rec.ReportedAt),
	}
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(s string) sql.NullTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullTime{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}
