package ioload

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepted(t *testing.T) {
	assert.True(t, accepted(rawRecord{HudCategory: "Biology"}))
	assert.False(t, accepted(rawRecord{HudCategory: "Geology"}))
	assert.False(t, accepted(rawRecord{HudCategory: "biology"}))
	assert.False(t, accepted(rawRecord{}))
}

func TestToReport(t *testing.T) {
	doc := `{
		"hud_category": "Biology",
		"english_name": "Roseum Brain Tree",
		"created_at": "2019-09-27 07:56:06",
		"reported_at": "2019-09-28T10:00:00Z",
		"cmdr_name": "Ishmael",
		"system": "Sol",
		"x": "1.25", "y": -2, "z": 3,
		"body": "Earth",
		"latitude": "12.5", "longitude": null,
		"entry_id": 2320103,
		"name": "$Codex_Ent_Seed_Name;",
		"category": "Organic Structures",
		"sub_category": "Brain Trees",
		"region_name": "Inner Orion Spur",
		"system_address": 10477373803
	}`

	var rec rawRecord
	require.NoError(t, json.Unmarshal([]byte(doc), &rec))

	row := toReport(rec)

	assert.Equal(t, "Biology", row.HudCategory.String)
	assert.Equal(t, "Roseum Brain Tree", row.EnglishName.String)
	assert.Equal(t, "Sol", row.System.String)
	assert.Equal(t, "Earth", row.Body.String)
	assert.Equal(t, "Inner Orion Spur", row.RegionName.String)
	assert.False(t, row.RegionNameLocalised.Valid)

	require.True(t, row.X.Valid)
	assert.Equal(t, 1.25, row.X.Float64)
	assert.Equal(t, -2.0, row.Y.Float64)
	require.True(t, row.Latitude.Valid)
	assert.Equal(t, 12.5, row.Latitude.Float64)
	assert.False(t, row.Longitude.Valid)

	assert.Equal(t, int64(2320103), row.EntryID.Int64)
	assert.Equal(t, int64(10477373803), row.SystemAddress.Int64)

	require.True(t, row.CreatedAt.Valid)
	assert.Equal(t,
		time.Date(2019, 9, 27, 7, 56, 6, 0, time.UTC),
		row.CreatedAt.Time)
	require.True(t, row.ReportedAt.Valid)
}

func TestToReport_EmptyAndBadFields(t *testing.T) {
	row := toReport(rawRecord{
		HudCategory: "Biology",
		CreatedAt:   "yesterday",
	})

	assert.False(t, row.EnglishName.Valid)
	assert.False(t, row.System.Valid)
	assert.False(t, row.Body.Valid)
	assert.False(t, row.X.Valid)
	// unparseable timestamps become NULL, not an error
	assert.False(t, row.CreatedAt.Valid)
	assert.False(t, row.ReportedAt.Valid)
}
