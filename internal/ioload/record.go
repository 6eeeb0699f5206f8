package ioload

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
)

// rawRecord is one codex discovery entry as it appears in the input
// document. Unknown fields are ignored; numeric-looking fields are
// coerced leniently because the source mixes numbers and numeric
// strings.
type rawRecord struct {
	HudCategory         string    `json:"hud_category"`
	EnglishName         string    `json:"english_name"`
	CreatedAt           string    `json:"created_at"`
	ReportedAt          string    `json:"reported_at"`
	CmdrName            string    `json:"cmdr_name"`
	System              string    `json:"system"`
	X                   flexFloat `json:"x"`
	Y                   flexFloat `json:"y"`
	Z                   flexFloat `json:"z"`
	Body                string    `json:"body"`
	Latitude            flexFloat `json:"latitude"`
	Longitude           flexFloat `json:"longitude"`
	EntryID             flexInt   `json:"entry_id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	SubCategory         string    `json:"sub_category"`
	RegionName          string    `json:"region_name"`
	RegionNameLocalised string    `json:"region_name_localised"`
	SystemAddress       flexInt   `json:"system_address"`
}

// flexFloat accepts a JSON number, a numeric string, or null. A value
// that fails coercion becomes invalid (SQL NULL); it never aborts the
// record.
type flexFloat struct {
	sql.NullFloat64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	f.Float64, f.Valid = 0, false

	s := string(data)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}

	f.Float64, f.Valid = v, true
	return nil
}

// flexInt is the integer counterpart of flexFloat.
type flexInt struct {
	sql.NullInt64
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	f.Int64, f.Valid = 0, false

	s := string(data)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
	}

	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}

	f.Int64, f.Valid = v, true
	return nil
}
