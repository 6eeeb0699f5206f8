package ioload

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRecords(t *testing.T, doc string) []rawRecord {
	t.Helper()

	var recs []rawRecord
	err := streamRecords(strings.NewReader(doc), func(r rawRecord) error {
		recs = append(recs, r)
		return nil
	})
	require.NoError(t, err)
	return recs
}

func TestStreamRecords_Array(t *testing.T) {
	doc := `[
		{"hud_category": "Biology", "system": "Sol"},
		{"hud_category": "Geology", "system": "Achenar"}
	]`

	recs := collectRecords(t, doc)

	require.Len(t, recs, 2)
	assert.Equal(t, "Sol", recs[0].System)
	assert.Equal(t, "Achenar", recs[1].System)
}

func TestStreamRecords_EmptyArray(t *testing.T) {
	recs := collectRecords(t, ` [] `)
	assert.Empty(t, recs)
}

func TestStreamRecords_ObjectStream(t *testing.T) {
	doc := `{"system": "Sol"}
{"system": "Maia"}
{"system": "Merope"}`

	recs := collectRecords(t, doc)

	require.Len(t, recs, 3)
	assert.Equal(t, "Merope", recs[2].System)
}

func TestStreamRecords_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty input", ""},
		{"truncated array", `[{"system": "Sol"},`},
		{"non-object element", `[42]`},
		{"not json", `system,x,y` + "\n" + `Sol,0,0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := streamRecords(
				strings.NewReader(tt.doc),
				func(rawRecord) error { return nil },
			)
			assert.Error(t, err)
		})
	}
}

// TestStreamRecords_CallbackErrorAborts verifies fn errors propagate
// unchanged and stop consumption.
func TestStreamRecords_CallbackErrorAborts(t *testing.T) {
	doc := `[{"system": "Sol"}, {"system": "Maia"}, {"system": "Merope"}]`
	wantErr := errors.New("flush failed")

	var seen int
	err := streamRecords(strings.NewReader(doc), func(rawRecord) error {
		seen++
		if seen == 2 {
			return wantErr
		}
		return nil
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, seen)
}
