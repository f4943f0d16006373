package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-03-05 ")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 5), d)
	assert.Equal(t, "2026-03-05", d.String())

	_, err = ParseDate("05/03/2026")
	assert.Error(t, err)
}

func TestDateOf_KeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	late := time.Date(2026, time.October, 31, 23, 30, 0, 0, loc)

	assert.Equal(t, NewDate(2026, time.October, 31), DateOf(late))
}

func TestDate_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{NewDate(2026, time.January, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-01-02"}`, string(payload))

	var decoded struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-12-31"}`), &decoded))
	assert.Equal(t, NewDate(2026, time.December, 31), decoded.Date)
}

func TestDate_ValueAndScan(t *testing.T) {
	v, err := NewDate(2026, time.May, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-05-09", v)

	tests := []struct {
		name string
		src  interface{}
	}{
		{"time", time.Date(2026, time.May, 9, 0, 0, 0, 0, time.Local)},
		{"bytes", []byte("2026-05-09")},
		{"string with time", "2026-05-09 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, NewDate(2026, time.May, 9), d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}
