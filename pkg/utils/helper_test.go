package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	parsed, err := ParseDate("2026-03-10", loc)
	require.NoError(t, err)

	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, loc, parsed.Location())

	_, err = ParseDate("10-03-2026", loc)
	assert.Error(t, err)
}

func TestCivilDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A DATE value scans as midnight UTC; its calendar day must survive
	// into a zone behind UTC.
	scanned := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	day := CivilDay(scanned, loc)

	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 9, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}
