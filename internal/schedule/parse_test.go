package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockText(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		input        string
		hour, minute int
	}{
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"1:12 PM", 13, 12},
		{"01:12 PM", 13, 12},
		{"9:05 am", 9, 5},
		{"11:59 pm", 23, 59},
		{"12:30AM", 0, 30},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseClockText(tc.input, day)
			require.NoError(t, err)
			assert.Equal(t, tc.hour, got.Hour())
			assert.Equal(t, tc.minute, got.Minute())
			assert.Equal(t, day.Year(), got.Year())
			assert.Equal(t, day.Month(), got.Month())
			assert.Equal(t, day.Day(), got.Day())
		})
	}
}

func TestParseClockTextRejectsMalformedInput(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"",
		"abc",
		"25:00 PM",
		"13:00 PM",
		"0:30 AM",
		"1:75 PM",
		"1:12",     // marker required
		"1:12 XM",  // unknown marker
		"1:1 PM",   // minutes need two digits
		"111:12 PM",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClockText(input, day)
			require.Error(t, err)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestParseClockTextPreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	day := time.Date(2025, time.March, 10, 15, 30, 0, 0, loc)

	got, err := ParseClockText("2:45 PM", day)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 45, got.Minute())
}
