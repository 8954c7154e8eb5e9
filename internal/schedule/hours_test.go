package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBusinessHours(t *testing.T) {
	h, err := ParseBusinessHours("07:00", "19:00")
	require.NoError(t, err)
	assert.Equal(t, 7*60, h.Open)
	assert.Equal(t, 19*60, h.Close)
}

func TestParseBusinessHoursRejectsBadInput(t *testing.T) {
	cases := []struct {
		name        string
		open, close string
	}{
		{"garbage open", "seven", "19:00"},
		{"garbage close", "07:00", "late"},
		{"close before open", "19:00", "07:00"},
		{"close equals open", "09:00", "09:00"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBusinessHours(tc.open, tc.close)
			assert.Error(t, err)
		})
	}
}

func TestContainsIsHalfOpen(t *testing.T) {
	hours := mustHours(t, "07:00", "19:00")

	assert.True(t, hours.Contains(at(7, 0)), "open itself is open for business")
	assert.True(t, hours.Contains(at(18, 59)))
	assert.False(t, hours.Contains(at(19, 0)), "close itself is already closed")
	assert.False(t, hours.Contains(at(6, 59)))
	assert.False(t, hours.Contains(at(23, 30)))
}

func TestOutsideMirrorsContains(t *testing.T) {
	hours := mustHours(t, "07:00", "19:00")

	for _, tm := range []struct{ hour, minute int }{
		{6, 59}, {7, 0}, {12, 30}, {18, 59}, {19, 0}, {19, 1},
	} {
		instant := at(tm.hour, tm.minute)
		assert.Equal(t, !hours.Contains(instant), hours.Outside(instant))
	}
}
