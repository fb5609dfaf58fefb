package handlers

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTimestampDateAndTime(t *testing.T) {
	cases := []struct {
		name     string
		ts       string
		wantDate string
		wantTime string
	}{
		{"canonical", "03/03/2025 9:15:30 am", "03/03/2025", "9:15:30 am"},
		{"comma after date", "3/3/2025, 9:15:30 am", "03/03/2025", "9:15:30 am"},
		{"iso date 24h time", "2025-03-03 19:45:00", "03/03/2025", "7:45:00 pm"},
		{"extra whitespace", "  3/3/2025   9:15:30 am  ", "03/03/2025", "9:15:30 am"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date, clock, ok := splitTimestamp(tc.ts)
			require.True(t, ok)
			assert.Equal(t, tc.wantDate, date)
			assert.Equal(t, tc.wantTime, clock.String())
		})
	}
}

func TestSplitTimestampUnixSeconds(t *testing.T) {
	// 2025-03-03 03:45:30 UTC is 09:15:30 IST the same day.
	ref := time.Date(2025, 3, 3, 3, 45, 30, 0, time.UTC)
	date, clock, ok := splitTimestamp(strconv.FormatInt(ref.Unix(), 10))
	require.True(t, ok)
	assert.Equal(t, "03/03/2025", date)
	assert.Equal(t, "9:15:30 am", clock.String())
}

func TestSplitTimestampRejectsGarbage(t *testing.T) {
	for _, ts := range []string{"", "just-a-date", "03/03/2025", "nonsense 9:15:30 am", "3/3/2025 not-a-time"} {
		_, _, ok := splitTimestamp(ts)
		assert.False(t, ok, ts)
	}
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, "Monday", weekdayOf("03/03/2025"))
	assert.Equal(t, "Sunday", weekdayOf("02/03/2025"))
	assert.Equal(t, "Unknown", weekdayOf("garbage"))
}
