package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Clock
		ok   bool
	}{
		{"morning", "9:15:30 am", Clock(9*3600 + 15*60 + 30), true},
		{"evening", "7:45:00 pm", Clock(19*3600 + 45*60), true},
		{"midnight", "12:00:00 am", Clock(0), true},
		{"noon", "12:00:00 pm", Clock(12 * 3600), true},
		{"uppercase suffix", "9:15:30 AM", Clock(9*3600 + 15*60 + 30), true},
		{"no space before suffix", "9:15:30am", Clock(9*3600 + 15*60 + 30), true},
		{"24-hour form", "19:45:00", Clock(19*3600 + 45*60), true},
		{"24-hour midnight", "0:00:00", Clock(0), true},
		{"padded whitespace", "  9:15:30 am  ", Clock(9*3600 + 15*60 + 30), true},
		{"empty", "", 0, false},
		{"missing seconds", "9:15 am", 0, false},
		{"hour 13 with suffix", "13:00:00 pm", 0, false},
		{"hour 0 with suffix", "0:30:00 am", 0, false},
		{"hour 24", "24:00:00", 0, false},
		{"minute out of range", "9:61:00 am", 0, false},
		{"second out of range", "9:00:61 am", 0, false},
		{"garbage", "not a time", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseClock(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestClockMinutes(t *testing.T) {
	c, ok := ParseClock("9:30:30 am")
	require.True(t, ok)
	assert.InDelta(t, 570.5, c.Minutes(), 1e-9)
}

func TestClockString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"9:15:30 am", "9:15:30 am"},
		{"19:45:00", "7:45:00 pm"},
		{"0:00:05", "12:00:05 am"},
		{"12:00:00 pm", "12:00:00 pm"},
	}
	for _, tc := range cases {
		c, ok := ParseClock(tc.raw)
		require.True(t, ok, tc.raw)
		assert.Equal(t, tc.want, c.String())
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"5/3/2025", "05/03/2025", true},
		{"05/03/2025", "05/03/2025", true},
		{"5-3-2025", "05/03/2025", true},
		{"2025-03-05", "05/03/2025", true},
		{"2025/3/5", "05/03/2025", true},
		{"31/12/2024", "31/12/2024", true},
		{"0/3/2025", "", false},
		{"32/1/2025", "", false},
		{"5/13/2025", "", false},
		{"5/3/25", "", false},
		{"5/3", "", false},
		{"", "", false},
		{"abc/def/ghij", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeDate(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestMonthDates(t *testing.T) {
	feb := MonthDates(2024, time.February)
	require.Len(t, feb, 29) // leap year
	assert.Equal(t, "01/02/2024", DateKey(feb[0]))
	assert.Equal(t, "29/02/2024", DateKey(feb[28]))

	apr := MonthDates(2025, time.April)
	assert.Len(t, apr, 30)
}
