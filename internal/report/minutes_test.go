package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func day(in, out string, sunday bool) DayBucket {
	b := DayBucket{Sunday: sunday}
	if in != "" {
		b.CheckIn, b.HasCheckIn = mustClock(in), true
	}
	if out != "" {
		b.CheckOut, b.HasCheckOut = mustClock(out), true
	}
	return b
}

func mustClock(raw string) Clock {
	c, ok := ParseClock(raw)
	if !ok {
		panic("bad clock literal: " + raw)
	}
	return c
}

func TestPayableMinutesStandardDay(t *testing.T) {
	cases := []struct {
		name string
		b    DayBucket
		want float64
	}{
		{"exact full day", day("8:00:00 am", "6:30:00 pm", false), 630},
		{"overtime kept as actual", day("8:00:00 am", "7:00:00 pm", false), 660},
		{"shortfall inside grace", day("8:00:00 am", "6:10:00 pm", false), 630},
		{"shortfall at grace boundary", day("8:00:00 am", "6:00:00 pm", false), 630},
		{"shortfall past grace", day("8:00:00 am", "5:59:00 pm", false), 599},
		{"large shortfall", day("8:00:00 am", "12:00:00 pm", false), 240},
		{"absent", DayBucket{}, 0},
		{"check-in only", day("8:00:00 am", "", false), 0},
		{"check-out only", day("", "6:30:00 pm", false), 0},
		{"inverted pair", day("6:30:00 pm", "8:00:00 am", false), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PayableMinutes(tc.b))
		})
	}
}

func TestPayableMinutesSunday(t *testing.T) {
	cases := []struct {
		name string
		b    DayBucket
		want float64
	}{
		{"half day met credits full day", day("8:00:00 am", "1:15:00 pm", true), 630},
		{"over half day still full day", day("8:00:00 am", "5:00:00 pm", true), 630},
		{"one minute short of half day", day("8:00:00 am", "1:14:00 pm", true), 314},
		{"no grace window on sunday", day("8:00:00 am", "12:59:00 pm", true), 299},
		{"absent sunday", DayBucket{Sunday: true}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PayableMinutes(tc.b))
		})
	}
}

func TestPayableMinutesSecondPrecision(t *testing.T) {
	// Seconds shift the worked fraction; the result is rounded to two
	// decimals before the policy applies.
	b := day("8:00:30 am", "12:00:00 pm", false)
	assert.Equal(t, 239.5, PayableMinutes(b))
}
