// Package report builds the monthly attendance and salary report: it
// partitions an employee's raw badge logs into day buckets, applies the
// payable-minutes policy, projects the per-employee financials, and
// assembles everything into an in-memory structure ready for rendering.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed as seconds since midnight.
// Badge readers report seconds, and a check-in/check-out pair that
// differs only in seconds still changes the worked-minutes fraction.
type Clock int

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})(?:\s*(am|pm))?$`)

// ParseClock parses a device time string ("h:mm:ss am/pm", or the
// 24-hour form without a suffix) into a Clock. Malformed input returns
// ok=false and never an error: a bad time on one log must not abort a
// whole report, the entry is simply treated as absent.
func ParseClock(raw string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return 0, false
	}

	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])

	if mm > 59 || ss > 59 {
		return 0, false
	}

	switch m[4] {
	case "am", "pm":
		// 12-hour clock: hour must be 1-12, 12am is midnight, 12pm stays noon
		if hh < 1 || hh > 12 {
			return 0, false
		}
		if m[4] == "pm" && hh != 12 {
			hh += 12
		}
		if m[4] == "am" && hh == 12 {
			hh = 0
		}
	default:
		if hh > 23 {
			return 0, false
		}
	}

	return Clock(hh*3600 + mm*60 + ss), true
}

// Minutes returns the clock as fractional minutes since midnight.
func (c Clock) Minutes() float64 {
	return float64(c) / 60
}

// String formats the clock back into the canonical "h:mm:ss am/pm" form
// used in the spreadsheet grid.
func (c Clock) String() string {
	hh := int(c) / 3600
	mm := int(c) % 3600 / 60
	ss := int(c) % 60

	suffix := "am"
	if hh >= 12 {
		suffix = "pm"
	}
	display := hh % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d:%02d %s", display, mm, ss, suffix)
}

// NormalizeDate canonicalizes a calendar date string to "dd/mm/yyyy".
// Accepted shapes are d/m/yyyy and d-m-yyyy (day first) and the ISO
// yyyy-m-d / yyyy/m/d (year first). Anything else returns ok=false.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "-"
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return "", false
	}

	var dayStr, monthStr, yearStr string
	if len(parts[0]) == 4 {
		yearStr, monthStr, dayStr = parts[0], parts[1], parts[2]
	} else {
		dayStr, monthStr, yearStr = parts[0], parts[1], parts[2]
	}

	day, err1 := strconv.Atoi(dayStr)
	month, err2 := strconv.Atoi(monthStr)
	year, err3 := strconv.Atoi(yearStr)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1000 || year > 9999 {
		return "", false
	}

	return fmt.Sprintf("%02d/%02d/%04d", day, month, year), true
}

// DateKey formats a calendar day as its "dd/mm/yyyy" bucket key.
func DateKey(t time.Time) string {
	return t.Format("02/01/2006")
}

// MonthDates returns every calendar day of the given month in ascending
// order. Days are anchored at midnight UTC so weekday computation never
// drifts across a timezone boundary.
func MonthDates(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var dates []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
