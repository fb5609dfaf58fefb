package report

import "time"

// Recognized status tokens on attendance logs. Devices may also send
// looser presence markers ("online"/"offline"); those are kept on the
// record but never counted toward worked minutes.
const (
	StatusCheckIn  = "Check-IN"
	StatusCheckOut = "Check-OUT"
)

// LogEntry is one attendance event as stored for an employee.
type LogEntry struct {
	Date   string // canonical dd/mm/yyyy, but may arrive malformed
	Time   string // h:mm:ss am/pm or 24-hour
	Status string
}

// EmployeeRecord is the read-only snapshot of one employee used as
// report input: identifier, display name, monthly salary and the full
// unordered log history.
type EmployeeRecord struct {
	UID    string
	Name   string
	Salary float64
	Logs   []LogEntry
}

// DayBucket holds everything the report needs about one employee-day:
// the raw logs whose date matched, the earliest check-in and latest
// check-out instants, and the payable minutes once computed.
type DayBucket struct {
	Date        time.Time
	Logs        []LogEntry
	CheckIn     Clock
	HasCheckIn  bool
	CheckOut    Clock
	HasCheckOut bool
	Sunday      bool
	Minutes     float64
}

// PartitionMonth groups an employee's logs by calendar day for the
// given month dates. Every log whose normalized date matches a month
// day lands in exactly one bucket; logs outside the month (or with an
// unparsable date) are excluded entirely. Within a bucket only logs
// with a recognized status and a parsable time contribute to the
// check-in/check-out instants.
func PartitionMonth(logs []LogEntry, dates []time.Time) []DayBucket {
	byKey := make(map[string]int, len(dates))
	buckets := make([]DayBucket, len(dates))
	for i, d := range dates {
		byKey[DateKey(d)] = i
		buckets[i] = DayBucket{Date: d, Sunday: d.Weekday() == time.Sunday}
	}

	for _, l := range logs {
		key, ok := NormalizeDate(l.Date)
		if !ok {
			continue
		}
		i, ok := byKey[key]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Logs = append(b.Logs, l)

		c, ok := ParseClock(l.Time)
		if !ok {
			continue
		}
		switch l.Status {
		case StatusCheckIn:
			if !b.HasCheckIn || c < b.CheckIn {
				b.CheckIn = c
				b.HasCheckIn = true
			}
		case StatusCheckOut:
			if !b.HasCheckOut || c > b.CheckOut {
				b.CheckOut = c
				b.HasCheckOut = true
			}
		}
	}

	for i := range buckets {
		buckets[i].Minutes = PayableMinutes(buckets[i])
	}
	return buckets
}
