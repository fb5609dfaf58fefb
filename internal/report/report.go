package report

import (
	"sort"
	"time"
)

// Month/year bounds accepted by report endpoints. Validation is owned
// by the HTTP caller; Build assumes its inputs already passed.
const (
	MinYear = 2000
	MaxYear = 2100
)

// ValidPeriod reports whether a month/year pair is inside the accepted
// reporting range.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= MinYear && year <= MaxYear
}

// EmployeeReport is one employee's column of the assembled report: the
// per-day buckets for the month plus the resolved financials.
type EmployeeReport struct {
	UID     string
	Name    string
	Days    []DayBucket
	Finance FinancialProfile
}

// Report is the structured output of one report run, ready to be
// rendered into any tabular format. It owns all derived data; nothing
// in it outlives serialization.
type Report struct {
	Month       time.Month
	Year        int
	Dates       []time.Time
	GeneratedAt time.Time
	Employees   []EmployeeReport
}

// Build assembles the full monthly report. Employees are ordered by
// uid ascending. Per-day minutes resolve first, then the per-employee
// aggregates, then the financial projection; each stage consumes only
// already-resolved values from the previous one. Zero employees or
// zero logs produce a valid, zero-filled report.
func Build(month time.Month, year int, employees []EmployeeRecord, cfg FinanceConfig) *Report {
	dates := MonthDates(year, month)

	rep := &Report{
		Month:       month,
		Year:        year,
		Dates:       dates,
		GeneratedAt: time.Now(),
	}

	sorted := make([]EmployeeRecord, len(employees))
	copy(sorted, employees)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].UID < sorted[j].UID })

	for _, emp := range sorted {
		days := PartitionMonth(emp.Logs, dates)

		presence := 0
		totalMinutes := 0.0
		for _, d := range days {
			// Any non-zero payable minutes count as presence, so an
			// incomplete day (check-in only) stays an absence.
			if d.Minutes > 0 {
				presence++
			}
			totalMinutes += d.Minutes
		}

		rep.Employees = append(rep.Employees, EmployeeReport{
			UID:     emp.UID,
			Name:    emp.Name,
			Days:    days,
			Finance: Project(emp.Salary, len(dates), presence, totalMinutes, cfg.Lookup(emp.UID)),
		})
	}

	return rep
}
