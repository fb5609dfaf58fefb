package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod(1, 2025))
	assert.True(t, ValidPeriod(12, MinYear))
	assert.True(t, ValidPeriod(6, MaxYear))
	assert.False(t, ValidPeriod(0, 2025))
	assert.False(t, ValidPeriod(13, 2025))
	assert.False(t, ValidPeriod(6, MinYear-1))
	assert.False(t, ValidPeriod(6, MaxYear+1))
}

func TestBuildOrdersEmployeesByUID(t *testing.T) {
	employees := []EmployeeRecord{
		{UID: "ZZ9", Name: "Last"},
		{UID: "AA1", Name: "First"},
		{UID: "MM5", Name: "Middle"},
	}

	rep := Build(time.March, 2025, employees, FinanceConfig{})
	require.Len(t, rep.Employees, 3)
	assert.Equal(t, "AA1", rep.Employees[0].UID)
	assert.Equal(t, "MM5", rep.Employees[1].UID)
	assert.Equal(t, "ZZ9", rep.Employees[2].UID)

	// Input slice must be left untouched.
	assert.Equal(t, "ZZ9", employees[0].UID)
}

func TestBuildAggregates(t *testing.T) {
	employees := []EmployeeRecord{{
		UID:    "EMP01",
		Name:   "Asha",
		Salary: 31000,
		Logs: []LogEntry{
			{Date: "03/03/2025", Time: "8:00:00 am", Status: StatusCheckIn},
			{Date: "03/03/2025", Time: "6:30:00 pm", Status: StatusCheckOut},
			{Date: "04/03/2025", Time: "8:00:00 am", Status: StatusCheckIn},
			{Date: "04/03/2025", Time: "12:00:00 pm", Status: StatusCheckOut},
			// Check-in only: contributes nothing, day stays an absence.
			{Date: "05/03/2025", Time: "8:00:00 am", Status: StatusCheckIn},
		},
	}}

	rep := Build(time.March, 2025, employees, FinanceConfig{})
	require.Len(t, rep.Employees, 1)
	emp := rep.Employees[0]

	require.Len(t, emp.Days, 31)
	assert.Equal(t, 31, emp.Finance.TotalDays)
	assert.Equal(t, 2, emp.Finance.PresenceDays)
	assert.Equal(t, 29, emp.Finance.AbsenceDays)
	assert.Equal(t, 2, emp.Finance.PayableDays)
	assert.Equal(t, 630.0+240.0, emp.Finance.TotalMinutes)
}

func TestBuildEmptyInputs(t *testing.T) {
	rep := Build(time.February, 2024, nil, FinanceConfig{})
	assert.Len(t, rep.Dates, 29)
	assert.Empty(t, rep.Employees)
	assert.False(t, rep.GeneratedAt.IsZero())
}

func TestBuildAppliesFinanceOverrides(t *testing.T) {
	cfg := FinanceConfig{
		Overrides: map[string]FinanceParams{
			"EMP01": {Premium: dec(750)},
		},
	}
	employees := []EmployeeRecord{
		{UID: "EMP01", Salary: 30000},
		{UID: "EMP02", Salary: 30000},
	}

	rep := Build(time.March, 2025, employees, cfg)
	assert.True(t, rep.Employees[0].Finance.Premium.Equal(dec(750)))
	assert.True(t, rep.Employees[1].Finance.Premium.IsZero())
}
