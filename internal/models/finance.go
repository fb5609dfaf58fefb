package models

import "time"

// FinanceProfile holds the static per-employee financial parameters
// consumed by the monthly report. Missing profile means all zeros; the
// report never fails on an absent row.
type FinanceProfile struct {
	EmployeeUID     string    `json:"employeeUid"`
	Allowance       float64   `json:"allowance"`
	AdvancePaid     float64   `json:"advancePaid"`
	Loan            float64   `json:"loan"`
	InterestPercent float64   `json:"interestPercent"`
	Premium         float64   `json:"premium"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpsertFinanceRequest sets an employee's finance parameters.
type UpsertFinanceRequest struct {
	Allowance       float64 `json:"allowance"`
	AdvancePaid     float64 `json:"advancePaid"`
	Loan            float64 `json:"loan"`
	InterestPercent float64 `json:"interestPercent"`
	Premium         float64 `json:"premium"`
}

// Validate rejects structurally impossible values. Zero is always fine.
func (r *UpsertFinanceRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Allowance < 0 {
		errors["allowance"] = "Allowance cannot be negative"
	}
	if r.AdvancePaid < 0 {
		errors["advancePaid"] = "Advance paid cannot be negative"
	}
	if r.Loan < 0 {
		errors["loan"] = "Loan cannot be negative"
	}
	if r.InterestPercent < 0 || r.InterestPercent > 100 {
		errors["interestPercent"] = "Interest percent must be between 0 and 100"
	}
	if r.Premium < 0 {
		errors["premium"] = "Premium cannot be negative"
	}

	return errors
}
