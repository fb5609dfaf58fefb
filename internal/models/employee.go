package models

import (
	"strings"
	"time"
)

// Employee represents a badge-holder record in the database.
// UID is the identifier reported by the badge reader, stored normalized
// (trimmed, uppercased) so device-side casing never splits a history.
type Employee struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Salary    float64   `json:"salary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AttendanceLog is one event pushed by a badge reader. Date and time
// stay as the canonicalized strings the report core consumes; a row
// that slipped in malformed is retained here and skipped downstream.
type AttendanceLog struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       string    `json:"date"` // dd/mm/yyyy
	Time       string    `json:"time"` // h:mm:ss am/pm
	Status     string    `json:"status"`
	Weekday    string    `json:"weekday"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NormalizeUID canonicalizes a device-reported identifier.
func NormalizeUID(uid string) string {
	return strings.ToUpper(strings.TrimSpace(uid))
}

// LogAttendanceRequest is the device ingestion payload. Timestamp is
// either "dd/mm/yyyy h:mm:ss am" or unix seconds as a decimal string.
type LogAttendanceRequest struct {
	UID       string `json:"uid"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

// CreateEmployeeRequest holds the fields needed to register a badge holder.
type CreateEmployeeRequest struct {
	UID    string  `json:"uid"`
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
}

// Validate checks if the create request contains valid data.
func (r *CreateEmployeeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if NormalizeUID(r.UID) == "" {
		errors["uid"] = "Badge UID is required"
	}
	if name := strings.TrimSpace(r.Name); len(name) < 2 || len(name) > 100 {
		errors["name"] = "Name must be between 2 and 100 characters"
	}
	if r.Salary <= 0 {
		errors["salary"] = "Salary must be a positive number"
	}

	return errors
}

// UpdateEmployeeRequest holds the fields that can be updated.
type UpdateEmployeeRequest struct {
	Name   *string  `json:"name,omitempty"`
	Salary *float64 `json:"salary,omitempty"`
}

// Validate checks the update request. Both fields are optional but a
// provided value must still be usable.
func (r *UpdateEmployeeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "Employee name is required"
	}
	if r.Salary != nil && *r.Salary <= 0 {
		errors["salary"] = "Salary must be a valid positive number"
	}

	return errors
}

// ReplaceLogsRequest swaps out every log of one calendar date for an
// employee, the manual correction path for missed or double badges.
type ReplaceLogsRequest struct {
	Date string          `json:"date"` // dd/mm/yyyy
	Logs []LogCorrection `json:"logs"`
}

// LogCorrection is one corrected entry within ReplaceLogsRequest.
type LogCorrection struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}
