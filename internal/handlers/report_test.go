package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyRejectsInvalidPeriod(t *testing.T) {
	// Validation runs before any database access, so no service is needed.
	h := NewReportHandler(nil, "Co", "Report")

	cases := []string{
		"/api/attendance/report",
		"/api/attendance/report?month=0&year=2025",
		"/api/attendance/report?month=13&year=2025",
		"/api/attendance/report?month=6&year=1999",
		"/api/attendance/report?month=6&year=2101",
		"/api/attendance/report?month=abc&year=2025",
	}

	for _, url := range cases {
		rec := httptest.NewRecorder()
		h.Monthly(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
	}
}
