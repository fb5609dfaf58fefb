package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"attendance-backend/internal/database"
	"attendance-backend/internal/models"
	"attendance-backend/internal/report"
)

// DashboardHandler serves the admin-panel overview numbers.
type DashboardHandler struct {
	db database.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db database.Service) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Metrics handles GET /api/dashboard/metrics.
// "Today" and "yesterday" are the server's fixed reporting timezone,
// the same calendar the ingestion path stamps onto logs.
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(reportLocation)
	today := report.DateKey(now)
	yesterday := report.DateKey(now.AddDate(0, 0, -1))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var m models.DashboardMetrics
	err := pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM employees),
			(SELECT count(*) FROM attendance_logs WHERE log_date = $1),
			(SELECT count(DISTINCT employee_id) FROM attendance_logs
				WHERE log_date = $1 AND status = $3),
			(SELECT count(*) FROM (
				SELECT employee_id FROM attendance_logs
				WHERE log_date = $2
				GROUP BY employee_id
				HAVING count(*) FILTER (WHERE status = $3) > 0
				   AND count(*) FILTER (WHERE status = $4) = 0
			) incomplete)
	`, today, yesterday, report.StatusCheckIn, report.StatusCheckOut,
	).Scan(&m.TotalEmployees, &m.LogsToday, &m.PresentToday, &m.IncompleteYesterday)
	if err != nil {
		log.Printf("Error fetching dashboard metrics: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{"data": m})
}
