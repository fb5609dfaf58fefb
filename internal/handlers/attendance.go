package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"attendance-backend/internal/database"
	"attendance-backend/internal/models"
	"attendance-backend/internal/report"
)

// reportLocation is the fixed timezone every device timestamp is
// normalized into. Readers in the field have no reliable local clock
// configuration, so the server owns the calendar.
var reportLocation = time.FixedZone("IST", 5*3600+1800)

// AttendanceHandler handles badge-reader ingestion requests.
type AttendanceHandler struct {
	db database.Service
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(db database.Service) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

// Log handles POST /api/attendance/log: one check-in/check-out event
// from a badge reader. The reported uid is normalized and resolved to
// an employee; the timestamp is split into the canonical date and time
// strings the report core consumes.
func (h *AttendanceHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req models.LogAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	uid := models.NormalizeUID(req.UID)
	if uid == "" || strings.TrimSpace(req.Timestamp) == "" {
		JSONError(w, http.StatusBadRequest, "uid and timestamp are required")
		return
	}

	date, clock, ok := splitTimestamp(req.Timestamp)
	if !ok {
		JSONError(w, http.StatusBadRequest, "Unrecognized timestamp format")
		return
	}

	status := req.Status
	if status == "" {
		status = "offline"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var entry models.AttendanceLog
	err := pool.QueryRow(ctx, `
		INSERT INTO attendance_logs (employee_id, log_date, log_time, status, weekday)
		SELECT id, $2, $3, $4, $5 FROM employees WHERE uid = $1
		RETURNING id, employee_id, log_date, log_time, status, weekday, created_at
	`, uid, date, clock.String(), status, weekdayOf(date),
	).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Time,
		&entry.Status, &entry.Weekday, &entry.CreatedAt,
	)
	if err != nil {
		// No row inserted means the uid is unknown; anything else is a
		// database failure.
		if errors.Is(err, pgx.ErrNoRows) {
			JSONError(w, http.StatusNotFound, "Unknown badge uid")
			return
		}
		log.Printf("Error inserting attendance log for %s: %v", uid, err)
		JSONError(w, http.StatusInternalServerError, "Failed to record attendance")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Attendance logged successfully",
		"data":    entry,
	})
}

// List handles GET /api/attendance/logs: the most recent raw events,
// used by field technicians to verify a reader is alive.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT l.id, e.uid, l.log_date, l.log_time, l.status, l.weekday, l.created_at
		FROM attendance_logs l
		JOIN employees e ON e.id = l.employee_id
		ORDER BY l.created_at DESC
		LIMIT 100
	`)
	if err != nil {
		log.Printf("Error fetching attendance logs: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}
	defer rows.Close()

	type rawLog struct {
		ID        int64     `json:"id"`
		UID       string    `json:"uid"`
		Date      string    `json:"date"`
		Time      string    `json:"time"`
		Status    string    `json:"status"`
		Weekday   string    `json:"weekday"`
		CreatedAt time.Time `json:"createdAt"`
	}

	logs := []rawLog{}
	for rows.Next() {
		var l rawLog
		if err := rows.Scan(&l.ID, &l.UID, &l.Date, &l.Time, &l.Status, &l.Weekday, &l.CreatedAt); err != nil {
			log.Printf("Error scanning attendance log: %v", err)
			continue
		}
		logs = append(logs, l)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(logs),
		"data":    logs,
	})
}

// splitTimestamp normalizes a device timestamp into the canonical
// (dd/mm/yyyy, Clock) pair. Accepted shapes: unix seconds, or a date
// and time separated by whitespace (an optional comma after the date is
// tolerated, some firmware builds send one).
func splitTimestamp(ts string) (string, report.Clock, bool) {
	s := strings.TrimSpace(ts)

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.Unix(secs, 0).In(reportLocation)
		clock, _ := report.ParseClock(t.Format("15:04:05"))
		return t.Format("02/01/2006"), clock, true
	}

	fields := strings.Fields(strings.Replace(s, ",", " ", 1))
	if len(fields) < 2 {
		return "", 0, false
	}

	date, ok := report.NormalizeDate(fields[0])
	if !ok {
		return "", 0, false
	}
	clock, ok := report.ParseClock(strings.Join(fields[1:], " "))
	if !ok {
		return "", 0, false
	}
	return date, clock, true
}

// weekdayOf returns the weekday name for a canonical dd/mm/yyyy date.
func weekdayOf(date string) string {
	t, err := time.Parse("02/01/2006", date)
	if err != nil {
		return "Unknown"
	}
	return t.Weekday().String()
}
