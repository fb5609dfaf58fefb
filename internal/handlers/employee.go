package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"attendance-backend/internal/ctxkeys"
	"attendance-backend/internal/database"
	"attendance-backend/internal/models"
	"attendance-backend/internal/report"
)

// EmployeeHandler handles employee administration requests.
type EmployeeHandler struct {
	db database.Service
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(db database.Service) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

const employeeCols = `id, uid, name, salary, created_at, updated_at`

func scanEmployee(scanner interface {
	Scan(dest ...interface{}) error
}, emp *models.Employee) error {
	return scanner.Scan(
		&emp.ID, &emp.UID, &emp.Name, &emp.Salary,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
}

// List handles GET /api/employees: all badge holders, ordered by name.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM employees ORDER BY name ASC
	`, employeeCols))
	if err != nil {
		log.Printf("Error fetching employees: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var emp models.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			log.Printf("Error scanning employee: %v", err)
			continue
		}
		employees = append(employees, emp)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  employees,
		"total": len(employees),
	})
}

// Create handles POST /api/employees: registers a badge holder.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var emp models.Employee
	err := scanEmployee(pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO employees (uid, name, salary)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, employeeCols), models.NormalizeUID(req.UID), strings.TrimSpace(req.Name), req.Salary), &emp)
	if err != nil {
		if isDuplicateKeyError(err) {
			JSONError(w, http.StatusConflict, "An employee with this uid already exists")
			return
		}
		log.Printf("Error creating employee: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	userID, _ := r.Context().Value(ctxkeys.UserID).(string)
	logActivity(pool, userID, "created", "employee", emp.UID, map[string]interface{}{
		"name": emp.Name,
	})

	JSON(w, http.StatusCreated, map[string]interface{}{
		"data":    emp,
		"message": "Employee created successfully",
	})
}

// Update handles PUT /api/employees/{uid}: name and salary only.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid := models.NormalizeUID(chi.URLParam(r, "uid"))
	if uid == "" {
		JSONError(w, http.StatusBadRequest, "Employee uid is required")
		return
	}

	var req models.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	set := []string{"updated_at = NOW()"}
	args := []interface{}{uid}
	argIdx := 2

	if req.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Name))
		argIdx++
	}
	if req.Salary != nil {
		set = append(set, fmt.Sprintf("salary = $%d", argIdx))
		args = append(args, *req.Salary)
		argIdx++
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var emp models.Employee
	err := scanEmployee(pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE employees SET %s WHERE uid = $1
		RETURNING %s
	`, strings.Join(set, ", "), employeeCols), args...), &emp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			JSONError(w, http.StatusNotFound, "Employee not found")
			return
		}
		log.Printf("Error updating employee %s: %v", uid, err)
		JSONError(w, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	userID, _ := r.Context().Value(ctxkeys.UserID).(string)
	logActivity(pool, userID, "updated", "employee", uid, map[string]interface{}{
		"name": emp.Name, "salary": emp.Salary,
	})

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":    emp,
		"message": "Employee updated successfully",
	})
}

// Logs handles GET /api/employees/{uid}/logs: the employee's log
// history, optionally filtered to one date with ?date=dd/mm/yyyy.
func (h *EmployeeHandler) Logs(w http.ResponseWriter, r *http.Request) {
	uid := models.NormalizeUID(chi.URLParam(r, "uid"))
	if uid == "" {
		JSONError(w, http.StatusBadRequest, "Employee uid is required")
		return
	}

	where := "WHERE e.uid = $1"
	args := []interface{}{uid}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, ok := report.NormalizeDate(raw)
		if !ok {
			JSONError(w, http.StatusBadRequest, "Invalid date. Expected dd/mm/yyyy")
			return
		}
		where += " AND l.log_date = $2"
		args = append(args, date)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.log_date, l.log_time, l.status, l.weekday, l.created_at
		FROM attendance_logs l
		JOIN employees e ON e.id = l.employee_id
		%s
		ORDER BY l.created_at ASC
	`, where), args...)
	if err != nil {
		log.Printf("Error fetching logs for %s: %v", uid, err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}
	defer rows.Close()

	logs := []models.AttendanceLog{}
	for rows.Next() {
		var l models.AttendanceLog
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Time, &l.Status, &l.Weekday, &l.CreatedAt); err != nil {
			log.Printf("Error scanning log: %v", err)
			continue
		}
		logs = append(logs, l)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  logs,
		"total": len(logs),
	})
}

// ReplaceLogs handles PUT /api/employees/{uid}/logs: replaces every
// log of one calendar date in a single transaction, the correction path
// for missed or duplicated badge events.
func (h *EmployeeHandler) ReplaceLogs(w http.ResponseWriter, r *http.Request) {
	uid := models.NormalizeUID(chi.URLParam(r, "uid"))
	if uid == "" {
		JSONError(w, http.StatusBadRequest, "Employee uid is required")
		return
	}

	var req models.ReplaceLogsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	date, ok := report.NormalizeDate(req.Date)
	if !ok {
		JSONError(w, http.StatusBadRequest, "Invalid date. Expected dd/mm/yyyy")
		return
	}
	for i, l := range req.Logs {
		if _, ok := report.ParseClock(l.Time); !ok {
			JSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid time in logs[%d]", i))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var employeeID string
	if err := pool.QueryRow(ctx, `SELECT id FROM employees WHERE uid = $1`, uid).Scan(&employeeID); err != nil {
		JSONError(w, http.StatusNotFound, "Employee not found")
		return
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Printf("Error starting transaction: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to update logs")
		return
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM attendance_logs WHERE employee_id = $1 AND log_date = $2
	`, employeeID, date); err != nil {
		log.Printf("Error clearing logs for %s on %s: %v", uid, date, err)
		JSONError(w, http.StatusInternalServerError, "Failed to update logs")
		return
	}

	weekday := weekdayOf(date)
	for _, l := range req.Logs {
		clock, _ := report.ParseClock(l.Time)
		if _, err := tx.Exec(ctx, `
			INSERT INTO attendance_logs (employee_id, log_date, log_time, status, weekday)
			VALUES ($1, $2, $3, $4, $5)
		`, employeeID, date, clock.String(), l.Status, weekday); err != nil {
			log.Printf("Error inserting corrected log for %s: %v", uid, err)
			JSONError(w, http.StatusInternalServerError, "Failed to update logs")
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing log replacement: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to update logs")
		return
	}

	userID, _ := r.Context().Value(ctxkeys.UserID).(string)
	logActivity(pool, userID, "replaced_logs", "employee", uid, map[string]interface{}{
		"date": date, "count": len(req.Logs),
	})

	JSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Replaced logs for %s with %d entries", date, len(req.Logs)),
	})
}

// Export handles GET /api/employees/export: CSV of all badge holders.
func (h *EmployeeHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT e.uid, e.name, e.salary, count(l.id)
		FROM employees e
		LEFT JOIN attendance_logs l ON l.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.uid ASC
	`)
	if err != nil {
		log.Printf("Error exporting employees: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to export")
		return
	}
	defer rows.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=employees.csv")

	fmt.Fprintln(w, "UID,Name,Salary,Log Count")

	for rows.Next() {
		var uid, name string
		var salary float64
		var logCount int64
		if err := rows.Scan(&uid, &name, &salary, &logCount); err != nil {
			continue
		}
		fmt.Fprintf(w, "%s,%s,%.2f,%d\n", csvEscape(uid), csvEscape(name), salary, logCount)
	}
}
