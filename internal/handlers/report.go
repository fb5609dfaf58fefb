package handlers

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"attendance-backend/internal/ctxkeys"
	"attendance-backend/internal/database"
	"attendance-backend/internal/report"
)

// ReportHandler generates the monthly attendance & salary workbook.
type ReportHandler struct {
	db       database.Service
	renderer report.Renderer
}

// NewReportHandler creates a ReportHandler with the given branding.
func NewReportHandler(db database.Service, companyName, title string) *ReportHandler {
	return &ReportHandler{
		db:       db,
		renderer: report.Renderer{CompanyName: companyName, Title: title},
	}
}

// Monthly handles GET /api/attendance/report?month=X&year=Y.
// Month/year validation happens here, before any data is read; the
// report core assumes a valid period. The workbook is rendered into a
// buffer first so a failure mid-render never sends a half workbook.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))

	if !report.ValidPeriod(month, year) {
		JSONError(w, http.StatusBadRequest,
			"Invalid month/year. Example: /api/attendance/report?month=1&year=2026")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	employees, err := h.loadSnapshot(ctx)
	if err != nil {
		log.Printf("Error loading report snapshot: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to load report data")
		return
	}

	financeCfg, err := h.loadFinanceConfig(ctx)
	if err != nil {
		log.Printf("Error loading finance config: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to load report data")
		return
	}

	rep := report.Build(time.Month(month), year, employees, financeCfg)

	var buf bytes.Buffer
	if err := h.renderer.WriteXLSX(&buf, rep); err != nil {
		log.Printf("Error rendering report workbook: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	userID, _ := r.Context().Value(ctxkeys.UserID).(string)
	logActivity(h.db.GetPool(), userID, "generated", "report",
		strconv.Itoa(year)+"-"+strconv.Itoa(month), map[string]interface{}{
			"employees": len(rep.Employees),
		})

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		"attachment; filename=\""+report.Filename(time.Month(month), year)+"\"")
	w.Write(buf.Bytes())
}

// loadSnapshot reads the read-only employee snapshot a report run works
// on: every employee with their full log history, in one query.
func (h *ReportHandler) loadSnapshot(ctx context.Context) ([]report.EmployeeRecord, error) {
	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT e.uid, e.name, e.salary, l.log_date, l.log_time, l.status
		FROM employees e
		LEFT JOIN attendance_logs l ON l.employee_id = e.id
		ORDER BY e.uid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byUID := map[string]int{}
	var employees []report.EmployeeRecord

	for rows.Next() {
		var (
			uid, name              string
			salary                 float64
			logDate, logTime, stat *string
		)
		if err := rows.Scan(&uid, &name, &salary, &logDate, &logTime, &stat); err != nil {
			return nil, err
		}

		i, ok := byUID[uid]
		if !ok {
			i = len(employees)
			byUID[uid] = i
			employees = append(employees, report.EmployeeRecord{UID: uid, Name: name, Salary: salary})
		}
		if logDate != nil {
			employees[i].Logs = append(employees[i].Logs, report.LogEntry{
				Date:   *logDate,
				Time:   deref(logTime),
				Status: deref(stat),
			})
		}
	}

	return employees, rows.Err()
}

// loadFinanceConfig reads every finance profile into the injected
// config. The default stays all-zero: an employee without a profile
// earns plain salary with no deductions.
func (h *ReportHandler) loadFinanceConfig(ctx context.Context) (report.FinanceConfig, error) {
	cfg := report.FinanceConfig{Overrides: map[string]report.FinanceParams{}}

	rows, err := h.db.GetPool().Query(ctx, `
		SELECT employee_uid, allowance, advance_paid, loan, interest_percent, premium
		FROM finance_profiles
	`)
	if err != nil {
		return cfg, err
	}
	defer rows.Close()

	for rows.Next() {
		var uid string
		var allowance, advance, loan, interest, premium float64
		if err := rows.Scan(&uid, &allowance, &advance, &loan, &interest, &premium); err != nil {
			return cfg, err
		}
		cfg.Overrides[uid] = report.FinanceParams{
			Allowance:       decimal.NewFromFloat(allowance),
			AdvancePaid:     decimal.NewFromFloat(advance),
			Loan:            decimal.NewFromFloat(loan),
			InterestPercent: decimal.NewFromFloat(interest),
			Premium:         decimal.NewFromFloat(premium),
		}
	}

	return cfg, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
