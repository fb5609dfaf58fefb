package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"attendance-backend/internal/ctxkeys"
	"attendance-backend/internal/database"
	"attendance-backend/internal/models"
)

// FinanceHandler manages the per-employee financial parameters that
// feed the salary section of the monthly report.
type FinanceHandler struct {
	db database.Service
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(db database.Service) *FinanceHandler {
	return &FinanceHandler{db: db}
}

// Get handles GET /api/employees/{uid}/finance. An employee without a
// stored profile gets the all-zero default, mirroring what the report
// would use.
func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid := models.NormalizeUID(chi.URLParam(r, "uid"))
	if uid == "" {
		JSONError(w, http.StatusBadRequest, "Employee uid is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE uid = $1)`, uid).Scan(&exists); err != nil || !exists {
		JSONError(w, http.StatusNotFound, "Employee not found")
		return
	}

	profile := models.FinanceProfile{EmployeeUID: uid}
	err := pool.QueryRow(ctx, `
		SELECT employee_uid, allowance, advance_paid, loan, interest_percent, premium, updated_at
		FROM finance_profiles WHERE employee_uid = $1
	`, uid).Scan(
		&profile.EmployeeUID, &profile.Allowance, &profile.AdvancePaid,
		&profile.Loan, &profile.InterestPercent, &profile.Premium, &profile.UpdatedAt,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("Error fetching finance profile for %s: %v", uid, err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch finance profile")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{"data": profile})
}

// Upsert handles PUT /api/employees/{uid}/finance.
func (h *FinanceHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	uid := models.NormalizeUID(chi.URLParam(r, "uid"))
	if uid == "" {
		JSONError(w, http.StatusBadRequest, "Employee uid is required")
		return
	}

	var req models.UpsertFinanceRequest
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

	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE uid = $1)`, uid).Scan(&exists); err != nil || !exists {
		JSONError(w, http.StatusNotFound, "Employee not found")
		return
	}

	var profile models.FinanceProfile
	err := pool.QueryRow(ctx, `
		INSERT INTO finance_profiles (employee_uid, allowance, advance_paid, loan, interest_percent, premium)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_uid) DO UPDATE SET
			allowance = EXCLUDED.allowance,
			advance_paid = EXCLUDED.advance_paid,
			loan = EXCLUDED.loan,
			interest_percent = EXCLUDED.interest_percent,
			premium = EXCLUDED.premium,
			updated_at = NOW()
		RETURNING employee_uid, allowance, advance_paid, loan, interest_percent, premium, updated_at
	`, uid, req.Allowance, req.AdvancePaid, req.Loan, req.InterestPercent, req.Premium,
	).Scan(
		&profile.EmployeeUID, &profile.Allowance, &profile.AdvancePaid,
		&profile.Loan, &profile.InterestPercent, &profile.Premium, &profile.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error upserting finance profile for %s: %v", uid, err)
		JSONError(w, http.StatusInternalServerError, "Failed to save finance profile")
		return
	}

	userID, _ := r.Context().Value(ctxkeys.UserID).(string)
	logActivity(pool, userID, "updated", "finance_profile", uid, map[string]interface{}{
		"loan": req.Loan, "advancePaid": req.AdvancePaid,
	})

	JSON(w, http.StatusOK, map[string]interface{}{
		"data":    profile,
		"message": "Finance profile saved",
	})
}
