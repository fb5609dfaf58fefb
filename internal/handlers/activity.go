package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"attendance-backend/internal/database"
	"attendance-backend/internal/models"
)

// logActivity appends an audit-trail row. Failures are logged and
// swallowed: the audit trail must never fail the mutation it records.
func logActivity(pool *pgxpool.Pool, userID, action, entityType, entityID string, details map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var detailsJSON []byte
	if details != nil {
		detailsJSON, _ = json.Marshal(details)
	}

	var uid interface{}
	if userID != "" {
		uid = userID
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO activity_log (user_id, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)
	`, uid, action, entityType, entityID, detailsJSON)
	if err != nil {
		log.Printf("Failed to record activity %s/%s: %v", action, entityType, err)
	}
}

// ActivityHandler serves the audit trail.
type ActivityHandler struct {
	db database.Service
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(db database.Service) *ActivityHandler {
	return &ActivityHandler{db: db}
}

// List handles GET /api/activity: the 50 most recent entries.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT a.id, a.user_id, u.name, a.action, a.entity_type, a.entity_id,
			a.details::text, a.created_at::text
		FROM activity_log a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
		LIMIT 50
	`)
	if err != nil {
		log.Printf("Error fetching activity log: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch activity log")
		return
	}
	defer rows.Close()

	entries := []models.ActivityEntry{}
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.UserName, &e.Action, &e.EntityType, &e.EntityID,
			&e.Details, &e.CreatedAt,
		); err != nil {
			log.Printf("Error scanning activity entry: %v", err)
			continue
		}
		entries = append(entries, e)
	}

	JSON(w, http.StatusOK, map[string]interface{}{"data": entries})
}
