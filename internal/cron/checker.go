// Package cron runs the background maintenance jobs.
package cron

import (
	"context"
	"log"
	"time"

	"attendance-backend/internal/database"
	"attendance-backend/internal/report"
)

var reportLocation = time.FixedZone("IST", 5*3600+1800)

// StartIncompleteDayChecker launches a background goroutine that runs
// once immediately and then every 24 hours, flagging employees who
// badged in yesterday but never badged out. The flags land in the
// activity log so corrections happen before month-end reporting turns
// those days into zero payable minutes.
func StartIncompleteDayChecker(db database.Service) {
	go func() {
		runCycle(db)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			runCycle(db)
		}
	}()

	log.Println("[cron] incomplete-day checker started - runs every 24h")
}

func runCycle(db database.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool := db.GetPool()
	yesterday := report.DateKey(time.Now().In(reportLocation).AddDate(0, 0, -1))

	rows, err := pool.Query(ctx, `
		SELECT e.uid, e.name
		FROM employees e
		JOIN attendance_logs l ON l.employee_id = e.id
		WHERE l.log_date = $1
		GROUP BY e.id
		HAVING count(*) FILTER (WHERE l.status = $2) > 0
		   AND count(*) FILTER (WHERE l.status = $3) = 0
	`, yesterday, report.StatusCheckIn, report.StatusCheckOut)
	if err != nil {
		log.Printf("[cron] error querying incomplete days: %v", err)
		return
	}
	defer rows.Close()

	type incomplete struct{ UID, Name string }
	var found []incomplete
	for rows.Next() {
		var i incomplete
		if err := rows.Scan(&i.UID, &i.Name); err != nil {
			log.Printf("[cron] scan error: %v", err)
			continue
		}
		found = append(found, i)
	}

	if len(found) == 0 {
		log.Printf("[cron] no incomplete days for %s", yesterday)
		return
	}

	flagged := 0
	for _, emp := range found {
		// One flag per employee per day; reruns stay quiet.
		var exists bool
		_ = pool.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM activity_log
				WHERE action = 'flagged_incomplete_day'
				  AND entity_type = 'employee'
				  AND entity_id = $1
				  AND details->>'date' = $2
			)
		`, emp.UID, yesterday).Scan(&exists)
		if exists {
			continue
		}

		_, err := pool.Exec(ctx, `
			INSERT INTO activity_log (user_id, action, entity_type, entity_id, details)
			VALUES (NULL, 'flagged_incomplete_day', 'employee', $1,
				jsonb_build_object('date', $2::text, 'name', $3::text))
		`, emp.UID, yesterday, emp.Name)
		if err != nil {
			log.Printf("[cron] insert flag error: %v", err)
			continue
		}
		flagged++
	}

	log.Printf("[cron] incomplete-day check for %s complete - %d flagged of %d found",
		yesterday, flagged, len(found))
}
