package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"

	"attendance-backend/internal/config"
	"attendance-backend/internal/cron"
	"attendance-backend/internal/database"
	"attendance-backend/internal/handlers"
	"attendance-backend/internal/middleware"
)

func main() {
	// 1. Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to PostgreSQL
	db := database.New(&cfg.DB)
	defer db.Close()

	// 3. Set up router with global middleware
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.Env),
	)

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level: slog.LevelInfo,
	}))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.DeviceTokenHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 4. Initialize handlers with their dependencies
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	financeHandler := handlers.NewFinanceHandler(db)
	reportHandler := handlers.NewReportHandler(db, cfg.CompanyName, cfg.ReportTitle)
	dashboardHandler := handlers.NewDashboardHandler(db)
	activityHandler := handlers.NewActivityHandler(db)

	// Start background jobs
	cron.StartIncompleteDayChecker(db)

	// 5. Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Attendance Ingestion API"))
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(db.Health())
	})

	// Login is rate limited to slow brute forcing
	r.With(middleware.RateLimit(rate.Every(12*time.Second), 5)).
		Post("/api/auth/register", authHandler.Register)
	r.With(middleware.RateLimit(rate.Every(12*time.Second), 5)).
		Post("/api/auth/login", authHandler.Login)

	// 6. Device routes (shared-secret token; generous burst for
	// readers retrying on flaky Wi-Fi)
	r.Group(func(r chi.Router) {
		r.Use(middleware.DeviceToken(cfg.DeviceSecret, cfg.ServerSecret))
		r.Use(middleware.RateLimit(rate.Limit(5), 20))

		r.Post("/api/attendance/log", attendanceHandler.Log)
		r.Get("/api/attendance/logs", attendanceHandler.List)
	})

	// 7. Admin-panel routes (require valid JWT)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Get("/api/auth/me", authHandler.GetMe)

		r.Get("/api/dashboard/metrics", dashboardHandler.Metrics)
		r.Get("/api/activity", activityHandler.List)

		r.Get("/api/employees", employeeHandler.List)
		r.Get("/api/employees/export", employeeHandler.Export)
		r.Get("/api/employees/{uid}/logs", employeeHandler.Logs)
		r.Get("/api/employees/{uid}/finance", financeHandler.Get)

		r.Get("/api/attendance/report", reportHandler.Monthly)

		// Write operations restricted to admin role
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMinRole("admin"))

			r.Post("/api/employees", employeeHandler.Create)
			r.Put("/api/employees/{uid}", employeeHandler.Update)
			r.Put("/api/employees/{uid}/logs", employeeHandler.ReplaceLogs)
			r.Put("/api/employees/{uid}/finance", financeHandler.Upsert)
		})
	})

	// 8. Start server with graceful shutdown
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-done
	log.Println("Server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
