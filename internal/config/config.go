// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port        string
	Env         string
	DB          DBConfig
	JWTSecret   string
	CORSOrigins []string

	// Shared-secret halves for the badge-reader token. The expected
	// header value is derived from both, never stored directly.
	DeviceSecret string
	ServerSecret string

	// Report branding
	CompanyName string
	ReportTitle string
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// URL returns the PostgreSQL connection string.
func (c *DBConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Load reads configuration from the environment. A missing .env file is
// fine in production where variables come from the platform.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "attendance"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DeviceSecret: os.Getenv("DEVICE_SECRET"),
		ServerSecret: os.Getenv("SERVER_SECRET"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		CompanyName:  getEnv("COMPANY_NAME", "Shreeji Remedies"),
		ReportTitle:  getEnv("REPORT_TITLE", "Monthly Attendance & Salary Report"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DeviceSecret == "" || cfg.ServerSecret == "" {
		return nil, fmt.Errorf("DEVICE_SECRET and SERVER_SECRET are required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
