package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"amcbackend/analytics"

	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret     string
	CORSOrigins   []string
	SummaryPolicy analytics.SummaryPolicy

	SnapshotCron    string
	SnapshotSiteIDs []int
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SnapshotCron: getEnv("SNAPSHOT_CRON", "30 0 * * *"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS",
			"http://localhost:3000,http://localhost:8080")),
	}

	portInt, err := strconv.Atoi(cfg.Port)
	if err != nil || portInt < 0 || portInt > 65535 {
		return nil, fmt.Errorf("invalid PORT %q: must be a number between 0 and 65535", cfg.Port)
	}

	cfg.SummaryPolicy, err = analytics.ParseSummaryPolicy(os.Getenv("COVERAGE_SUMMARY_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("invalid COVERAGE_SUMMARY_POLICY: %w", err)
	}

	cfg.SnapshotSiteIDs, err = ParseIntList(os.Getenv("SNAPSHOT_SITE_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_SITE_IDS: %w", err)
	}

	return cfg, nil
}

// DSN is the libpq connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// ParseIntList parses "1, 2,3" into []int. Blank input yields nil.
func ParseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
