package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/burnout-report/internal/domain"
)

// Defaults reproduce the canonical cohort: 200 nurses across two Texas
// hospitals, monthly from January 2020 through December 2022, seed 123.
const (
	defaultSeed       = "123"
	defaultStartMonth = "2020-01"
	defaultEndMonth   = "2022-12"
	defaultNurseCount = "200"
	defaultLocations  = "Paris, TX;Presby Plano"
	defaultOutputDir  = "artifacts"
)

// Config holds all report settings, populated from environment variables.
type Config struct {
	Seed       int64
	Months     []time.Time
	NurseCount int
	Locations  []string

	ScenarioFile string
	OutputDir    string

	Serve           bool
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. Location names may contain commas ("Paris, TX"), so LOCATIONS
// entries are separated by semicolons. Cohort parameters are validated here
// so a misconfigured run fails at startup rather than mid-build.
func Load() (*Config, error) {
	seed, err := parseSeed()
	if err != nil {
		return nil, err
	}

	months, err := parseMonths()
	if err != nil {
		return nil, err
	}

	nurseCount, err := parseNurseCount()
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Seed:       seed,
		Months:     months,
		NurseCount: nurseCount,
		Locations:  parseLocations(envOrDefault("LOCATIONS", defaultLocations)),

		ScenarioFile: os.Getenv("SCENARIO_FILE"),
		OutputDir:    envOrDefault("OUTPUT_DIR", defaultOutputDir),

		Serve:           os.Getenv("SERVE") == "true",
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if err := cfg.CohortParams().Validate(); err != nil {
		return nil, fmt.Errorf("cohort parameters: %w", err)
	}

	return cfg, nil
}

// CohortParams bundles the generator inputs carried by this configuration.
func (c *Config) CohortParams() domain.Params {
	return domain.Params{
		Seed:       c.Seed,
		Months:     c.Months,
		NurseCount: c.NurseCount,
		Locations:  c.Locations,
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseSeed() (int64, error) {
	s := envOrDefault("SEED", defaultSeed)
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid SEED %q", s)
	}
	if seed < 0 {
		return 0, errors.New("SEED must be non-negative")
	}
	return seed, nil
}

func parseMonths() ([]time.Time, error) {
	start, err := domain.ParseMonth(envOrDefault("START_MONTH", defaultStartMonth))
	if err != nil {
		return nil, fmt.Errorf("invalid START_MONTH: %w", err)
	}
	end, err := domain.ParseMonth(envOrDefault("END_MONTH", defaultEndMonth))
	if err != nil {
		return nil, fmt.Errorf("invalid END_MONTH: %w", err)
	}
	months, err := domain.MonthRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("START_MONTH..END_MONTH: %w", err)
	}
	return months, nil
}

func parseNurseCount() (int, error) {
	s := envOrDefault("NURSE_COUNT", defaultNurseCount)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid NURSE_COUNT %q", s)
	}
	if n <= 0 {
		return 0, errors.New("NURSE_COUNT must be positive")
	}
	return n, nil
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

// parseLocations splits a semicolon-separated location list, trimming
// whitespace and dropping empty entries.
func parseLocations(s string) []string {
	parts := strings.Split(s, ";")
	locations := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			locations = append(locations, p)
		}
	}
	return locations
}
