package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testParisTX     = "Paris, TX"
	testPresbyPlano = "Presby Plano"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(123), cfg.Seed)
	require.Len(t, cfg.Months, 36)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Months[0])
	assert.Equal(t, time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC), cfg.Months[35])
	assert.Equal(t, 200, cfg.NurseCount)
	assert.Equal(t, []string{testParisTX, testPresbyPlano}, cfg.Locations)
	assert.Empty(t, cfg.ScenarioFile)
	assert.Equal(t, "artifacts", cfg.OutputDir)
	assert.False(t, cfg.Serve)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SEED", "7")
	t.Setenv("START_MONTH", "2021-01")
	t.Setenv("END_MONTH", "2021-06")
	t.Setenv("NURSE_COUNT", "40")
	t.Setenv("LOCATIONS", "General A; General B ;General C")
	t.Setenv("SCENARIO_FILE", "scenario.yaml")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("SERVE", "true")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Len(t, cfg.Months, 6)
	assert.Equal(t, 40, cfg.NurseCount)
	assert.Equal(t, []string{"General A", "General B", "General C"}, cfg.Locations)
	assert.Equal(t, "scenario.yaml", cfg.ScenarioFile)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Serve)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CohortParams(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	params := cfg.CohortParams()
	assert.Equal(t, cfg.Seed, params.Seed)
	assert.Equal(t, cfg.Months, params.Months)
	assert.Equal(t, cfg.NurseCount, params.NurseCount)
	assert.Equal(t, cfg.Locations, params.Locations)
	require.NoError(t, params.Validate())
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("SEED", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED")
}

func TestLoad_NegativeSeed(t *testing.T) {
	t.Setenv("SEED", "-5")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED")
}

func TestLoad_InvalidStartMonth(t *testing.T) {
	t.Setenv("START_MONTH", "January 2020")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "START_MONTH")
}

func TestLoad_InvalidEndMonth(t *testing.T) {
	t.Setenv("END_MONTH", "2022-13")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "END_MONTH")
}

func TestLoad_EndBeforeStart(t *testing.T) {
	t.Setenv("START_MONTH", "2022-01")
	t.Setenv("END_MONTH", "2021-01")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precedes start")
}

func TestLoad_InvalidNurseCount(t *testing.T) {
	t.Setenv("NURSE_COUNT", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NURSE_COUNT")
}

func TestLoad_MalformedNurseCount(t *testing.T) {
	t.Setenv("NURSE_COUNT", "lots")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NURSE_COUNT")
}

func TestLoad_EmptyLocations(t *testing.T) {
	t.Setenv("LOCATIONS", " ; ; ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locations")
}

func TestLoad_DuplicateLocations(t *testing.T) {
	t.Setenv("LOCATIONS", "Paris, TX;Paris, TX")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestParseLocations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single", "Presby Plano", []string{testPresbyPlano}},
		{"comma inside name", "Paris, TX;Presby Plano", []string{testParisTX, testPresbyPlano}},
		{"whitespace trimmed", "  Paris, TX ;  Presby Plano  ", []string{testParisTX, testPresbyPlano}},
		{"empty entries dropped", ";Paris, TX;;", []string{testParisTX}},
		{"all empty", " ; ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLocations(tt.input))
		})
	}
}
