package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/burnout-report/internal/domain"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadScenario_FullOverride(t *testing.T) {
	path := writeScenarioFile(t, `
surge_windows:
  - start: "2024-01"
    end: "2024-03"
mandate_windows:
  - start: "2024-02"
    end: "2024-02"
baseline_burnout:
  mean: 40
  std_dev: 8
surge_burnout:
  mean: 75
  std_dev: 20
baseline_fear: [50, 20, 15, 10, 5]
mandate_fear: [5, 10, 15, 20, 50]
high_fear_baseline: [40, 25, 15, 12, 8]
high_fear_mandate: [2, 8, 15, 25, 50]
high_fear_location: "General A"
burnout_threshold: 65
fear_threshold: 4
leave_prob_high: 0.6
leave_prob_low: 0.05
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	require.Len(t, scenario.SurgeWindows, 1)
	start, err := domain.ParseMonth("2024-01")
	require.NoError(t, err)
	end, err := domain.ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, domain.MonthWindow{Start: start, End: end}, scenario.SurgeWindows[0])

	require.Len(t, scenario.MandateWindows, 1)
	assert.Equal(t, scenario.MandateWindows[0].Start, scenario.MandateWindows[0].End)

	assert.Equal(t, domain.BurnoutParams{Mean: 40, StdDev: 8}, scenario.BaselineBurnout)
	assert.Equal(t, domain.BurnoutParams{Mean: 75, StdDev: 20}, scenario.SurgeBurnout)
	assert.Equal(t, domain.FearWeights{50, 20, 15, 10, 5}, scenario.BaselineFear)
	assert.Equal(t, domain.FearWeights{5, 10, 15, 20, 50}, scenario.MandateFear)
	assert.Equal(t, domain.FearWeights{40, 25, 15, 12, 8}, scenario.HighFearBaseline)
	assert.Equal(t, domain.FearWeights{2, 8, 15, 25, 50}, scenario.HighFearMandate)
	assert.Equal(t, "General A", scenario.HighFearLocation)
	assert.Equal(t, 65.0, scenario.BurnoutThreshold)
	assert.Equal(t, 4, scenario.FearThreshold)
	assert.Equal(t, 0.6, scenario.LeaveProbHigh)
	assert.Equal(t, 0.05, scenario.LeaveProbLow)
}

func TestLoadScenario_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeScenarioFile(t, `
burnout_threshold: 80
leave_prob_low: 0.02
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	defaults := domain.DefaultScenario()
	assert.Equal(t, 80.0, scenario.BurnoutThreshold)
	assert.Equal(t, 0.02, scenario.LeaveProbLow)
	assert.Equal(t, defaults.SurgeWindows, scenario.SurgeWindows)
	assert.Equal(t, defaults.MandateWindows, scenario.MandateWindows)
	assert.Equal(t, defaults.BaselineFear, scenario.BaselineFear)
	assert.Equal(t, defaults.HighFearLocation, scenario.HighFearLocation)
	assert.Equal(t, defaults.LeaveProbHigh, scenario.LeaveProbHigh)
}

func TestLoadScenario_EmptyFileIsDefaults(t *testing.T) {
	path := writeScenarioFile(t, "")

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScenario(), scenario)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario file")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenarioFile(t, "surge_windows: [unclosed")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario file")
}

func TestLoadScenario_BadWindowMonth(t *testing.T) {
	path := writeScenarioFile(t, `
surge_windows:
  - start: "2020-13"
    end: "2021-01"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surge_windows[0].start")
}

func TestLoadScenario_WrongWeightCount(t *testing.T) {
	path := writeScenarioFile(t, "mandate_fear: [1, 2, 3]")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 5 weights, got 3")
}

func TestLoadScenario_InvalidMergedScenario(t *testing.T) {
	path := writeScenarioFile(t, "leave_prob_high: 1.5")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leave_prob_high")
}
