package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/burnout-report/internal/domain"
)

// scenarioFile mirrors the YAML schema of a scenario rule-table file. Every
// field is optional; absent fields keep their DefaultScenario value. Months
// are written as "YYYY-MM" strings.
type scenarioFile struct {
	SurgeWindows   []windowSpec `yaml:"surge_windows"`
	MandateWindows []windowSpec `yaml:"mandate_windows"`

	BaselineBurnout *burnoutSpec `yaml:"baseline_burnout"`
	SurgeBurnout    *burnoutSpec `yaml:"surge_burnout"`

	BaselineFear     []float64 `yaml:"baseline_fear"`
	MandateFear      []float64 `yaml:"mandate_fear"`
	HighFearBaseline []float64 `yaml:"high_fear_baseline"`
	HighFearMandate  []float64 `yaml:"high_fear_mandate"`
	HighFearLocation *string   `yaml:"high_fear_location"`

	BurnoutThreshold *float64 `yaml:"burnout_threshold"`
	FearThreshold    *int     `yaml:"fear_threshold"`
	LeaveProbHigh    *float64 `yaml:"leave_prob_high"`
	LeaveProbLow     *float64 `yaml:"leave_prob_low"`
}

type windowSpec struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type burnoutSpec struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// LoadScenario reads a YAML scenario file and overlays it on
// domain.DefaultScenario. The merged scenario is validated before returning
// so a bad file fails at startup, not mid-generation.
func LoadScenario(path string) (domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Scenario{}, fmt.Errorf("parse scenario file %s: %w", path, err)
	}

	scenario := domain.DefaultScenario()

	if file.SurgeWindows != nil {
		if scenario.SurgeWindows, err = parseWindows("surge_windows", file.SurgeWindows); err != nil {
			return domain.Scenario{}, err
		}
	}
	if file.MandateWindows != nil {
		if scenario.MandateWindows, err = parseWindows("mandate_windows", file.MandateWindows); err != nil {
			return domain.Scenario{}, err
		}
	}
	if file.BaselineBurnout != nil {
		scenario.BaselineBurnout = domain.BurnoutParams{Mean: file.BaselineBurnout.Mean, StdDev: file.BaselineBurnout.StdDev}
	}
	if file.SurgeBurnout != nil {
		scenario.SurgeBurnout = domain.BurnoutParams{Mean: file.SurgeBurnout.Mean, StdDev: file.SurgeBurnout.StdDev}
	}
	if file.BaselineFear != nil {
		if scenario.BaselineFear, err = parseFearWeights("baseline_fear", file.BaselineFear); err != nil {
			return domain.Scenario{}, err
		}
	}
	if file.MandateFear != nil {
		if scenario.MandateFear, err = parseFearWeights("mandate_fear", file.MandateFear); err != nil {
			return domain.Scenario{}, err
		}
	}
	if file.HighFearBaseline != nil {
		if scenario.HighFearBaseline, err = parseFearWeights("high_fear_baseline", file.HighFearBaseline); err != nil {
			return domain.Scenario{}, err
		}
	}
	if file.HighFearMandate != nil {
		if scenario.HighFearMandate, err = parseFearWeights("high_fear_mandate", file.HighFearMandate); err != nil {
			return domain.Scenario{}, err
		}
	}
	if file.HighFearLocation != nil {
		scenario.HighFearLocation = *file.HighFearLocation
	}
	if file.BurnoutThreshold != nil {
		scenario.BurnoutThreshold = *file.BurnoutThreshold
	}
	if file.FearThreshold != nil {
		scenario.FearThreshold = *file.FearThreshold
	}
	if file.LeaveProbHigh != nil {
		scenario.LeaveProbHigh = *file.LeaveProbHigh
	}
	if file.LeaveProbLow != nil {
		scenario.LeaveProbLow = *file.LeaveProbLow
	}

	if err := scenario.Validate(); err != nil {
		return domain.Scenario{}, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return scenario, nil
}

func parseWindows(field string, specs []windowSpec) ([]domain.MonthWindow, error) {
	windows := make([]domain.MonthWindow, 0, len(specs))
	for i, spec := range specs {
		start, err := domain.ParseMonth(spec.Start)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].start: %w", field, i, err)
		}
		end, err := domain.ParseMonth(spec.End)
		if err != nil {
			return nil, fmt.Errorf("%s[%d].end: %w", field, i, err)
		}
		windows = append(windows, domain.MonthWindow{Start: start, End: end})
	}
	return windows, nil
}

func parseFearWeights(field string, values []float64) (domain.FearWeights, error) {
	var weights domain.FearWeights
	if len(values) != len(weights) {
		return weights, fmt.Errorf("%s: want %d weights, got %d", field, len(weights), len(values))
	}
	copy(weights[:], values)
	return weights, nil
}
