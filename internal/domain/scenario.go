package domain

import (
	"fmt"
	"time"
)

// MonthWindow is an inclusive range of calendar months.
type MonthWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the canonical month m falls inside the window.
func (w MonthWindow) Contains(m time.Time) bool {
	return !m.Before(w.Start) && !m.After(w.End)
}

// BurnoutParams parameterize the normal distribution burnout scores are
// drawn from before clamping.
type BurnoutParams struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// FearWeights are relative draw weights for vaccine-fear scores 1 through 5.
// They do not need to sum to 1; the categorical draw normalizes them.
type FearWeights [5]float64

// Scenario holds the date-conditioned rule tables that shape a cohort.
// Windows and distribution parameters are configuration, not business logic:
// DefaultScenario reproduces the canonical 2020-2022 pandemic shape, and a
// scenario file may override any part of it.
type Scenario struct {
	SurgeWindows   []MonthWindow `json:"surge_windows"`
	MandateWindows []MonthWindow `json:"mandate_windows"`

	BaselineBurnout BurnoutParams `json:"baseline_burnout"`
	SurgeBurnout    BurnoutParams `json:"surge_burnout"`

	BaselineFear     FearWeights `json:"baseline_fear"`
	MandateFear      FearWeights `json:"mandate_fear"`
	HighFearBaseline FearWeights `json:"high_fear_baseline"`
	HighFearMandate  FearWeights `json:"high_fear_mandate"`
	HighFearLocation string      `json:"high_fear_location"`

	BurnoutThreshold float64 `json:"burnout_threshold"`
	FearThreshold    int     `json:"fear_threshold"`
	LeaveProbHigh    float64 `json:"leave_prob_high"`
	LeaveProbLow     float64 `json:"leave_prob_low"`
}

// DefaultScenario returns the rule tables for the canonical cohort: three
// surge windows (initial onset, the 2020-21 winter wave, the Omicron wave),
// two mandate windows (vaccine rollout, employer mandates), and fear weights
// that skew harder at the high-fear location.
func DefaultScenario() Scenario {
	return Scenario{
		SurgeWindows: []MonthWindow{
			mustWindow("2020-03", "2020-05"),
			mustWindow("2020-11", "2021-02"),
			mustWindow("2021-12", "2022-02"),
		},
		MandateWindows: []MonthWindow{
			mustWindow("2020-12", "2021-03"),
			mustWindow("2021-08", "2021-11"),
		},

		BaselineBurnout: BurnoutParams{Mean: 52, StdDev: 12},
		SurgeBurnout:    BurnoutParams{Mean: 68, StdDev: 16},

		BaselineFear:     FearWeights{30, 30, 20, 15, 5},
		MandateFear:      FearWeights{10, 20, 25, 25, 20},
		HighFearBaseline: FearWeights{20, 25, 25, 20, 10},
		HighFearMandate:  FearWeights{5, 15, 20, 30, 30},
		HighFearLocation: "Paris, TX",

		BurnoutThreshold: 70,
		FearThreshold:    3,
		LeaveProbHigh:    0.45,
		LeaveProbLow:     0.08,
	}
}

// mustWindow builds a MonthWindow from two "YYYY-MM" literals, panicking on
// bad input. Only used with compile-time constants.
func mustWindow(start, end string) MonthWindow {
	s, err := ParseMonth(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseMonth(end)
	if err != nil {
		panic(err)
	}
	return MonthWindow{Start: s, End: e}
}

// Validate rejects rule tables the generator cannot draw from.
func (s Scenario) Validate() error {
	for i, w := range s.SurgeWindows {
		if err := validateWindow("scenario.surge_windows", i, w); err != nil {
			return err
		}
	}
	for i, w := range s.MandateWindows {
		if err := validateWindow("scenario.mandate_windows", i, w); err != nil {
			return err
		}
	}
	if s.BaselineBurnout.StdDev <= 0 {
		return &ValidationError{Param: "scenario.baseline_burnout", Reason: "std_dev must be positive"}
	}
	if s.SurgeBurnout.StdDev <= 0 {
		return &ValidationError{Param: "scenario.surge_burnout", Reason: "std_dev must be positive"}
	}
	weightRows := []struct {
		param   string
		weights FearWeights
	}{
		{"scenario.baseline_fear", s.BaselineFear},
		{"scenario.mandate_fear", s.MandateFear},
		{"scenario.high_fear_baseline", s.HighFearBaseline},
		{"scenario.high_fear_mandate", s.HighFearMandate},
	}
	for _, row := range weightRows {
		if err := row.weights.validate(row.param); err != nil {
			return err
		}
	}
	if s.HighFearLocation == "" {
		return &ValidationError{Param: "scenario.high_fear_location", Reason: "must not be empty"}
	}
	if s.BurnoutThreshold < 0 || s.BurnoutThreshold > 100 {
		return &ValidationError{Param: "scenario.burnout_threshold", Reason: "must be within [0,100]"}
	}
	if s.FearThreshold < 1 || s.FearThreshold > 5 {
		return &ValidationError{Param: "scenario.fear_threshold", Reason: "must be within [1,5]"}
	}
	if s.LeaveProbHigh < 0 || s.LeaveProbHigh > 1 {
		return &ValidationError{Param: "scenario.leave_prob_high", Reason: "must be a probability in [0,1]"}
	}
	if s.LeaveProbLow < 0 || s.LeaveProbLow > 1 {
		return &ValidationError{Param: "scenario.leave_prob_low", Reason: "must be a probability in [0,1]"}
	}
	return nil
}

func validateWindow(param string, i int, w MonthWindow) error {
	if w.Start.IsZero() || w.End.IsZero() {
		return &ValidationError{Param: fmt.Sprintf("%s[%d]", param, i), Reason: "start and end are required"}
	}
	if w.End.Before(w.Start) {
		return &ValidationError{Param: fmt.Sprintf("%s[%d]", param, i), Reason: "end precedes start"}
	}
	return nil
}

func (w FearWeights) validate(param string) error {
	var sum float64
	for _, v := range w {
		if v < 0 {
			return &ValidationError{Param: param, Reason: "weights must be non-negative"}
		}
		sum += v
	}
	if sum <= 0 {
		return &ValidationError{Param: param, Reason: "weights must have a positive sum"}
	}
	return nil
}

// burnoutParams returns the distribution parameters in effect for a month.
func (s Scenario) burnoutParams(month time.Time) BurnoutParams {
	if inAnyWindow(s.SurgeWindows, month) {
		return s.SurgeBurnout
	}
	return s.BaselineBurnout
}

// fearWeights returns the vaccine-fear weights in effect for a month at a
// location. Mandate windows shift every location upward; the high-fear
// location uses its own harder-skewed rows.
func (s Scenario) fearWeights(month time.Time, location string) FearWeights {
	mandate := inAnyWindow(s.MandateWindows, month)
	if location == s.HighFearLocation {
		if mandate {
			return s.HighFearMandate
		}
		return s.HighFearBaseline
	}
	if mandate {
		return s.MandateFear
	}
	return s.BaselineFear
}

func inAnyWindow(windows []MonthWindow, month time.Time) bool {
	for _, w := range windows {
		if w.Contains(month) {
			return true
		}
	}
	return false
}
