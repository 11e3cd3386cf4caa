package domain

import (
	"fmt"
	"strings"
	"time"
)

// NurseMonthRecord is one synthetic survey response: one nurse answering for
// one calendar month. BurnoutScore is clamped to [0,100]; VaccineFear is a
// Likert score in [1,5]. Records are immutable once generated.
type NurseMonthRecord struct {
	NurseID       int       `json:"nurse_id"`
	Location      string    `json:"location"`
	Month         time.Time `json:"month"`
	BurnoutScore  float64   `json:"burnout_score"`
	VaccineFear   int       `json:"vaccine_fear"`
	IntentToLeave bool      `json:"intent_to_leave"`
}

// LocationMonthSummary reduces every record sharing (location, month) to its
// group statistics. Summaries are recomputed from scratch on every run.
type LocationMonthSummary struct {
	Location        string    `json:"location"`
	Month           time.Time `json:"month"`
	AvgBurnout      float64   `json:"avg_burnout"`
	AvgVaccineFear  float64   `json:"avg_vaccine_fear"`
	LeaveProportion float64   `json:"proportion_intent_to_leave"`
}

// Cohort is one full generated record set plus the parameters that produced
// it. GeneratedAt is a wall-clock stamp and the only non-deterministic field.
type Cohort struct {
	Params      Params             `json:"params"`
	GeneratedAt time.Time          `json:"generated_at"`
	Records     []NurseMonthRecord `json:"records"`
}

// Params identifies one deterministic cohort. Two runs with equal Params and
// an equal Scenario produce identical records.
type Params struct {
	Seed       int64       `json:"seed"`
	Months     []time.Time `json:"months"`
	NurseCount int         `json:"nurse_count"`
	Locations  []string    `json:"locations"`
}

// Validate rejects parameter sets the generator cannot honor. Months must be
// canonical (as produced by MonthRange) and strictly increasing so record
// grouping and chart axes agree on month identity.
func (p Params) Validate() error {
	if p.Seed < 0 {
		return &ValidationError{Param: "seed", Reason: "must be non-negative"}
	}
	if p.NurseCount <= 0 {
		return &ValidationError{Param: "nurse_count", Reason: "must be positive"}
	}
	if len(p.Months) == 0 {
		return &ValidationError{Param: "months", Reason: "must not be empty"}
	}
	for i, m := range p.Months {
		if m.Location() != time.UTC || !m.Equal(MonthOf(m)) {
			return &ValidationError{
				Param:  "months",
				Reason: fmt.Sprintf("%s is not a canonical month (want midnight UTC on the first)", m.Format(time.RFC3339)),
			}
		}
		if i > 0 && !p.Months[i-1].Before(m) {
			return &ValidationError{Param: "months", Reason: "must be strictly increasing"}
		}
	}
	if len(p.Locations) == 0 {
		return &ValidationError{Param: "locations", Reason: "must not be empty"}
	}
	seen := make(map[string]struct{}, len(p.Locations))
	for _, loc := range p.Locations {
		if strings.TrimSpace(loc) == "" {
			return &ValidationError{Param: "locations", Reason: "must not contain blank names"}
		}
		if _, dup := seen[loc]; dup {
			return &ValidationError{Param: "locations", Reason: fmt.Sprintf("duplicate location %q", loc)}
		}
		seen[loc] = struct{}{}
	}
	if p.NurseCount < len(p.Locations) {
		return &ValidationError{Param: "nurse_count", Reason: "must be at least the number of locations"}
	}
	return nil
}

// ValidationError reports a generator parameter or scenario value that failed
// validation. Param names the offending field using the same snake_case names
// as the environment variables and fixture JSON.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}
