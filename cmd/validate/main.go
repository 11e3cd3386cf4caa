// Command validate checks a genmock fixture end to end: fixture shape,
// generator determinism, record invariants, and aggregation consistency. It
// re-runs the actual generator and aggregator so fixture drift is caught
// before tests rely on stale data.
//
// Usage:
//
//	go run ./cmd/validate -fixture data/mock/cohort_seed123_200x36.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/jonboulle/clockwork"
)

// fixture mirrors the document written by cmd/genmock.
type fixture struct {
	Params      domain.Params                 `json:"params"`
	Scenario    domain.Scenario               `json:"scenario"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Records     []domain.NurseMonthRecord     `json:"records"`
	Summaries   []domain.LocationMonthSummary `json:"summaries"`
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	fixturePath := flag.String("fixture", "", "path to genmock fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*fixturePath); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Survey Fixture Validation ===")
	fmt.Println()

	f, err := loadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load fixture: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateShape(f),
		validateDeterminism(f),
		validateRecordInvariants(f),
		validateAggregation(f),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d, summaries: %d, months: %d, locations: %d\n",
		len(f.Records), len(f.Summaries), len(f.Params.Months), len(f.Params.Locations))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ── Phase 1: Fixture Shape ──
// Validates that the fixture document is internally complete: legal
// parameters, legal scenario, and the counts those parameters imply.

func validateShape(f *fixture) *phase {
	p := &phase{name: "Phase 1: Fixture Shape"}

	if err := f.Params.Validate(); err != nil {
		p.errorf("params: %v", err)
	}
	if err := f.Scenario.Validate(); err != nil {
		p.errorf("scenario: %v", err)
	}
	if f.GeneratedAt.IsZero() {
		p.errorf("generated_at is zero")
	}

	wantRecords := f.Params.NurseCount * len(f.Params.Months)
	if len(f.Records) != wantRecords {
		p.errorf("record count: expected %d (%d nurses x %d months), got %d",
			wantRecords, f.Params.NurseCount, len(f.Params.Months), len(f.Records))
	}
	wantSummaries := len(f.Params.Locations) * len(f.Params.Months)
	if len(f.Summaries) != wantSummaries {
		p.errorf("summary count: expected %d (%d locations x %d months), got %d",
			wantSummaries, len(f.Params.Locations), len(f.Params.Months), len(f.Summaries))
	}
	return p
}

// ── Phase 2: Determinism ──
// Re-runs the generator with the fixture's own parameters and verifies the
// fixture records match draw for draw.

func validateDeterminism(f *fixture) *phase {
	p := &phase{name: "Phase 2: Determinism (regeneration)"}

	// Fixed clock matching genmock so GeneratedAt reproduces too.
	domain.SetClock(clockwork.NewFakeClockAt(f.GeneratedAt))
	defer domain.SetClock(nil)

	cohort, err := domain.GenerateCohort(f.Params, f.Scenario)
	if err != nil {
		p.errorf("regenerate: %v", err)
		return p
	}

	if !cohort.GeneratedAt.Equal(f.GeneratedAt) {
		p.errorf("generated_at: expected %s, got %s",
			f.GeneratedAt.Format(time.RFC3339), cohort.GeneratedAt.Format(time.RFC3339))
	}
	if len(cohort.Records) != len(f.Records) {
		p.errorf("record count: regenerated %d, fixture has %d", len(cohort.Records), len(f.Records))
		return p
	}

	for i := range f.Records {
		compareRecords(p, i, &f.Records[i], &cohort.Records[i])
	}
	return p
}

func compareRecords(p *phase, i int, want, got *domain.NurseMonthRecord) {
	if got.NurseID != want.NurseID {
		p.errorf("record %d: nurse_id: expected %d, got %d", i, want.NurseID, got.NurseID)
	}
	if got.Location != want.Location {
		p.errorf("record %d: location: expected %q, got %q", i, want.Location, got.Location)
	}
	if !got.Month.Equal(want.Month) {
		p.errorf("record %d: month: expected %s, got %s",
			i, want.Month.Format(domain.MonthLayout), got.Month.Format(domain.MonthLayout))
	}
	if !floatEq(got.BurnoutScore, want.BurnoutScore) {
		p.errorf("record %d: burnout_score: expected %g, got %g", i, want.BurnoutScore, got.BurnoutScore)
	}
	if got.VaccineFear != want.VaccineFear {
		p.errorf("record %d: vaccine_fear: expected %d, got %d", i, want.VaccineFear, got.VaccineFear)
	}
	if got.IntentToLeave != want.IntentToLeave {
		p.errorf("record %d: intent_to_leave: expected %t, got %t", i, want.IntentToLeave, got.IntentToLeave)
	}
}

// ── Phase 3: Record Invariants ──
// Validates range constraints on every record and the one-record-per
// nurse-month coverage guarantee.

func validateRecordInvariants(f *fixture) *phase {
	p := &phase{name: "Phase 3: Record Invariants"}

	validLocations := make(map[string]bool, len(f.Params.Locations))
	for _, loc := range f.Params.Locations {
		validLocations[loc] = true
	}
	validMonths := make(map[time.Time]bool, len(f.Params.Months))
	for _, m := range f.Params.Months {
		validMonths[m] = true
	}

	type cell struct {
		nurse int
		month time.Time
	}
	seen := make(map[cell]int, len(f.Records))

	for i := range f.Records {
		r := &f.Records[i]
		if r.NurseID < 1 || r.NurseID > f.Params.NurseCount {
			p.errorf("record %d: nurse_id %d outside 1..%d", i, r.NurseID, f.Params.NurseCount)
		}
		if !validLocations[r.Location] {
			p.errorf("record %d: unknown location %q", i, r.Location)
		}
		if !validMonths[r.Month] {
			p.errorf("record %d: month %s not in surveyed range", i, r.Month.Format(domain.MonthLayout))
		}
		if r.BurnoutScore < 0 || r.BurnoutScore > 100 {
			p.errorf("record %d: burnout_score %g outside [0,100]", i, r.BurnoutScore)
		}
		if r.VaccineFear < 1 || r.VaccineFear > 5 {
			p.errorf("record %d: vaccine_fear %d outside [1,5]", i, r.VaccineFear)
		}
		seen[cell{nurse: r.NurseID, month: r.Month}]++
	}

	for c, n := range seen {
		if n > 1 {
			p.errorf("nurse %d month %s: %d records (expected 1)", c.nurse, c.month.Format(domain.MonthLayout), n)
		}
	}
	want := f.Params.NurseCount * len(f.Params.Months)
	if len(seen) != want {
		p.errorf("coverage: %d distinct nurse-month cells, expected %d", len(seen), want)
	}
	return p
}

// ── Phase 4: Aggregation Consistency ──
// Recomputes summaries from the fixture records and compares against the
// stored summaries.

func validateAggregation(f *fixture) *phase {
	p := &phase{name: "Phase 4: Aggregation Consistency"}

	recomputed := domain.Aggregate(f.Records)
	if len(recomputed) != len(f.Summaries) {
		p.errorf("summary count: recomputed %d, fixture has %d", len(recomputed), len(f.Summaries))
		return p
	}

	for i := range f.Summaries {
		want, got := &recomputed[i], &f.Summaries[i]
		id := fmt.Sprintf("%s %s", got.Location, got.Month.Format(domain.MonthLayout))

		if got.Location != want.Location || !got.Month.Equal(want.Month) {
			p.errorf("summary %d: expected %s %s, got %s",
				i, want.Location, want.Month.Format(domain.MonthLayout), id)
			continue
		}
		if !floatEq(got.AvgBurnout, want.AvgBurnout) {
			p.errorf("%s: avg_burnout: expected %g, got %g", id, want.AvgBurnout, got.AvgBurnout)
		}
		if !floatEq(got.AvgVaccineFear, want.AvgVaccineFear) {
			p.errorf("%s: avg_vaccine_fear: expected %g, got %g", id, want.AvgVaccineFear, got.AvgVaccineFear)
		}
		if !floatEq(got.LeaveProportion, want.LeaveProportion) {
			p.errorf("%s: proportion_intent_to_leave: expected %g, got %g", id, want.LeaveProportion, got.LeaveProportion)
		}
		if got.AvgVaccineFear < 1 || got.AvgVaccineFear > 5 {
			p.errorf("%s: avg_vaccine_fear %g outside [1,5]", id, got.AvgVaccineFear)
		}
		if got.LeaveProportion < 0 || got.LeaveProportion > 1 {
			p.errorf("%s: proportion %g outside [0,1]", id, got.LeaveProportion)
		}
	}
	return p
}

// ── Helpers ──

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
