// Command genmock generates the deterministic survey fixture consumed by the
// validate command and the test suites. It uses the actual report domain
// package so the fixture matches real generator behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out data/mock/cohort_seed123_200x36.json \
//	  -seed 123 -start 2020-01 -end 2022-12 -nurses 200 \
//	  -locations "Paris, TX;Presby Plano"
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/burnout-report/internal/config"
	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/jonboulle/clockwork"
)

// fixtureTime stamps GeneratedAt so fixtures are byte-stable across runs.
var fixtureTime = time.Date(2023, time.January, 15, 6, 0, 0, 0, time.UTC)

// fixture is the JSON document written for the validate command: the full
// generator inputs plus the records and summaries they produce.
type fixture struct {
	Params      domain.Params                 `json:"params"`
	Scenario    domain.Scenario               `json:"scenario"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Records     []domain.NurseMonthRecord     `json:"records"`
	Summaries   []domain.LocationMonthSummary `json:"summaries"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the fixture JSON")
	seed := flag.Int64("seed", 123, "generator seed")
	start := flag.String("start", "2020-01", "first survey month (YYYY-MM)")
	end := flag.String("end", "2022-12", "last survey month (YYYY-MM)")
	nurses := flag.Int("nurses", 200, "cohort size")
	locations := flag.String("locations", "Paris, TX;Presby Plano", "semicolon-separated hospital locations")
	scenarioFile := flag.String("scenario", "", "optional scenario YAML overriding the built-in pandemic scenario")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	startMonth, err := domain.ParseMonth(*start)
	if err != nil {
		return err
	}
	endMonth, err := domain.ParseMonth(*end)
	if err != nil {
		return err
	}
	months, err := domain.MonthRange(startMonth, endMonth)
	if err != nil {
		return err
	}

	params := domain.Params{
		Seed:       *seed,
		Months:     months,
		NurseCount: *nurses,
		Locations:  splitLocations(*locations),
	}

	scenario := domain.DefaultScenario()
	if *scenarioFile != "" {
		scenario, err = config.LoadScenario(*scenarioFile)
		if err != nil {
			return fmt.Errorf("loading scenario: %w", err)
		}
	}

	// Set a fixed clock for a reproducible GeneratedAt stamp.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	cohort, err := domain.GenerateCohort(params, scenario)
	if err != nil {
		return fmt.Errorf("generating cohort: %w", err)
	}
	summaries := domain.Aggregate(cohort.Records)

	log.Printf("generated %d records across %d months", len(cohort.Records), len(params.Months))

	f := fixture{
		Params:      cohort.Params,
		Scenario:    scenario,
		GeneratedAt: cohort.GeneratedAt,
		Records:     cohort.Records,
		Summaries:   summaries,
	}
	if err := writeJSON(*out, f); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(cohort, summaries, scenario)
	return nil
}

func splitLocations(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated figures for printStats reporting.
type statsResult struct {
	perLocation map[string]*locationStats

	surgeBurnoutSum    float64
	surgeCount         int
	baselineBurnoutSum float64
	baselineCount      int

	leaveTotal int
}

type locationStats struct {
	records    int
	burnoutSum float64
	fearSum    int
	leaveCount int
}

func collectStats(cohort domain.Cohort, scenario domain.Scenario) statsResult {
	s := statsResult{perLocation: map[string]*locationStats{}}
	for i := range cohort.Records {
		r := &cohort.Records[i]
		ls := s.perLocation[r.Location]
		if ls == nil {
			ls = &locationStats{}
			s.perLocation[r.Location] = ls
		}
		ls.records++
		ls.burnoutSum += r.BurnoutScore
		ls.fearSum += r.VaccineFear
		if r.IntentToLeave {
			ls.leaveCount++
			s.leaveTotal++
		}
		if inSurge(scenario, r.Month) {
			s.surgeBurnoutSum += r.BurnoutScore
			s.surgeCount++
		} else {
			s.baselineBurnoutSum += r.BurnoutScore
			s.baselineCount++
		}
	}
	return s
}

func inSurge(scenario domain.Scenario, month time.Time) bool {
	for _, w := range scenario.SurgeWindows {
		if w.Contains(month) {
			return true
		}
	}
	return false
}

func printStats(cohort domain.Cohort, summaries []domain.LocationMonthSummary, scenario domain.Scenario) {
	stats := collectStats(cohort, scenario)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d records, %d summaries\n", len(cohort.Records), len(summaries))
	fmt.Printf("Months: %d (%s..%s)\n", len(cohort.Params.Months),
		cohort.Params.Months[0].Format(domain.MonthLayout),
		cohort.Params.Months[len(cohort.Params.Months)-1].Format(domain.MonthLayout))

	for _, loc := range cohort.Params.Locations {
		ls := stats.perLocation[loc]
		if ls == nil {
			continue
		}
		n := float64(ls.records)
		fmt.Printf("%s: %d records, mean burnout=%.1f, mean fear=%.2f, leave=%.1f%%\n",
			loc, ls.records, ls.burnoutSum/n, float64(ls.fearSum)/n, 100*float64(ls.leaveCount)/n)
	}

	if stats.surgeCount > 0 {
		fmt.Printf("Surge months: mean burnout=%.1f (n=%d)\n",
			stats.surgeBurnoutSum/float64(stats.surgeCount), stats.surgeCount)
	}
	if stats.baselineCount > 0 {
		fmt.Printf("Baseline months: mean burnout=%.1f (n=%d)\n",
			stats.baselineBurnoutSum/float64(stats.baselineCount), stats.baselineCount)
	}
	fmt.Printf("Overall intent-to-leave: %.1f%%\n", 100*float64(stats.leaveTotal)/float64(len(cohort.Records)))

	if len(summaries) > 0 {
		s := summaries[0]
		fmt.Printf("\nFirst summary:\n")
		fmt.Printf("  %s %s: burnout=%.2f, fear=%.2f, leave=%.3f\n",
			s.Location, s.Month.Format(domain.MonthLayout), s.AvgBurnout, s.AvgVaccineFear, s.LeaveProportion)
	}
}
