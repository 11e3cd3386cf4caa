// Package chart renders the static PNG artifacts of the burnout report with
// gonum/plot: a per-location burnout trend line and two location-by-month
// heatmaps.
package chart

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/burnout-report/internal/domain"
)

// locations returns the distinct location names in a summary set, sorted.
func locations(summaries []domain.LocationMonthSummary) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, s := range summaries {
		if _, ok := seen[s.Location]; ok {
			continue
		}
		seen[s.Location] = struct{}{}
		names = append(names, s.Location)
	}
	sort.Strings(names)
	return names
}

// months returns the distinct months in a summary set, chronological.
func months(summaries []domain.LocationMonthSummary) []time.Time {
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, s := range summaries {
		if _, ok := seen[s.Month]; ok {
			continue
		}
		seen[s.Month] = struct{}{}
		out = append(out, s.Month)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
