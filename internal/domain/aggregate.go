package domain

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Aggregate groups records by (location, month) and reduces each group to its
// summary statistics: mean burnout, mean vaccine fear, and the fraction of
// records flagged intent-to-leave. Summaries are ordered by location name and
// then month so equal inputs marshal identically. Aggregation cannot fail;
// empty input yields an empty result.
func Aggregate(records []NurseMonthRecord) []LocationMonthSummary {
	type key struct {
		location string
		month    time.Time
	}

	burnouts := make(map[key][]float64)
	fears := make(map[key][]float64)
	leaves := make(map[key]int)

	for _, r := range records {
		k := key{location: r.Location, month: r.Month}
		burnouts[k] = append(burnouts[k], r.BurnoutScore)
		fears[k] = append(fears[k], float64(r.VaccineFear))
		if r.IntentToLeave {
			leaves[k]++
		}
	}

	summaries := make([]LocationMonthSummary, 0, len(burnouts))
	for k, scores := range burnouts {
		summaries = append(summaries, LocationMonthSummary{
			Location:        k.location,
			Month:           k.month,
			AvgBurnout:      stat.Mean(scores, nil),
			AvgVaccineFear:  stat.Mean(fears[k], nil),
			LeaveProportion: float64(leaves[k]) / float64(len(scores)),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Location != summaries[j].Location {
			return summaries[i].Location < summaries[j].Location
		}
		return summaries[i].Month.Before(summaries[j].Month)
	})
	return summaries
}
