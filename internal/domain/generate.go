package domain

import (
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// GenerateCohort produces the synthetic record set for the given parameters
// and rule tables. The draw order is fixed: nurses in ID order, months in
// chronological order, three draws per record (burnout, fear, leave), all
// from a single PCG source seeded with Params.Seed. Equal inputs therefore
// yield identical records; changing any parameter reshuffles the whole
// stream, which is intended.
//
// Nurses are assigned to locations round-robin by ID, so every location
// receives a near-equal share and every (location, month) pair is populated.
func GenerateCohort(params Params, scenario Scenario) (Cohort, error) {
	if err := params.Validate(); err != nil {
		return Cohort{}, err
	}
	if err := scenario.Validate(); err != nil {
		return Cohort{}, err
	}
	if !slices.Contains(params.Locations, scenario.HighFearLocation) {
		return Cohort{}, &ValidationError{
			Param:  "scenario.high_fear_location",
			Reason: "must be one of the cohort locations",
		}
	}

	src := rand.NewPCG(uint64(params.Seed), uint64(params.Seed))
	records := make([]NurseMonthRecord, 0, params.NurseCount*len(params.Months))

	for nurse := 0; nurse < params.NurseCount; nurse++ {
		location := params.Locations[nurse%len(params.Locations)]
		for _, month := range params.Months {
			bp := scenario.burnoutParams(month)
			burnout := clampScore(distuv.Normal{Mu: bp.Mean, Sigma: bp.StdDev, Src: src}.Rand())

			weights := scenario.fearWeights(month, location)
			fear := int(distuv.NewCategorical(weights[:], src).Rand()) + 1

			prob := scenario.LeaveProbLow
			if burnout > scenario.BurnoutThreshold || fear > scenario.FearThreshold {
				prob = scenario.LeaveProbHigh
			}
			leave := distuv.Bernoulli{P: prob, Src: src}.Rand() == 1

			records = append(records, NurseMonthRecord{
				NurseID:       nurse + 1,
				Location:      location,
				Month:         month,
				BurnoutScore:  burnout,
				VaccineFear:   fear,
				IntentToLeave: leave,
			})
		}
	}

	return Cohort{
		Params:      params,
		GeneratedAt: clock.Now().UTC(),
		Records:     records,
	}, nil
}

// clampScore keeps a drawn burnout score inside the reportable 0-100 range.
func clampScore(v float64) float64 {
	return min(100, max(0, v))
}
