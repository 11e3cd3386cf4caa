// Package domain models a synthetic nurse-burnout survey cohort.
//
// # Shape of the Data
//
// A cohort is one simulated longitudinal survey: every nurse answers once per
// calendar month across the configured date range, yielding exactly
// nurse_count x months records. Nothing here is real data; the cohort exists
// to feed the burnout trend chart, the two location/month heatmaps, and the
// hospital site map with plausible pandemic-era numbers.
//
// # Month Convention
//
// Months are the only time resolution the model knows. A canonical month
// value is midnight UTC on the first day of the month ("2020-03" parses to
// 2020-03-01T00:00:00Z). All grouping, window membership, and chart axes key
// on canonical months, so [Params.Validate] rejects anything else rather than
// silently normalizing.
//
// # Generation Rules
//
// Scores are drawn per record from distributions selected by rule tables in
// [Scenario]:
//
//	Burnout score (real, clamped to [0,100]):
//	  Normal draw. Months inside a surge window use the elevated
//	  mean/spread row; all other months use the baseline row.
//
//	Vaccine fear (integer Likert, 1-5):
//	  Categorical draw over five weights. The row is selected jointly by
//	  month (inside vs. outside a mandate window) and location (the
//	  high-fear location has its own pair of harder-skewed rows).
//
//	Intent to leave (boolean):
//	  Bernoulli draw. Records whose burnout exceeds the burnout threshold
//	  or whose fear exceeds the fear threshold use the elevated leave
//	  probability; everything else uses the low one.
//
// The default windows model the 2020-2022 pandemic arc: surges at the initial
// onset (2020-03..2020-05), the winter wave (2020-11..2021-02), and the
// Omicron wave (2021-12..2022-02); mandate pressure during the vaccine
// rollout (2020-12..2021-03) and the employer mandate period
// (2021-08..2021-11). The dates are configuration, not business logic, and a
// scenario file may replace them wholesale.
//
// # Determinism
//
// [GenerateCohort] is a pure function of (Params, Scenario) except for the
// GeneratedAt stamp, which comes from the package clock. All draws consume a
// single PCG source seeded with Params.Seed in a fixed order: nurse-major,
// month-minor, three draws per record. Rerunning with equal inputs reproduces
// the records byte for byte; that property is what the validate tool checks
// and what makes committed fixtures reviewable.
//
// # Aggregation
//
// [Aggregate] groups records by (location, month) and emits one summary per
// group: arithmetic mean burnout, mean vaccine fear, and the fraction of
// records with intent to leave. Because nurses are assigned to locations
// round-robin, every (location, month) pair in a valid cohort is populated
// and the summary count is always locations x months. Output ordering is
// location name, then month.
package domain
