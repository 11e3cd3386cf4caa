package domain

// HospitalSite is static reference data for one mapped hospital: WGS-84
// coordinates plus the headline percentages shown in the marker popup. Sites
// are a curated lookup table, not generator output.
type HospitalSite struct {
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	BurnoutPct     float64 `json:"burnout_pct"`
	VaccineFearPct float64 `json:"vaccine_fear_pct"`
}

// HospitalSites returns the mapped sites. Callers receive a fresh slice and
// may reorder or annotate it freely.
func HospitalSites() []HospitalSite {
	return []HospitalSite{
		{
			Name:           "Paris Regional Medical Center",
			Lat:            33.6609,
			Lon:            -95.5555,
			BurnoutPct:     74,
			VaccineFearPct: 52,
		},
		{
			Name:           "Texas Health Presbyterian Plano",
			Lat:            33.0731,
			Lon:            -96.8050,
			BurnoutPct:     61,
			VaccineFearPct: 34,
		},
	}
}
