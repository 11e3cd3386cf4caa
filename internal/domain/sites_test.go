package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalSites(t *testing.T) {
	sites := HospitalSites()
	require.Len(t, sites, 2)

	for _, s := range sites {
		assert.NotEmpty(t, s.Name)
		assert.InDelta(t, 33, s.Lat, 2, "both sites are in north Texas")
		assert.Less(t, s.Lon, -90.0)
		assert.Greater(t, s.Lon, -100.0)
		assert.GreaterOrEqual(t, s.BurnoutPct, 0.0)
		assert.LessOrEqual(t, s.BurnoutPct, 100.0)
		assert.GreaterOrEqual(t, s.VaccineFearPct, 0.0)
		assert.LessOrEqual(t, s.VaccineFearPct, 100.0)
	}
}

func TestHospitalSitesReturnsFreshSlice(t *testing.T) {
	first := HospitalSites()
	first[0].Name = "mutated"
	first[0].BurnoutPct = -1

	second := HospitalSites()
	assert.Equal(t, "Paris Regional Medical Center", second[0].Name)
	assert.Equal(t, 74.0, second[0].BurnoutPct)
}
