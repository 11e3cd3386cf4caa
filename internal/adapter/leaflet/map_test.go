package leaflet_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/burnout-report/internal/adapter/leaflet"
	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/couchcryptid/burnout-report/internal/report"
)

var _ report.Renderer = (*leaflet.Map)(nil)

func TestMapName(t *testing.T) {
	assert.Equal(t, "site_map", leaflet.NewMap(t.TempDir()).Name())
}

func TestMapRender(t *testing.T) {
	dir := t.TempDir()
	m := leaflet.NewMap(dir)

	sites := domain.HospitalSites()
	require.NoError(t, m.Render(context.Background(), report.Dataset{Sites: sites}))

	raw, err := os.ReadFile(filepath.Join(dir, "hospital_sites_map.html"))
	require.NoError(t, err)
	page := string(raw)

	assert.Contains(t, page, "leaflet.js")
	assert.Contains(t, page, "tile.openstreetmap.org")
	for _, s := range sites {
		assert.Contains(t, page, s.Name)
		assert.Contains(t, page, strconv.FormatFloat(s.Lat, 'g', -1, 64))
		assert.Contains(t, page, strconv.FormatFloat(s.Lon, 'g', -1, 64))
	}
	assert.Contains(t, page, `"burnout_pct":74`)
	assert.Contains(t, page, `"vaccine_fear_pct":52`)
}

func TestMapRenderEscapesSiteNames(t *testing.T) {
	dir := t.TempDir()
	m := leaflet.NewMap(dir)

	sites := []domain.HospitalSite{{
		Name: "Mercy <script>alert('x')</script> West",
		Lat:  33.0,
		Lon:  -96.0,
	}}
	require.NoError(t, m.Render(context.Background(), report.Dataset{Sites: sites}))

	raw, err := os.ReadFile(filepath.Join(dir, "hospital_sites_map.html"))
	require.NoError(t, err)
	page := string(raw)

	assert.NotContains(t, page, "<script>alert")
	assert.Contains(t, page, `<script>`)
}

func TestMapRenderNoSites(t *testing.T) {
	m := leaflet.NewMap(t.TempDir())

	err := m.Render(context.Background(), report.Dataset{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sites")
}

func TestMapRenderCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "charts")
	m := leaflet.NewMap(dir)

	err := m.Render(context.Background(), report.Dataset{Sites: domain.HospitalSites()})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "hospital_sites_map.html"))
	assert.NoError(t, err)
}
