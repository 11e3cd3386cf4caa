// Package leaflet renders the interactive hospital site map as a single HTML
// page. The Leaflet library and OpenStreetMap tiles load from their public
// CDNs at view time; this package only emits the marker data and page shell.
package leaflet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/couchcryptid/burnout-report/internal/report"
)

// Map renders hospital_sites_map.html: one circle marker per hospital site,
// sized and colored by its burnout percentage, with both survey percentages
// in the popup.
type Map struct {
	path string
}

// NewMap creates the site map renderer writing into dir.
func NewMap(dir string) *Map {
	return &Map{path: filepath.Join(dir, "hospital_sites_map.html")}
}

// Name implements report.Renderer.
func (m *Map) Name() string { return "site_map" }

// Render implements report.Renderer.
func (m *Map) Render(_ context.Context, data report.Dataset) error {
	page, err := renderHTML(data.Sites)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(m.path, page, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", m.path, err)
	}
	return nil
}

// templateData feeds the embedded page template. SitesJSON is pre-sanitized
// JSON (via json.HTMLEscape) safe for an inline <script> block.
type templateData struct {
	SitesJSON template.JS
	CenterLat float64
	CenterLon float64
}

// renderHTML produces the complete map page for a site table. The view
// centers on the mean site coordinate.
func renderHTML(sites []domain.HospitalSite) ([]byte, error) {
	if len(sites) == 0 {
		return nil, errors.New("no sites to map")
	}

	sitesJSON, err := json.Marshal(sites)
	if err != nil {
		return nil, fmt.Errorf("marshal sites: %w", err)
	}

	// json.HTMLEscape converts <, >, & to unicode escapes, preventing
	// </script> breakout from site names.
	var escaped bytes.Buffer
	json.HTMLEscape(&escaped, sitesJSON)

	tmplBytes, err := templates.ReadFile("templates/map.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("read map template: %w", err)
	}
	tmpl, err := template.New("map").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parse map template: %w", err)
	}

	var centerLat, centerLon float64
	for _, s := range sites {
		centerLat += s.Lat
		centerLon += s.Lon
	}
	centerLat /= float64(len(sites))
	centerLon /= float64(len(sites))

	var buf bytes.Buffer
	data := templateData{
		SitesJSON: template.JS(escaped.String()), // #nosec G203 -- pre-sanitized via json.HTMLEscape
		CenterLat: centerLat,
		CenterLon: centerLon,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute map template: %w", err)
	}
	return buf.Bytes(), nil
}
