package chart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/couchcryptid/burnout-report/internal/report"
)

// Heatmap renders one location-by-month grid of a summary statistic. The
// color scale is fixed rather than data-driven so artifacts from different
// cohorts are directly comparable.
type Heatmap struct {
	path     string
	name     string
	title    string
	min, max float64
	value    func(domain.LocationMonthSummary) float64
}

// NewFearHeatmap creates the average vaccine fear heatmap on the Likert 1-5
// scale, written to vaccine_fear_heatmap.png.
func NewFearHeatmap(dir string) *Heatmap {
	return &Heatmap{
		path:  filepath.Join(dir, "vaccine_fear_heatmap.png"),
		name:  "fear_heatmap",
		title: "Average Vaccine Fear (1-5)",
		min:   1,
		max:   5,
		value: func(s domain.LocationMonthSummary) float64 { return s.AvgVaccineFear },
	}
}

// NewLeaveHeatmap creates the intent-to-leave proportion heatmap on a 0-1
// scale, written to intent_to_leave_heatmap.png.
func NewLeaveHeatmap(dir string) *Heatmap {
	return &Heatmap{
		path:  filepath.Join(dir, "intent_to_leave_heatmap.png"),
		name:  "leave_heatmap",
		title: "Proportion of Nurses Intending to Leave",
		min:   0,
		max:   1,
		value: func(s domain.LocationMonthSummary) float64 { return s.LeaveProportion },
	}
}

// Name implements report.Renderer.
func (h *Heatmap) Name() string { return h.name }

// Render implements report.Renderer.
func (h *Heatmap) Render(_ context.Context, data report.Dataset) error {
	grid := newSummaryGrid(data.Summaries, h.value)
	if len(grid.months) == 0 {
		return errors.New("no summaries to plot")
	}

	hm := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	hm.Min, hm.Max = h.min, h.max

	p := plot.New()
	p.Title.Text = h.title
	p.X.Label.Text = "Month"
	p.Add(hm)

	labels := make([]string, len(grid.months))
	for i, m := range grid.months {
		labels[i] = m.Format(domain.MonthLayout)
	}
	p.NominalX(labels...)
	p.NominalY(grid.locations...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XCenter

	if err := ensureDir(h.path); err != nil {
		return err
	}
	if err := p.Save(16*vg.Inch, 5*vg.Inch, h.path); err != nil {
		return fmt.Errorf("save %s: %w", h.path, err)
	}
	return nil
}

// summaryGrid adapts a summary set to plotter.GridXYZ: columns are months,
// rows are locations, Z is the extracted statistic. Cells with no matching
// summary hold NaN and are left unpainted.
type summaryGrid struct {
	months    []time.Time
	locations []string
	values    [][]float64 // indexed [row][column]
}

func newSummaryGrid(summaries []domain.LocationMonthSummary, value func(domain.LocationMonthSummary) float64) *summaryGrid {
	g := &summaryGrid{
		months:    months(summaries),
		locations: locations(summaries),
	}

	monthCol := make(map[time.Time]int, len(g.months))
	for i, m := range g.months {
		monthCol[m] = i
	}
	locationRow := make(map[string]int, len(g.locations))
	for i, l := range g.locations {
		locationRow[l] = i
	}

	g.values = make([][]float64, len(g.locations))
	for r := range g.values {
		row := make([]float64, len(g.months))
		for c := range row {
			row[c] = math.NaN()
		}
		g.values[r] = row
	}
	for _, s := range summaries {
		g.values[locationRow[s.Location]][monthCol[s.Month]] = value(s)
	}
	return g
}

// Dims implements plotter.GridXYZ.
func (g *summaryGrid) Dims() (c, r int) { return len(g.months), len(g.locations) }

// Z implements plotter.GridXYZ.
func (g *summaryGrid) Z(c, r int) float64 { return g.values[r][c] }

// X implements plotter.GridXYZ.
func (g *summaryGrid) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (g *summaryGrid) Y(r int) float64 { return float64(r) }
