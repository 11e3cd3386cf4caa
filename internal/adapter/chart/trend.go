package chart

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/burnout-report/internal/report"
)

// TrendChart renders the average burnout trend: one line per location across
// the cohort months.
type TrendChart struct {
	path string
}

// NewTrendChart creates the trend renderer writing burnout_trend.png into dir.
func NewTrendChart(dir string) *TrendChart {
	return &TrendChart{path: filepath.Join(dir, "burnout_trend.png")}
}

// Name implements report.Renderer.
func (c *TrendChart) Name() string { return "burnout_trend" }

// Render implements report.Renderer.
func (c *TrendChart) Render(_ context.Context, data report.Dataset) error {
	if len(data.Summaries) == 0 {
		return errors.New("no summaries to plot")
	}

	p := plot.New()
	p.Title.Text = "Average Nurse Burnout by Location"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Mean burnout score"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Y.Min, p.Y.Max = 0, 100
	p.Add(plotter.NewGrid())

	for i, location := range locations(data.Summaries) {
		pts := make(plotter.XYs, 0, len(data.Summaries))
		for _, s := range data.Summaries {
			if s.Location != location {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(s.Month.Unix()), Y: s.AvgBurnout})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("trend line for %s: %w", location, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)

		p.Add(line)
		p.Legend.Add(location, line)
	}
	p.Legend.Top = true

	if err := ensureDir(c.path); err != nil {
		return err
	}
	if err := p.Save(12*vg.Inch, 6*vg.Inch, c.path); err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	return nil
}
