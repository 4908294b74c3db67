// Package plot renders the report's series as chart images, standing in for
// the interactive dashboard figures.
package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// CapacityChart plots one retention curve per sweep temperature, with the
// highlight band shaded between the two selected curves.
func CapacityChart(rep *model.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s — Capacity Retention vs. Time & Temperature", rep.Battery.Name)
	p.X.Label.Text = "Storage Time (Months)"
	p.Y.Label.Text = "Remaining Capacity (%)"
	p.Legend.Top = true

	if rep.Band != nil {
		// Outline of the region: upper curve forward, lower curve back.
		n := len(rep.Months)
		outline := make(plotter.XYs, 0, 2*n)
		for i := 0; i < n; i++ {
			outline = append(outline, plotter.XY{X: rep.Months[i], Y: rep.Band.Upper[i]})
		}
		for i := n - 1; i >= 0; i-- {
			outline = append(outline, plotter.XY{X: rep.Months[i], Y: rep.Band.Lower[i]})
		}
		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return nil, err
		}
		poly.Color = color.NRGBA{R: 255, G: 215, B: 0, A: 48}
		poly.LineStyle.Color = color.NRGBA{}
		p.Add(poly)
	}

	for i, c := range rep.Curves {
		line, err := plotter.NewLine(xys(rep.Months, c.Values))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%g°C — Final: %.1f%%", c.TempC, c.FinalPct), line)
	}
	return p, nil
}

// ResistanceChart plots the corrected internal resistance over aging years.
func ResistanceChart(rep *model.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Internal Resistance vs. Aging Time (%g°C)", rep.Input.TargetTempC)
	p.X.Label.Text = "Time (Years)"
	p.Y.Label.Text = "Internal Resistance (mΩ)"

	line, pts, err := plotter.NewLinePoints(xys(rep.AgingYears, rep.ResistanceMilliOhm))
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(0)
	pts.Color = plotutil.Color(0)
	p.Add(line, pts)
	return p, nil
}

// TerminalVoltageChart plots the terminal voltage under inrush load over
// aging years.
func TerminalVoltageChart(rep *model.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Terminal Voltage vs. Aging Time (%g°C)", rep.Input.TargetTempC)
	p.X.Label.Text = "Time (Years)"
	p.Y.Label.Text = "Terminal Voltage (V)"

	line, pts, err := plotter.NewLinePoints(xys(rep.AgingYears, rep.TerminalVoltageV))
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(1)
	pts.Color = plotutil.Color(1)
	p.Add(line, pts)
	return p, nil
}

// SaveAll renders the three charts as PNG files into dir, creating it if
// needed, and returns the written file paths.
func SaveAll(rep *model.Report, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	charts := []struct {
		name  string
		build func(*model.Report) (*plot.Plot, error)
	}{
		{"capacity.png", CapacityChart},
		{"resistance.png", ResistanceChart},
		{"terminal_voltage.png", TerminalVoltageChart},
	}
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		p, err := c.build(rep)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		path := filepath.Join(dir, c.name)
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
