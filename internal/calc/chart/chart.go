// Package chart renders a deflection curve as a PNG image or an interactive
// HTML page.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"Cantilever/internal/calc/beam"
)

const (
	Title  = "Beam Deflection Along Length"
	XLabel = "Position along beam x (m)"
	YLabel = "Deflection δ (mm)"

	primaryHex = "#4f46e5"
)

var (
	primary = color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}
	fill    = color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0x14}
)

// Size of rendered images.
var (
	Width  = 8 * vg.Inch
	Height = 4.6 * vg.Inch
)

func xys(c beam.Curve) plotter.XYs {
	pts := make(plotter.XYs, 0, c.Len())
	for _, p := range c.All() {
		pts = append(pts, plotter.XY{X: p.PositionM, Y: p.DeflectionMM})
	}
	return pts
}

// Plot builds the gonum plot of c.
func Plot(c beam.Curve) (*plot.Plot, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("empty curve")
	}
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys(c))
	if err != nil {
		return nil, err
	}
	line.Color = primary
	line.Width = vg.Points(2)
	line.FillColor = fill
	p.Add(line)
	return p, nil
}

// WritePNG renders the curve as a PNG image.
func WritePNG(w io.Writer, c beam.Curve) error {
	p, err := Plot(c)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// WriteHTML renders the curve as a standalone go-echarts page.
func WriteHTML(w io.Writer, c beam.Curve, subtitle string) error {
	if c.Len() == 0 {
		return fmt.Errorf("empty curve")
	}
	data := make([]opts.LineData, 0, c.Len())
	for _, p := range c.All() {
		data = append(data, opts.LineData{Value: []interface{}{p.PositionM, p.DeflectionMM}})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: Title, Width: "900px", Height: "460px"}),
		charts.WithColorsOpts(opts.Colors{primaryHex}),
		charts.WithTitleOpts(opts.Title{Title: Title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: XLabel, NameLocation: "middle", NameGap: 25, Min: 0, Max: c.LengthM()}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: YLabel, NameLocation: "middle", NameGap: 50}),
	)
	line.AddSeries("Deflection", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	return line.Render(w)
}
