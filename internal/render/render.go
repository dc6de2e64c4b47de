// Package render draws figures as images with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iammorganparry/bankdash/internal/figure"
)

// Default image size of one chart region.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrUnsupportedFormat is returned for an image format other than svg or png.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var formats = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
}

// ContentType returns the MIME type for format.
func ContentType(format string) (string, error) {
	ct, ok := formats[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return ct, nil
}

var palette = map[string]color.Color{
	figure.ColorBlue:  color.RGBA{B: 255, A: 255},
	figure.ColorGreen: color.RGBA{G: 128, A: 255},
	figure.ColorRed:   color.RGBA{R: 255, A: 255},
	figure.ColorGray:  color.RGBA{R: 128, G: 128, B: 128, A: 255},
}

// Color resolves a figure color name. Unknown names draw gray.
func Color(name string) color.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette[figure.ColorGray]
}

// Write draws fig to w in the given format.
func Write(w io.Writer, fig *figure.Figure, format string, width, height vg.Length) error {
	if _, err := ContentType(format); err != nil {
		return err
	}
	p, err := Plot(fig)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// Plot builds the gonum plot for fig.
func Plot(fig *figure.Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Legend.Top = true

	var err error
	switch fig.Kind {
	case figure.KindHistogram:
		err = addHistogram(p, fig)
	case figure.KindBar, figure.KindGroupedBar:
		err = addBars(p, fig)
	case figure.KindScatter:
		err = addScatter(p, fig)
	default:
		err = fmt.Errorf("unknown figure kind %q", fig.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("plot %s: %w", fig.ID, err)
	}
	return p, nil
}

func addHistogram(p *plot.Plot, fig *figure.Figure) error {
	if len(fig.Bins) == 0 {
		return errors.New("histogram has no bins")
	}
	fill := palette[figure.ColorBlue]
	if len(fig.Series) > 0 {
		fill = Color(fig.Series[0].Color)
	}
	bins := make([]plotter.HistogramBin, len(fig.Bins))
	for i, b := range fig.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	p.Add(&plotter.Histogram{
		Bins:      bins,
		Width:     fig.Bins[0].Max - fig.Bins[0].Min,
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	})
	return nil
}

// addBars draws one bar chart per series over the nominal x axis. Grouped
// figures place the series side by side within each category.
func addBars(p *plot.Plot, fig *figure.Figure) error {
	n := len(fig.Series)
	if n == 0 || len(fig.Categories) == 0 {
		return nil
	}
	width := vg.Points(40)
	if fig.BarMode == figure.BarModeGroup {
		width = vg.Points(float64(60) / float64(n))
	}
	for i, s := range fig.Series {
		values := make(plotter.Values, len(fig.Categories))
		for j := range values {
			if j < len(s.Counts) {
				values[j] = float64(s.Counts[j])
			}
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		bars.Color = Color(s.Color)
		bars.LineStyle.Width = 0
		if fig.BarMode == figure.BarModeGroup {
			bars.Offset = width * vg.Length(float64(i)-float64(n-1)/2)
		}
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	p.NominalX(fig.Categories...)
	return nil
}

func addScatter(p *plot.Plot, fig *figure.Figure) error {
	for _, s := range fig.Series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		sc.Color = Color(s.Color)
		sc.Shape = draw.CircleGlyph{}
		sc.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)
	}
	if len(fig.Categories) > 0 {
		p.NominalY(fig.Categories...)
	}
	return nil
}
