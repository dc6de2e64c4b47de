package tui

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/iammorganparry/bankdash/internal/figure"
)

// renderPanel draws a figure as text inside a bordered box of the given width
func renderPanel(fig *figure.Figure, width int) string {
	if fig == nil {
		return PanelStyle.Width(width).Render(DimStyle.Render("no data"))
	}

	inner := width - 4
	var body string
	switch fig.Kind {
	case figure.KindHistogram:
		body = histogramText(fig, inner)
	case figure.KindBar:
		body = barText(fig, inner)
	case figure.KindScatter:
		body = scatterText(fig)
	case figure.KindGroupedBar:
		body = groupedText(fig)
	default:
		body = DimStyle.Render("unsupported figure kind " + string(fig.Kind))
	}
	return PanelStyle.Width(width).Render(PanelTitleStyle.Render(fig.Title) + "\n" + body)
}

func histogramText(fig *figure.Figure, width int) string {
	color := figure.ColorBlue
	if len(fig.Series) > 0 {
		color = fig.Series[0].Color
	}
	style := seriesStyle(color)

	maxCount := 0
	for _, b := range fig.Bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	barWidth := width - 20
	if barWidth < 1 {
		barWidth = 1
	}

	var lines []string
	for _, b := range fig.Bins {
		label := fmt.Sprintf("%5.1f-%5.1f", b.Min, b.Max)
		lines = append(lines, fmt.Sprintf("%s %s %d", label, style.Render(bar(b.Count, maxCount, barWidth)), b.Count))
	}
	return strings.Join(lines, "\n")
}

func barText(fig *figure.Figure, width int) string {
	maxCount := 0
	for _, s := range fig.Series {
		for _, c := range s.Counts {
			if c > maxCount {
				maxCount = c
			}
		}
	}
	barWidth := width - 16
	if barWidth < 1 {
		barWidth = 1
	}

	var lines []string
	for _, s := range fig.Series {
		total := 0
		for _, c := range s.Counts {
			total += c
		}
		lines = append(lines, fmt.Sprintf("%-5s %s %d",
			s.Name, seriesStyle(s.Color).Render(bar(total, maxCount, barWidth)), total))
	}
	return strings.Join(lines, "\n")
}

// scatterText summarizes each series' x values
func scatterText(fig *figure.Figure) string {
	lines := []string{DimStyle.Render(fmt.Sprintf("%-5s %7s %8s %8s %8s", "", "n", "min", "max", "mean"))}
	for _, s := range fig.Series {
		if len(s.Points) == 0 {
			lines = append(lines, seriesStyle(s.Color).Render(fmt.Sprintf("%-5s %7d", s.Name, 0)))
			continue
		}
		xs := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = p.X
		}
		lines = append(lines, seriesStyle(s.Color).Render(fmt.Sprintf("%-5s %7d %8.0f %8.0f %8.1f",
			s.Name, len(xs), floats.Min(xs), floats.Max(xs), stat.Mean(xs, nil))))
	}
	return strings.Join(lines, "\n")
}

func groupedText(fig *figure.Figure) string {
	header := fmt.Sprintf("%-6s", "")
	for _, s := range fig.Series {
		header += seriesStyle(s.Color).Render(fmt.Sprintf("%7s", s.Name))
	}
	lines := []string{header}
	for i, c := range fig.Categories {
		line := fmt.Sprintf("%-6s", c)
		for _, s := range fig.Series {
			n := 0
			if i < len(s.Counts) {
				n = s.Counts[i]
			}
			line += seriesStyle(s.Color).Render(fmt.Sprintf("%7d", n))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// bar returns a run of block characters proportional to n/max
func bar(n, max, width int) string {
	if max <= 0 || n <= 0 {
		return ""
	}
	w := n * width / max
	if w == 0 {
		w = 1
	}
	return strings.Repeat("█", w)
}
