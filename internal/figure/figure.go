// Package figure describes charts declaratively. A Figure says what to draw
// (kind, data mapping, colors); front ends decide how.
package figure

// Kind is the chart type of a Figure.
type Kind string

const (
	KindHistogram  Kind = "histogram"
	KindBar        Kind = "bar"
	KindScatter    Kind = "scatter"
	KindGroupedBar Kind = "grouped-bar"
)

// BarMode controls how bars of several series share one category.
type BarMode string

const (
	BarModeRelative BarMode = "relative"
	BarModeGroup    BarMode = "group"
)

// Named colors used by the dashboard.
const (
	ColorBlue  = "blue"
	ColorGreen = "green"
	ColorRed   = "red"
	ColorGray  = "gray"
)

// Figure is one chart.
type Figure struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	XLabel string `json:"xLabel"`
	YLabel string `json:"yLabel"`

	// Histogram only.
	Bins []Bin `json:"bins,omitempty"`

	// Categories is the nominal axis: x for bar kinds, y for scatter.
	Categories []string `json:"categories,omitempty"`

	Series  []Series `json:"series"`
	BarMode BarMode  `json:"barMode,omitempty"`
}

// Bin is a histogram bucket covering [Min, Max). The last bin of a
// histogram also holds values equal to its Max.
type Bin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Series is one colored trace.
type Series struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	// Counts is aligned with Figure.Categories for bar kinds.
	Counts []int `json:"counts,omitempty"`
	// Points holds scatter data; Y indexes Figure.Categories.
	Points []Point `json:"points,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SeriesByName returns the series with the given name, or nil.
func (f *Figure) SeriesByName(name string) *Series {
	for i := range f.Series {
		if f.Series[i].Name == name {
			return &f.Series[i]
		}
	}
	return nil
}

// Count returns the bar count of series name at category, or 0.
func (f *Figure) Count(name, category string) int {
	s := f.SeriesByName(name)
	if s == nil {
		return 0
	}
	for i, c := range f.Categories {
		if c == category && i < len(s.Counts) {
			return s.Counts[i]
		}
	}
	return 0
}
