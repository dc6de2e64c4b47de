package view

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/iammorganparry/bankdash/internal/dataset"
	"github.com/iammorganparry/bankdash/internal/figure"
)

// AgeBins is the number of equal-width bins in the age histogram.
const AgeBins = 20

// Outcome labels of the y column.
const (
	OutcomeYes = "yes"
	OutcomeNo  = "no"
)

// ErrUnknownCategory is returned for a selector value outside Categories.
var ErrUnknownCategory = errors.New("unknown categorical variable")

// RenderError reports a chart region whose figure could not be computed.
type RenderError struct {
	Region string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Region, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Panels is the output of one Update: a figure per region, in Regions order.
type Panels struct {
	Category string
	Figures  [NumRegions]*figure.Figure
}

// Figure returns the figure for a region id, or nil.
func (p Panels) Figure(region string) *figure.Figure {
	for i, r := range Regions {
		if r == region {
			return p.Figures[i]
		}
	}
	return nil
}

// OutcomeColor maps an outcome label to its chart color.
func OutcomeColor(outcome string) string {
	switch outcome {
	case OutcomeYes:
		return figure.ColorGreen
	case OutcomeNo:
		return figure.ColorRed
	default:
		return figure.ColorGray
	}
}

// Update computes the four chart figures for the selected category. It reads
// ds and nothing else, so equal inputs give equal figures.
//
// The category is validated and recorded on the result but does not change
// what is plotted.
func Update(ds *dataset.Dataset, category string) (Panels, error) {
	if !IsCategory(category) {
		return Panels{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	builders := [NumRegions]func(*dataset.Dataset) (*figure.Figure, error){
		ageDistribution,
		subscriptionRate,
		contactDuration,
		monthlyTrends,
	}

	p := Panels{Category: category}
	for i, build := range builders {
		fig, err := build(ds)
		if err != nil {
			return Panels{}, &RenderError{Region: Regions[i], Err: err}
		}
		p.Figures[i] = fig
	}
	return p, nil
}

func ageDistribution(ds *dataset.Dataset) (*figure.Figure, error) {
	ages, err := ds.Floats(dataset.ColAge)
	if err != nil {
		return nil, err
	}
	return &figure.Figure{
		ID:     RegionAgeDistribution,
		Kind:   figure.KindHistogram,
		Title:  "Age Distribution",
		XLabel: "Age",
		YLabel: "Frequency",
		Bins:   histogram(ages, AgeBins),
		Series: []figure.Series{{Name: dataset.ColAge, Color: figure.ColorBlue}},
	}, nil
}

func subscriptionRate(ds *dataset.Dataset) (*figure.Figure, error) {
	outcomes, err := ds.Strings(dataset.ColOutcome)
	if err != nil {
		return nil, err
	}
	order := uniqueInOrder(outcomes)
	fig := &figure.Figure{
		ID:         RegionSubscriptionRate,
		Kind:       figure.KindBar,
		Title:      "Subscription Rate",
		XLabel:     "Subscribed",
		YLabel:     "Count",
		Categories: order,
		BarMode:    figure.BarModeRelative,
	}
	totals := make(map[string]int, len(order))
	for _, v := range outcomes {
		totals[v]++
	}
	for i, o := range order {
		counts := make([]int, len(order))
		counts[i] = totals[o]
		fig.Series = append(fig.Series, figure.Series{Name: o, Color: OutcomeColor(o), Counts: counts})
	}
	return fig, nil
}

func contactDuration(ds *dataset.Dataset) (*figure.Figure, error) {
	durations, err := ds.Floats(dataset.ColDuration)
	if err != nil {
		return nil, err
	}
	outcomes, err := ds.Strings(dataset.ColOutcome)
	if err != nil {
		return nil, err
	}
	order := uniqueInOrder(outcomes)
	pos := positions(order)
	series := make([]figure.Series, len(order))
	for i, o := range order {
		series[i] = figure.Series{Name: o, Color: OutcomeColor(o)}
	}
	for i, d := range durations {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		k := pos[outcomes[i]]
		series[k].Points = append(series[k].Points, figure.Point{X: d, Y: float64(k)})
	}
	return &figure.Figure{
		ID:         RegionContactDuration,
		Kind:       figure.KindScatter,
		Title:      "Contact Duration vs. Subscription",
		XLabel:     "Contact Duration (seconds)",
		YLabel:     "Subscribed",
		Categories: order,
		Series:     series,
	}, nil
}

func monthlyTrends(ds *dataset.Dataset) (*figure.Figure, error) {
	months, err := ds.Strings(dataset.ColMonth)
	if err != nil {
		return nil, err
	}
	outcomes, err := ds.Strings(dataset.ColOutcome)
	if err != nil {
		return nil, err
	}
	monthOrder := uniqueInOrder(months)
	outcomeOrder := uniqueInOrder(outcomes)
	series := make([]figure.Series, len(outcomeOrder))
	for i, o := range outcomeOrder {
		series[i] = figure.Series{Name: o, Color: OutcomeColor(o), Counts: make([]int, len(monthOrder))}
	}
	monthPos, outcomePos := positions(monthOrder), positions(outcomeOrder)
	for i, m := range months {
		series[outcomePos[outcomes[i]]].Counts[monthPos[m]]++
	}
	return &figure.Figure{
		ID:         RegionMonthlyTrends,
		Kind:       figure.KindGroupedBar,
		Title:      "Monthly Subscription Trends",
		XLabel:     "Month",
		YLabel:     "Count",
		Categories: monthOrder,
		Series:     series,
		BarMode:    figure.BarModeGroup,
	}, nil
}

// histogram splits the finite values into n equal-width bins spanning
// [min, max]. With no spread the range is widened to one unit.
func histogram(values []float64, n int) []figure.Bin {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			xs = append(xs, v)
		}
	}
	sort.Float64s(xs)

	lo, hi := 0.0, 1.0
	if len(xs) > 0 {
		lo, hi = xs[0], xs[len(xs)-1]
	}
	if hi <= lo {
		hi = lo + 1
	}

	dividers := floats.Span(make([]float64, n+1), lo, hi)
	dividers[n] = hi

	counts := make([]float64, n)
	if len(xs) > 0 {
		// stat.Histogram treats the top divider as exclusive.
		edges := append([]float64(nil), dividers...)
		edges[n] = math.Nextafter(hi, math.Inf(1))
		stat.Histogram(counts, edges, xs, nil)
	}

	bins := make([]figure.Bin, n)
	for i := range bins {
		bins[i] = figure.Bin{Min: dividers[i], Max: dividers[i+1], Count: int(counts[i])}
	}
	return bins
}

func uniqueInOrder(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func positions(values []string) map[string]int {
	pos := make(map[string]int, len(values))
	for i, v := range values {
		pos[v] = i
	}
	return pos
}
