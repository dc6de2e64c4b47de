// Package view holds the dashboard layout and the reactive binding that maps
// the selected categorical variable to the four chart regions.
package view

import "github.com/iammorganparry/bankdash/internal/dataset"

// DefaultTitle is the page heading when none is configured.
const DefaultTitle = "Banking Insights Dashboard"

// Region ids, in display order.
const (
	RegionAgeDistribution  = "age_distribution"
	RegionSubscriptionRate = "subscription_rate"
	RegionContactDuration  = "contact_duration"
	RegionMonthlyTrends    = "monthly_trends"
)

// NumRegions is the number of chart regions on the page.
const NumRegions = 4

// Regions lists the chart regions in the order Update fills them.
var Regions = [NumRegions]string{
	RegionAgeDistribution,
	RegionSubscriptionRate,
	RegionContactDuration,
	RegionMonthlyTrends,
}

// Categories is the selector domain. The first entry is the initial value.
var Categories = []string{
	dataset.ColJob,
	dataset.ColMarital,
	dataset.ColEducation,
	dataset.ColHousing,
	dataset.ColLoan,
	dataset.ColContact,
	dataset.ColPoutcome,
}

// DefaultCategory is the selector's initial value.
var DefaultCategory = Categories[0]

// Layout is the static page structure.
type Layout struct {
	Title         string
	SelectorLabel string
	Options       []string
	Default       string
	Regions       []string
}

// NewLayout returns the page layout. An empty title uses DefaultTitle.
func NewLayout(title string) Layout {
	if title == "" {
		title = DefaultTitle
	}
	return Layout{
		Title:         title,
		SelectorLabel: "Select Categorical Variable:",
		Options:       append([]string(nil), Categories...),
		Default:       DefaultCategory,
		Regions:       append([]string(nil), Regions[:]...),
	}
}

// IsCategory reports whether name is a selector option.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// IsRegion reports whether id names a chart region.
func IsRegion(id string) bool {
	for _, r := range Regions {
		if r == id {
			return true
		}
	}
	return false
}
