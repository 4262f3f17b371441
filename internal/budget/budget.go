// Package budget implements the planner's arithmetic core: expense
// aggregation, comparison against state reference costs, and per-category
// breakdowns. All functions are pure; amounts stay unrounded until display.
package budget

import "github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

// Category is one of the five fixed monthly expense categories.
type Category int

const (
	Housing Category = iota
	Food
	Utilities
	Transportation
	Misc
	numCategories // sentinel
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case Housing:
		return "Housing"
	case Food:
		return "Food"
	case Utilities:
		return "Utilities"
	case Transportation:
		return "Transportation"
	case Misc:
		return "Miscellaneous"
	default:
		return "Unknown"
	}
}

// Categories returns all categories in their declared display order.
func Categories() []Category {
	return []Category{Housing, Food, Utilities, Transportation, Misc}
}

// categoryLimits bounds each monthly input amount in USD.
var categoryLimits = [numCategories]float64{
	Housing:        5000,
	Food:           1000,
	Utilities:      500,
	Transportation: 500,
	Misc:           1000,
}

// Limit returns the maximum allowed monthly amount for a category.
func Limit(c Category) float64 {
	if c < 0 || c >= numCategories {
		return 0
	}
	return categoryLimits[c]
}

// Clamp bounds an entered amount to [0, Limit(c)].
func Clamp(c Category, amount float64) float64 {
	if amount < 0 {
		return 0
	}
	if limit := Limit(c); amount > limit {
		return limit
	}
	return amount
}

// Duration bounds, in months.
const (
	MinMonths     = 3
	MaxMonths     = 60
	MonthsStep    = 3
	DefaultMonths = 12
)

// ClampMonths bounds a study duration to [MinMonths, MaxMonths] snapped down
// to the step.
func ClampMonths(months int) int {
	if months < MinMonths {
		return MinMonths
	}
	if months > MaxMonths {
		return MaxMonths
	}
	return months - months%MonthsStep
}

// Expenses holds the user's monthly amounts per category, in USD.
type Expenses struct {
	Housing        float64
	Food           float64
	Utilities      float64
	Transportation float64
	Misc           float64
}

// Amount returns the entered amount for a category.
func (e Expenses) Amount(c Category) float64 {
	switch c {
	case Housing:
		return e.Housing
	case Food:
		return e.Food
	case Utilities:
		return e.Utilities
	case Transportation:
		return e.Transportation
	case Misc:
		return e.Misc
	default:
		return 0
	}
}

// WithAmount returns a copy with one category set to the clamped amount.
func (e Expenses) WithAmount(c Category, amount float64) Expenses {
	amount = Clamp(c, amount)
	switch c {
	case Housing:
		e.Housing = amount
	case Food:
		e.Food = amount
	case Utilities:
		e.Utilities = amount
	case Transportation:
		e.Transportation = amount
	case Misc:
		e.Misc = amount
	}
	return e
}

// Total returns the exact monthly sum across all categories.
func (e Expenses) Total() float64 {
	return e.Housing + e.Food + e.Utilities + e.Transportation + e.Misc
}

// FromReference fills every category from a state's average costs, the
// "use average values" bulk action. The zero Expenses value is "clear all".
func FromReference(ref reference.StateCosts) Expenses {
	return Expenses{
		Housing:        Clamp(Housing, float64(ref.Rent)),
		Food:           Clamp(Food, float64(ref.Food)),
		Utilities:      Clamp(Utilities, float64(ref.Utilities)),
		Transportation: Clamp(Transportation, float64(ref.Transportation)),
		Misc:           Clamp(Misc, float64(ref.Misc)),
	}
}
