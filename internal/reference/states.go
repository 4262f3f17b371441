// Package reference holds the static lookup tables the planner compares
// against: per-state average monthly costs and supported currency metadata.
// Both are fixed for the lifetime of the process.
package reference

import "sort"

// StateCosts holds average monthly expenses for one U.S. state, in USD.
type StateCosts struct {
	Rent           int
	Food           int
	Utilities      int
	Transportation int
	Misc           int
}

// Total returns the sum of all five category averages.
func (s StateCosts) Total() int {
	return s.Rent + s.Food + s.Utilities + s.Transportation + s.Misc
}

// Costs maps state names to their average monthly student expenses.
// Approximate figures gathered from cost-of-living surveys.
var Costs = map[string]StateCosts{
	"California":     {Rent: 1800, Food: 450, Utilities: 150, Transportation: 120, Misc: 350},
	"New York":       {Rent: 1700, Food: 420, Utilities: 140, Transportation: 110, Misc: 330},
	"Massachusetts":  {Rent: 1600, Food: 400, Utilities: 135, Transportation: 105, Misc: 310},
	"Hawaii":         {Rent: 2100, Food: 550, Utilities: 180, Transportation: 140, Misc: 400},
	"Washington":     {Rent: 1450, Food: 380, Utilities: 130, Transportation: 100, Misc: 290},
	"Oregon":         {Rent: 1350, Food: 370, Utilities: 125, Transportation: 95, Misc: 270},
	"Colorado":       {Rent: 1300, Food: 360, Utilities: 120, Transportation: 90, Misc: 250},
	"Florida":        {Rent: 1200, Food: 340, Utilities: 145, Transportation: 85, Misc: 230},
	"Texas":          {Rent: 1100, Food: 320, Utilities: 125, Transportation: 80, Misc: 220},
	"Illinois":       {Rent: 1150, Food: 330, Utilities: 115, Transportation: 85, Misc: 230},
	"North Carolina": {Rent: 950, Food: 300, Utilities: 110, Transportation: 75, Misc: 190},
	"Georgia":        {Rent: 1000, Food: 310, Utilities: 115, Transportation: 75, Misc: 200},
	"Arizona":        {Rent: 1050, Food: 320, Utilities: 125, Transportation: 80, Misc: 210},
	"Tennessee":      {Rent: 900, Food: 280, Utilities: 105, Transportation: 70, Misc: 170},
	"Ohio":           {Rent: 850, Food: 290, Utilities: 100, Transportation: 70, Misc: 180},
	"Pennsylvania":   {Rent: 950, Food: 310, Utilities: 110, Transportation: 75, Misc: 190},
	"Michigan":       {Rent: 850, Food: 300, Utilities: 105, Transportation: 70, Misc: 180},
	"Virginia":       {Rent: 1150, Food: 330, Utilities: 120, Transportation: 85, Misc: 230},
	"Indiana":        {Rent: 800, Food: 280, Utilities: 95, Transportation: 65, Misc: 160},
	"Oklahoma":       {Rent: 750, Food: 270, Utilities: 90, Transportation: 60, Misc: 150},
	"West Virginia":  {Rent: 700, Food: 260, Utilities: 85, Transportation: 55, Misc: 140},
}

// Lookup returns the cost table entry for a state.
func Lookup(state string) (StateCosts, bool) {
	c, ok := Costs[state]
	return c, ok
}

// StateNames returns all state names in sorted order.
func StateNames() []string {
	names := make([]string, 0, len(Costs))
	for name := range Costs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
