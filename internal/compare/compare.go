// Package compare ranks financing options against each other. The recast,
// points and rate-timeline calculators all reduce to the same shape: a set
// of named options with upfront and recurring costs, ranked by total cost
// over a horizon, with diffs reported against the best option.
package compare

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Option is one financing alternative under comparison.
type Option struct {
	Name        string          `json:"name"`
	UpfrontCost decimal.Decimal `json:"upfrontCost"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	TotalCost   decimal.Decimal `json:"totalCost"`

	// DiffFromBest is filled in by Rank: how much more this option costs
	// than the winner over the horizon.
	DiffFromBest decimal.Decimal `json:"diffFromBest"`
}

// Ranking is an ordered comparison, cheapest total cost first.
type Ranking struct {
	Options         []Option `json:"options"`
	Best            string   `json:"best"`
	Recommendations []string `json:"recommendations"`
}

// Rank orders options by ascending total cost and computes each option's
// distance from the winner. Order among equal-cost options follows input
// order, so rankings are deterministic.
func Rank(options []Option) Ranking {
	ranked := make([]Option, len(options))
	copy(ranked, options)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCost.LessThan(ranked[j].TotalCost)
	})

	ranking := Ranking{Options: ranked}
	if len(ranked) == 0 {
		return ranking
	}

	best := ranked[0]
	ranking.Best = best.Name
	for i := range ranking.Options {
		ranking.Options[i].DiffFromBest = ranking.Options[i].TotalCost.Sub(best.TotalCost)
	}
	ranking.Recommendations = recommendations(ranking)
	return ranking
}

// recommendations generates the short prose takeaways shown under a
// ranked comparison.
func recommendations(r Ranking) []string {
	if len(r.Options) < 2 {
		return nil
	}
	best := r.Options[0]
	runnerUp := r.Options[1]

	out := []string{fmt.Sprintf("%s is the cheapest option over this horizon, beating %s by $%s.",
		best.Name, runnerUp.Name, runnerUp.DiffFromBest.StringFixed(0))}

	// Flag a cheaper-monthly option that loses overall: a common trap.
	for _, opt := range r.Options[1:] {
		if opt.MonthlyCost.LessThan(best.MonthlyCost) {
			out = append(out, fmt.Sprintf(
				"%s has the lower monthly payment but costs $%s more in total; cheaper monthly is not cheaper overall.",
				opt.Name, opt.DiffFromBest.StringFixed(0)))
			break
		}
	}
	return out
}
