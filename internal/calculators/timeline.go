package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/compare"
	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// TimelineInputs rank fixed, points-bought and ARM pricing by expected cost
// through an expected move month, weighting the ARM path by how likely the
// borrower is to refinance before the adjustment bites.
type TimelineInputs struct {
	LoanAmount        decimal.Decimal
	TermYears         int
	FixedRatePercent  decimal.Decimal
	PointsRatePercent decimal.Decimal
	PointsCostPercent decimal.Decimal
	TeaserRatePercent decimal.Decimal
	TeaserYears       int
	AnnualStepPercent decimal.Decimal
	LifetimeCapPct    decimal.Decimal
	RefiLikelihoodPct decimal.Decimal // chance of refinancing at the adjustment
	RefiClosingCosts  decimal.Decimal
	MoveMonth         int
}

// TimelineOption is one financing path with its expected cost to the move
// month.
type TimelineOption struct {
	Name         string          `json:"name"`
	Payment      decimal.Decimal `json:"payment"`
	Upfront      decimal.Decimal `json:"upfront"`
	ExpectedCost decimal.Decimal `json:"expectedCost"`
}

// TimelineResult carries the ranked options.
type TimelineResult struct {
	Options   []TimelineOption `json:"options"`
	MoveMonth int              `json:"moveMonth"`
	Ranking   compare.Ranking  `json:"ranking"`
}

// CalculateTimeline prices three paths through the expected move month. The
// fixed and points paths are deterministic. The ARM path is a probability
// blend: with the given likelihood the borrower refinances back to the fixed
// rate at the first adjustment and pays closing costs; otherwise they ride
// the worst-case adjustment schedule.
func CalculateTimeline(in TimelineInputs) *TimelineResult {
	if in.LoanAmount.LessThanOrEqual(decimal.Zero) || in.TermYears <= 0 ||
		in.TeaserYears <= 0 || in.MoveMonth <= 0 {
		return nil
	}

	months := decimal.NewFromInt(int64(min(in.MoveMonth, in.TermYears*domain.MonthsPerYear)))

	fixedPayment := finance.MonthlyPayment(in.LoanAmount, in.FixedRatePercent, in.TermYears)
	fixed := TimelineOption{
		Name:         "Fixed",
		Payment:      fixedPayment,
		Upfront:      decimal.Zero,
		ExpectedCost: fixedPayment.Mul(months),
	}

	pointsUpfront := in.LoanAmount.Mul(in.PointsCostPercent).Div(hundred)
	pointsPayment := finance.MonthlyPayment(in.LoanAmount, in.PointsRatePercent, in.TermYears)
	points := TimelineOption{
		Name:         "Fixed With Points",
		Payment:      pointsPayment,
		Upfront:      pointsUpfront,
		ExpectedCost: pointsUpfront.Add(pointsPayment.Mul(months)),
	}

	armWorst := CalculateARMVsFixed(ARMVsFixedInputs{
		LoanAmount:        in.LoanAmount,
		TermYears:         in.TermYears,
		FixedRatePercent:  in.FixedRatePercent,
		TeaserRatePercent: in.TeaserRatePercent,
		TeaserYears:       in.TeaserYears,
		AnnualStepPercent: in.AnnualStepPercent,
		LifetimeCapPct:    in.LifetimeCapPct,
		MoveMonth:         in.MoveMonth,
	})
	if armWorst == nil {
		return nil
	}

	// Refi path: teaser payments through the fixed period, then the balance
	// rolls into a new fixed loan for the remaining stay.
	teaserMonths := in.TeaserYears * domain.MonthsPerYear
	teaserTerms := domain.LoanTerms{Principal: in.LoanAmount, AnnualRatePercent: in.TeaserRatePercent, TermYears: in.TermYears}
	armRefiCost := armWorst.TeaserPayment.Mul(months)
	if in.MoveMonth > teaserMonths {
		teaserSchedule := finance.BuildSchedule(teaserTerms, nil)
		balance := teaserSchedule.BalanceAt(teaserMonths)
		remainingYears := in.TermYears - in.TeaserYears
		if remainingYears <= 0 {
			remainingYears = 1
		}
		refiPayment := finance.MonthlyPayment(balance, in.FixedRatePercent, remainingYears)
		postMonths := decimal.NewFromInt(int64(in.MoveMonth - teaserMonths))
		armRefiCost = armWorst.TeaserPayment.Mul(decimal.NewFromInt(int64(teaserMonths))).
			Add(refiPayment.Mul(postMonths)).
			Add(in.RefiClosingCosts)
	}

	p := clampPercent(in.RefiLikelihoodPct).Div(hundred)
	expectedARM := armRefiCost.Mul(p).Add(armWorst.ARMCost.Mul(decimal.NewFromInt(1).Sub(p)))
	arm := TimelineOption{
		Name:         "ARM",
		Payment:      armWorst.TeaserPayment,
		Upfront:      decimal.Zero,
		ExpectedCost: expectedARM,
	}

	options := []TimelineOption{fixed, points, arm}
	rankInput := make([]compare.Option, len(options))
	for i, opt := range options {
		rankInput[i] = compare.Option{Name: opt.Name, UpfrontCost: opt.Upfront, MonthlyCost: opt.Payment, TotalCost: opt.ExpectedCost}
	}

	return &TimelineResult{Options: options, MoveMonth: in.MoveMonth, Ranking: compare.Rank(rankInput)}
}

func clampPercent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}

// Result adapts the typed result to the common contract.
func (r *TimelineResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "timeline",
		Summary: fmt.Sprintf("By expected cost through %s, %s is the best financing path.",
			monthsLabel(r.MoveMonth), r.Ranking.Best),
	}
	keys := map[string]string{"Fixed": "fixed", "Fixed With Points": "points", "ARM": "arm"}
	for _, opt := range r.Options {
		key := keys[opt.Name]
		out.AddUSD(key+"Payment", opt.Name+" Starting Payment", opt.Payment)
		out.AddUSD(key+"ExpectedCost", opt.Name+" Expected Cost", opt.ExpectedCost)
	}
	out.AddText("bestOption", "Best Option", r.Ranking.Best)
	out.Insights = append(out.Insights, r.Ranking.Recommendations...)
	out.Insights = append(out.Insights,
		"Expected cost blends the refinance and ride-it-out paths; a higher refinance likelihood makes the ARM look better.")
	return out
}

func timelineDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "timeline",
		Name:        "Timeline Simulator",
		Description: "Rank fixed, points and ARM paths by expected cost for your stay and refinance odds.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "fixedRate", Label: "Fixed Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "pointsRate", Label: "Bought-Down Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "pointsCost", Label: "Points Cost", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "teaserRate", Label: "ARM Teaser Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "teaserYears", Label: "Teaser Period", Unit: domain.UnitYears, Default: "5"},
			{Key: "annualStep", Label: "Annual Adjustment Step", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "lifetimeCap", Label: "Lifetime Cap Above Teaser", Unit: domain.UnitPercent, Default: "5.0"},
			{Key: "refiLikelihood", Label: "Refinance Likelihood", Unit: domain.UnitPercent, Default: "50"},
			{Key: "refiClosingCosts", Label: "Refinance Closing Costs", Unit: domain.UnitUSD, Default: "6000"},
			{Key: "moveMonth", Label: "Expected Move Month", Unit: domain.UnitMonths, Default: "84"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateTimeline(TimelineInputs{
				LoanAmount:        p.Decimal("loanAmount"),
				TermYears:         p.IntOr("loanTerm", 30),
				FixedRatePercent:  p.Decimal("fixedRate"),
				PointsRatePercent: p.Decimal("pointsRate"),
				PointsCostPercent: p.DecimalOr("pointsCost", decimal.NewFromInt(1)),
				TeaserRatePercent: p.Decimal("teaserRate"),
				TeaserYears:       p.IntOr("teaserYears", 5),
				AnnualStepPercent: p.DecimalOr("annualStep", decimal.RequireFromString("1.0")),
				LifetimeCapPct:    p.DecimalOr("lifetimeCap", decimal.RequireFromString("5.0")),
				RefiLikelihoodPct: p.DecimalOr("refiLikelihood", decimal.NewFromInt(50)),
				RefiClosingCosts:  p.DecimalOr("refiClosingCosts", decimal.NewFromInt(6000)),
				MoveMonth:         p.IntOr("moveMonth", 84),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
