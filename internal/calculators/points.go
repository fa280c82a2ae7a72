package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/compare"
	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// PointsInputs describe a rate sheet with three pricing tiers around par.
type PointsInputs struct {
	LoanAmount     decimal.Decimal
	TermYears      int
	ParRatePercent decimal.Decimal
	PointsCost     decimal.Decimal // upfront cost of buying down, as percent of loan
	PointsRate     decimal.Decimal // the bought-down rate
	CreditPercent  decimal.Decimal // lender credit, as percent of loan
	CreditRate     decimal.Decimal // the rate carrying that credit
	MonthsHeld     int
}

// PointsOption is one pricing tier evaluated over the holding period.
type PointsOption struct {
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Upfront     decimal.Decimal `json:"upfront"`
	Payment     decimal.Decimal `json:"payment"`
	CostHeld    decimal.Decimal `json:"costHeld"`
}

// PointsResult ranks par pricing against paying points and taking credits.
type PointsResult struct {
	Par        PointsOption    `json:"par"`
	Points     PointsOption    `json:"points"`
	Credits    PointsOption    `json:"credits"`
	MonthsHeld int             `json:"monthsHeld"`
	Ranking    compare.Ranking `json:"ranking"`
}

// CalculatePoints compares three pricing tiers over how long the borrower
// expects to hold the loan. Cost over the holding period is the upfront
// amount paid (negative for a credit) plus payment times months held.
func CalculatePoints(in PointsInputs) *PointsResult {
	if in.LoanAmount.LessThanOrEqual(decimal.Zero) || in.TermYears <= 0 || in.MonthsHeld <= 0 {
		return nil
	}
	if in.ParRatePercent.IsNegative() || in.PointsRate.IsNegative() || in.CreditRate.IsNegative() {
		return nil
	}

	months := decimal.NewFromInt(int64(in.MonthsHeld))
	tier := func(name string, rate, upfrontPct decimal.Decimal) PointsOption {
		upfront := in.LoanAmount.Mul(upfrontPct).Div(hundred)
		payment := finance.MonthlyPayment(in.LoanAmount, rate, in.TermYears)
		return PointsOption{
			Name:        name,
			RatePercent: rate,
			Upfront:     upfront,
			Payment:     payment,
			CostHeld:    upfront.Add(payment.Mul(months)),
		}
	}

	par := tier("Par Pricing", in.ParRatePercent, decimal.Zero)
	points := tier("Pay Points", in.PointsRate, in.PointsCost)
	credits := tier("Lender Credits", in.CreditRate, in.CreditPercent.Neg())

	ranking := compare.Rank([]compare.Option{
		{Name: par.Name, UpfrontCost: par.Upfront, MonthlyCost: par.Payment, TotalCost: par.CostHeld},
		{Name: points.Name, UpfrontCost: points.Upfront, MonthlyCost: points.Payment, TotalCost: points.CostHeld},
		{Name: credits.Name, UpfrontCost: credits.Upfront, MonthlyCost: credits.Payment, TotalCost: credits.CostHeld},
	})

	return &PointsResult{Par: par, Points: points, Credits: credits, MonthsHeld: in.MonthsHeld, Ranking: ranking}
}

// Result adapts the typed result to the common contract.
func (r *PointsResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "points",
		Summary: fmt.Sprintf("Over %s held, %s is the cheapest pricing tier.",
			monthsLabel(r.MonthsHeld), r.Ranking.Best),
	}
	for _, opt := range []PointsOption{r.Par, r.Points, r.Credits} {
		key := map[string]string{"Par Pricing": "par", "Pay Points": "points", "Lender Credits": "credits"}[opt.Name]
		out.AddPercent(key+"Rate", opt.Name+" Rate", opt.RatePercent)
		out.AddUSD(key+"Payment", opt.Name+" Payment", opt.Payment)
		out.AddUSD(key+"CostHeld", opt.Name+" Cost Over Period", opt.CostHeld)
	}
	out.AddText("bestOption", "Best Option", r.Ranking.Best)
	out.Insights = append(out.Insights, r.Ranking.Recommendations...)
	out.Insights = append(out.Insights,
		"Points pay off only if you keep the loan past the break-even point; a short expected stay favors credits.")
	return out
}

func pointsDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "points",
		Name:        "Points and Credits",
		Description: "Weigh buying down the rate against taking lender credits for your expected stay.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "parRate", Label: "Par Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "pointsCost", Label: "Points Cost", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "pointsRate", Label: "Bought-Down Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "creditPercent", Label: "Lender Credit", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "creditRate", Label: "Credit Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "monthsHeld", Label: "Months You Expect to Keep the Loan", Unit: domain.UnitMonths, Default: "84"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculatePoints(PointsInputs{
				LoanAmount:     p.Decimal("loanAmount"),
				TermYears:      p.IntOr("loanTerm", 30),
				ParRatePercent: p.Decimal("parRate"),
				PointsCost:     p.DecimalOr("pointsCost", decimal.NewFromInt(1)),
				PointsRate:     p.Decimal("pointsRate"),
				CreditPercent:  p.DecimalOr("creditPercent", decimal.NewFromInt(1)),
				CreditRate:     p.Decimal("creditRate"),
				MonthsHeld:     p.IntOr("monthsHeld", 84),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
