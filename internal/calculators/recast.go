package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/compare"
	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// RecastVsRefiInputs parameterize the three-way lump-sum comparison.
type RecastVsRefiInputs struct {
	CurrentBalance     decimal.Decimal
	CurrentRatePercent decimal.Decimal
	RemainingTermYears int
	LumpSum            decimal.Decimal
	RecastFee          decimal.Decimal
	RefiRatePercent    decimal.Decimal
	RefiTermYears      int
	RefiClosingCosts   decimal.Decimal
}

// RecastOption is one leg of the comparison.
type RecastOption struct {
	Name          string          `json:"name"`
	NewPayment    decimal.Decimal `json:"newPayment"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	Fees          decimal.Decimal `json:"fees"`
	PayoffMonths  int             `json:"payoffMonths"`
}

// RecastVsRefiResult carries the three options and their ranking by total
// interest plus fees over the comparison horizon.
type RecastVsRefiResult struct {
	Recast  RecastOption    `json:"recast"`
	Refi    RecastOption    `json:"refinance"`
	Prepay  RecastOption    `json:"prepayOnly"`
	Ranking compare.Ranking `json:"ranking"`
}

// CalculateRecastVsRefi models three uses of the same lump sum:
// (a) recast: reduce the balance and re-amortize over the remaining term at
// the current rate for a flat fee; (b) refinance: reduce the balance and
// re-amortize at a new rate and term with full closing costs; (c) prepay:
// apply the lump sum as extra principal with no payment change. Options are
// ranked by interest paid plus fees.
func CalculateRecastVsRefi(in RecastVsRefiInputs) *RecastVsRefiResult {
	if in.CurrentBalance.LessThanOrEqual(decimal.Zero) || in.LumpSum.LessThanOrEqual(decimal.Zero) ||
		in.RemainingTermYears <= 0 || in.RefiTermYears <= 0 ||
		in.CurrentRatePercent.IsNegative() || in.RefiRatePercent.IsNegative() {
		return nil
	}
	if in.LumpSum.GreaterThanOrEqual(in.CurrentBalance) {
		return nil // the lump sum retires the loan outright; nothing to compare
	}

	reduced := in.CurrentBalance.Sub(in.LumpSum)

	recastTerms := domain.LoanTerms{Principal: reduced, AnnualRatePercent: in.CurrentRatePercent, TermYears: in.RemainingTermYears}
	recastSchedule := finance.BuildSchedule(recastTerms, nil)
	recastOpt := RecastOption{
		Name:          "Recast",
		NewPayment:    finance.PaymentForTerms(recastTerms),
		TotalInterest: recastSchedule.TotalInterest(),
		Fees:          in.RecastFee,
		PayoffMonths:  recastSchedule.PayoffMonth(),
	}

	refiTerms := domain.LoanTerms{Principal: reduced, AnnualRatePercent: in.RefiRatePercent, TermYears: in.RefiTermYears}
	refiSchedule := finance.BuildSchedule(refiTerms, nil)
	refiOpt := RecastOption{
		Name:          "Refinance",
		NewPayment:    finance.PaymentForTerms(refiTerms),
		TotalInterest: refiSchedule.TotalInterest(),
		Fees:          in.RefiClosingCosts,
		PayoffMonths:  refiSchedule.PayoffMonth(),
	}

	prepayTerms := domain.LoanTerms{Principal: in.CurrentBalance, AnnualRatePercent: in.CurrentRatePercent, TermYears: in.RemainingTermYears}
	prepaySchedule := finance.BuildSchedule(prepayTerms, &domain.ExtraPaymentPlan{LumpSum: in.LumpSum, LumpSumMonth: 1})
	prepayOpt := RecastOption{
		Name:          "Prepay Only",
		NewPayment:    finance.PaymentForTerms(prepayTerms),
		TotalInterest: prepaySchedule.TotalInterest(),
		Fees:          decimal.Zero,
		PayoffMonths:  prepaySchedule.PayoffMonth(),
	}

	ranking := compare.Rank([]compare.Option{
		{Name: recastOpt.Name, UpfrontCost: recastOpt.Fees, MonthlyCost: recastOpt.NewPayment, TotalCost: recastOpt.TotalInterest.Add(recastOpt.Fees)},
		{Name: refiOpt.Name, UpfrontCost: refiOpt.Fees, MonthlyCost: refiOpt.NewPayment, TotalCost: refiOpt.TotalInterest.Add(refiOpt.Fees)},
		{Name: prepayOpt.Name, UpfrontCost: prepayOpt.Fees, MonthlyCost: prepayOpt.NewPayment, TotalCost: prepayOpt.TotalInterest.Add(prepayOpt.Fees)},
	})

	return &RecastVsRefiResult{Recast: recastOpt, Refi: refiOpt, Prepay: prepayOpt, Ranking: ranking}
}

// Result adapts the typed result to the common contract.
func (r *RecastVsRefiResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "recast-vs-refi",
		Summary:    fmt.Sprintf("%s wins: the lowest interest plus fees for this lump sum.", r.Ranking.Best),
	}
	for _, opt := range []RecastOption{r.Recast, r.Refi, r.Prepay} {
		key := map[string]string{"Recast": "recast", "Refinance": "refi", "Prepay Only": "prepay"}[opt.Name]
		out.AddUSD(key+"Payment", opt.Name+" Monthly Payment", opt.NewPayment)
		out.AddUSD(key+"Interest", opt.Name+" Total Interest", opt.TotalInterest)
	}
	out.AddText("bestOption", "Best Option", r.Ranking.Best)
	out.AddMonths("prepayPayoffMonths", "Prepay Payoff Time", r.Prepay.PayoffMonths)

	out.Insights = append(out.Insights, r.Ranking.Recommendations...)
	out.Insights = append(out.Insights,
		"Recasting keeps your current rate; it only makes sense when your rate is at or below today's market.",
		"Prepaying keeps the original payment, so it retires the loan earliest even though the monthly obligation never drops.")
	return out
}

func recastVsRefiDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "recast-vs-refi",
		Name:        "Recast vs Refinance",
		Description: "Put a lump sum to work three ways: recast, refinance or silent prepayment.",
		Fields: []Field{
			{Key: "currentBalance", Label: "Current Loan Balance", Unit: domain.UnitUSD, Required: true},
			{Key: "currentRate", Label: "Current Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "remainingTerm", Label: "Remaining Term", Unit: domain.UnitYears, Default: "25"},
			{Key: "lumpSum", Label: "Lump Sum Available", Unit: domain.UnitUSD, Required: true},
			{Key: "recastFee", Label: "Recast Fee", Unit: domain.UnitUSD, Default: "250"},
			{Key: "refiRate", Label: "Refinance Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "refiTerm", Label: "Refinance Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "refiClosingCosts", Label: "Refinance Closing Costs", Unit: domain.UnitUSD, Default: "6000"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateRecastVsRefi(RecastVsRefiInputs{
				CurrentBalance:     p.Decimal("currentBalance"),
				CurrentRatePercent: p.Decimal("currentRate"),
				RemainingTermYears: p.IntOr("remainingTerm", 25),
				LumpSum:            p.Decimal("lumpSum"),
				RecastFee:          p.DecimalOr("recastFee", decimal.NewFromInt(250)),
				RefiRatePercent:    p.Decimal("refiRate"),
				RefiTermYears:      p.IntOr("refiTerm", 30),
				RefiClosingCosts:   p.DecimalOr("refiClosingCosts", decimal.NewFromInt(6000)),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
