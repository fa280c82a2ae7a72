package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// RefinanceInputs parameterize the refinance break-even calculator.
type RefinanceInputs struct {
	CurrentBalance     decimal.Decimal
	CurrentRatePercent decimal.Decimal
	RemainingTermYears int
	NewRatePercent     decimal.Decimal
	NewTermYears       int
	ClosingCosts       decimal.Decimal
}

// RefinanceResult is the break-even outcome. BreakEvenMonths is zero and
// NeverBreaksEven true when monthly savings are non-positive: the sentinel
// replaces a divide-by-zero or a nonsensical negative month count.
type RefinanceResult struct {
	CurrentPayment  decimal.Decimal `json:"currentPayment"`
	NewPayment      decimal.Decimal `json:"newPayment"`
	MonthlySavings  decimal.Decimal `json:"monthlySavings"`
	BreakEvenMonths int             `json:"breakEvenMonths"`
	NeverBreaksEven bool            `json:"neverBreaksEven"`
	CurrentTotal    decimal.Decimal `json:"currentTotalRemaining"`
	NewTotal        decimal.Decimal `json:"newTotal"`
	LifetimeSavings decimal.Decimal `json:"lifetimeSavings"`
}

// CalculateRefinance compares the current loan's remaining run against a new
// loan on the same balance. Lifetime savings net out closing costs.
func CalculateRefinance(in RefinanceInputs) *RefinanceResult {
	if in.CurrentBalance.LessThanOrEqual(decimal.Zero) ||
		in.RemainingTermYears <= 0 || in.NewTermYears <= 0 ||
		in.CurrentRatePercent.IsNegative() || in.NewRatePercent.IsNegative() {
		return nil
	}

	current := domain.LoanTerms{Principal: in.CurrentBalance, AnnualRatePercent: in.CurrentRatePercent, TermYears: in.RemainingTermYears}
	proposed := domain.LoanTerms{Principal: in.CurrentBalance, AnnualRatePercent: in.NewRatePercent, TermYears: in.NewTermYears}

	res := &RefinanceResult{
		CurrentPayment: finance.PaymentForTerms(current),
		NewPayment:     finance.PaymentForTerms(proposed),
		CurrentTotal:   finance.BuildSchedule(current, nil).TotalPaid(),
		NewTotal:       finance.BuildSchedule(proposed, nil).TotalPaid(),
	}
	res.MonthlySavings = res.CurrentPayment.Sub(res.NewPayment)
	res.LifetimeSavings = res.CurrentTotal.Sub(res.NewTotal).Sub(in.ClosingCosts)

	if res.MonthlySavings.GreaterThan(decimal.Zero) && in.ClosingCosts.GreaterThan(decimal.Zero) {
		res.BreakEvenMonths = int(in.ClosingCosts.Div(res.MonthlySavings).Ceil().IntPart())
	} else if res.MonthlySavings.LessThanOrEqual(decimal.Zero) {
		res.NeverBreaksEven = true
	}
	return res
}

// Result adapts the typed result to the common contract.
func (r *RefinanceResult) Result() *domain.Result {
	out := &domain.Result{Calculator: "refinance"}
	switch {
	case r.NeverBreaksEven:
		out.Summary = fmt.Sprintf("The new loan costs %s more per month; it never recovers its closing costs.",
			usd(r.MonthlySavings.Neg()))
	case r.BreakEvenMonths == 0:
		out.Summary = fmt.Sprintf("Refinancing saves %s/month with no closing costs to recover.", usd(r.MonthlySavings))
	default:
		out.Summary = fmt.Sprintf("Refinancing saves %s/month and pays for itself in %s.",
			usd(r.MonthlySavings), monthsLabel(r.BreakEvenMonths))
	}

	out.AddUSD("currentPayment", "Current Monthly Payment", r.CurrentPayment)
	out.AddUSD("newPayment", "New Monthly Payment", r.NewPayment)
	out.AddUSD("monthlySavings", "Monthly Savings", r.MonthlySavings)
	if r.NeverBreaksEven {
		out.AddText("breakEven", "Break-Even Point", "Never")
	} else {
		out.AddMonths("breakEvenMonths", "Break-Even Point", r.BreakEvenMonths)
	}
	out.AddUSD("lifetimeSavings", "Lifetime Savings After Costs", r.LifetimeSavings)

	if !r.NeverBreaksEven && r.LifetimeSavings.GreaterThan(decimal.Zero) {
		out.Insights = append(out.Insights, fmt.Sprintf(
			"Staying past the %s break-even point, the refinance nets %s over the life of the loan.",
			monthsLabel(r.BreakEvenMonths), usd(r.LifetimeSavings)))
	}
	if !r.NeverBreaksEven {
		out.Insights = append(out.Insights,
			"If you plan to sell or refinance again before the break-even month, the upfront costs outweigh the savings.")
	}
	return out
}

func refinanceDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "refinance",
		Name:        "Refinance Break-Even",
		Description: "Monthly savings, break-even month and lifetime savings for a rate-and-term refinance.",
		Fields: []Field{
			{Key: "currentBalance", Label: "Current Loan Balance", Unit: domain.UnitUSD, Required: true},
			{Key: "currentRate", Label: "Current Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "remainingTerm", Label: "Remaining Term", Unit: domain.UnitYears, Default: "25"},
			{Key: "newRate", Label: "New Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "newTerm", Label: "New Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "closingCosts", Label: "Closing Costs", Unit: domain.UnitUSD, Default: "6000"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateRefinance(RefinanceInputs{
				CurrentBalance:     p.Decimal("currentBalance"),
				CurrentRatePercent: p.Decimal("currentRate"),
				RemainingTermYears: p.IntOr("remainingTerm", 25),
				NewRatePercent:     p.Decimal("newRate"),
				NewTermYears:       p.IntOr("newTerm", 30),
				ClosingCosts:       p.DecimalOr("closingCosts", decimal.NewFromInt(6000)),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
