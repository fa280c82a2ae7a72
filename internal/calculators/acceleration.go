package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// AccelerationInputs ask how much extra it takes to retire a loan by a
// target year.
type AccelerationInputs struct {
	LoanAmount  decimal.Decimal
	AnnualRate  decimal.Decimal
	TermYears   int
	TargetYears int
}

// AccelerationResult reports the required extra principal and what it buys.
type AccelerationResult struct {
	ScheduledPayment decimal.Decimal `json:"scheduledPayment"`
	RequiredPayment  decimal.Decimal `json:"requiredPayment"`
	RequiredExtra    decimal.Decimal `json:"requiredExtra"`
	BaseInterest     decimal.Decimal `json:"baseInterest"`
	NewInterest      decimal.Decimal `json:"newInterest"`
	InterestSaved    decimal.Decimal `json:"interestSaved"`
	TargetYears      int             `json:"targetYears"`
}

// CalculateAcceleration solves for the extra monthly principal needed to hit
// a target payoff year. The required payment is the amortizing payment over
// the shorter target term; the extra is its excess over the scheduled
// payment.
func CalculateAcceleration(in AccelerationInputs) *AccelerationResult {
	terms := domain.LoanTerms{Principal: in.LoanAmount, AnnualRatePercent: in.AnnualRate, TermYears: in.TermYears}
	if !terms.Valid() || in.TargetYears <= 0 || in.TargetYears >= in.TermYears {
		return nil
	}

	scheduled := finance.PaymentForTerms(terms)
	required := finance.MonthlyPayment(in.LoanAmount, in.AnnualRate, in.TargetYears)
	extra := required.Sub(scheduled)

	base := finance.BuildSchedule(terms, nil)
	accelerated := finance.BuildSchedule(terms, &domain.ExtraPaymentPlan{ExtraMonthly: extra})

	return &AccelerationResult{
		ScheduledPayment: scheduled,
		RequiredPayment:  required,
		RequiredExtra:    extra,
		BaseInterest:     base.TotalInterest(),
		NewInterest:      accelerated.TotalInterest(),
		InterestSaved:    base.TotalInterest().Sub(accelerated.TotalInterest()),
		TargetYears:      in.TargetYears,
	}
}

// Result adapts the typed result to the common contract.
func (r *AccelerationResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "acceleration",
		Summary: fmt.Sprintf("Pay %s extra each month to be mortgage-free in %s and save %s in interest.",
			usd(r.RequiredExtra), plural(r.TargetYears, "year"), usd(r.InterestSaved)),
	}
	out.AddUSD("scheduledPayment", "Scheduled Payment", r.ScheduledPayment)
	out.AddUSD("requiredPayment", "Required Payment", r.RequiredPayment)
	out.AddUSD("requiredExtra", "Required Extra Principal", r.RequiredExtra)
	out.AddYears("targetYears", "Target Payoff", r.TargetYears)
	out.AddUSD("baseInterest", "Interest On Schedule", r.BaseInterest)
	out.AddUSD("newInterest", "Interest Accelerated", r.NewInterest)
	out.AddUSD("interestSaved", "Interest Saved", r.InterestSaved)
	out.Insights = append(out.Insights,
		"The required extra is fixed for the life of the loan; pausing it pushes your payoff date back out.")
	return out
}

func accelerationDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "acceleration",
		Name:        "Payoff Acceleration",
		Description: "Solve for the extra monthly principal that retires the loan by a target year.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "targetYears", Label: "Target Payoff", Unit: domain.UnitYears, Required: true},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateAcceleration(AccelerationInputs{
				LoanAmount:  p.Decimal("loanAmount"),
				AnnualRate:  p.Decimal("interestRate"),
				TermYears:   p.IntOr("loanTerm", 30),
				TargetYears: p.Int("targetYears"),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
