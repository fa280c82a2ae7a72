package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// ExtraPaymentInputs describe a loan plus a recurring or one-time extra
// principal plan.
type ExtraPaymentInputs struct {
	LoanAmount   decimal.Decimal
	AnnualRate   decimal.Decimal
	TermYears    int
	ExtraMonthly decimal.Decimal
	ExtraAnnual  decimal.Decimal
	LumpSum      decimal.Decimal
	LumpSumMonth int
}

// ExtraPaymentResult compares the base schedule against the accelerated one.
type ExtraPaymentResult struct {
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	BaseInterest     decimal.Decimal `json:"baseInterest"`
	NewInterest      decimal.Decimal `json:"newInterest"`
	InterestSaved    decimal.Decimal `json:"interestSaved"`
	BasePayoffMonths int             `json:"basePayoffMonths"`
	NewPayoffMonths  int             `json:"newPayoffMonths"`
	MonthsSaved      int             `json:"monthsSaved"`
}

// CalculateExtraPayment runs the schedule with and without the extra
// principal plan and reports the difference.
func CalculateExtraPayment(in ExtraPaymentInputs) *ExtraPaymentResult {
	terms := domain.LoanTerms{Principal: in.LoanAmount, AnnualRatePercent: in.AnnualRate, TermYears: in.TermYears}
	if !terms.Valid() {
		return nil
	}
	plan := &domain.ExtraPaymentPlan{
		ExtraMonthly: in.ExtraMonthly,
		ExtraAnnual:  in.ExtraAnnual,
		LumpSum:      in.LumpSum,
		LumpSumMonth: in.LumpSumMonth,
	}
	if plan.IsZero() {
		return nil
	}

	base := finance.BuildSchedule(terms, nil)
	accelerated := finance.BuildSchedule(terms, plan)

	return &ExtraPaymentResult{
		MonthlyPayment:   finance.PaymentForTerms(terms),
		BaseInterest:     base.TotalInterest(),
		NewInterest:      accelerated.TotalInterest(),
		InterestSaved:    base.TotalInterest().Sub(accelerated.TotalInterest()),
		BasePayoffMonths: base.PayoffMonth(),
		NewPayoffMonths:  accelerated.PayoffMonth(),
		MonthsSaved:      base.PayoffMonth() - accelerated.PayoffMonth(),
	}
}

// Result adapts the typed result to the common contract.
func (r *ExtraPaymentResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "extra-payment",
		Summary: fmt.Sprintf("Your extra payments save %s in interest and retire the loan %s early.",
			usd(r.InterestSaved), monthsLabel(r.MonthsSaved)),
	}
	out.AddUSD("monthlyPayment", "Scheduled Payment", r.MonthlyPayment)
	out.AddUSD("baseInterest", "Interest Without Extras", r.BaseInterest)
	out.AddUSD("newInterest", "Interest With Extras", r.NewInterest)
	out.AddUSD("interestSaved", "Interest Saved", r.InterestSaved)
	out.AddMonths("basePayoffMonths", "Original Payoff Time", r.BasePayoffMonths)
	out.AddMonths("newPayoffMonths", "New Payoff Time", r.NewPayoffMonths)
	out.AddMonths("monthsSaved", "Time Saved", r.MonthsSaved)
	if r.MonthsSaved >= domain.MonthsPerYear {
		out.Insights = append(out.Insights, fmt.Sprintf(
			"You shave %.1f years off the loan; every extra dollar goes straight to principal.",
			float64(r.MonthsSaved)/float64(domain.MonthsPerYear)))
	}
	return out
}

func extraPaymentDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "extra-payment",
		Name:        "Extra Payments",
		Description: "See what recurring or one-time extra principal does to interest and payoff date.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "extraMonthly", Label: "Extra Monthly Principal", Unit: domain.UnitUSD, Default: "0"},
			{Key: "extraAnnual", Label: "Extra Annual Principal", Unit: domain.UnitUSD, Default: "0"},
			{Key: "lumpSum", Label: "One-Time Lump Sum", Unit: domain.UnitUSD, Default: "0"},
			{Key: "lumpSumMonth", Label: "Lump Sum Month", Unit: domain.UnitMonths, Default: "1"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateExtraPayment(ExtraPaymentInputs{
				LoanAmount:   p.Decimal("loanAmount"),
				AnnualRate:   p.Decimal("interestRate"),
				TermYears:    p.IntOr("loanTerm", 30),
				ExtraMonthly: p.Decimal("extraMonthly"),
				ExtraAnnual:  p.Decimal("extraAnnual"),
				LumpSum:      p.Decimal("lumpSum"),
				LumpSumMonth: p.IntOr("lumpSumMonth", 1),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
