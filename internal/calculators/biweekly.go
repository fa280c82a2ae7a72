package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// BiweeklyInputs describe a loan to move from monthly to biweekly payments.
type BiweeklyInputs struct {
	LoanAmount decimal.Decimal
	AnnualRate decimal.Decimal
	TermYears  int
}

// BiweeklyResult compares the standard schedule with 26 half-payments a
// year.
type BiweeklyResult struct {
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	BiweeklyPayment  decimal.Decimal `json:"biweeklyPayment"`
	BaseInterest     decimal.Decimal `json:"baseInterest"`
	NewInterest      decimal.Decimal `json:"newInterest"`
	InterestSaved    decimal.Decimal `json:"interestSaved"`
	BasePayoffMonths int             `json:"basePayoffMonths"`
	NewPayoffMonths  int             `json:"newPayoffMonths"`
	MonthsSaved      int             `json:"monthsSaved"`
}

// CalculateBiweekly models 26 half-payments per year. That equals thirteen
// monthly payments annually, so it runs the schedule with one extra monthly
// payment applied to principal each year.
func CalculateBiweekly(in BiweeklyInputs) *BiweeklyResult {
	terms := domain.LoanTerms{Principal: in.LoanAmount, AnnualRatePercent: in.AnnualRate, TermYears: in.TermYears}
	if !terms.Valid() {
		return nil
	}

	monthly := finance.PaymentForTerms(terms)
	base := finance.BuildSchedule(terms, nil)
	biweekly := finance.BuildSchedule(terms, &domain.ExtraPaymentPlan{ExtraAnnual: monthly})

	return &BiweeklyResult{
		MonthlyPayment:   monthly,
		BiweeklyPayment:  monthly.Div(decimal.NewFromInt(2)),
		BaseInterest:     base.TotalInterest(),
		NewInterest:      biweekly.TotalInterest(),
		InterestSaved:    base.TotalInterest().Sub(biweekly.TotalInterest()),
		BasePayoffMonths: base.PayoffMonth(),
		NewPayoffMonths:  biweekly.PayoffMonth(),
		MonthsSaved:      base.PayoffMonth() - biweekly.PayoffMonth(),
	}
}

// Result adapts the typed result to the common contract.
func (r *BiweeklyResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "biweekly",
		Summary: fmt.Sprintf("Paying %s every two weeks saves %s in interest and finishes %s early.",
			usd(r.BiweeklyPayment), usd(r.InterestSaved), monthsLabel(r.MonthsSaved)),
	}
	out.AddUSD("monthlyPayment", "Monthly Payment", r.MonthlyPayment)
	out.AddUSD("biweeklyPayment", "Biweekly Payment", r.BiweeklyPayment)
	out.AddUSD("baseInterest", "Interest On Monthly Schedule", r.BaseInterest)
	out.AddUSD("newInterest", "Interest On Biweekly Schedule", r.NewInterest)
	out.AddUSD("interestSaved", "Interest Saved", r.InterestSaved)
	out.AddMonths("basePayoffMonths", "Monthly Payoff Time", r.BasePayoffMonths)
	out.AddMonths("newPayoffMonths", "Biweekly Payoff Time", r.NewPayoffMonths)
	out.AddMonths("monthsSaved", "Time Saved", r.MonthsSaved)
	out.Insights = append(out.Insights,
		"Twenty-six half payments make thirteen full payments a year; the extra one lands entirely on principal.",
		"Confirm your servicer applies the extra payment immediately instead of holding it until year end.")
	return out
}

func biweeklyDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "biweekly",
		Name:        "Biweekly Payments",
		Description: "See what switching to a payment every two weeks does to interest and payoff.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateBiweekly(BiweeklyInputs{
				LoanAmount: p.Decimal("loanAmount"),
				AnnualRate: p.Decimal("interestRate"),
				TermYears:  p.IntOr("loanTerm", 30),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
