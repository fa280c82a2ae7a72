package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// AmortizationInputs describe the loan to tabulate.
type AmortizationInputs struct {
	LoanAmount   decimal.Decimal
	AnnualRate   decimal.Decimal
	TermYears    int
	ExtraMonthly decimal.Decimal
}

// AmortizationResult carries the full schedule plus its headline totals.
type AmortizationResult struct {
	MonthlyPayment decimal.Decimal      `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal      `json:"totalInterest"`
	TotalPaid      decimal.Decimal      `json:"totalPaid"`
	PayoffMonths   int                  `json:"payoffMonths"`
	Schedule       []domain.ScheduleRow `json:"schedule"`
}

// CalculateAmortization builds the month-by-month table, optionally with a
// recurring extra principal payment.
func CalculateAmortization(in AmortizationInputs) *AmortizationResult {
	terms := domain.LoanTerms{Principal: in.LoanAmount, AnnualRatePercent: in.AnnualRate, TermYears: in.TermYears}
	if !terms.Valid() {
		return nil
	}
	var plan *domain.ExtraPaymentPlan
	if in.ExtraMonthly.IsPositive() {
		plan = &domain.ExtraPaymentPlan{ExtraMonthly: in.ExtraMonthly}
	}
	schedule := finance.BuildSchedule(terms, plan)

	return &AmortizationResult{
		MonthlyPayment: finance.PaymentForTerms(terms),
		TotalInterest:  schedule.TotalInterest(),
		TotalPaid:      schedule.TotalPaid(),
		PayoffMonths:   schedule.PayoffMonth(),
		Schedule:       schedule,
	}
}

// Result adapts the typed result to the common contract. The schedule is
// summarized yearly into chart points; the full table rides on the typed
// result for callers that want every row.
func (r *AmortizationResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "amortization-table",
		Summary: fmt.Sprintf("%s per month pays the loan off in %s with %s of interest.",
			usd(r.MonthlyPayment), monthsLabel(r.PayoffMonths), usd(r.TotalInterest)),
	}
	out.AddUSD("monthlyPayment", "Monthly Payment", r.MonthlyPayment)
	out.AddUSD("totalInterest", "Total Interest", r.TotalInterest)
	out.AddUSD("totalPaid", "Total Paid", r.TotalPaid)
	out.AddMonths("payoffMonths", "Payoff Time", r.PayoffMonths)
	for _, row := range r.Schedule {
		if row.MonthIndex%domain.MonthsPerYear != 0 && row.MonthIndex != len(r.Schedule) {
			continue
		}
		out.ChartData = append(out.ChartData, domain.ChartPoint{
			Series: "balance",
			X:      row.MonthIndex,
			Y:      row.RemainingBalance,
		})
	}
	if len(r.Schedule) > 0 {
		first := r.Schedule[0]
		out.Insights = append(out.Insights, fmt.Sprintf(
			"Your first payment is %s interest and only %s principal; the split flips as the balance falls.",
			usd(first.Interest), usd(first.Principal)))
	}
	return out
}

func amortizationTableDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "amortization-table",
		Name:        "Amortization Table",
		Description: "The full month-by-month payment, interest and balance breakdown.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "extraMonthly", Label: "Extra Monthly Principal", Unit: domain.UnitUSD, Default: "0"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateAmortization(AmortizationInputs{
				LoanAmount:   p.Decimal("loanAmount"),
				AnnualRate:   p.Decimal("interestRate"),
				TermYears:    p.IntOr("loanTerm", 30),
				ExtraMonthly: p.Decimal("extraMonthly"),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
