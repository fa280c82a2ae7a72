package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// PMIInputs describe a conventional loan to price mortgage insurance on.
type PMIInputs struct {
	HomePrice   decimal.Decimal
	DownPayment decimal.Decimal
	AnnualRate  decimal.Decimal
	TermYears   int
	CreditScore int
}

// PMIResult prices the premium and projects both cancellation dates.
type PMIResult struct {
	LoanAmount     decimal.Decimal `json:"loanAmount"`
	LTVPercent     decimal.Decimal `json:"ltvPercent"`
	AnnualRate     decimal.Decimal `json:"annualRate"`
	MonthlyPremium decimal.Decimal `json:"monthlyPremium"`
	RequestMonth   int             `json:"requestMonth"`
	AutoMonth      int             `json:"autoMonth"`
	TotalPremiums  decimal.Decimal `json:"totalPremiums"` // paid through automatic cancellation
	Required       bool            `json:"required"`
}

// CalculatePMI prices conventional mortgage insurance at the loan's LTV and
// credit score and walks the schedule to find the 80% request month and the
// 78% automatic cancellation month.
func CalculatePMI(in PMIInputs) *PMIResult {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || in.DownPayment.IsNegative() ||
		in.DownPayment.GreaterThanOrEqual(in.HomePrice) || in.TermYears <= 0 || in.AnnualRate.IsNegative() {
		return nil
	}
	loan := in.HomePrice.Sub(in.DownPayment)
	ltv := loan.Div(in.HomePrice).Mul(hundred)

	rate := qualify.PMIAnnualRate(ltv, in.CreditScore)
	premium := qualify.PMIMonthlyPremium(loan, rate)

	terms := domain.LoanTerms{Principal: loan, AnnualRatePercent: in.AnnualRate, TermYears: in.TermYears}
	requestMonth, autoMonth := qualify.PMIRemovalMonths(terms, in.HomePrice)

	total := decimal.Zero
	if autoMonth > 0 {
		total = premium.Mul(decimal.NewFromInt(int64(autoMonth)))
	}

	return &PMIResult{
		LoanAmount:     loan,
		LTVPercent:     ltv,
		AnnualRate:     rate,
		MonthlyPremium: premium,
		RequestMonth:   requestMonth,
		AutoMonth:      autoMonth,
		TotalPremiums:  total,
		Required:       rate.IsPositive(),
	}
}

// Result adapts the typed result to the common contract.
func (r *PMIResult) Result() *domain.Result {
	out := &domain.Result{Calculator: "pmi"}
	out.AddUSD("loanAmount", "Loan Amount", r.LoanAmount)
	out.AddPercent("ltv", "Loan-to-Value", r.LTVPercent)

	if !r.Required {
		out.Summary = "No PMI: your down payment keeps the loan at or below 80% of the home's value."
		out.AddText("pmiStatus", "PMI", "Not required")
		out.Insights = append(out.Insights, "Twenty percent down avoids mortgage insurance entirely on conventional loans.")
		return out
	}

	out.Summary = fmt.Sprintf("PMI runs %s per month until it cancels automatically in %s.",
		usd(r.MonthlyPremium), monthsLabel(r.AutoMonth))
	out.AddPercent("pmiRate", "Annual PMI Rate", r.AnnualRate)
	out.AddUSD("monthlyPremium", "Monthly PMI Premium", r.MonthlyPremium)
	out.AddMonths("requestMonth", "Cancellation By Request", r.RequestMonth)
	out.AddMonths("autoMonth", "Automatic Cancellation", r.AutoMonth)
	out.AddUSD("totalPremiums", "PMI Paid Through Auto Cancel", r.TotalPremiums)

	if r.RequestMonth > 0 && r.RequestMonth < r.AutoMonth {
		saved := r.MonthlyPremium.Mul(decimal.NewFromInt(int64(r.AutoMonth - r.RequestMonth)))
		out.Insights = append(out.Insights, fmt.Sprintf(
			"Requesting cancellation at 80%% LTV instead of waiting for 78%% saves %s.", usd(saved)))
	}
	out.Insights = append(out.Insights,
		"Extra principal payments pull both cancellation dates forward; appreciation can too, with a new appraisal.")
	return out
}

func pmiDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "pmi",
		Name:        "PMI",
		Description: "Price private mortgage insurance and project when it cancels.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "creditScore", Label: "Credit Score", Unit: domain.UnitCount, Default: "740"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculatePMI(PMIInputs{
				HomePrice:   p.Decimal("homePrice"),
				DownPayment: p.Decimal("downPayment"),
				AnnualRate:  p.Decimal("interestRate"),
				TermYears:   p.IntOr("loanTerm", 30),
				CreditScore: p.IntOr("creditScore", 740),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
