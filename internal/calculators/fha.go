package calculators

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// FHAInputs describe an FHA purchase scenario.
type FHAInputs struct {
	HomePrice      decimal.Decimal
	DownPayment    decimal.Decimal
	AnnualRate     decimal.Decimal
	TermYears      int
	CreditScore    int
	AnnualIncome   decimal.Decimal
	MonthlyDebts   decimal.Decimal
	FinanceUpfront bool
}

// FHAResult prices the FHA loan with both insurance premiums and reports
// eligibility.
type FHAResult struct {
	BaseLoan       decimal.Decimal        `json:"baseLoan"`
	UpfrontMIP     decimal.Decimal        `json:"upfrontMip"`
	TotalLoan      decimal.Decimal        `json:"totalLoan"`
	LTVPercent     decimal.Decimal        `json:"ltvPercent"`
	MonthlyPayment decimal.Decimal        `json:"monthlyPayment"`
	MonthlyMIP     decimal.Decimal        `json:"monthlyMip"`
	TotalMonthly   decimal.Decimal        `json:"totalMonthly"`
	MinDownPercent decimal.Decimal        `json:"minDownPercent"`
	BackEndDTI     decimal.Decimal        `json:"backEndDti"`
	Eligibility    qualify.FHAEligibility `json:"eligibility"`
}

// CalculateFHA prices an FHA loan: 1.75% upfront MIP (financed into the
// balance by default), the annual MIP for the term and LTV, and the
// eligibility gates for the credit score, down payment and DTI.
func CalculateFHA(in FHAInputs) *FHAResult {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || in.DownPayment.IsNegative() ||
		in.DownPayment.GreaterThanOrEqual(in.HomePrice) || in.TermYears <= 0 || in.AnnualRate.IsNegative() {
		return nil
	}

	baseLoan := in.HomePrice.Sub(in.DownPayment)
	upfront := qualify.FHAUpfrontMIP(baseLoan)
	totalLoan := baseLoan
	if in.FinanceUpfront {
		totalLoan = baseLoan.Add(upfront)
	}
	ltv := baseLoan.Div(in.HomePrice).Mul(hundred)
	downPct := in.DownPayment.Div(in.HomePrice).Mul(hundred)

	payment := finance.MonthlyPayment(totalLoan, in.AnnualRate, in.TermYears)
	monthlyMIP := qualify.FHAMonthlyMIP(baseLoan, in.TermYears, ltv)
	totalMonthly := payment.Add(monthlyMIP)

	backEnd := decimal.Zero
	if in.AnnualIncome.IsPositive() {
		monthlyIncome := in.AnnualIncome.Div(twelve)
		backEnd = qualify.BackEndDTI(totalMonthly, in.MonthlyDebts, monthlyIncome)
	}

	return &FHAResult{
		BaseLoan:       baseLoan,
		UpfrontMIP:     upfront,
		TotalLoan:      totalLoan,
		LTVPercent:     ltv,
		MonthlyPayment: payment,
		MonthlyMIP:     monthlyMIP,
		TotalMonthly:   totalMonthly,
		MinDownPercent: qualify.FHAMinDownPaymentPercent(in.CreditScore),
		BackEndDTI:     backEnd,
		Eligibility:    qualify.CheckFHAEligibility(in.CreditScore, downPct, backEnd),
	}
}

// Result adapts the typed result to the common contract.
func (r *FHAResult) Result() *domain.Result {
	out := &domain.Result{Calculator: "fha"}
	if r.Eligibility.Eligible {
		out.Summary = fmt.Sprintf("You qualify for FHA: %s per month including %s of mortgage insurance.",
			usd(r.TotalMonthly), usd(r.MonthlyMIP))
	} else {
		out.Summary = "This scenario does not meet FHA requirements: " + strings.Join(r.Eligibility.Reasons, "; ") + "."
	}
	out.AddUSD("baseLoan", "Base Loan", r.BaseLoan)
	out.AddUSD("upfrontMip", "Upfront MIP (1.75%)", r.UpfrontMIP)
	out.AddUSD("totalLoan", "Total Loan With Financed MIP", r.TotalLoan)
	out.AddPercent("ltv", "Loan-to-Value", r.LTVPercent)
	out.AddUSD("monthlyPayment", "Principal and Interest", r.MonthlyPayment)
	out.AddUSD("monthlyMip", "Monthly MIP", r.MonthlyMIP)
	out.AddUSD("totalMonthly", "Total Monthly Payment", r.TotalMonthly)
	out.AddPercent("minDownPercent", "Minimum Down For Your Score", r.MinDownPercent)
	if r.BackEndDTI.IsPositive() {
		out.AddPercent("backEndDti", "Back-End DTI", r.BackEndDTI)
	}
	out.AddText("eligible", "FHA Eligible", map[bool]string{true: "Yes", false: "No"}[r.Eligibility.Eligible])

	for _, reason := range r.Eligibility.Reasons {
		out.Insights = append(out.Insights, "Note: "+reason+".")
	}
	out.Insights = append(out.Insights,
		"FHA annual MIP on a low-down 30-year loan runs for the life of the loan; refinancing to conventional at 80% LTV removes it.")
	return out
}

func fhaDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "fha",
		Name:        "FHA Loan",
		Description: "FHA pricing with upfront and annual mortgage insurance plus eligibility checks.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "creditScore", Label: "Credit Score", Unit: domain.UnitCount, Default: "680"},
			{Key: "annualIncome", Label: "Gross Annual Income", Unit: domain.UnitUSD, Default: "0"},
			{Key: "monthlyDebts", Label: "Other Monthly Debts", Unit: domain.UnitUSD, Default: "0"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateFHA(FHAInputs{
				HomePrice:      p.Decimal("homePrice"),
				DownPayment:    p.Decimal("downPayment"),
				AnnualRate:     p.Decimal("interestRate"),
				TermYears:      p.IntOr("loanTerm", 30),
				CreditScore:    p.IntOr("creditScore", 680),
				AnnualIncome:   p.Decimal("annualIncome"),
				MonthlyDebts:   p.Decimal("monthlyDebts"),
				FinanceUpfront: true,
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
