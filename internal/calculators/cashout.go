package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// CashOutInputs parameterize the cash-out refinance calculator.
type CashOutInputs struct {
	HomeValue          decimal.Decimal
	CurrentBalance     decimal.Decimal
	CashOutAmount      decimal.Decimal
	CurrentRatePercent decimal.Decimal
	RemainingTermYears int
	NewRatePercent     decimal.Decimal
	NewTermYears       int
	ClosingCosts       decimal.Decimal
	CreditScore        int
}

// CashOutResult describes the new loan after pulling equity out.
type CashOutResult struct {
	NewLoanAmount  decimal.Decimal `json:"newLoanAmount"`
	NewLTVPercent  decimal.Decimal `json:"newLtvPercent"`
	MaxCashOut     decimal.Decimal `json:"maxCashOut"` // at the 80% LTV ceiling
	CurrentPayment decimal.Decimal `json:"currentPayment"`
	NewPayment     decimal.Decimal `json:"newPayment"`
	PaymentChange  decimal.Decimal `json:"paymentChange"`
	MonthlyPMI     decimal.Decimal `json:"monthlyPmi"`
	CostOfCash     decimal.Decimal `json:"costOfCash"` // added lifetime interest per the refinance
}

// CalculateCashOut models rolling the current balance, the cash pulled out
// and the closing costs into a new loan. The 80% LTV ceiling is reported as
// the maximum conventional cash-out; above it the new loan carries PMI.
func CalculateCashOut(in CashOutInputs) *CashOutResult {
	if in.HomeValue.LessThanOrEqual(decimal.Zero) || in.CurrentBalance.LessThanOrEqual(decimal.Zero) ||
		in.CashOutAmount.LessThanOrEqual(decimal.Zero) || in.NewTermYears <= 0 || in.RemainingTermYears <= 0 ||
		in.NewRatePercent.IsNegative() || in.CurrentRatePercent.IsNegative() {
		return nil
	}

	newLoan := in.CurrentBalance.Add(in.CashOutAmount).Add(in.ClosingCosts)
	if newLoan.GreaterThanOrEqual(in.HomeValue) {
		return nil // over 100% LTV is not a computable scenario
	}

	current := domain.LoanTerms{Principal: in.CurrentBalance, AnnualRatePercent: in.CurrentRatePercent, TermYears: in.RemainingTermYears}
	proposed := domain.LoanTerms{Principal: newLoan, AnnualRatePercent: in.NewRatePercent, TermYears: in.NewTermYears}

	ltv := newLoan.Div(in.HomeValue).Mul(hundred)
	res := &CashOutResult{
		NewLoanAmount:  newLoan,
		NewLTVPercent:  ltv,
		MaxCashOut:     decimal.Max(in.HomeValue.Mul(decimal.NewFromFloat(0.80)).Sub(in.CurrentBalance), decimal.Zero),
		CurrentPayment: finance.PaymentForTerms(current),
		NewPayment:     finance.PaymentForTerms(proposed),
		MonthlyPMI:     qualify.PMIMonthlyPremium(newLoan, qualify.PMIAnnualRate(ltv, in.CreditScore)),
	}
	res.PaymentChange = res.NewPayment.Sub(res.CurrentPayment)

	currentInterest := finance.BuildSchedule(current, nil).TotalInterest()
	newInterest := finance.BuildSchedule(proposed, nil).TotalInterest()
	res.CostOfCash = newInterest.Sub(currentInterest)
	return res
}

// Result adapts the typed result to the common contract.
func (r *CashOutResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "cash-out",
		Summary: fmt.Sprintf("Pulling the cash out raises your payment by %s/month at %s LTV.",
			usd(r.PaymentChange), pct(r.NewLTVPercent)),
	}
	out.AddUSD("newLoanAmount", "New Loan Amount", r.NewLoanAmount)
	out.AddPercent("newLtv", "New Loan-to-Value", r.NewLTVPercent)
	out.AddUSD("maxCashOut", "Max Cash-Out at 80% LTV", r.MaxCashOut)
	out.AddUSD("currentPayment", "Current Monthly Payment", r.CurrentPayment)
	out.AddUSD("newPayment", "New Monthly Payment", r.NewPayment)
	out.AddUSD("paymentChange", "Monthly Payment Change", r.PaymentChange)
	if r.MonthlyPMI.GreaterThan(decimal.Zero) {
		out.AddUSD("monthlyPmi", "New Monthly PMI", r.MonthlyPMI)
	}
	out.AddUSD("costOfCash", "Added Lifetime Interest", r.CostOfCash)

	if r.NewLTVPercent.GreaterThan(decimal.NewFromInt(80)) {
		out.Insights = append(out.Insights,
			fmt.Sprintf("Above 80%% LTV the new loan carries PMI; keeping the cash-out under %s avoids it.", usd(r.MaxCashOut)))
	}
	out.Insights = append(out.Insights, fmt.Sprintf(
		"The cash costs %s in additional interest over the life of the new loan; compare that against other borrowing options.",
		usd(r.CostOfCash)))
	return out
}

func cashOutDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "cash-out",
		Name:        "Cash-Out Refinance",
		Description: "New loan, payment and LTV after converting home equity to cash.",
		Fields: []Field{
			{Key: "homeValue", Label: "Current Home Value", Unit: domain.UnitUSD, Required: true},
			{Key: "currentBalance", Label: "Current Loan Balance", Unit: domain.UnitUSD, Required: true},
			{Key: "cashOut", Label: "Cash-Out Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "currentRate", Label: "Current Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "remainingTerm", Label: "Remaining Term", Unit: domain.UnitYears, Default: "25"},
			{Key: "newRate", Label: "New Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "newTerm", Label: "New Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "closingCosts", Label: "Closing Costs (Financed)", Unit: domain.UnitUSD, Default: "6000"},
			{Key: "creditScore", Label: "Credit Score", Unit: domain.UnitCount, Default: "720"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateCashOut(CashOutInputs{
				HomeValue:          p.Decimal("homeValue"),
				CurrentBalance:     p.Decimal("currentBalance"),
				CashOutAmount:      p.Decimal("cashOut"),
				CurrentRatePercent: p.Decimal("currentRate"),
				RemainingTermYears: p.IntOr("remainingTerm", 25),
				NewRatePercent:     p.Decimal("newRate"),
				NewTermYears:       p.IntOr("newTerm", 30),
				ClosingCosts:       p.DecimalOr("closingCosts", decimal.NewFromInt(6000)),
				CreditScore:        p.IntOr("creditScore", 720),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
