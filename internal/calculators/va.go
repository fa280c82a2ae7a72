package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// VAInputs describe a VA purchase scenario.
type VAInputs struct {
	HomePrice   decimal.Decimal
	DownPayment decimal.Decimal
	AnnualRate  decimal.Decimal
	TermYears   int
	Usage       qualify.VAUsage
	FeeExempt   bool // disability-rated borrowers pay no funding fee
	FinanceFee  bool
}

// VAResult prices the VA loan including the funding fee.
type VAResult struct {
	BaseLoan       decimal.Decimal `json:"baseLoan"`
	FundingFeeRate decimal.Decimal `json:"fundingFeeRate"`
	FundingFee     decimal.Decimal `json:"fundingFee"`
	TotalLoan      decimal.Decimal `json:"totalLoan"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	ZeroDown       bool            `json:"zeroDown"`
}

// CalculateVA prices a VA loan: the funding fee tier for the down payment
// and entitlement usage (waived for exempt borrowers), financed into the
// balance by default, with no monthly mortgage insurance.
func CalculateVA(in VAInputs) *VAResult {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || in.DownPayment.IsNegative() ||
		in.DownPayment.GreaterThanOrEqual(in.HomePrice) || in.TermYears <= 0 || in.AnnualRate.IsNegative() {
		return nil
	}
	baseLoan := in.HomePrice.Sub(in.DownPayment)
	downPct := in.DownPayment.Div(in.HomePrice).Mul(hundred)

	feeRate := decimal.Zero
	fee := decimal.Zero
	if !in.FeeExempt {
		feeRate = qualify.VAFundingFeeRate(downPct, in.Usage)
		fee = qualify.VAFundingFee(baseLoan, downPct, in.Usage)
	}

	totalLoan := baseLoan
	if in.FinanceFee {
		totalLoan = baseLoan.Add(fee)
	}
	payment := finance.MonthlyPayment(totalLoan, in.AnnualRate, in.TermYears)
	months := decimal.NewFromInt(int64(in.TermYears * domain.MonthsPerYear))

	return &VAResult{
		BaseLoan:       baseLoan,
		FundingFeeRate: feeRate,
		FundingFee:     fee,
		TotalLoan:      totalLoan,
		MonthlyPayment: payment,
		TotalInterest:  payment.Mul(months).Sub(totalLoan),
		ZeroDown:       in.DownPayment.IsZero(),
	}
}

// Result adapts the typed result to the common contract.
func (r *VAResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "va",
		Summary: fmt.Sprintf("Your VA payment is %s per month with no mortgage insurance and a %s funding fee.",
			usd(r.MonthlyPayment), usd(r.FundingFee)),
	}
	out.AddUSD("baseLoan", "Base Loan", r.BaseLoan)
	out.AddPercent("fundingFeeRate", "Funding Fee Rate", r.FundingFeeRate)
	out.AddUSD("fundingFee", "Funding Fee", r.FundingFee)
	out.AddUSD("totalLoan", "Total Loan With Financed Fee", r.TotalLoan)
	out.AddUSD("monthlyPayment", "Monthly Payment", r.MonthlyPayment)
	out.AddUSD("totalInterest", "Total Interest", r.TotalInterest)

	if r.ZeroDown {
		out.Insights = append(out.Insights,
			"Zero down is the VA benefit's headline; even 5% down drops the funding fee tier to 1.50%.")
	}
	out.Insights = append(out.Insights,
		"VA loans never carry monthly mortgage insurance, which usually beats FHA pricing at the same rate.",
		"Borrowers with a service-connected disability rating are exempt from the funding fee entirely.")
	return out
}

func vaDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "va",
		Name:        "VA Loan",
		Description: "VA pricing with the funding fee table and no monthly mortgage insurance.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Default: "0"},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "usage", Label: "Entitlement Use (first or subsequent)", Unit: domain.UnitText, Default: "first"},
			{Key: "feeExempt", Label: "Funding Fee Exempt (yes or no)", Unit: domain.UnitText, Default: "no"},
		},
		Run: func(p Params) *domain.Result {
			usage := qualify.VAFirstUse
			if p.String("usage", "first") == string(qualify.VASubsequentUse) {
				usage = qualify.VASubsequentUse
			}
			r := CalculateVA(VAInputs{
				HomePrice:   p.Decimal("homePrice"),
				DownPayment: p.Decimal("downPayment"),
				AnnualRate:  p.Decimal("interestRate"),
				TermYears:   p.IntOr("loanTerm", 30),
				Usage:       usage,
				FeeExempt:   p.String("feeExempt", "no") == "yes",
				FinanceFee:  true,
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
