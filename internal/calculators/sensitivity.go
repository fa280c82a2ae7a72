package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// rateOffsets are the percentage-point shifts applied around the base rate.
var rateOffsets = []decimal.Decimal{
	decimal.RequireFromString("-1.0"),
	decimal.RequireFromString("-0.5"),
	decimal.RequireFromString("-0.25"),
	decimal.Zero,
	decimal.RequireFromString("0.25"),
	decimal.RequireFromString("0.5"),
	decimal.RequireFromString("1.0"),
}

// SensitivityInputs describe the loan to re-price across rate offsets.
type SensitivityInputs struct {
	LoanAmount decimal.Decimal
	AnnualRate decimal.Decimal
	TermYears  int
}

// SensitivityRow is one re-priced rate point.
type SensitivityRow struct {
	RatePercent   decimal.Decimal `json:"ratePercent"`
	Offset        decimal.Decimal `json:"offset"`
	Payment       decimal.Decimal `json:"payment"`
	PaymentDelta  decimal.Decimal `json:"paymentDelta"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	InterestDelta decimal.Decimal `json:"interestDelta"`
}

// SensitivityResult holds the base pricing and the offset grid.
type SensitivityResult struct {
	BasePayment  decimal.Decimal  `json:"basePayment"`
	BaseInterest decimal.Decimal  `json:"baseInterest"`
	Rows         []SensitivityRow `json:"rows"`
}

// CalculateSensitivity re-prices the loan at the base rate and at fixed
// offsets around it, reporting monthly and lifetime-interest deltas. Offsets
// that would push the rate negative are clamped to zero.
func CalculateSensitivity(in SensitivityInputs) *SensitivityResult {
	terms := domain.LoanTerms{Principal: in.LoanAmount, AnnualRatePercent: in.AnnualRate, TermYears: in.TermYears}
	if !terms.Valid() {
		return nil
	}

	basePayment := finance.PaymentForTerms(terms)
	months := decimal.NewFromInt(int64(terms.TermMonths()))
	baseInterest := basePayment.Mul(months).Sub(in.LoanAmount)

	rows := make([]SensitivityRow, 0, len(rateOffsets))
	for _, offset := range rateOffsets {
		rate := in.AnnualRate.Add(offset)
		if rate.IsNegative() {
			rate = decimal.Zero
		}
		payment := finance.MonthlyPayment(in.LoanAmount, rate, in.TermYears)
		interest := payment.Mul(months).Sub(in.LoanAmount)
		rows = append(rows, SensitivityRow{
			RatePercent:   rate,
			Offset:        offset,
			Payment:       payment,
			PaymentDelta:  payment.Sub(basePayment),
			TotalInterest: interest,
			InterestDelta: interest.Sub(baseInterest),
		})
	}

	return &SensitivityResult{BasePayment: basePayment, BaseInterest: baseInterest, Rows: rows}
}

// Result adapts the typed result to the common contract.
func (r *SensitivityResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "interest-sensitivity",
		Summary:    fmt.Sprintf("At your quoted rate the payment is %s; the grid shows what each quarter point is worth.", usd(r.BasePayment)),
	}
	out.AddUSD("basePayment", "Base Monthly Payment", r.BasePayment)
	out.AddUSD("baseInterest", "Base Lifetime Interest", r.BaseInterest)
	for _, row := range r.Rows {
		if row.Offset.IsZero() {
			continue
		}
		key := "offset" + row.Offset.String()
		out.AddUSD(key+"Payment", fmt.Sprintf("Payment at %s%%", row.RatePercent.StringFixed(2)), row.Payment)
		out.AddUSD(key+"InterestDelta", fmt.Sprintf("Lifetime Interest Change at %s%%", row.RatePercent.StringFixed(2)), row.InterestDelta)
		// X is the offset in basis points so the axis stays integral.
		out.ChartData = append(out.ChartData, domain.ChartPoint{
			Series: "payment",
			X:      int(row.Offset.Mul(hundred).IntPart()),
			Y:      row.Payment,
		})
	}
	if len(r.Rows) >= 2 {
		worst := r.Rows[len(r.Rows)-1]
		out.Insights = append(out.Insights, fmt.Sprintf(
			"A full point higher costs %s more per month and %s more over the life of the loan.",
			usd(worst.PaymentDelta), usd(worst.InterestDelta)))
	}
	out.Insights = append(out.Insights,
		"A rate lock protects you from the upside of this grid while your application is in flight.")
	return out
}

func interestSensitivityDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "interest-sensitivity",
		Name:        "Interest Rate Sensitivity",
		Description: "Price the loan at quarter, half and full point offsets around your quote.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateSensitivity(SensitivityInputs{
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
