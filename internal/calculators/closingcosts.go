package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// closing cost line item categories.
const (
	categoryLender     = "lender"
	categoryThirdParty = "thirdParty"
	categoryGovernment = "government"
	categoryPrepaid    = "prepaid"
)

// ClosingCostsInputs describe the purchase being closed.
type ClosingCostsInputs struct {
	HomePrice         decimal.Decimal
	DownPayment       decimal.Decimal
	OriginationPct    decimal.Decimal // percent of the loan
	AppraisalFee      decimal.Decimal
	TitleInsurancePct decimal.Decimal // percent of the price
	RecordingFee      decimal.Decimal
	TransferTaxPct    decimal.Decimal // percent of the price
	PrepaidMonths     int             // months of tax and insurance escrowed at close
	AnnualTaxRate     decimal.Decimal
	AnnualInsurance   decimal.Decimal
	SellerCredits     decimal.Decimal
}

// ClosingCostsResult itemizes the fees and nets out the cash to close.
type ClosingCostsResult struct {
	LoanAmount    decimal.Decimal   `json:"loanAmount"`
	Items         []domain.LineItem `json:"items"`
	TotalCosts    decimal.Decimal   `json:"totalCosts"`
	SellerCredits decimal.Decimal   `json:"sellerCredits"`
	NetCosts      decimal.Decimal   `json:"netCosts"`
	CashToClose   decimal.Decimal   `json:"cashToClose"`
}

// CalculateClosingCosts sums fixed and percentage-based fees by category,
// nets seller credits against the total, and reports cash to close as down
// payment plus net costs. Credits never push net costs negative.
func CalculateClosingCosts(in ClosingCostsInputs) *ClosingCostsResult {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || in.DownPayment.IsNegative() ||
		in.DownPayment.GreaterThanOrEqual(in.HomePrice) {
		return nil
	}
	loan := in.HomePrice.Sub(in.DownPayment)

	monthlyTax := in.HomePrice.Mul(in.AnnualTaxRate).Div(hundred).Div(twelve)
	monthlyInsurance := in.AnnualInsurance.Div(twelve)
	prepaidMonths := decimal.NewFromInt(int64(max(in.PrepaidMonths, 0)))

	items := []domain.LineItem{
		{Name: "Loan Origination", Amount: loan.Mul(in.OriginationPct).Div(hundred), Category: categoryLender},
		{Name: "Appraisal", Amount: in.AppraisalFee, Category: categoryLender, IsEstimate: true},
		{Name: "Title Insurance", Amount: in.HomePrice.Mul(in.TitleInsurancePct).Div(hundred), Category: categoryThirdParty, IsEstimate: true},
		{Name: "Recording Fees", Amount: in.RecordingFee, Category: categoryGovernment},
		{Name: "Transfer Tax", Amount: in.HomePrice.Mul(in.TransferTaxPct).Div(hundred), Category: categoryGovernment},
		{Name: "Prepaid Property Tax", Amount: monthlyTax.Mul(prepaidMonths), Category: categoryPrepaid, IsEstimate: true},
		{Name: "Prepaid Insurance", Amount: monthlyInsurance.Mul(prepaidMonths), Category: categoryPrepaid, IsEstimate: true},
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	credits := in.SellerCredits
	if credits.IsNegative() {
		credits = decimal.Zero
	}
	net := total.Sub(credits)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return &ClosingCostsResult{
		LoanAmount:    loan,
		Items:         items,
		TotalCosts:    total,
		SellerCredits: credits,
		NetCosts:      net,
		CashToClose:   in.DownPayment.Add(net),
	}
}

// Result adapts the typed result to the common contract.
func (r *ClosingCostsResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "closing-costs",
		Summary:    fmt.Sprintf("Plan on %s cash to close: %s down plus %s in net closing costs.", usd(r.CashToClose), usd(r.CashToClose.Sub(r.NetCosts)), usd(r.NetCosts)),
		LineItems:  r.Items,
	}
	out.AddUSD("loanAmount", "Loan Amount", r.LoanAmount)
	out.AddUSD("totalCosts", "Total Closing Costs", r.TotalCosts)
	out.AddUSD("sellerCredits", "Seller Credits", r.SellerCredits)
	out.AddUSD("netCosts", "Net Closing Costs", r.NetCosts)
	out.AddUSD("cashToClose", "Cash To Close", r.CashToClose)

	byCategory := map[string]decimal.Decimal{}
	for _, item := range r.Items {
		byCategory[item.Category] = byCategory[item.Category].Add(item.Amount)
	}
	for key, label := range map[string]string{
		categoryLender:     "Lender Fees",
		categoryThirdParty: "Third-Party Fees",
		categoryGovernment: "Government Fees",
		categoryPrepaid:    "Prepaids",
	} {
		out.AddUSD(key+"Total", label, byCategory[key])
	}

	out.Insights = append(out.Insights,
		"Lender fees are the most negotiable category; shop at least three loan estimates.",
		"Estimated items can move at closing; the lender's Closing Disclosure is the binding number.")
	return out
}

func closingCostsDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "closing-costs",
		Name:        "Closing Costs",
		Description: "Itemized closing costs, seller credits and the cash you need at the table.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Required: true},
			{Key: "originationPct", Label: "Origination Fee", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "appraisalFee", Label: "Appraisal Fee", Unit: domain.UnitUSD, Default: "600"},
			{Key: "titleInsurancePct", Label: "Title Insurance", Unit: domain.UnitPercent, Default: "0.5"},
			{Key: "recordingFee", Label: "Recording Fees", Unit: domain.UnitUSD, Default: "250"},
			{Key: "transferTaxPct", Label: "Transfer Tax", Unit: domain.UnitPercent, Default: "0.1"},
			{Key: "prepaidMonths", Label: "Months Escrowed At Close", Unit: domain.UnitMonths, Default: "3"},
			{Key: "propertyTaxRate", Label: "Property Tax Rate", Unit: domain.UnitPercent, Default: "1.1"},
			{Key: "annualInsurance", Label: "Annual Homeowners Insurance", Unit: domain.UnitUSD, Default: "1500"},
			{Key: "sellerCredits", Label: "Seller Credits", Unit: domain.UnitUSD, Default: "0"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateClosingCosts(ClosingCostsInputs{
				HomePrice:         p.Decimal("homePrice"),
				DownPayment:       p.Decimal("downPayment"),
				OriginationPct:    p.DecimalOr("originationPct", decimal.NewFromInt(1)),
				AppraisalFee:      p.DecimalOr("appraisalFee", decimal.NewFromInt(600)),
				TitleInsurancePct: p.DecimalOr("titleInsurancePct", decimal.RequireFromString("0.5")),
				RecordingFee:      p.DecimalOr("recordingFee", decimal.NewFromInt(250)),
				TransferTaxPct:    p.DecimalOr("transferTaxPct", decimal.RequireFromString("0.1")),
				PrepaidMonths:     p.IntOr("prepaidMonths", 3),
				AnnualTaxRate:     p.DecimalOr("propertyTaxRate", decimal.RequireFromString("1.1")),
				AnnualInsurance:   p.DecimalOr("annualInsurance", decimal.NewFromInt(1500)),
				SellerCredits:     p.Decimal("sellerCredits"),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
