package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// MortgageCostInputs parameterize the all-in monthly cost (PITI) calculator.
type MortgageCostInputs struct {
	HomePrice              decimal.Decimal
	DownPayment            decimal.Decimal
	InterestRatePercent    decimal.Decimal
	LoanTermYears          int
	PropertyTaxRatePercent decimal.Decimal
	AnnualInsurance        decimal.Decimal
	MonthlyHOA             decimal.Decimal
	CreditScore            int
}

// MortgageCostResult is the monthly cost breakdown plus lifetime totals.
type MortgageCostResult struct {
	Terms                domain.LoanTerms `json:"terms"`
	LTVPercent           decimal.Decimal  `json:"ltvPercent"`
	PrincipalAndInterest decimal.Decimal  `json:"principalAndInterest"`
	MonthlyTax           decimal.Decimal  `json:"monthlyTax"`
	MonthlyInsurance     decimal.Decimal  `json:"monthlyInsurance"`
	MonthlyHOA           decimal.Decimal  `json:"monthlyHoa"`
	MonthlyPMI           decimal.Decimal  `json:"monthlyPmi"`
	TotalMonthly         decimal.Decimal  `json:"totalMonthly"`
	TotalInterest        decimal.Decimal  `json:"totalInterest"`
	PMIRemovalMonth      int              `json:"pmiRemovalMonth"`
	Schedule             domain.Schedule  `json:"-"`
}

// CalculateMortgageCost produces the full PITI breakdown for a purchase.
// PMI applies above 80% LTV using the conventional rate table and drops off
// at the automatic 78% cancellation month.
func CalculateMortgageCost(in MortgageCostInputs) *MortgageCostResult {
	loan := in.HomePrice.Sub(in.DownPayment)
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || loan.LessThanOrEqual(decimal.Zero) ||
		in.LoanTermYears <= 0 || in.InterestRatePercent.IsNegative() {
		return nil
	}

	terms := domain.LoanTerms{Principal: loan, AnnualRatePercent: in.InterestRatePercent, TermYears: in.LoanTermYears}
	schedule := finance.BuildSchedule(terms, nil)
	if schedule == nil {
		return nil
	}

	ltv := loan.Div(in.HomePrice).Mul(hundred)
	pmiRate := qualify.PMIAnnualRate(ltv, in.CreditScore)

	res := &MortgageCostResult{
		Terms:                terms,
		LTVPercent:           ltv,
		PrincipalAndInterest: finance.PaymentForTerms(terms),
		MonthlyTax:           in.HomePrice.Mul(in.PropertyTaxRatePercent).Div(hundred).Div(twelve),
		MonthlyInsurance:     in.AnnualInsurance.Div(twelve),
		MonthlyHOA:           decimal.Max(in.MonthlyHOA, decimal.Zero),
		MonthlyPMI:           qualify.PMIMonthlyPremium(loan, pmiRate),
		TotalInterest:        schedule.TotalInterest(),
		Schedule:             schedule,
	}
	if res.MonthlyPMI.GreaterThan(decimal.Zero) {
		_, res.PMIRemovalMonth = qualify.PMIRemovalMonths(terms, in.HomePrice)
	}
	res.TotalMonthly = res.PrincipalAndInterest.
		Add(res.MonthlyTax).
		Add(res.MonthlyInsurance).
		Add(res.MonthlyHOA).
		Add(res.MonthlyPMI)
	return res
}

// Result adapts the typed result to the common contract.
func (r *MortgageCostResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "mortgage-cost",
		Summary: fmt.Sprintf("Your all-in monthly payment is %s, of which %s is principal and interest.",
			usd(r.TotalMonthly), usd(r.PrincipalAndInterest)),
	}
	out.AddUSD("totalMonthly", "Total Monthly Payment", r.TotalMonthly)
	out.AddUSD("principalAndInterest", "Principal & Interest", r.PrincipalAndInterest)
	out.AddUSD("monthlyTax", "Property Tax", r.MonthlyTax)
	out.AddUSD("monthlyInsurance", "Home Insurance", r.MonthlyInsurance)
	if r.MonthlyHOA.GreaterThan(decimal.Zero) {
		out.AddUSD("monthlyHoa", "HOA Dues", r.MonthlyHOA)
	}
	if r.MonthlyPMI.GreaterThan(decimal.Zero) {
		out.AddUSD("monthlyPmi", "PMI", r.MonthlyPMI)
	}
	out.AddPercent("ltv", "Loan-to-Value", r.LTVPercent)
	out.AddUSD("totalInterest", "Total Interest Over Term", r.TotalInterest)

	out.LineItems = []domain.LineItem{
		{Name: "Principal & Interest", Amount: r.PrincipalAndInterest, Category: "loan"},
		{Name: "Property Tax", Amount: r.MonthlyTax, Category: "escrow", IsEstimate: true},
		{Name: "Home Insurance", Amount: r.MonthlyInsurance, Category: "escrow", IsEstimate: true},
	}
	if r.MonthlyHOA.GreaterThan(decimal.Zero) {
		out.LineItems = append(out.LineItems, domain.LineItem{Name: "HOA Dues", Amount: r.MonthlyHOA, Category: "association"})
	}
	if r.MonthlyPMI.GreaterThan(decimal.Zero) {
		out.LineItems = append(out.LineItems, domain.LineItem{Name: "PMI", Amount: r.MonthlyPMI, Category: "insurance"})
	}

	// Yearly balance curve for charting.
	for year := 1; year*domain.MonthsPerYear <= len(r.Schedule); year++ {
		out.ChartData = append(out.ChartData, domain.ChartPoint{
			Series: "balance", X: year, Y: r.Schedule.BalanceAt(year * domain.MonthsPerYear),
		})
	}

	if r.MonthlyPMI.GreaterThan(decimal.Zero) && r.PMIRemovalMonth > 0 {
		out.Insights = append(out.Insights, fmt.Sprintf(
			"PMI of %s/month cancels automatically after %s once the balance reaches 78%% of the purchase price.",
			usd(r.MonthlyPMI), monthsLabel(r.PMIRemovalMonth)))
	}
	out.Insights = append(out.Insights, fmt.Sprintf(
		"Over the full term you will pay %s in interest on top of the amount borrowed.", usd(r.TotalInterest)))
	return out
}

func mortgageCostDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "mortgage-cost",
		Name:        "Mortgage Cost (PITI)",
		Description: "Full monthly payment breakdown: principal, interest, taxes, insurance, PMI and HOA.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Default: "0"},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "propertyTaxRate", Label: "Property Tax Rate", Unit: domain.UnitPercent, Default: "1.1"},
			{Key: "annualInsurance", Label: "Annual Home Insurance", Unit: domain.UnitUSD, Default: "1500"},
			{Key: "monthlyHoa", Label: "Monthly HOA Dues", Unit: domain.UnitUSD, Default: "0"},
			{Key: "creditScore", Label: "Credit Score", Unit: domain.UnitCount, Default: "720"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateMortgageCost(MortgageCostInputs{
				HomePrice:              p.Decimal("homePrice"),
				DownPayment:            p.Decimal("downPayment"),
				InterestRatePercent:    p.Decimal("interestRate"),
				LoanTermYears:          p.IntOr("loanTerm", 30),
				PropertyTaxRatePercent: p.DecimalOr("propertyTaxRate", decimal.NewFromFloat(1.1)),
				AnnualInsurance:        p.DecimalOr("annualInsurance", decimal.NewFromInt(1500)),
				MonthlyHOA:             p.Decimal("monthlyHoa"),
				CreditScore:            p.IntOr("creditScore", 720),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
