package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// Back-end DTI caps for the three affordability tiers.
var (
	tierConservative = decimal.NewFromInt(28)
	tierModerate     = decimal.NewFromInt(36)
	tierAggressive   = decimal.NewFromInt(43)
)

// AffordabilityInputs are the parameters for the home affordability
// calculator. Tax, insurance and HOA estimates are folded into the payment
// cap before solving for the supportable loan.
type AffordabilityInputs struct {
	AnnualIncome           decimal.Decimal
	MonthlyDebts           decimal.Decimal
	DownPayment            decimal.Decimal
	InterestRatePercent    decimal.Decimal
	LoanTermYears          int
	PropertyTaxRatePercent decimal.Decimal // annual, on home value
	AnnualInsurance        decimal.Decimal
	MonthlyHOA             decimal.Decimal
}

// AffordabilityTier is the outcome at one DTI cap.
type AffordabilityTier struct {
	Name          string          `json:"name"`
	DTICapPercent decimal.Decimal `json:"dtiCapPercent"`
	PaymentBudget decimal.Decimal `json:"paymentBudget"`
	LoanAmount    decimal.Decimal `json:"loanAmount"`
	HomePrice     decimal.Decimal `json:"homePrice"`
}

// AffordabilityResult carries the three tiers plus the shared context.
type AffordabilityResult struct {
	Conservative  AffordabilityTier `json:"conservative"`
	Moderate      AffordabilityTier `json:"moderate"`
	Aggressive    AffordabilityTier `json:"aggressive"`
	MonthlyIncome decimal.Decimal   `json:"monthlyIncome"`
	CurrentDTI    decimal.Decimal   `json:"currentDti"`
}

// CalculateAffordability solves the amortization formula backward at the
// 28/36/43 back-end DTI caps. Each tier's budget nets out existing debts and
// the tax/insurance/HOA carrying costs; a tier whose budget is already
// exhausted by debts reports a zero home price, never a negative one.
func CalculateAffordability(in AffordabilityInputs) *AffordabilityResult {
	if in.AnnualIncome.LessThanOrEqual(decimal.Zero) || in.LoanTermYears <= 0 || in.InterestRatePercent.IsNegative() {
		return nil
	}

	monthlyIncome := in.AnnualIncome.Div(decimal.NewFromInt(domain.MonthsPerYear))
	res := &AffordabilityResult{
		MonthlyIncome: monthlyIncome,
		CurrentDTI:    qualify.BackEndDTI(decimal.Zero, in.MonthlyDebts, monthlyIncome),

		Conservative: affordabilityTier("Conservative", tierConservative, monthlyIncome, in),
		Moderate:     affordabilityTier("Moderate", tierModerate, monthlyIncome, in),
		Aggressive:   affordabilityTier("Aggressive", tierAggressive, monthlyIncome, in),
	}
	return res
}

// affordabilityTier computes one tier. With f the payment factor per dollar
// of principal and tr the monthly tax rate, the housing budget satisfies
// budget = loan*f + (loan+down)*tr + insurance + hoa, which solves to
// loan = (budget - insurance - hoa - down*tr) / (f + tr).
func affordabilityTier(name string, dtiCap, monthlyIncome decimal.Decimal, in AffordabilityInputs) AffordabilityTier {
	tier := AffordabilityTier{Name: name, DTICapPercent: dtiCap, LoanAmount: decimal.Zero, HomePrice: decimal.Zero}

	budget := monthlyIncome.Mul(dtiCap).Div(hundred).Sub(in.MonthlyDebts)
	tier.PaymentBudget = decimal.Max(budget, decimal.Zero)
	if budget.LessThanOrEqual(decimal.Zero) {
		return tier
	}

	factor := finance.MonthlyPayment(decimal.NewFromInt(1), in.InterestRatePercent, in.LoanTermYears)
	taxMonthly := in.PropertyTaxRatePercent.Div(decimal.NewFromInt(1200))
	insuranceMonthly := in.AnnualInsurance.Div(decimal.NewFromInt(domain.MonthsPerYear))

	numerator := budget.
		Sub(insuranceMonthly).
		Sub(in.MonthlyHOA).
		Sub(in.DownPayment.Mul(taxMonthly))
	if numerator.LessThanOrEqual(decimal.Zero) {
		return tier
	}

	loan := numerator.Div(factor.Add(taxMonthly))
	tier.LoanAmount = loan
	tier.HomePrice = loan.Add(in.DownPayment)
	return tier
}

// Result adapts the typed result to the common contract.
func (r *AffordabilityResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "affordability",
		Summary: fmt.Sprintf("You can comfortably afford a home around %s, up to %s if you stretch.",
			usd(r.Moderate.HomePrice), usd(r.Aggressive.HomePrice)),
	}
	out.AddUSD("conservativePrice", "Conservative Home Price (28% DTI)", r.Conservative.HomePrice)
	out.AddUSD("moderatePrice", "Moderate Home Price (36% DTI)", r.Moderate.HomePrice)
	out.AddUSD("aggressivePrice", "Aggressive Home Price (43% DTI)", r.Aggressive.HomePrice)
	out.AddUSD("conservativePayment", "Conservative Monthly Budget", r.Conservative.PaymentBudget)
	out.AddUSD("moderatePayment", "Moderate Monthly Budget", r.Moderate.PaymentBudget)
	out.AddUSD("aggressivePayment", "Aggressive Monthly Budget", r.Aggressive.PaymentBudget)
	out.AddPercent("currentDti", "Current DTI (Before Housing)", r.CurrentDTI)

	for _, tier := range []AffordabilityTier{r.Conservative, r.Moderate, r.Aggressive} {
		out.ChartData = append(out.ChartData, domain.ChartPoint{
			Series: tier.Name, X: int(tier.DTICapPercent.IntPart()), Y: tier.HomePrice,
		})
	}

	if r.Moderate.HomePrice.IsZero() {
		out.Insights = append(out.Insights,
			"Existing monthly debts consume the moderate budget entirely; paying down debt will unlock more buying power.")
	} else {
		out.Insights = append(out.Insights,
			fmt.Sprintf("At a 36%% debt-to-income cap your housing budget is %s/month.", usd(r.Moderate.PaymentBudget)),
			"Lenders commonly approve up to 43% DTI, but the 28-36% range leaves room for savings and surprises.")
	}
	return out
}

func affordabilityDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "affordability",
		Name:        "Home Affordability",
		Description: "How much home your income supports at conservative, moderate and aggressive DTI tiers.",
		Fields: []Field{
			{Key: "annualIncome", Label: "Annual Gross Income", Unit: domain.UnitUSD, Required: true},
			{Key: "monthlyDebts", Label: "Existing Monthly Debts", Unit: domain.UnitUSD, Default: "0"},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Default: "0"},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "propertyTaxRate", Label: "Property Tax Rate", Unit: domain.UnitPercent, Default: "1.1"},
			{Key: "annualInsurance", Label: "Annual Home Insurance", Unit: domain.UnitUSD, Default: "1500"},
			{Key: "monthlyHoa", Label: "Monthly HOA Dues", Unit: domain.UnitUSD, Default: "0"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateAffordability(AffordabilityInputs{
				AnnualIncome:           p.Decimal("annualIncome"),
				MonthlyDebts:           p.Decimal("monthlyDebts"),
				DownPayment:            p.Decimal("downPayment"),
				InterestRatePercent:    p.Decimal("interestRate"),
				LoanTermYears:          p.IntOr("loanTerm", 30),
				PropertyTaxRatePercent: p.DecimalOr("propertyTaxRate", decimal.NewFromFloat(1.1)),
				AnnualInsurance:        p.DecimalOr("annualInsurance", decimal.NewFromInt(1500)),
				MonthlyHOA:             p.Decimal("monthlyHoa"),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
