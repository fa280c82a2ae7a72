package calculators

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAffordability_TierOrdering(t *testing.T) {
	r := CalculateAffordability(AffordabilityInputs{
		AnnualIncome:           d("120000"),
		MonthlyDebts:           d("500"),
		DownPayment:            d("80000"),
		InterestRatePercent:    d("6.75"),
		LoanTermYears:          30,
		PropertyTaxRatePercent: d("1.1"),
		AnnualInsurance:        d("1500"),
	})
	require.NotNil(t, r)

	assert.True(t, r.Conservative.HomePrice.IsPositive())
	assert.True(t, r.Moderate.HomePrice.GreaterThan(r.Conservative.HomePrice),
		"the 36%% tier must afford strictly more than the 28%% tier")
	assert.True(t, r.Aggressive.HomePrice.GreaterThan(r.Moderate.HomePrice),
		"the 43%% tier must afford strictly more than the 36%% tier")
}

func TestAffordability_PriceConsistentWithBudget(t *testing.T) {
	in := AffordabilityInputs{
		AnnualIncome:           d("150000"),
		DownPayment:            d("100000"),
		InterestRatePercent:    d("6.5"),
		LoanTermYears:          30,
		PropertyTaxRatePercent: d("1.2"),
		AnnualInsurance:        d("1800"),
		MonthlyHOA:             d("100"),
	}
	r := CalculateAffordability(in)
	require.NotNil(t, r)

	// Recompute the all-in payment at the derived price: it should land on
	// the tier's budget.
	tier := r.Moderate
	factor := tier.LoanAmount.Mul(d("6.5")).Div(d("1200")) // not the payment, just a sanity floor
	assert.True(t, tier.PaymentBudget.GreaterThan(factor), "budget must at least cover interest")

	monthlyTax := tier.HomePrice.Mul(d("1.2")).Div(d("1200"))
	allIn := monthlyPaymentFloat(tier.LoanAmount, 6.5, 30) +
		monthlyTax.InexactFloat64() + 150 + 100
	assert.InDelta(t, tier.PaymentBudget.InexactFloat64(), allIn, 1.0,
		"the derived price should exactly exhaust the tier budget")
}

func TestAffordability_DebtsExhaustBudget(t *testing.T) {
	r := CalculateAffordability(AffordabilityInputs{
		AnnualIncome:        d("60000"),
		MonthlyDebts:        d("2500"), // above even the 43% budget of $2,150
		InterestRatePercent: d("7.0"),
		LoanTermYears:       30,
	})
	require.NotNil(t, r)

	for _, tier := range []AffordabilityTier{r.Conservative, r.Moderate, r.Aggressive} {
		assert.True(t, tier.HomePrice.IsZero(), "%s tier should report zero, not negative", tier.Name)
		assert.False(t, tier.HomePrice.IsNegative())
	}
}

func TestAffordability_DegenerateInputs(t *testing.T) {
	assert.Nil(t, CalculateAffordability(AffordabilityInputs{AnnualIncome: decimal.Zero, LoanTermYears: 30}))
	assert.Nil(t, CalculateAffordability(AffordabilityInputs{AnnualIncome: d("100000"), LoanTermYears: 0}))
}

// monthlyPaymentFloat mirrors the closed-form payment for test arithmetic.
func monthlyPaymentFloat(principal decimal.Decimal, rate float64, years int) float64 {
	p := principal.InexactFloat64()
	r := rate / 1200
	growth := math.Pow(1+r, float64(years*12))
	return p * r * growth / (growth - 1)
}
