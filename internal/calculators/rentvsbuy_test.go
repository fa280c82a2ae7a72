package calculators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

func TestRentVsBuy_EqualCostCrossesOverByPaydown(t *testing.T) {
	// Rent exactly equals the all-in buy cost, nothing appreciates and the
	// renter's capital earns nothing: equity accrual alone must make buying
	// win, never "Never".
	terms := domain.LoanTerms{Principal: d("320000"), AnnualRatePercent: d("6.5"), TermYears: 30}
	payment := finance.PaymentForTerms(terms)

	r := CalculateRentVsBuy(RentVsBuyInputs{
		HomePrice:        d("400000"),
		DownPayment:      d("80000"),
		AnnualRate:       d("6.5"),
		TermYears:        30,
		MonthlyRent:      payment,
		RentInflationPct: d("0"),
		AppreciationPct:  d("0"),
		InvestReturnPct:  d("0"),
		HorizonYears:     30,
	})
	require.NotNil(t, r)

	assert.Positive(t, r.Base.CrossoverYear, "principal paydown alone must produce a crossover")
}

func TestRentVsBuy_ScenariosShareRentAssumptions(t *testing.T) {
	r := CalculateRentVsBuy(RentVsBuyInputs{
		HomePrice:        d("400000"),
		DownPayment:      d("80000"),
		AnnualRate:       d("6.5"),
		TermYears:        30,
		MonthlyRent:      d("2200"),
		RentInflationPct: d("3"),
		AppreciationPct:  d("3.5"),
		InvestReturnPct:  d("7"),
		PropertyTaxRate:  d("1.1"),
		AnnualInsurance:  d("1500"),
		MaintenancePct:   d("1"),
		SellingCostPct:   d("6"),
		HorizonYears:     30,
	})
	require.NotNil(t, r)

	assert.Equal(t, "5.5", r.Best.AppreciationPct.StringFixed(1), "best case is base plus two points")
	assert.Equal(t, "0.5", r.Worst.AppreciationPct.StringFixed(1), "worst case is base minus three points")

	// All three runs share rent and investment assumptions, so at any year
	// best-case buy net worth dominates base, which dominates worst.
	require.Len(t, r.Best.Years, 30)
	for i := range r.Base.Years {
		assert.True(t, r.Best.Years[i].BuyNetWorth.GreaterThanOrEqual(r.Base.Years[i].BuyNetWorth))
		assert.True(t, r.Base.Years[i].BuyNetWorth.GreaterThanOrEqual(r.Worst.Years[i].BuyNetWorth))
		assert.True(t, r.Base.Years[i].MonthlyRent.Equal(r.Best.Years[i].MonthlyRent),
			"rent evolution must be identical across scenarios")
	}

	// A faster-appreciating home never crosses over later.
	if r.Best.CrossoverYear > 0 && r.Base.CrossoverYear > 0 {
		assert.LessOrEqual(t, r.Best.CrossoverYear, r.Base.CrossoverYear)
	}
}

func TestRentVsBuy_ConfigurableOffsets(t *testing.T) {
	best := d("1")
	worst := d("-1")
	r := CalculateRentVsBuy(RentVsBuyInputs{
		HomePrice:       d("400000"),
		DownPayment:     d("80000"),
		AnnualRate:      d("6.5"),
		TermYears:       30,
		MonthlyRent:     d("2200"),
		AppreciationPct: d("3"),
		HorizonYears:    10,
		BestCaseOffset:  &best,
		WorstCaseOffset: &worst,
	})
	require.NotNil(t, r)

	assert.Equal(t, "4", r.Best.AppreciationPct.StringFixed(0))
	assert.Equal(t, "2", r.Worst.AppreciationPct.StringFixed(0))
}

func TestRentVsBuy_DegenerateInputs(t *testing.T) {
	assert.Nil(t, CalculateRentVsBuy(RentVsBuyInputs{HomePrice: d("0"), MonthlyRent: d("2000"), TermYears: 30, HorizonYears: 30}))
	assert.Nil(t, CalculateRentVsBuy(RentVsBuyInputs{HomePrice: d("400000"), MonthlyRent: d("0"), TermYears: 30, HorizonYears: 30}))
}
