package calculators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitivity_GridShape(t *testing.T) {
	r := CalculateSensitivity(SensitivityInputs{
		LoanAmount: d("360000"),
		AnnualRate: d("6.75"),
		TermYears:  30,
	})
	require.NotNil(t, r)
	require.Len(t, r.Rows, 7)

	for i := 1; i < len(r.Rows); i++ {
		assert.True(t, r.Rows[i].Payment.GreaterThan(r.Rows[i-1].Payment),
			"payment must rise strictly with the rate")
	}
	base := r.Rows[3]
	assert.True(t, base.Offset.IsZero())
	assert.True(t, base.PaymentDelta.IsZero())
	assert.True(t, base.InterestDelta.IsZero())
	assert.Equal(t, r.BasePayment.StringFixed(2), base.Payment.StringFixed(2))
}

func TestSensitivity_NegativeRateClampsToZero(t *testing.T) {
	r := CalculateSensitivity(SensitivityInputs{
		LoanAmount: d("360000"),
		AnnualRate: d("0.5"),
		TermYears:  30,
	})
	require.NotNil(t, r)

	lowest := r.Rows[0] // the -1.0 offset
	assert.True(t, lowest.RatePercent.IsZero(), "offsets never push the rate negative")
	assert.Equal(t, "1000.00", lowest.Payment.StringFixed(2))
}

func TestAmortization_TotalsReconcile(t *testing.T) {
	r := CalculateAmortization(AmortizationInputs{
		LoanAmount: d("360000"),
		AnnualRate: d("6.75"),
		TermYears:  30,
	})
	require.NotNil(t, r)

	assert.Len(t, r.Schedule, 360)
	assert.Equal(t, 360, r.PayoffMonths)
	assert.True(t, r.Schedule[len(r.Schedule)-1].RemainingBalance.IsZero())

	// principal + interest == total paid, to the cent
	sum := d("360000").Add(r.TotalInterest)
	diff := sum.Sub(r.TotalPaid).Abs()
	assert.True(t, diff.LessThan(d("0.01")), "totals should reconcile, got diff %s", diff)
}

func TestAmortization_ExtraShortensTable(t *testing.T) {
	base := CalculateAmortization(AmortizationInputs{
		LoanAmount: d("360000"), AnnualRate: d("6.75"), TermYears: 30,
	})
	extra := CalculateAmortization(AmortizationInputs{
		LoanAmount: d("360000"), AnnualRate: d("6.75"), TermYears: 30, ExtraMonthly: d("300"),
	})
	require.NotNil(t, base)
	require.NotNil(t, extra)

	assert.Less(t, extra.PayoffMonths, base.PayoffMonths)
	assert.True(t, extra.TotalInterest.LessThan(base.TotalInterest))
}
