package qualify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/domain"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestFrontEndDTI(t *testing.T) {
	dti := FrontEndDTI(d(2800), d(10000))
	assert.Equal(t, "28.00", dti.StringFixed(2))

	assert.True(t, FrontEndDTI(d(2800), decimal.Zero).IsZero(), "zero income should yield zero, not a crash")
	assert.True(t, FrontEndDTI(d(2800), d(-5000)).IsZero())
}

func TestBackEndDTI(t *testing.T) {
	dti := BackEndDTI(d(2800), d(800), d(10000))
	assert.Equal(t, "36.00", dti.StringFixed(2))

	// Negative debts are clamped to zero.
	assert.Equal(t, "28.00", BackEndDTI(d(2800), d(-500), d(10000)).StringFixed(2))
}

func TestRateDTI_Bands(t *testing.T) {
	tests := []struct {
		dti  float64
		want string
	}{
		{20, "Excellent"},
		{28, "Excellent"},
		{28.01, "Good"},
		{36, "Good"},
		{40, "Acceptable"},
		{43, "Acceptable"},
		{48, "High"},
		{50, "High"},
		{55, "Very High"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RateDTI(d(tc.dti)), "dti %.2f", tc.dti)
	}
}

func TestPMIAnnualRate_NoneAtOrBelow80(t *testing.T) {
	assert.True(t, PMIAnnualRate(d(80), 760).IsZero())
	assert.True(t, PMIAnnualRate(d(65), 620).IsZero())
}

func TestPMIAnnualRate_MonotonicInLTV(t *testing.T) {
	for _, score := range []int{780, 720, 660, 600} {
		prev := decimal.Zero
		for _, ltv := range []float64{83, 88, 93, 97} {
			rate := PMIAnnualRate(d(ltv), score)
			assert.True(t, rate.GreaterThanOrEqual(prev),
				"rate must not fall as LTV rises (score %d, ltv %.0f)", score, ltv)
			prev = rate
		}
	}
}

func TestPMIAnnualRate_MonotonicInCredit(t *testing.T) {
	for _, ltv := range []float64{83, 88, 93, 97} {
		prev := decimal.Zero
		for _, score := range []int{800, 750, 730, 710, 690, 670, 650, 600} {
			rate := PMIAnnualRate(d(ltv), score)
			assert.True(t, rate.GreaterThanOrEqual(prev),
				"worse credit must never get a cheaper rate (ltv %.0f, score %d)", ltv, score)
			prev = rate
		}
	}
}

func TestPMIAnnualRate_ClampsCreditScore(t *testing.T) {
	assert.True(t, PMIAnnualRate(d(92), 100).Equal(PMIAnnualRate(d(92), 300)))
	assert.True(t, PMIAnnualRate(d(92), 9000).Equal(PMIAnnualRate(d(92), 850)))
}

func TestPMIMonthlyPremium(t *testing.T) {
	// $300k at 0.58% annual -> $145/month.
	premium := PMIMonthlyPremium(d(300000), d(0.58))
	assert.Equal(t, "145.00", premium.StringFixed(2))
}

func TestPMIRemovalMonths(t *testing.T) {
	terms := domain.LoanTerms{
		Principal:         d(380000), // 95% LTV on a $400k home
		AnnualRatePercent: d(6.5),
		TermYears:         30,
	}
	request, auto := PMIRemovalMonths(terms, d(400000))

	require.Greater(t, request, 0, "80% threshold should be reached within the term")
	require.Greater(t, auto, 0, "78% threshold should be reached within the term")
	assert.GreaterOrEqual(t, auto, request, "automatic cancellation never precedes the requestable month")
}

func TestPMIRemovalMonths_NoPMI(t *testing.T) {
	terms := domain.LoanTerms{
		Principal:         d(300000), // 75% LTV, PMI never applied
		AnnualRatePercent: d(6.5),
		TermYears:         30,
	}
	request, auto := PMIRemovalMonths(terms, d(400000))
	assert.Zero(t, request)
	assert.Zero(t, auto)
}

func TestFHAUpfrontMIP(t *testing.T) {
	assert.Equal(t, "5250.00", FHAUpfrontMIP(d(300000)).StringFixed(2))
	assert.True(t, FHAUpfrontMIP(decimal.Zero).IsZero())
}

func TestFHAAnnualMIPRate(t *testing.T) {
	assert.Equal(t, "0.55", FHAAnnualMIPRate(30, d(96.5)).StringFixed(2))
	assert.Equal(t, "0.5", FHAAnnualMIPRate(30, d(95)).String())
	assert.Equal(t, "0.15", FHAAnnualMIPRate(15, d(90)).String())
	assert.Equal(t, "0.4", FHAAnnualMIPRate(15, d(93)).String())
}

func TestFHAMonthlyMIP(t *testing.T) {
	// $300k base loan, 30 years, >95% LTV: 300000 * 0.55% / 12 = $137.50.
	mip := FHAMonthlyMIP(d(300000), 30, d(96.5))
	assert.Equal(t, "137.50", mip.StringFixed(2))
}

func TestFHAMinDownPaymentPercent(t *testing.T) {
	assert.Equal(t, "3.5", FHAMinDownPaymentPercent(580).String())
	assert.Equal(t, "3.5", FHAMinDownPaymentPercent(720).String())
	assert.Equal(t, "10", FHAMinDownPaymentPercent(560).String())
}

func TestCheckFHAEligibility(t *testing.T) {
	t.Run("clean pass", func(t *testing.T) {
		out := CheckFHAEligibility(680, d(3.5), d(40))
		assert.True(t, out.Eligible)
		assert.Empty(t, out.Reasons)
	})

	t.Run("score below floor", func(t *testing.T) {
		out := CheckFHAEligibility(480, d(10), d(35))
		assert.False(t, out.Eligible)
		assert.NotEmpty(t, out.Reasons)
	})

	t.Run("low score needs ten percent down", func(t *testing.T) {
		out := CheckFHAEligibility(560, d(3.5), d(35))
		assert.False(t, out.Eligible)
	})

	t.Run("extended DTI passes with caveat", func(t *testing.T) {
		out := CheckFHAEligibility(680, d(5), d(50))
		assert.True(t, out.Eligible)
		assert.NotEmpty(t, out.Reasons)
	})

	t.Run("DTI over extended ceiling fails", func(t *testing.T) {
		out := CheckFHAEligibility(680, d(5), d(60))
		assert.False(t, out.Eligible)
	})
}

func TestVAFundingFeeRate(t *testing.T) {
	tests := []struct {
		down  float64
		usage VAUsage
		want  string
	}{
		{0, VAFirstUse, "2.15"},
		{0, VASubsequentUse, "3.3"},
		{3, VAFirstUse, "2.15"},
		{5, VAFirstUse, "1.5"},
		{5, VASubsequentUse, "1.5"},
		{10, VAFirstUse, "1.25"},
		{20, VASubsequentUse, "1.25"},
		{-4, VAFirstUse, "2.15"},
	}
	for _, tc := range tests {
		got := VAFundingFeeRate(d(tc.down), tc.usage)
		assert.Equal(t, tc.want, got.String(), "down %.0f%% usage %s", tc.down, tc.usage)
	}
}

func TestVAFundingFee(t *testing.T) {
	fee := VAFundingFee(d(400000), decimal.Zero, VAFirstUse)
	assert.Equal(t, "8600.00", fee.StringFixed(2))
}

func TestClampCreditScore(t *testing.T) {
	assert.Equal(t, 300, ClampCreditScore(150))
	assert.Equal(t, 850, ClampCreditScore(900))
	assert.Equal(t, 700, ClampCreditScore(700))
}
