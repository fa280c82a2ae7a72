package domain

import (
	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of scheduled payments in a calendar year.
const MonthsPerYear = 12

// LoanTerms describes a fixed-rate loan at origination. A LoanTerms value is
// immutable for the duration of a calculation call.
type LoanTerms struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	TermYears         int             `yaml:"term_years" json:"termYears"`
}

// Valid reports whether the terms can produce a meaningful schedule.
// Invalid terms are the "display empty state" signal, not an error.
func (lt LoanTerms) Valid() bool {
	return lt.Principal.GreaterThan(decimal.Zero) &&
		lt.AnnualRatePercent.GreaterThanOrEqual(decimal.Zero) &&
		lt.TermYears > 0
}

// TermMonths returns the nominal number of scheduled payments.
func (lt LoanTerms) TermMonths() int {
	return lt.TermYears * MonthsPerYear
}

// MonthlyRate returns the periodic rate as a decimal fraction
// (annual percent / 1200).
func (lt LoanTerms) MonthlyRate() decimal.Decimal {
	return lt.AnnualRatePercent.Div(decimal.NewFromInt(1200))
}

// ExtraPaymentPlan describes optional extra principal applied on top of the
// scheduled payment. All fields default to zero, meaning no extra principal.
type ExtraPaymentPlan struct {
	ExtraMonthly decimal.Decimal `yaml:"extra_monthly" json:"extraMonthly"`
	ExtraAnnual  decimal.Decimal `yaml:"extra_annual" json:"extraAnnual"`
	LumpSum      decimal.Decimal `yaml:"lump_sum" json:"lumpSum"`
	LumpSumMonth int             `yaml:"lump_sum_month" json:"lumpSumMonth"`
}

// IsZero reports whether the plan contributes no extra principal at all.
func (p ExtraPaymentPlan) IsZero() bool {
	return p.ExtraMonthly.LessThanOrEqual(decimal.Zero) &&
		p.ExtraAnnual.LessThanOrEqual(decimal.Zero) &&
		p.LumpSum.LessThanOrEqual(decimal.Zero)
}

// ExtraForMonth returns the extra principal due in a given month (1-based).
// The annual amount lands on loan anniversaries; the lump sum on its month.
func (p ExtraPaymentPlan) ExtraForMonth(month int) decimal.Decimal {
	extra := decimal.Zero
	if p.ExtraMonthly.GreaterThan(decimal.Zero) {
		extra = extra.Add(p.ExtraMonthly)
	}
	if p.ExtraAnnual.GreaterThan(decimal.Zero) && month%MonthsPerYear == 0 {
		extra = extra.Add(p.ExtraAnnual)
	}
	if p.LumpSum.GreaterThan(decimal.Zero) && month == p.LumpSumMonth {
		extra = extra.Add(p.LumpSum)
	}
	return extra
}

// ScheduleRow is a single month of an amortization schedule.
type ScheduleRow struct {
	MonthIndex       int             `json:"monthIndex"`
	Payment          decimal.Decimal `json:"paymentAmount"`
	Interest         decimal.Decimal `json:"interestPortion"`
	Principal        decimal.Decimal `json:"principalPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// Schedule is an ordered amortization schedule. RemainingBalance is
// monotonically non-increasing and the final row retires the loan exactly.
type Schedule []ScheduleRow

// TotalInterest returns the sum of the interest portion across all rows.
func (s Schedule) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s {
		total = total.Add(row.Interest)
	}
	return total
}

// TotalPaid returns the sum of all payments, scheduled and extra.
func (s Schedule) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s {
		total = total.Add(row.Payment)
	}
	return total
}

// PayoffMonth returns the month index of the final row, or 0 for an empty
// schedule.
func (s Schedule) PayoffMonth() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].MonthIndex
}

// BalanceAt returns the remaining balance after the given month (1-based).
// Months past the payoff month report zero.
func (s Schedule) BalanceAt(month int) decimal.Decimal {
	if month <= 0 || len(s) == 0 {
		return decimal.Zero
	}
	if month > len(s) {
		return decimal.Zero
	}
	return s[month-1].RemainingBalance
}

// QualificationProfile carries the borrower attributes the qualification
// rules consume. DTI is always recomputed from these fields, never cached.
type QualificationProfile struct {
	GrossMonthlyIncome   decimal.Decimal `yaml:"gross_monthly_income" json:"grossMonthlyIncome"`
	ExistingMonthlyDebts decimal.Decimal `yaml:"existing_monthly_debts" json:"existingMonthlyDebts"`
	CreditScore          int             `yaml:"credit_score" json:"creditScore"`
}
