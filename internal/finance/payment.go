// Package finance implements the amortization primitives every calculator
// builds on: the fixed-payment formula, month-by-month schedule generation
// with extra-payment support, and closed-form balance lookup.
//
// All functions are pure and deterministic: identical inputs produce
// identical schedules. Degenerate inputs yield a zero value or nil schedule,
// never an error or panic, so callers can render an empty state.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
)

var one = decimal.NewFromInt(1)

// MonthlyPayment returns the scheduled payment for a fixed-rate loan:
// P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate and n the term in
// months. A zero rate degrades to straight principal division. Non-positive
// principal or term returns zero.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	terms := domain.LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermYears: termYears}
	if !terms.Valid() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(terms.TermMonths()))
	if annualRatePercent.IsZero() {
		return principal.Div(n)
	}
	r := terms.MonthlyRate()
	growth := one.Add(r).Pow(n)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(one))
}

// PaymentForTerms is MonthlyPayment over a LoanTerms value.
func PaymentForTerms(terms domain.LoanTerms) decimal.Decimal {
	return MonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
}

// PrincipalForPayment inverts the payment formula: the largest principal a
// given monthly payment supports at the given rate and term. This is the
// backward solve the affordability calculator uses. A non-positive payment
// returns zero.
func PrincipalForPayment(payment, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	if payment.LessThanOrEqual(decimal.Zero) || termYears <= 0 || annualRatePercent.IsNegative() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termYears * domain.MonthsPerYear))
	if annualRatePercent.IsZero() {
		return payment.Mul(n)
	}
	r := annualRatePercent.Div(decimal.NewFromInt(1200))
	growth := one.Add(r).Pow(n)
	return payment.Mul(growth.Sub(one)).Div(r.Mul(growth))
}

// RemainingBalance returns the balance after atMonth scheduled payments via
// the closed-form formula P*(1+r)^m - Pmt*((1+r)^m - 1)/r. It agrees with
// reading the schedule row to the cent. Months at or past payoff report zero.
func RemainingBalance(terms domain.LoanTerms, atMonth int) decimal.Decimal {
	if !terms.Valid() || atMonth <= 0 {
		if terms.Valid() {
			return terms.Principal
		}
		return decimal.Zero
	}
	if atMonth >= terms.TermMonths() {
		return decimal.Zero
	}
	payment := PaymentForTerms(terms)
	m := decimal.NewFromInt(int64(atMonth))
	if terms.AnnualRatePercent.IsZero() {
		bal := terms.Principal.Sub(payment.Mul(m))
		if bal.IsNegative() {
			return decimal.Zero
		}
		return bal
	}
	r := terms.MonthlyRate()
	growth := one.Add(r).Pow(m)
	bal := terms.Principal.Mul(growth).Sub(payment.Mul(growth.Sub(one)).Div(r))
	if bal.IsNegative() {
		return decimal.Zero
	}
	return bal
}
