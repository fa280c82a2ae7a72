// Package explain carries the formula tables behind each calculator: a
// per-slug list of derivation steps keyed by result detail names, so a shell
// can show not just the number but where it came from. The tables are purely
// descriptive and never feed back into computation.
package explain

import "sort"

// Step ties one result field to its formula and a plain-language derivation.
type Step struct {
	Field       string `json:"field"`
	Formula     string `json:"formula"`
	Explanation string `json:"explanation"`
}

// For returns the derivation steps for a calculator slug, or nil when the
// calculator has no published table.
func For(slug string) []Step {
	steps, ok := tables[slug]
	if !ok {
		return nil
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Slugs lists every calculator with a published table, sorted.
func Slugs() []string {
	out := make([]string, 0, len(tables))
	for slug := range tables {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

var paymentStep = Step{
	Field:       "monthlyPayment",
	Formula:     "P × r × (1+r)^n / ((1+r)^n − 1)",
	Explanation: "The standard amortizing payment: principal P, monthly rate r (annual rate ÷ 1200), and n monthly periods. A zero rate divides the principal evenly instead.",
}

var tables = map[string][]Step{
	"affordability": {
		{Field: "moderatePayment", Formula: "income/12 × 36% − monthly debts", Explanation: "Each tier caps total debt at a share of gross monthly income (28% conservative, 36% moderate, 43% aggressive), then nets out what debts already consume."},
		{Field: "moderatePrice", Formula: "(budget − insurance − HOA − down×taxRate) / (paymentFactor + taxRate) + down", Explanation: "The payment formula solved backward for principal, with property tax folded in since it scales with the price being solved for."},
	},
	"mortgage-cost": {
		paymentStep,
		{Field: "totalMonthly", Formula: "P&I + tax + insurance + HOA + PMI", Explanation: "The all-in PITI payment. Property tax is the home price times the annual rate over twelve; PMI applies only above 80% loan-to-value."},
		{Field: "monthlyPmi", Formula: "loan × PMI rate ÷ 12", Explanation: "The annual PMI rate comes from a table keyed by loan-to-value band and credit score; better credit and more equity both lower it."},
	},
	"down-payment": {
		paymentStep,
		{Field: "pmiRemovalMonth", Formula: "first month balance ≤ 78% of price", Explanation: "PMI cancels automatically once the amortizing balance reaches 78% of the original value; you can request cancellation at 80%."},
	},
	"refinance": {
		{Field: "monthlySavings", Formula: "current payment − new payment", Explanation: "Both payments come from the standard amortizing formula on the same balance."},
		{Field: "breakEvenMonths", Formula: "closing costs ÷ monthly savings, rounded up", Explanation: "How long the savings take to repay the upfront costs. When savings are zero or negative there is no break-even month at all."},
		{Field: "lifetimeSavings", Formula: "(current total paid − new total paid) − closing costs", Explanation: "Total-cost view across both full schedules, net of what the refinance costs to close."},
	},
	"cash-out": {
		{Field: "newLoanAmount", Formula: "balance + cash out + closing costs", Explanation: "Everything rolls into the new loan, including the costs of writing it."},
		{Field: "maxCashOut", Formula: "80% × home value − current balance", Explanation: "Conventional cash-out refinances cap the new loan at 80% loan-to-value."},
		{Field: "costOfCash", Formula: "new lifetime interest − current lifetime interest", Explanation: "What the pulled-out equity really costs over the life of both loans."},
	},
	"recast-vs-refi": {
		{Field: "recastPayment", Formula: "payment(balance − lump, current rate, remaining term)", Explanation: "A recast re-amortizes the reduced balance on the existing loan's rate and clock for a flat fee."},
		{Field: "prepayInterest", Formula: "schedule(balance, rate, term, lump at month 1)", Explanation: "Prepaying keeps the payment unchanged, so the lump sum shortens the schedule instead of shrinking the payment."},
	},
	"points": {
		{Field: "pointsCostHeld", Formula: "upfront + payment × months held", Explanation: "Each pricing tier's true cost over your expected stay. Lender credits enter as negative upfront cost."},
	},
	"arm-vs-fixed": {
		{Field: "armCost", Formula: "Σ monthly payments on the worst-case rate path", Explanation: "The teaser holds for the fixed period, then the rate steps up each year to its lifetime cap, re-amortizing the balance at each adjustment."},
		{Field: "savings", Formula: "fixed cost through move − ARM cost through move", Explanation: "Positive means the ARM wins even if rates adjust as badly as the caps allow."},
	},
	"timeline": {
		{Field: "armExpectedCost", Formula: "p × refi-path cost + (1−p) × worst-case cost", Explanation: "The ARM outcome is a probability blend: with likelihood p you refinance at the first adjustment, otherwise you ride the caps."},
	},
	"extra-payment": {
		{Field: "interestSaved", Formula: "base schedule interest − accelerated schedule interest", Explanation: "Both schedules run month by month; the extra principal shortens the second one."},
	},
	"acceleration": {
		{Field: "requiredExtra", Formula: "payment(P, rate, target years) − payment(P, rate, term)", Explanation: "The extra needed is the gap between the payment that amortizes the loan by your target and the scheduled payment."},
	},
	"biweekly": {
		{Field: "biweeklyPayment", Formula: "monthly payment ÷ 2", Explanation: "Twenty-six half-payments equal thirteen monthly payments, so the schedule runs with one extra payment applied to principal each year."},
	},
	"interest-sensitivity": {
		paymentStep,
		{Field: "offset0.25InterestDelta", Formula: "interest(rate + 0.25) − interest(rate)", Explanation: "Each row re-prices the identical loan at a fixed offset from your quote; deltas isolate what the rate move alone costs."},
	},
	"amortization-table": {
		{Field: "totalInterest", Formula: "Σ monthly interest, interest = balance × rate/1200", Explanation: "Each month's interest accrues on the running balance; the rest of the payment retires principal, so the split shifts over time."},
	},
	"dti": {
		{Field: "frontEndDti", Formula: "housing ÷ gross monthly income × 100", Explanation: "The housing-only ratio lenders compare to the 28% guideline."},
		{Field: "backEndDti", Formula: "(housing + debts) ÷ gross monthly income × 100", Explanation: "The all-obligations ratio, rated against the 28/36/43/50 bands."},
	},
	"closing-costs": {
		{Field: "cashToClose", Formula: "down payment + (total costs − seller credits)", Explanation: "Credits net against costs but never below zero; whatever remains is due at the table alongside the down payment."},
	},
	"pmi": {
		{Field: "monthlyPremium", Formula: "loan × annual PMI rate ÷ 100 ÷ 12", Explanation: "The annual rate comes from the loan-to-value and credit score table; at or below 80% LTV it is zero."},
		{Field: "autoMonth", Formula: "first month balance ≤ 78% of original value", Explanation: "Found by walking the amortization schedule month by month."},
	},
	"fha": {
		{Field: "upfrontMip", Formula: "1.75% × base loan", Explanation: "FHA's one-time premium, normally financed into the balance."},
		{Field: "monthlyMip", Formula: "base loan × annual MIP rate ÷ 100 ÷ 12", Explanation: "The annual rate depends on term and loan-to-value: 0.55% for the common low-down 30-year case."},
	},
	"va": {
		{Field: "fundingFee", Formula: "loan × fee rate", Explanation: "The rate tiers on down payment and entitlement use: 2.15% first use with zero down, 3.30% subsequent, 1.50% at five percent down, 1.25% at ten."},
	},
	"rent-vs-buy": {
		{Field: "baseCrossover", Formula: "first year buy net worth permanently exceeds rent net worth", Explanation: "Buy net worth is equity minus selling costs; rent net worth is the down payment plus every month's owning-versus-renting gap, invested and compounded."},
	},
}
