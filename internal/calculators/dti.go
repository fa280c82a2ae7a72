package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// DTIInputs describe income, housing cost and other obligations.
type DTIInputs struct {
	AnnualIncome   decimal.Decimal
	MonthlyHousing decimal.Decimal
	MonthlyDebts   decimal.Decimal
}

// DTIResult reports front-end and back-end ratios with their rating.
type DTIResult struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	FrontEnd      decimal.Decimal `json:"frontEnd"`
	BackEnd       decimal.Decimal `json:"backEnd"`
	Rating        string          `json:"rating"`
	Headroom      decimal.Decimal `json:"headroom"` // monthly budget left under the 43% cap
}

// CalculateDTI computes both ratios and the remaining budget under the
// standard qualifying cap.
func CalculateDTI(in DTIInputs) *DTIResult {
	if in.AnnualIncome.LessThanOrEqual(decimal.Zero) || in.MonthlyHousing.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	monthlyIncome := in.AnnualIncome.Div(decimal.NewFromInt(domain.MonthsPerYear))
	frontEnd := qualify.FrontEndDTI(in.MonthlyHousing, monthlyIncome)
	backEnd := qualify.BackEndDTI(in.MonthlyHousing, in.MonthlyDebts, monthlyIncome)

	cap := monthlyIncome.Mul(decimal.RequireFromString("0.43"))
	headroom := cap.Sub(in.MonthlyHousing).Sub(in.MonthlyDebts)
	if headroom.IsNegative() {
		headroom = decimal.Zero
	}

	return &DTIResult{
		MonthlyIncome: monthlyIncome,
		FrontEnd:      frontEnd,
		BackEnd:       backEnd,
		Rating:        qualify.RateDTI(backEnd),
		Headroom:      headroom,
	}
}

// Result adapts the typed result to the common contract.
func (r *DTIResult) Result() *domain.Result {
	out := &domain.Result{
		Calculator: "dti",
		Summary: fmt.Sprintf("Your back-end DTI is %s%%, which lenders rate as %s.",
			r.BackEnd.StringFixed(1), r.Rating),
	}
	out.AddUSD("monthlyIncome", "Gross Monthly Income", r.MonthlyIncome)
	out.AddPercent("frontEndDti", "Front-End DTI", r.FrontEnd)
	out.AddPercent("backEndDti", "Back-End DTI", r.BackEnd)
	out.AddText("rating", "Lender Rating", r.Rating)
	out.AddUSD("headroom", "Monthly Budget Under 43%", r.Headroom)

	switch r.Rating {
	case "Excellent":
		out.Insights = append(out.Insights, "You are comfortably inside conventional guidelines with room to spare.")
	case "Good":
		out.Insights = append(out.Insights, "You fit standard conventional guidelines; most lenders will qualify you at this ratio.")
	case "Acceptable":
		out.Insights = append(out.Insights, "You are near the qualifying ceiling; paying down a debt before applying improves pricing.")
	default:
		out.Insights = append(out.Insights, "Above the standard cap most lenders use; reduce debts or housing cost before applying.")
	}
	return out
}

func dtiDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "dti",
		Name:        "Debt-to-Income",
		Description: "Front-end and back-end ratios with the rating lenders apply to them.",
		Fields: []Field{
			{Key: "annualIncome", Label: "Gross Annual Income", Unit: domain.UnitUSD, Required: true},
			{Key: "monthlyHousing", Label: "Monthly Housing Cost", Unit: domain.UnitUSD, Required: true},
			{Key: "monthlyDebts", Label: "Other Monthly Debts", Unit: domain.UnitUSD, Default: "0"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateDTI(DTIInputs{
				AnnualIncome:   p.Decimal("annualIncome"),
				MonthlyHousing: p.Decimal("monthlyHousing"),
				MonthlyDebts:   p.Decimal("monthlyDebts"),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
