package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByTotalCost(t *testing.T) {
	ranking := Rank([]Option{
		{Name: "Refinance", UpfrontCost: decimal.NewFromInt(7000), MonthlyCost: decimal.NewFromInt(1800), TotalCost: decimal.NewFromInt(520000)},
		{Name: "Recast", UpfrontCost: decimal.NewFromInt(250), MonthlyCost: decimal.NewFromInt(1900), TotalCost: decimal.NewFromInt(505000)},
		{Name: "Prepay", UpfrontCost: decimal.Zero, MonthlyCost: decimal.NewFromInt(2100), TotalCost: decimal.NewFromInt(512000)},
	})

	require.Len(t, ranking.Options, 3)
	assert.Equal(t, "Recast", ranking.Best)
	assert.Equal(t, "Recast", ranking.Options[0].Name)
	assert.Equal(t, "Prepay", ranking.Options[1].Name)
	assert.Equal(t, "Refinance", ranking.Options[2].Name)

	assert.True(t, ranking.Options[0].DiffFromBest.IsZero())
	assert.Equal(t, "7000", ranking.Options[1].DiffFromBest.StringFixed(0))
	assert.Equal(t, "15000", ranking.Options[2].DiffFromBest.StringFixed(0))
}

func TestRank_Recommendations(t *testing.T) {
	ranking := Rank([]Option{
		{Name: "A", MonthlyCost: decimal.NewFromInt(2000), TotalCost: decimal.NewFromInt(500000)},
		{Name: "B", MonthlyCost: decimal.NewFromInt(1800), TotalCost: decimal.NewFromInt(510000)},
	})

	require.NotEmpty(t, ranking.Recommendations)
	assert.Contains(t, ranking.Recommendations[0], "A is the cheapest option")
	// B has the lower monthly payment but loses overall.
	require.Len(t, ranking.Recommendations, 2)
	assert.Contains(t, ranking.Recommendations[1], "B has the lower monthly payment")
}

func TestRank_StableForTies(t *testing.T) {
	options := []Option{
		{Name: "First", TotalCost: decimal.NewFromInt(100)},
		{Name: "Second", TotalCost: decimal.NewFromInt(100)},
	}
	a := Rank(options)
	b := Rank(options)
	assert.Equal(t, "First", a.Best)
	assert.Equal(t, a.Options[0].Name, b.Options[0].Name)
}

func TestRank_Empty(t *testing.T) {
	ranking := Rank(nil)
	assert.Empty(t, ranking.Options)
	assert.Empty(t, ranking.Best)
}
