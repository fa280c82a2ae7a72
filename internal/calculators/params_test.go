package calculators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsIntOr(t *testing.T) {
	p := Params{
		"term":       "15",
		"fractional": "30.0",
		"zero":       "0",
		"junk":       "abc",
		"blank":      "  ",
	}

	assert.Equal(t, 15, p.IntOr("term", 30))
	assert.Equal(t, 30, p.IntOr("fractional", 99), "query strings may carry a decimal point")
	assert.Equal(t, 30, p.IntOr("missing", 30))
	assert.Equal(t, 30, p.IntOr("junk", 30))
	assert.Equal(t, 30, p.IntOr("blank", 30))
}

func TestParamsIntOrHonorsExplicitZero(t *testing.T) {
	p := Params{"loanTerm": "0"}
	assert.Equal(t, 0, p.IntOr("loanTerm", 30),
		"a supplied zero must reach the validity check, not the default")
}

func TestExplicitZeroTermDeclinesInsteadOfDefaulting(t *testing.T) {
	desc, ok := BuiltIn().Lookup("mortgage-cost")
	require.True(t, ok)

	params := Params{
		"homePrice":    "450000",
		"downPayment":  "90000",
		"interestRate": "6.75",
		"loanTerm":     "0",
	}
	assert.Nil(t, desc.Run(params))
}

func TestParamsStringTrimsAndDefaults(t *testing.T) {
	p := Params{"usage": "  subsequent  ", "blank": "   "}
	assert.Equal(t, "subsequent", p.String("usage", "first"))
	assert.Equal(t, "first", p.String("blank", "first"))
	assert.Equal(t, "first", p.String("missing", "first"))
}
