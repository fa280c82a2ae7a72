package calculators

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltIn_TwentyCalculators(t *testing.T) {
	reg := BuiltIn()
	all := reg.All()
	assert.Len(t, all, 20)

	seen := map[string]bool{}
	for _, desc := range all {
		assert.NotEmpty(t, desc.Slug)
		assert.NotEmpty(t, desc.Name)
		assert.NotNil(t, desc.Run, "%s needs a runner", desc.Slug)
		assert.False(t, seen[desc.Slug], "duplicate slug %s", desc.Slug)
		seen[desc.Slug] = true

		found, ok := reg.Lookup(desc.Slug)
		require.True(t, ok)
		assert.Same(t, desc, found)
	}
}

func TestLookup_UnknownSlug(t *testing.T) {
	_, ok := BuiltIn().Lookup("nope")
	assert.False(t, ok)
}

func TestMissingRequired(t *testing.T) {
	desc, ok := BuiltIn().Lookup("refinance")
	require.True(t, ok)

	missing := desc.MissingRequired(Params{"currentBalance": "320000"})
	assert.ElementsMatch(t, []string{"currentRate", "newRate"}, missing)

	missing = desc.MissingRequired(Params{
		"currentBalance": "320000", "currentRate": "7.5", "newRate": "6.25",
	})
	assert.Empty(t, missing)
}

func TestRun_EmptyParamsYieldNil(t *testing.T) {
	// Every calculator treats absent required inputs as a degenerate case
	// and signals the empty state with a nil result, never a panic.
	for _, desc := range BuiltIn().All() {
		t.Run(desc.Slug, func(t *testing.T) {
			assert.Nil(t, desc.Run(Params{}))
		})
	}
}

func TestRun_Idempotent(t *testing.T) {
	inputs := map[string]Params{
		"affordability": {"annualIncome": "120000", "monthlyDebts": "500", "downPayment": "80000", "interestRate": "6.75"},
		"refinance":     {"currentBalance": "320000", "currentRate": "7.5", "newRate": "6.25"},
		"rent-vs-buy":   {"homePrice": "400000", "downPayment": "80000", "interestRate": "6.5", "monthlyRent": "2200"},
		"mortgage-cost": {"homePrice": "400000", "downPayment": "40000", "interestRate": "6.5"},
	}
	reg := BuiltIn()
	for slug, params := range inputs {
		desc, ok := reg.Lookup(slug)
		require.True(t, ok, slug)

		first := desc.Run(params)
		second := desc.Run(params)
		require.NotNil(t, first, slug)
		assert.True(t, reflect.DeepEqual(first, second),
			"%s must be a pure function of its inputs", slug)
	}
}
