package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/calculators"
)

func TestFor_EveryCalculatorHasATable(t *testing.T) {
	for _, desc := range calculators.BuiltIn().All() {
		steps := For(desc.Slug)
		assert.NotEmpty(t, steps, "calculator %s has no formula table", desc.Slug)
		for _, step := range steps {
			assert.NotEmpty(t, step.Field)
			assert.NotEmpty(t, step.Formula)
			assert.NotEmpty(t, step.Explanation)
		}
	}
}

func TestFor_UnknownSlug(t *testing.T) {
	assert.Nil(t, For("nope"))
}

func TestFor_ReturnsACopy(t *testing.T) {
	first := For("refinance")
	require.NotEmpty(t, first)
	first[0].Formula = "tampered"

	second := For("refinance")
	assert.NotEqual(t, "tampered", second[0].Formula, "callers must not share the backing table")
}

func TestSlugs_SortedAndComplete(t *testing.T) {
	slugs := Slugs()
	assert.Len(t, slugs, 20)
	assert.IsNonDecreasing(t, slugs)
}
