package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/domain"
)

func TestMemoryStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	sc := SavedScenario{
		Calculator: "refinance",
		Params:     map[string]string{"currentBalance": "320000"},
		Result:     &domain.Result{Calculator: "refinance", Summary: "ok"},
		SavedAt:    time.Now(),
	}
	require.NoError(t, s.Save(ctx, "sess-1", sc))
	require.NoError(t, s.Save(ctx, "sess-1", SavedScenario{Calculator: "pmi"}))

	saved, err := s.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "refinance", saved[0].Calculator, "insertion order is preserved")
	assert.Equal(t, "pmi", saved[1].Calculator)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	_, err := NewMemoryStore().List(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "sess-1", SavedScenario{Calculator: "dti"}))
	require.NoError(t, s.Clear(ctx, "sess-1"))

	_, err := s.List(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListReturnsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "sess-1", SavedScenario{Calculator: "va"}))

	first, err := s.List(ctx, "sess-1")
	require.NoError(t, err)
	first[0].Calculator = "tampered"

	second, err := s.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "va", second[0].Calculator)
}
