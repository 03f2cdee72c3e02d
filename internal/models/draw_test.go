package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawStatus_CanTransitionTo(t *testing.T) {
	statuses := []DrawStatus{DrawStatusPending, DrawStatusPublished, DrawStatusDeprecated}
	allowed := map[[2]DrawStatus]bool{
		{DrawStatusPending, DrawStatusPublished}:    true,
		{DrawStatusPending, DrawStatusDeprecated}:   true,
		{DrawStatusPublished, DrawStatusDeprecated}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, allowed[[2]DrawStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestDraw_Transition(t *testing.T) {
	created := time.Date(2025, 7, 1, 21, 15, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	draw := &Draw{
		ID:         "draw-1",
		Period:     "2025075",
		Numbers:    MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 7),
		Multiplier: 1,
		Status:     DrawStatusPending,
		CreatedAt:  created,
		ModifiedAt: created,
	}

	require.NoError(t, draw.Transition(DrawStatusPublished, later))
	assert.Equal(t, DrawStatusPublished, draw.Status)
	assert.Equal(t, later, draw.ModifiedAt)
	assert.Equal(t, created, draw.CreatedAt)

	require.NoError(t, draw.Transition(DrawStatusDeprecated, later.Add(time.Minute)))
	assert.True(t, draw.IsDeprecated())

	err := draw.Transition(DrawStatusPublished, later.Add(2*time.Minute))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var tErr *TransitionError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "draw-1", tErr.DrawID)
	assert.Equal(t, DrawStatusDeprecated, tErr.From)
	assert.Equal(t, DrawStatusPublished, tErr.To)
	assert.Equal(t, later.Add(time.Minute), draw.ModifiedAt)
}

func TestValidateMultiplier(t *testing.T) {
	assert.NoError(t, ValidateMultiplier(1))
	assert.NoError(t, ValidateMultiplier(15))

	var vErr *ValidationError
	require.True(t, errors.As(ValidateMultiplier(0), &vErr))
	assert.Equal(t, ValidationInvalidMultiplier, vErr.Kind)
}

func TestValidatePeriod(t *testing.T) {
	assert.NoError(t, ValidatePeriod("2025084"))

	var vErr *ValidationError
	require.True(t, errors.As(ValidatePeriod("  "), &vErr))
	assert.Equal(t, ValidationEmptyPeriod, vErr.Kind)
}

func TestPrizeTier_Text(t *testing.T) {
	for _, tier := range Tiers {
		text, err := tier.MarshalText()
		require.NoError(t, err)

		var decoded PrizeTier
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, tier, decoded)
	}

	var decoded PrizeTier
	assert.Error(t, decoded.UnmarshalText([]byte("tier9")))
	assert.False(t, NoPrize.IsWinning())
	assert.True(t, Tier6.IsWinning())
}
