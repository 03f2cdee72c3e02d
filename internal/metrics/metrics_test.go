package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dball/internal/models"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()

	c.RecordOutcome(models.Tier3)
	c.RecordOutcome(models.Tier3)
	c.RecordOutcome(models.NoPrize)
	c.RecordPeriodCleared()
	c.RecordDrawTransition(models.DrawStatusPublished)
	c.RecordDrawTransition(models.DrawStatusDeprecated)
	c.RecordInvariantViolation()
	c.RecordSweep(time.Second, nil)
	c.RecordSweep(time.Second, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.outcomes.WithLabelValues("tier3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.outcomes.WithLabelValues("no_prize")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.periodsCleared))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.drawTransitions.WithLabelValues("published")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.invariantViolations))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sweepRuns.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sweepRuns.WithLabelValues("error")))

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.RecordOutcome(models.Tier1)
		c.RecordPeriodCleared()
		c.RecordDrawTransition(models.DrawStatusPublished)
		c.RecordInvariantViolation()
		c.RecordSweep(time.Millisecond, nil)
	})
	assert.Nil(t, c.Registry())
}

func TestCollectorExposesOutcomeMetricName(t *testing.T) {
	c := NewCollector()
	c.RecordOutcome(models.Tier6)

	families, err := c.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "dball_outcomes_computed_total")
	assert.NotContains(t, names, "dball_settlements_total")
}
