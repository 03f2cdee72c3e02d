// Package metrics collects settlement and draw lifecycle telemetry.
// A nil *Collector is valid and records nothing, so services can run without metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/dball/internal/models"
)

const namespace = "dball"

// Collector wraps the Prometheus collectors used by the services
type Collector struct {
	registry *prometheus.Registry

	outcomes            *prometheus.CounterVec
	periodsCleared      prometheus.Counter
	drawTransitions     *prometheus.CounterVec
	invariantViolations prometheus.Counter
	sweepRuns           *prometheus.CounterVec
	sweepDuration       prometheus.Histogram
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	// Sweeps recompute every ticket, so this tracks work done, not prizes awarded
	c.outcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_computed_total",
			Help:      "Ticket outcomes computed, by prize tier",
		},
		[]string{"tier"},
	)

	c.periodsCleared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_periods_cleared_total",
			Help:      "Recorded periods dropped because they no longer have a published draw",
		},
	)

	c.drawTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draw_transitions_total",
			Help:      "Draw status changes, by new status",
		},
		[]string{"status"},
	)

	c.invariantViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invariant_violations_total",
			Help:      "Periods found with more than one published draw",
		},
	)

	c.sweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Settlement sweeps, by result",
		},
		[]string{"result"},
	)

	c.sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Time taken by a settlement sweep",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
	)

	c.registry.MustRegister(
		c.outcomes,
		c.periodsCleared,
		c.drawTransitions,
		c.invariantViolations,
		c.sweepRuns,
		c.sweepDuration,
	)

	return c
}

// Registry returns the registry to expose on /metrics
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// RecordOutcome counts one computed ticket outcome
func (c *Collector) RecordOutcome(tier models.PrizeTier) {
	if c == nil {
		return
	}
	c.outcomes.WithLabelValues(tier.String()).Inc()
}

// RecordPeriodCleared counts a period whose stale history was removed
func (c *Collector) RecordPeriodCleared() {
	if c == nil {
		return
	}
	c.periodsCleared.Inc()
}

// RecordDrawTransition counts a draw moving to status
func (c *Collector) RecordDrawTransition(status models.DrawStatus) {
	if c == nil {
		return
	}
	c.drawTransitions.WithLabelValues(string(status)).Inc()
}

// RecordInvariantViolation counts a period with several published draws
func (c *Collector) RecordInvariantViolation() {
	if c == nil {
		return
	}
	c.invariantViolations.Inc()
}

// RecordSweep records one sweep run
func (c *Collector) RecordSweep(duration time.Duration, err error) {
	if c == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	c.sweepRuns.WithLabelValues(result).Inc()
	c.sweepDuration.Observe(duration.Seconds())
}
