package reconcile

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/metrics"
	"github.com/KirkDiggler/dball/internal/models"
	drawRepo "github.com/KirkDiggler/dball/internal/repositories/draw"
	settlementRepo "github.com/KirkDiggler/dball/internal/repositories/settlement"
	ticketRepo "github.com/KirkDiggler/dball/internal/repositories/ticket"
)

// Config holds configuration for the reconciliation service
type Config struct {
	// Repository dependencies
	TicketRepo ticketRepo.Repository
	DrawRepo   drawRepo.Repository

	// SettlementRepo is optional; without it outcomes are computed but never recorded
	SettlementRepo settlementRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// Optional
	Logger  logrus.FieldLogger
	Metrics *metrics.Collector
}

// SettleInput contains parameters for settling one ticket
type SettleInput struct {
	TicketID string
}

// SettleOutput contains the ticket's outcome
type SettleOutput struct {
	Outcome *models.SettlementOutcome
}

// ResettlePeriodInput contains parameters for resettling a period
type ResettlePeriodInput struct {
	Period string

	// Record overwrites the stored settlement history of the period
	Record bool
}

// ResettlePeriodOutput contains every outcome of the period plus a prize summary
type ResettlePeriodOutput struct {
	Period string

	// DrawID is the published draw every outcome was computed against
	DrawID string

	// Outcomes are in ticket purchase order
	Outcomes []*models.SettlementOutcome

	// Summary counts tickets per tier, NoPrize included
	Summary map[models.PrizeTier]int

	// TotalUnits is the sum of all non-jackpot payouts
	TotalUnits int64

	// Jackpots counts Tier1 wins whose amount is decided elsewhere
	Jackpots int

	// Recorded is set when the outcomes were written to the settlement history
	Recorded bool
}

// SweepInput contains parameters for a settlement sweep
type SweepInput struct{}

// PeriodFailure is a period the sweep could not settle
type PeriodFailure struct {
	Period string
	Err    error
}

// SweepOutput reports what a sweep did
type SweepOutput struct {
	// Settled are the periods resettled successfully
	Settled []*ResettlePeriodOutput

	// Cleared are the periods whose recorded history was dropped for lack of a published draw
	Cleared []string

	// Failed are the periods that returned an error; the sweep carries on past them
	Failed []PeriodFailure
}

// GetSettlementInput contains parameters for reading a recorded outcome
type GetSettlementInput struct {
	TicketID string
}

// GetSettlementOutput contains a recorded outcome
type GetSettlementOutput struct {
	Outcome *models.SettlementOutcome
}

// ListSettlementsInput contains parameters for reading a period's recorded outcomes
type ListSettlementsInput struct {
	Period string
}

// ListSettlementsOutput contains a period's recorded outcomes
type ListSettlementsOutput struct {
	// DrawID is the published draw the outcomes were computed against
	DrawID   string
	Outcomes []*models.SettlementOutcome
}
