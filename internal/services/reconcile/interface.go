package reconcile

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dball/internal/services/reconcile Service

import "context"

// Service settles tickets against the published draw of their period
type Service interface {
	// Settle computes the outcome of one ticket
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)

	// ResettlePeriod recomputes every ticket of a period against the current published draw
	ResettlePeriod(ctx context.Context, input *ResettlePeriodInput) (*ResettlePeriodOutput, error)

	// Sweep resettles and records every period that has a published draw and clears the
	// history of periods that lost theirs
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)

	// GetSettlement returns the last recorded outcome of a ticket
	GetSettlement(ctx context.Context, input *GetSettlementInput) (*GetSettlementOutput, error)

	// ListSettlements returns the last recorded outcomes of a period
	ListSettlements(ctx context.Context, input *ListSettlementsInput) (*ListSettlementsOutput, error)
}
