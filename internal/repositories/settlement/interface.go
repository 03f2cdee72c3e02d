package settlement

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dball/internal/repositories/settlement Repository

import (
	"context"

	"github.com/KirkDiggler/dball/internal/models"
)

// Repository stores the last recorded settlement of every ticket.
// It is a cache of a re-derivable projection: writers replace a whole period at once.
type Repository interface {
	// SaveOutcomes replaces every stored outcome of a period
	SaveOutcomes(ctx context.Context, input *SaveOutcomesInput) error

	// GetOutcome retrieves the stored outcome of a ticket
	GetOutcome(ctx context.Context, input *GetOutcomeInput) (*models.SettlementOutcome, error)

	// ListOutcomesByPeriod retrieves the stored outcomes of a period in the order they were saved
	ListOutcomesByPeriod(ctx context.Context, input *ListOutcomesByPeriodInput) (*ListOutcomesByPeriodOutput, error)

	// DeleteOutcome removes a ticket's stored outcome; a ticket with none is not an error
	DeleteOutcome(ctx context.Context, input *DeleteOutcomeInput) error

	// ClearPeriod removes every stored outcome of a period
	ClearPeriod(ctx context.Context, input *ClearPeriodInput) error

	// ListPeriods retrieves the periods that have at least one stored outcome
	ListPeriods(ctx context.Context, input *ListPeriodsInput) (*ListPeriodsOutput, error)
}
