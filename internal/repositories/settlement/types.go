package settlement

import (
	"fmt"

	"github.com/KirkDiggler/dball/internal/models"
)

// SaveOutcomesInput contains the new outcomes of a period
type SaveOutcomesInput struct {
	Period   string
	Outcomes []*models.SettlementOutcome
}

// Validate checks that every outcome belongs to the period being replaced
func (in *SaveOutcomesInput) Validate() error {
	if in == nil || in.Period == "" {
		return fmt.Errorf("input and period cannot be empty")
	}
	for _, o := range in.Outcomes {
		if o == nil || o.TicketID == "" {
			return fmt.Errorf("outcome ticket ID cannot be empty")
		}
		if o.Period != in.Period {
			return fmt.Errorf("outcome for ticket %s belongs to period %s, not %s", o.TicketID, o.Period, in.Period)
		}
	}
	return nil
}

// GetOutcomeInput contains parameters for retrieving a ticket's outcome
type GetOutcomeInput struct {
	TicketID string
}

// ListOutcomesByPeriodInput contains parameters for listing a period's outcomes
type ListOutcomesByPeriodInput struct {
	Period string
}

// ListOutcomesByPeriodOutput contains the stored outcomes of a period
type ListOutcomesByPeriodOutput struct {
	Outcomes []*models.SettlementOutcome
}

// DeleteOutcomeInput contains parameters for removing a ticket's outcome
type DeleteOutcomeInput struct {
	TicketID string
}

// ClearPeriodInput contains parameters for removing a period's outcomes
type ClearPeriodInput struct {
	Period string
}

// ListPeriodsInput contains parameters for listing periods with stored outcomes
type ListPeriodsInput struct{}

// ListPeriodsOutput contains periods in ascending order
type ListPeriodsOutput struct {
	Periods []string
}
