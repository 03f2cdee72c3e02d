package draw

import (
	"errors"
	"time"

	"github.com/KirkDiggler/dball/internal/models"
)

// CreateDrawInput contains parameters for creating a draw
type CreateDrawInput struct {
	Draw *models.Draw
}

// GetDrawInput contains parameters for retrieving a draw
type GetDrawInput struct {
	DrawID string
}

// ListDrawsByPeriodInput contains parameters for listing the draws of a period
type ListDrawsByPeriodInput struct {
	Period string
}

// ListDrawsByPeriodOutput contains the draws of a period, oldest first
type ListDrawsByPeriodOutput struct {
	Draws []*models.Draw
}

// ApplyFunc receives every draw of a period, oldest first, and returns the ones it changed.
// Returning an error aborts the update and nothing is written.
type ApplyFunc func(draws []*models.Draw) ([]*models.Draw, error)

// UpdatePeriodInput contains parameters for an atomic update of one period
type UpdatePeriodInput struct {
	Period string
	Apply  ApplyFunc
}

// UpdatePeriodOutput contains the draws that were written
type UpdatePeriodOutput struct {
	Draws []*models.Draw
}

// ListPublishedPeriodsInput contains parameters for listing published periods
type ListPublishedPeriodsInput struct{}

// ListPublishedPeriodsOutput contains the periods with a published draw, sorted
type ListPublishedPeriodsOutput struct {
	Periods []string
}

// ListDrawsByDateRangeInput selects draws by when they were recorded. From is inclusive,
// To is exclusive.
type ListDrawsByDateRangeInput struct {
	From time.Time
	To   time.Time
}

// Validate checks that the range is set and not inverted
func (in *ListDrawsByDateRangeInput) Validate() error {
	if in == nil || in.From.IsZero() || in.To.IsZero() {
		return errors.New("input, from and to cannot be empty")
	}
	if !in.From.Before(in.To) {
		return errors.New("from must be before to")
	}
	return nil
}

// ListDrawsByDateRangeOutput contains draws, oldest first
type ListDrawsByDateRangeOutput struct {
	Draws []*models.Draw
}

// ListLatestDrawsInput contains parameters for listing recent draws
type ListLatestDrawsInput struct {
	Limit int
}

// ListLatestDrawsOutput contains draws, newest first
type ListLatestDrawsOutput struct {
	Draws []*models.Draw
}

// CountDrawsInput contains parameters for counting draws
type CountDrawsInput struct {
	// Period is optional; empty counts every period
	Period string
}

// CountDrawsOutput contains a draw count
type CountDrawsOutput struct {
	Count int64
}
