package draw

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dball/internal/repositories/draw Repository

import (
	"context"

	"github.com/KirkDiggler/dball/internal/models"
)

// Repository defines the interface for draw result persistence.
// Rows are never deleted; status changes go through UpdatePeriod.
type Repository interface {
	// CreateDraw inserts a new draw row
	CreateDraw(ctx context.Context, input *CreateDrawInput) error

	// GetDraw retrieves a draw by ID
	GetDraw(ctx context.Context, input *GetDrawInput) (*models.Draw, error)

	// ListDrawsByPeriod retrieves every draw of a period, oldest first
	ListDrawsByPeriod(ctx context.Context, input *ListDrawsByPeriodInput) (*ListDrawsByPeriodOutput, error)

	// UpdatePeriod loads all draws of a period, lets Apply change them and saves the
	// changes as one atomic unit
	UpdatePeriod(ctx context.Context, input *UpdatePeriodInput) (*UpdatePeriodOutput, error)

	// ListPublishedPeriods retrieves the periods that currently have a published draw
	ListPublishedPeriods(ctx context.Context, input *ListPublishedPeriodsInput) (*ListPublishedPeriodsOutput, error)

	// ListDrawsByDateRange retrieves the draws of every period recorded within a time range, oldest first
	ListDrawsByDateRange(ctx context.Context, input *ListDrawsByDateRangeInput) (*ListDrawsByDateRangeOutput, error)

	// ListLatestDraws retrieves the most recently recorded draws across periods
	ListLatestDraws(ctx context.Context, input *ListLatestDrawsInput) (*ListLatestDrawsOutput, error)

	// CountDraws counts the draws of a period, or of every period when none is given
	CountDraws(ctx context.Context, input *CountDrawsInput) (*CountDrawsOutput, error)
}
