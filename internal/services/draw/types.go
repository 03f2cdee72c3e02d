package draw

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/common/uuid"
	"github.com/KirkDiggler/dball/internal/metrics"
	"github.com/KirkDiggler/dball/internal/models"
	drawRepo "github.com/KirkDiggler/dball/internal/repositories/draw"
)

// Config holds configuration for the draw service
type Config struct {
	// Repository dependencies
	DrawRepo drawRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional
	Logger  logrus.FieldLogger
	Metrics *metrics.Collector
}

// RecordDrawInput contains parameters for recording a draw result
type RecordDrawInput struct {
	Period     string
	Reds       []int
	Blue       int
	Multiplier int
}

// RecordDrawOutput contains the recorded draw
type RecordDrawOutput struct {
	Draw *models.Draw
}

// PublishDrawInput contains parameters for publishing a draw
type PublishDrawInput struct {
	DrawID string
}

// PublishDrawOutput contains the published draw and the draws it superseded
type PublishDrawOutput struct {
	Draw       *models.Draw
	Superseded []*models.Draw
}

// DeprecateDrawInput contains parameters for withdrawing a draw
type DeprecateDrawInput struct {
	DrawID string
}

// DeprecateDrawOutput contains the withdrawn draw
type DeprecateDrawOutput struct {
	Draw *models.Draw

	// WasPublished is set when the period lost its authoritative result
	WasPublished bool
}

// GetDrawInput contains parameters for retrieving a draw
type GetDrawInput struct {
	DrawID string
}

// GetDrawOutput contains the requested draw
type GetDrawOutput struct {
	Draw *models.Draw
}

// ListDrawsInput contains parameters for listing the draws of a period
type ListDrawsInput struct {
	Period string
}

// ListDrawsOutput contains the draws of a period, oldest first
type ListDrawsOutput struct {
	Draws []*models.Draw
}

// ListDrawsByDateRangeInput contains parameters for listing draws by record time
type ListDrawsByDateRangeInput struct {
	From time.Time
	To   time.Time
}

// ListDrawsByDateRangeOutput contains the draws in the range, oldest first
type ListDrawsByDateRangeOutput struct {
	Draws []*models.Draw
}

// ListLatestDrawsInput contains parameters for listing recent draws
type ListLatestDrawsInput struct {
	// Limit defaults to 10 when zero
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
