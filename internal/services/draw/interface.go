package draw

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dball/internal/services/draw Service

import "context"

// Service manages official draw results and their lifecycle
type Service interface {
	// RecordDraw stores a new pending result for a period
	RecordDraw(ctx context.Context, input *RecordDrawInput) (*RecordDrawOutput, error)

	// PublishDraw makes a pending draw authoritative, deprecating any other published draw of its period
	PublishDraw(ctx context.Context, input *PublishDrawInput) (*PublishDrawOutput, error)

	// DeprecateDraw withdraws a pending or published draw
	DeprecateDraw(ctx context.Context, input *DeprecateDrawInput) (*DeprecateDrawOutput, error)

	// GetDraw retrieves a draw by ID
	GetDraw(ctx context.Context, input *GetDrawInput) (*GetDrawOutput, error)

	// ListDraws returns every draw of a period, oldest first
	ListDraws(ctx context.Context, input *ListDrawsInput) (*ListDrawsOutput, error)

	// ListDrawsByDateRange returns the draws of every period recorded in [From, To), oldest first
	ListDrawsByDateRange(ctx context.Context, input *ListDrawsByDateRangeInput) (*ListDrawsByDateRangeOutput, error)

	// ListLatestDraws returns the most recently recorded draws across periods
	ListLatestDraws(ctx context.Context, input *ListLatestDrawsInput) (*ListLatestDrawsOutput, error)

	// CountDraws counts the draws of a period, or of every period
	CountDraws(ctx context.Context, input *CountDrawsInput) (*CountDrawsOutput, error)
}
