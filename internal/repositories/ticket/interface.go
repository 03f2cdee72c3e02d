package ticket

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dball/internal/repositories/ticket Repository

import (
	"context"

	"github.com/KirkDiggler/dball/internal/models"
)

// Repository defines the interface for ticket persistence
type Repository interface {
	// CreateTicket inserts a ticket; a ticket with the same period and numbers fails with models.ErrDuplicateTicket
	CreateTicket(ctx context.Context, input *CreateTicketInput) error

	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error)

	// ListTicketsByPeriod retrieves the tickets of a period in purchase order
	ListTicketsByPeriod(ctx context.Context, input *ListTicketsByPeriodInput) (*ListTicketsByPeriodOutput, error)

	// DeleteTicket removes a ticket and frees its (period, numbers) slot
	DeleteTicket(ctx context.Context, input *DeleteTicketInput) error

	// ListLatestTickets retrieves the most recently purchased tickets across all periods
	ListLatestTickets(ctx context.Context, input *ListLatestTicketsInput) (*ListLatestTicketsOutput, error)

	// FindTicketsByNumber retrieves the tickets holding a red number, a blue number or both
	FindTicketsByNumber(ctx context.Context, input *FindTicketsByNumberInput) (*FindTicketsByNumberOutput, error)

	// CountTickets counts the tickets of a period, or of every period when none is given
	CountTickets(ctx context.Context, input *CountTicketsInput) (*CountTicketsOutput, error)
}
