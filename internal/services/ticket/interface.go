package ticket

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dball/internal/services/ticket Service

import "context"

// Service handles ticket purchases
type Service interface {
	// PurchaseTicket validates and stores a ticket for a period
	PurchaseTicket(ctx context.Context, input *PurchaseTicketInput) (*PurchaseTicketOutput, error)

	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, input *GetTicketInput) (*GetTicketOutput, error)

	// ListTickets returns the tickets of a period in purchase order
	ListTickets(ctx context.Context, input *ListTicketsInput) (*ListTicketsOutput, error)

	// DeleteTicket removes a mis-entered ticket so it can be bought again correctly
	DeleteTicket(ctx context.Context, input *DeleteTicketInput) (*DeleteTicketOutput, error)

	// FindTickets returns tickets holding a red number, a blue number, or both
	FindTickets(ctx context.Context, input *FindTicketsInput) (*FindTicketsOutput, error)

	// ListLatestTickets returns the most recent purchases across periods
	ListLatestTickets(ctx context.Context, input *ListLatestTicketsInput) (*ListLatestTicketsOutput, error)

	// CountTickets counts the tickets of a period, or of every period
	CountTickets(ctx context.Context, input *CountTicketsInput) (*CountTicketsOutput, error)
}
