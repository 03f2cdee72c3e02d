package ticket

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/common/uuid"
	"github.com/KirkDiggler/dball/internal/models"
	"github.com/KirkDiggler/dball/internal/quickpick"
	settlementRepo "github.com/KirkDiggler/dball/internal/repositories/settlement"
	ticketRepo "github.com/KirkDiggler/dball/internal/repositories/ticket"
)

// Config holds configuration for the ticket service
type Config struct {
	// Repository dependencies
	TicketRepo ticketRepo.Repository

	// SettlementRepo is optional; when set, deleting a ticket also drops its recorded outcome
	SettlementRepo settlementRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Picker draws numbers for quick-pick purchases; defaults to a time-seeded picker
	Picker *quickpick.Picker

	// Logger defaults to the logrus standard logger
	Logger logrus.FieldLogger
}

// PurchaseTicketInput contains parameters for buying a ticket
type PurchaseTicketInput struct {
	Period string
	Reds   []int
	Blue   int

	// QuickPick ignores Reds and Blue and draws random numbers instead
	QuickPick bool
}

// PurchaseTicketOutput contains the stored ticket
type PurchaseTicketOutput struct {
	Ticket *models.Ticket
}

// GetTicketInput contains parameters for retrieving a ticket
type GetTicketInput struct {
	TicketID string
}

// GetTicketOutput contains the requested ticket
type GetTicketOutput struct {
	Ticket *models.Ticket
}

// ListTicketsInput contains parameters for listing the tickets of a period
type ListTicketsInput struct {
	Period string
}

// ListTicketsOutput contains the tickets of a period
type ListTicketsOutput struct {
	Tickets []*models.Ticket
}

// DeleteTicketInput contains parameters for deleting a ticket
type DeleteTicketInput struct {
	TicketID string
}

// DeleteTicketOutput contains the deleted ticket
type DeleteTicketOutput struct {
	Ticket *models.Ticket
}

// FindTicketsInput selects tickets by number. Zero means no filter; at least one must be set.
type FindTicketsInput struct {
	Red  int
	Blue int
}

// FindTicketsOutput contains matching tickets, newest purchase first
type FindTicketsOutput struct {
	Tickets []*models.Ticket
}

// ListLatestTicketsInput contains parameters for listing recent purchases
type ListLatestTicketsInput struct {
	// Limit defaults to 10 when zero
	Limit int
}

// ListLatestTicketsOutput contains tickets, newest purchase first
type ListLatestTicketsOutput struct {
	Tickets []*models.Ticket
}

// CountTicketsInput contains parameters for counting tickets
type CountTicketsInput struct {
	// Period is optional; empty counts every period
	Period string
}

// CountTicketsOutput contains a ticket count
type CountTicketsOutput struct {
	Count int64
}
