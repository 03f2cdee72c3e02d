package ticket

import (
	"errors"

	"github.com/KirkDiggler/dball/internal/models"
)

// CreateTicketInput contains parameters for creating a ticket
type CreateTicketInput struct {
	Ticket *models.Ticket
}

// GetTicketInput contains parameters for retrieving a ticket
type GetTicketInput struct {
	TicketID string
}

// ListTicketsByPeriodInput contains parameters for listing the tickets of a period
type ListTicketsByPeriodInput struct {
	Period string
}

// ListTicketsByPeriodOutput contains the tickets of a period, oldest purchase first
type ListTicketsByPeriodOutput struct {
	Tickets []*models.Ticket
}

// DeleteTicketInput contains parameters for deleting a ticket
type DeleteTicketInput struct {
	TicketID string
}

// ListLatestTicketsInput contains parameters for listing recent tickets
type ListLatestTicketsInput struct {
	Limit int
}

// ListLatestTicketsOutput contains tickets, newest purchase first
type ListLatestTicketsOutput struct {
	Tickets []*models.Ticket
}

// FindTicketsByNumberInput selects tickets by number. A zero field is not filtered on;
// when both are set a ticket must match both.
type FindTicketsByNumberInput struct {
	Red  int
	Blue int
}

// Validate checks that at least one number is given and that each is in range
func (in *FindTicketsByNumberInput) Validate() error {
	if in == nil || (in.Red == 0 && in.Blue == 0) {
		return errors.New("a red or blue number is required")
	}
	if in.Red != 0 {
		if err := models.ValidateRed(in.Red); err != nil {
			return err
		}
	}
	if in.Blue != 0 {
		if err := models.ValidateBlue(in.Blue); err != nil {
			return err
		}
	}
	return nil
}

// FindTicketsByNumberOutput contains matching tickets, newest purchase first
type FindTicketsByNumberOutput struct {
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
