package ticket

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/common/clock"
	"github.com/KirkDiggler/dball/internal/common/uuid"
	"github.com/KirkDiggler/dball/internal/models"
	"github.com/KirkDiggler/dball/internal/quickpick"
	settlementRepo "github.com/KirkDiggler/dball/internal/repositories/settlement"
	ticketRepo "github.com/KirkDiggler/dball/internal/repositories/ticket"
)

// service implements the Service interface
type service struct {
	ticketRepo     ticketRepo.Repository
	settlementRepo settlementRepo.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	picker         *quickpick.Picker
	log            logrus.FieldLogger
}

// maxQuickPickAttempts bounds redraws when a random set is already taken for the period
const maxQuickPickAttempts = 5

const (
	defaultLatestLimit = 10
	maxLatestLimit     = 100
)

// New creates a new ticket service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TicketRepo == nil {
		return nil, ErrNilTicketRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	picker := cfg.Picker
	if picker == nil {
		picker = quickpick.New(nil)
	}

	return &service{
		ticketRepo:     cfg.TicketRepo,
		settlementRepo: cfg.SettlementRepo,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		picker:         picker,
		log:            log.WithField("service", "ticket"),
	}, nil
}

// PurchaseTicket validates the period and numbers before touching storage.
// The repository enforces one ticket per (period, numbers).
func (s *service) PurchaseTicket(ctx context.Context, input *PurchaseTicketInput) (*PurchaseTicketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := models.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	if input.QuickPick {
		return s.quickPick(ctx, input.Period)
	}

	numbers, err := models.NewNumberSet(input.Reds, input.Blue)
	if err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		ID:          s.uuidGenerator.NewUUID(),
		Period:      input.Period,
		Numbers:     numbers,
		PurchasedAt: s.clock.Now(),
	}

	if err := s.ticketRepo.CreateTicket(ctx, &ticketRepo.CreateTicketInput{Ticket: ticket}); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"ticket_id": ticket.ID,
		"period":    ticket.Period,
		"numbers":   ticket.Numbers.String(),
	}).Info("Ticket purchased")

	return &PurchaseTicketOutput{
		Ticket: ticket,
	}, nil
}

// quickPick stores a ticket with random numbers, redrawing when the set is already taken
func (s *service) quickPick(ctx context.Context, period string) (*PurchaseTicketOutput, error) {
	ticket := &models.Ticket{
		ID:     s.uuidGenerator.NewUUID(),
		Period: period,
	}

	var err error
	for attempt := 0; attempt < maxQuickPickAttempts; attempt++ {
		ticket.Numbers = s.picker.Pick()
		ticket.PurchasedAt = s.clock.Now()

		err = s.ticketRepo.CreateTicket(ctx, &ticketRepo.CreateTicketInput{Ticket: ticket})
		if err == nil {
			s.log.WithFields(logrus.Fields{
				"ticket_id": ticket.ID,
				"period":    ticket.Period,
				"numbers":   ticket.Numbers.String(),
				"attempts":  attempt + 1,
			}).Info("Quick-pick ticket purchased")

			return &PurchaseTicketOutput{
				Ticket: ticket,
			}, nil
		}

		if !errors.Is(err, models.ErrDuplicateTicket) {
			return nil, err
		}
	}

	return nil, err
}

// GetTicket retrieves a ticket by ID
func (s *service) GetTicket(ctx context.Context, input *GetTicketInput) (*GetTicketOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, &ticketRepo.GetTicketInput{TicketID: input.TicketID})
	if err != nil {
		return nil, err
	}

	return &GetTicketOutput{
		Ticket: ticket,
	}, nil
}

// ListTickets returns the tickets of a period in purchase order
func (s *service) ListTickets(ctx context.Context, input *ListTicketsInput) (*ListTicketsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := models.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	out, err := s.ticketRepo.ListTicketsByPeriod(ctx, &ticketRepo.ListTicketsByPeriodInput{Period: input.Period})
	if err != nil {
		return nil, err
	}

	return &ListTicketsOutput{
		Tickets: out.Tickets,
	}, nil
}

// DeleteTicket removes a ticket and its recorded outcome. Tickets are otherwise immutable,
// so this is how a mis-entered ticket gets corrected.
func (s *service) DeleteTicket(ctx context.Context, input *DeleteTicketInput) (*DeleteTicketOutput, error) {
	if input == nil || input.TicketID == "" {
		return nil, ErrMissingTicketID
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, &ticketRepo.GetTicketInput{TicketID: input.TicketID})
	if err != nil {
		return nil, err
	}

	if err := s.ticketRepo.DeleteTicket(ctx, &ticketRepo.DeleteTicketInput{TicketID: input.TicketID}); err != nil {
		return nil, err
	}

	// The ticket is already gone; a leftover outcome is dropped by the next sweep's rewrite
	if s.settlementRepo != nil {
		err := s.settlementRepo.DeleteOutcome(ctx, &settlementRepo.DeleteOutcomeInput{TicketID: input.TicketID})
		if err != nil {
			s.log.WithError(err).WithField("ticket_id", ticket.ID).Error("Failed to delete recorded outcome of deleted ticket")
		}
	}

	s.log.WithFields(logrus.Fields{
		"ticket_id": ticket.ID,
		"period":    ticket.Period,
	}).Info("Ticket deleted")

	return &DeleteTicketOutput{
		Ticket: ticket,
	}, nil
}

// FindTickets searches every period by number
func (s *service) FindTickets(ctx context.Context, input *FindTicketsInput) (*FindTicketsOutput, error) {
	if input == nil || (input.Red == 0 && input.Blue == 0) {
		return nil, ErrMissingNumber
	}

	if input.Red != 0 {
		if err := models.ValidateRed(input.Red); err != nil {
			return nil, err
		}
	}

	if input.Blue != 0 {
		if err := models.ValidateBlue(input.Blue); err != nil {
			return nil, err
		}
	}

	out, err := s.ticketRepo.FindTicketsByNumber(ctx, &ticketRepo.FindTicketsByNumberInput{
		Red:  input.Red,
		Blue: input.Blue,
	})
	if err != nil {
		return nil, err
	}

	return &FindTicketsOutput{
		Tickets: out.Tickets,
	}, nil
}

// ListLatestTickets returns the newest purchases
func (s *service) ListLatestTickets(ctx context.Context, input *ListLatestTicketsInput) (*ListLatestTicketsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultLatestLimit
	}
	if limit < 0 || limit > maxLatestLimit {
		return nil, ErrInvalidLimit
	}

	out, err := s.ticketRepo.ListLatestTickets(ctx, &ticketRepo.ListLatestTicketsInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ListLatestTicketsOutput{
		Tickets: out.Tickets,
	}, nil
}

// CountTickets counts tickets in a period, or everywhere when the period is empty
func (s *service) CountTickets(ctx context.Context, input *CountTicketsInput) (*CountTicketsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Period != "" {
		if err := models.ValidatePeriod(input.Period); err != nil {
			return nil, err
		}
	}

	out, err := s.ticketRepo.CountTickets(ctx, &ticketRepo.CountTicketsInput{Period: input.Period})
	if err != nil {
		return nil, err
	}

	return &CountTicketsOutput{
		Count: out.Count,
	}, nil
}
