package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/KirkDiggler/dball/internal/database"
	"github.com/KirkDiggler/dball/internal/models"
)

// SQLConfig holds configuration for the SQLite ticket repository
type SQLConfig struct {
	// DB is an open, migrated database
	DB *sqlx.DB
}

// sqlRepository implements the Repository interface on the tickets table
type sqlRepository struct {
	db *sqlx.DB
}

type ticketRow struct {
	ID     string `db:"id"`
	Period string `db:"period"`
	database.NumberColumns
	PurchasedTime int64 `db:"purchased_time"`
	CreatedTime   int64 `db:"created_time"`
}

func (row *ticketRow) toModel() (*models.Ticket, error) {
	numbers, err := row.NumberSet()
	if err != nil {
		return nil, fmt.Errorf("ticket %s has invalid stored numbers: %w", row.ID, err)
	}

	return &models.Ticket{
		ID:          row.ID,
		Period:      row.Period,
		Numbers:     numbers,
		PurchasedAt: database.FromUnixNano(row.PurchasedTime),
	}, nil
}

const ticketColumns = `id, period, red1, red2, red3, red4, red5, red6, blue, purchased_time, created_time`

// NewSQL creates a SQLite-backed ticket repository
func NewSQL(cfg *SQLConfig) (*sqlRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &sqlRepository{
		db: cfg.DB,
	}, nil
}

// CreateTicket inserts a ticket; the unique index on (period, numbers) rejects duplicates
func (r *sqlRepository) CreateTicket(ctx context.Context, input *CreateTicketInput) error {
	if input == nil || input.Ticket == nil {
		return errors.New("input and ticket cannot be nil")
	}

	ticket := input.Ticket
	if ticket.ID == "" {
		return errors.New("ticket ID cannot be empty")
	}

	row := ticketRow{
		ID:            ticket.ID,
		Period:        ticket.Period,
		NumberColumns: database.NumberColumnsFrom(ticket.Numbers),
		PurchasedTime: database.ToUnixNano(ticket.PurchasedAt),
		CreatedTime:   database.ToUnixNano(ticket.PurchasedAt),
	}

	_, err := r.db.NamedExecContext(ctx, `INSERT INTO tickets (`+ticketColumns+`)
		VALUES (:id, :period, :red1, :red2, :red3, :red4, :red5, :red6, :blue, :purchased_time, :created_time)`, row)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return models.ErrDuplicateTicket
		case database.IsPrimaryKeyViolation(err):
			return ErrTicketExists
		}
		return models.StorageError("failed to create ticket", err)
	}

	return nil
}

// GetTicket retrieves a ticket by ID
func (r *sqlRepository) GetTicket(ctx context.Context, input *GetTicketInput) (*models.Ticket, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	var row ticketRow
	err := r.db.GetContext(ctx, &row, `SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, input.TicketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTicketNotFound
		}
		return nil, models.StorageError("failed to get ticket", err)
	}

	return row.toModel()
}

// ListTicketsByPeriod retrieves the tickets of a period ordered by purchase time
func (r *sqlRepository) ListTicketsByPeriod(ctx context.Context, input *ListTicketsByPeriodInput) (*ListTicketsByPeriodOutput, error) {
	if input == nil || input.Period == "" {
		return nil, errors.New("input and period cannot be empty")
	}

	var rows []ticketRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+ticketColumns+` FROM tickets
		WHERE period = ? ORDER BY purchased_time, id`, input.Period)
	if err != nil {
		return nil, models.StorageError("failed to list tickets", err)
	}

	tickets, err := toModels(rows)
	if err != nil {
		return nil, err
	}

	return &ListTicketsByPeriodOutput{
		Tickets: tickets,
	}, nil
}

// DeleteTicket removes a ticket row
func (r *sqlRepository) DeleteTicket(ctx context.Context, input *DeleteTicketInput) error {
	if input == nil || input.TicketID == "" {
		return errors.New("input and ticket ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, input.TicketID)
	if err != nil {
		return models.StorageError("failed to delete ticket", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.StorageError("failed to delete ticket", err)
	}
	if affected == 0 {
		return models.ErrTicketNotFound
	}

	return nil
}

// ListLatestTickets retrieves the newest tickets across periods
func (r *sqlRepository) ListLatestTickets(ctx context.Context, input *ListLatestTicketsInput) (*ListLatestTicketsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	var rows []ticketRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+ticketColumns+` FROM tickets
		ORDER BY purchased_time DESC, id DESC LIMIT ?`, input.Limit)
	if err != nil {
		return nil, models.StorageError("failed to list latest tickets", err)
	}

	tickets, err := toModels(rows)
	if err != nil {
		return nil, err
	}

	return &ListLatestTicketsOutput{
		Tickets: tickets,
	}, nil
}

// FindTicketsByNumber matches a red number in any of the six red columns
func (r *sqlRepository) FindTicketsByNumber(ctx context.Context, input *FindTicketsByNumberInput) (*FindTicketsByNumberOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if input.Red != 0 {
		where = append(where, `? IN (red1, red2, red3, red4, red5, red6)`)
		args = append(args, input.Red)
	}
	if input.Blue != 0 {
		where = append(where, `blue = ?`)
		args = append(args, input.Blue)
	}

	var rows []ticketRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+ticketColumns+` FROM tickets
		WHERE `+strings.Join(where, " AND ")+` ORDER BY purchased_time DESC, id DESC`, args...)
	if err != nil {
		return nil, models.StorageError("failed to find tickets", err)
	}

	tickets, err := toModels(rows)
	if err != nil {
		return nil, err
	}

	return &FindTicketsByNumberOutput{
		Tickets: tickets,
	}, nil
}

// CountTickets counts rows, optionally within one period
func (r *sqlRepository) CountTickets(ctx context.Context, input *CountTicketsInput) (*CountTicketsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		count int64
		err   error
	)
	if input.Period == "" {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tickets`)
	} else {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tickets WHERE period = ?`, input.Period)
	}
	if err != nil {
		return nil, models.StorageError("failed to count tickets", err)
	}

	return &CountTicketsOutput{
		Count: count,
	}, nil
}

func toModels(rows []ticketRow) ([]*models.Ticket, error) {
	tickets := make([]*models.Ticket, 0, len(rows))
	for i := range rows {
		ticket, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}
