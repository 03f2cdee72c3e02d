package settlement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KirkDiggler/dball/internal/database"
	"github.com/KirkDiggler/dball/internal/models"
)

// SQLConfig holds configuration for the SQLite settlement repository
type SQLConfig struct {
	// DB is an open, migrated database
	DB *sqlx.DB
}

// sqlRepository implements the Repository interface on the settlements table
type sqlRepository struct {
	db *sqlx.DB
}

// settlementRow stores the tier number in prize_status (0 is no prize)
type settlementRow struct {
	TicketID    string `db:"ticket_id"`
	DrawID      string `db:"draw_id"`
	Period      string `db:"period"`
	PrizeStatus int    `db:"prize_status"`
	PayoutUnits int64  `db:"payout_units"`
	Jackpot     bool   `db:"jackpot"`
	SettledTime int64  `db:"settled_time"`
}

func (row *settlementRow) toModel() (*models.SettlementOutcome, error) {
	tier := models.PrizeTier(row.PrizeStatus)
	if tier != models.NoPrize && !tier.IsWinning() {
		return nil, fmt.Errorf("settlement for ticket %s has unknown prize status %d", row.TicketID, row.PrizeStatus)
	}

	return &models.SettlementOutcome{
		TicketID:    row.TicketID,
		DrawID:      row.DrawID,
		Period:      row.Period,
		Tier:        tier,
		PayoutUnits: row.PayoutUnits,
		Jackpot:     row.Jackpot,
		SettledAt:   database.FromUnixNano(row.SettledTime),
	}, nil
}

const settlementColumns = `ticket_id, draw_id, period, prize_status, payout_units, jackpot, settled_time`

// NewSQL creates a SQLite-backed settlement repository
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

// SaveOutcomes deletes the period's rows and inserts the new ones in one transaction
func (r *sqlRepository) SaveOutcomes(ctx context.Context, input *SaveOutcomesInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.StorageError("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM settlements WHERE period = ?`, input.Period); err != nil {
		return models.StorageError("failed to clear settlements", err)
	}

	for _, o := range input.Outcomes {
		row := settlementRow{
			TicketID:    o.TicketID,
			DrawID:      o.DrawID,
			Period:      o.Period,
			PrizeStatus: int(o.Tier),
			PayoutUnits: o.PayoutUnits,
			Jackpot:     o.Jackpot,
			SettledTime: database.ToUnixNano(o.SettledAt),
		}

		// INSERT OR REPLACE moves a ticket's row if an older save filed it elsewhere
		_, err := tx.NamedExecContext(ctx, `INSERT OR REPLACE INTO settlements (`+settlementColumns+`)
			VALUES (:ticket_id, :draw_id, :period, :prize_status, :payout_units, :jackpot, :settled_time)`, row)
		if err != nil {
			return models.StorageError("failed to insert settlement", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.StorageError("failed to commit settlements", err)
	}

	return nil
}

// GetOutcome retrieves the stored outcome of a ticket
func (r *sqlRepository) GetOutcome(ctx context.Context, input *GetOutcomeInput) (*models.SettlementOutcome, error) {
	if input == nil || input.TicketID == "" {
		return nil, errors.New("input and ticket ID cannot be empty")
	}

	var row settlementRow
	err := r.db.GetContext(ctx, &row, `SELECT `+settlementColumns+` FROM settlements WHERE ticket_id = ?`, input.TicketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrSettlementNotFound
		}
		return nil, models.StorageError("failed to get settlement", err)
	}

	return row.toModel()
}

// ListOutcomesByPeriod retrieves the stored outcomes of a period in insertion order
func (r *sqlRepository) ListOutcomesByPeriod(ctx context.Context, input *ListOutcomesByPeriodInput) (*ListOutcomesByPeriodOutput, error) {
	if input == nil || input.Period == "" {
		return nil, errors.New("input and period cannot be empty")
	}

	var rows []settlementRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+settlementColumns+` FROM settlements
		WHERE period = ? ORDER BY rowid`, input.Period)
	if err != nil {
		return nil, models.StorageError("failed to list settlements", err)
	}

	outcomes := make([]*models.SettlementOutcome, 0, len(rows))
	for i := range rows {
		o, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}

	return &ListOutcomesByPeriodOutput{
		Outcomes: outcomes,
	}, nil
}

// DeleteOutcome deletes the ticket's row if it has one
func (r *sqlRepository) DeleteOutcome(ctx context.Context, input *DeleteOutcomeInput) error {
	if input == nil || input.TicketID == "" {
		return errors.New("input and ticket ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM settlements WHERE ticket_id = ?`, input.TicketID); err != nil {
		return models.StorageError("failed to delete settlement", err)
	}

	return nil
}

// ClearPeriod deletes every row of the period
func (r *sqlRepository) ClearPeriod(ctx context.Context, input *ClearPeriodInput) error {
	if input == nil || input.Period == "" {
		return errors.New("input and period cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM settlements WHERE period = ?`, input.Period); err != nil {
		return models.StorageError("failed to clear settlements", err)
	}

	return nil
}

// ListPeriods retrieves the distinct periods of the settlements table
func (r *sqlRepository) ListPeriods(ctx context.Context, _ *ListPeriodsInput) (*ListPeriodsOutput, error) {
	periods := []string{}
	if err := r.db.SelectContext(ctx, &periods, `SELECT DISTINCT period FROM settlements ORDER BY period`); err != nil {
		return nil, models.StorageError("failed to list settled periods", err)
	}

	return &ListPeriodsOutput{
		Periods: periods,
	}, nil
}
