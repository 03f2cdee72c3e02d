package draw

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KirkDiggler/dball/internal/database"
	"github.com/KirkDiggler/dball/internal/models"
)

// SQLConfig holds configuration for the SQLite draw repository
type SQLConfig struct {
	// DB is an open, migrated database
	DB *sqlx.DB
}

// sqlRepository implements the Repository interface on the spots table
type sqlRepository struct {
	db *sqlx.DB
}

type spotRow struct {
	ID     string `db:"id"`
	Period string `db:"period"`
	database.NumberColumns
	Magnification int    `db:"magnification"`
	Status        string `db:"status"`
	Deprecated    bool   `db:"deprecated"`
	CreatedTime   int64  `db:"created_time"`
	ModifiedTime  int64  `db:"modified_time"`
}

func newSpotRow(d *models.Draw) spotRow {
	return spotRow{
		ID:            d.ID,
		Period:        d.Period,
		NumberColumns: database.NumberColumnsFrom(d.Numbers),
		Magnification: d.Multiplier,
		Status:        string(d.Status),
		Deprecated:    d.IsDeprecated(),
		CreatedTime:   database.ToUnixNano(d.CreatedAt),
		ModifiedTime:  database.ToUnixNano(d.ModifiedAt),
	}
}

func (row *spotRow) toModel() (*models.Draw, error) {
	numbers, err := row.NumberSet()
	if err != nil {
		return nil, fmt.Errorf("draw %s has invalid stored numbers: %w", row.ID, err)
	}

	status := models.DrawStatus(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("draw %s has unknown status %q", row.ID, row.Status)
	}

	return &models.Draw{
		ID:         row.ID,
		Period:     row.Period,
		Numbers:    numbers,
		Multiplier: row.Magnification,
		Status:     status,
		CreatedAt:  database.FromUnixNano(row.CreatedTime),
		ModifiedAt: database.FromUnixNano(row.ModifiedTime),
	}, nil
}

const spotColumns = `id, period, red1, red2, red3, red4, red5, red6, blue, magnification, status, deprecated, created_time, modified_time`

// NewSQL creates a SQLite-backed draw repository
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

// CreateDraw inserts a new spot row
func (r *sqlRepository) CreateDraw(ctx context.Context, input *CreateDrawInput) error {
	if input == nil || input.Draw == nil {
		return errors.New("input and draw cannot be nil")
	}

	if input.Draw.ID == "" || input.Draw.Period == "" {
		return errors.New("draw ID and period cannot be empty")
	}

	_, err := r.db.NamedExecContext(ctx, `INSERT INTO spots (`+spotColumns+`)
		VALUES (:id, :period, :red1, :red2, :red3, :red4, :red5, :red6, :blue,
			:magnification, :status, :deprecated, :created_time, :modified_time)`, newSpotRow(input.Draw))
	if err != nil {
		if database.IsPrimaryKeyViolation(err) {
			return ErrDrawExists
		}
		return models.StorageError("failed to create draw", err)
	}

	return nil
}

// GetDraw retrieves a draw by ID
func (r *sqlRepository) GetDraw(ctx context.Context, input *GetDrawInput) (*models.Draw, error) {
	if input == nil || input.DrawID == "" {
		return nil, errors.New("input and draw ID cannot be empty")
	}

	var row spotRow
	err := r.db.GetContext(ctx, &row, `SELECT `+spotColumns+` FROM spots WHERE id = ?`, input.DrawID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDrawNotFound
		}
		return nil, models.StorageError("failed to get draw", err)
	}

	return row.toModel()
}

// ListDrawsByPeriod retrieves every draw of a period, oldest first
func (r *sqlRepository) ListDrawsByPeriod(ctx context.Context, input *ListDrawsByPeriodInput) (*ListDrawsByPeriodOutput, error) {
	if input == nil || input.Period == "" {
		return nil, errors.New("input and period cannot be empty")
	}

	draws, err := selectPeriod(ctx, r.db, input.Period)
	if err != nil {
		return nil, err
	}

	return &ListDrawsByPeriodOutput{
		Draws: draws,
	}, nil
}

// UpdatePeriod runs the read-apply-write in one transaction. The pool has a single
// connection, so a second writer waits for this one to commit.
func (r *sqlRepository) UpdatePeriod(ctx context.Context, input *UpdatePeriodInput) (*UpdatePeriodOutput, error) {
	if input == nil || input.Period == "" || input.Apply == nil {
		return nil, errors.New("input, period and apply cannot be empty")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, models.StorageError("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	draws, err := selectPeriod(ctx, tx, input.Period)
	if err != nil {
		return nil, err
	}

	changed, err := input.Apply(draws)
	if err != nil {
		return nil, err
	}

	if _, err := mergeChanges(draws, changed); err != nil {
		return nil, err
	}

	for _, d := range changed {
		_, err := tx.NamedExecContext(ctx, `UPDATE spots
			SET status = :status, deprecated = :deprecated, modified_time = :modified_time
			WHERE id = :id`, newSpotRow(d))
		if err != nil {
			return nil, models.StorageError("failed to update draw", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, models.StorageError("failed to commit period update", err)
	}

	return &UpdatePeriodOutput{
		Draws: changed,
	}, nil
}

// ListPublishedPeriods retrieves the periods that currently have a published draw
func (r *sqlRepository) ListPublishedPeriods(ctx context.Context, input *ListPublishedPeriodsInput) (*ListPublishedPeriodsOutput, error) {
	periods := []string{}
	err := r.db.SelectContext(ctx, &periods, `SELECT DISTINCT period FROM spots
		WHERE status = ? ORDER BY period`, string(models.DrawStatusPublished))
	if err != nil {
		return nil, models.StorageError("failed to list published periods", err)
	}

	return &ListPublishedPeriodsOutput{
		Periods: periods,
	}, nil
}

// ListDrawsByDateRange retrieves draws created in [From, To) across periods
func (r *sqlRepository) ListDrawsByDateRange(ctx context.Context, input *ListDrawsByDateRangeInput) (*ListDrawsByDateRangeOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draws, err := selectDraws(ctx, r.db, `WHERE created_time >= ? AND created_time < ? ORDER BY created_time, id`,
		database.ToUnixNano(input.From), database.ToUnixNano(input.To))
	if err != nil {
		return nil, err
	}

	return &ListDrawsByDateRangeOutput{
		Draws: draws,
	}, nil
}

// ListLatestDraws retrieves the newest draws across periods
func (r *sqlRepository) ListLatestDraws(ctx context.Context, input *ListLatestDrawsInput) (*ListLatestDrawsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	draws, err := selectDraws(ctx, r.db, `ORDER BY created_time DESC, id DESC LIMIT ?`, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListLatestDrawsOutput{
		Draws: draws,
	}, nil
}

// CountDraws counts rows, optionally within one period
func (r *sqlRepository) CountDraws(ctx context.Context, input *CountDrawsInput) (*CountDrawsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		count int64
		err   error
	)
	if input.Period == "" {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM spots`)
	} else {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM spots WHERE period = ?`, input.Period)
	}
	if err != nil {
		return nil, models.StorageError("failed to count draws", err)
	}

	return &CountDrawsOutput{
		Count: count,
	}, nil
}

func selectPeriod(ctx context.Context, q sqlx.QueryerContext, period string) ([]*models.Draw, error) {
	return selectDraws(ctx, q, `WHERE period = ? ORDER BY created_time, id`, period)
}

// selectDraws runs a spots query with the given WHERE/ORDER tail
func selectDraws(ctx context.Context, q sqlx.QueryerContext, tail string, args ...any) ([]*models.Draw, error) {
	var rows []spotRow
	if err := sqlx.SelectContext(ctx, q, &rows, `SELECT `+spotColumns+` FROM spots `+tail, args...); err != nil {
		return nil, models.StorageError("failed to list draws", err)
	}

	draws := make([]*models.Draw, 0, len(rows))
	for i := range rows {
		d, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}

	return draws, nil
}
