package draw

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dball/internal/database"
	"github.com/KirkDiggler/dball/internal/models"
)

func TestSQLRepositoryTestSuite(t *testing.T) {
	var db *sqlx.DB

	s := &RepositoryTestSuite{}
	s.setup = func() Repository {
		var err error
		db, err = database.Open(&database.Config{Path: ":memory:"})
		s.Require().NoError(err)

		repo, err := NewSQL(&SQLConfig{DB: db})
		s.Require().NoError(err)
		return repo
	}
	s.teardown = func() {
		db.Close()
	}

	suite.Run(t, s)
}

func TestSQLUpdatePeriodRollsBackOnBeginFailure(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	repo, err := NewSQL(&SQLConfig{DB: sqlx.NewDb(raw, "sqlmock")})
	require.NoError(t, err)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	_, err = repo.UpdatePeriod(context.Background(), &UpdatePeriodInput{
		Period: "2024028",
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			t.Fatal("apply must not run without a transaction")
			return nil, nil
		},
	})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLUpdatePeriodRollsBackOnWriteFailure(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	repo, err := NewSQL(&SQLConfig{DB: sqlx.NewDb(raw, "sqlmock")})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "period", "red1", "red2", "red3", "red4", "red5", "red6", "blue",
		"magnification", "status", "deprecated", "created_time", "modified_time"}).
		AddRow("draw-1", "2024028", 1, 2, 3, 4, 5, 6, 7, 1, "pending", false, 0, 0)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM spots").WithArgs("2024028").WillReturnRows(rows)
	mock.ExpectExec("UPDATE spots").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err = repo.UpdatePeriod(context.Background(), &UpdatePeriodInput{
		Period: "2024028",
		Apply: func(draws []*models.Draw) ([]*models.Draw, error) {
			require.Len(t, draws, 1)
			draws[0].Status = models.DrawStatusPublished
			return draws, nil
		},
	})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
