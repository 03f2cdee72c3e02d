package ticket

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

func TestSQLStorageFailure(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	repo, err := NewSQL(&SQLConfig{DB: sqlx.NewDb(raw, "sqlmock")})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM tickets").WillReturnError(errors.New("disk I/O error"))

	_, err = repo.ListTicketsByPeriod(context.Background(), &ListTicketsByPeriodInput{Period: "2024028"})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSQLValidatesConfig(t *testing.T) {
	_, err := NewSQL(nil)
	assert.Error(t, err)

	_, err = NewSQL(&SQLConfig{})
	assert.Error(t, err)
}
