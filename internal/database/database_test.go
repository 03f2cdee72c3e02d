package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	db, err := Open(&Config{Path: filepath.Join(t.TempDir(), "data", "dball.db")})
	require.NoError(t, err)
	defer db.Close()

	var tables []string
	err = db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('tickets', 'spots', 'settlements') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"settlements", "spots", "tickets"}, tables)
}

func TestMigrateIsRepeatable(t *testing.T) {
	db, err := Open(&Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db.DB))
}

func TestUniqueViolationDetected(t *testing.T) {
	db, err := Open(&Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	insert := `INSERT INTO tickets (id, period, red1, red2, red3, red4, red5, red6, blue, purchased_time, created_time)
		VALUES (?, '2024001', 1, 2, 3, 4, 5, 6, 7, 0, 0)`

	_, err = db.Exec(insert, "a")
	require.NoError(t, err)

	_, err = db.Exec(insert, "b")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsPrimaryKeyViolation(err))

	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestPrimaryKeyViolationIsNotUnique(t *testing.T) {
	db, err := Open(&Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	insert := `INSERT INTO tickets (id, period, red1, red2, red3, red4, red5, red6, blue, purchased_time, created_time)
		VALUES ('same-id', '2024001', 1, 2, 3, 4, 5, 6, ?, 0, 0)`

	_, err = db.Exec(insert, 7)
	require.NoError(t, err)

	// Different blue, so only the primary key collides
	_, err = db.Exec(insert, 8)
	require.Error(t, err)
	assert.True(t, IsPrimaryKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))

	assert.False(t, IsPrimaryKeyViolation(errors.New("boom")))
}

func TestOpenValidatesConfig(t *testing.T) {
	_, err := Open(nil)
	assert.Error(t, err)

	_, err = Open(&Config{})
	assert.Error(t, err)
}

func TestMigrateFailsWhenDatabaseUnreachable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("database is locked"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration driver")
}
