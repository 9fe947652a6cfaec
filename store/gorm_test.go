package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (ScreeningStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGormStore(gormDB), mock
}

func screeningRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "movie_id", "room_id", "date", "start_time", "end_time", "status"})
}

func TestGormStoreAll(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "screenings"`).
		WillReturnRows(screeningRows().
			AddRow("scr_1", "m1", "S1", "2024-01-15", "10:00", "12:05", "scheduled").
			AddRow("scr_2", "m2", "S2", "2024-01-15", "13:00", "15:23", "scheduled"))

	got, err := s.All()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "scr_1", got[0].ID)
	assert.Equal(t, "m2", got[1].MovieId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreByRoomAndDate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "screenings" WHERE room_id = \$1 AND date = \$2 ORDER BY start_time asc`).
		WithArgs("S1", "2024-01-15").
		WillReturnRows(screeningRows().
			AddRow("scr_1", "m1", "S1", "2024-01-15", "10:00", "12:05", "scheduled"))

	got, err := s.ByRoomAndDate("S1", "2024-01-15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "10:00", got[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreByMovie(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "screenings" WHERE movie_id = \$1`).
		WithArgs("m1").
		WillReturnRows(screeningRows())

	got, err := s.ByMovie("m1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreDelete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "screenings" WHERE id = \$1`).
		WithArgs("scr_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Delete("scr_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreDeleteNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "screenings"`).
		WithArgs("scr_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, s.Delete("scr_missing"), ErrScreeningNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreDeleteBatchEmpty(t *testing.T) {
	s, mock := newMockStore(t)

	// không id nào thì không chạm database
	require.NoError(t, s.DeleteBatch(nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
