package calendar

import (
	"context"
	"testing"
	"time"

	"roster-importer/core/roster"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_ListMonth(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	start := time.Date(2015, time.March, 2, 7, 0, 0, 0, time.Local)
	end := time.Date(2015, time.March, 2, 14, 0, 0, 0, time.Local)

	rows := sqlmock.NewRows([]string{"id", "event_uid", "summary", "starts_at", "ends_at", "revision"}).
		AddRow(1, "uid-1", "FD: Judy", start, end, 3)
	mock.ExpectQuery("SELECT \\* FROM `calendar_events`").WillReturnRows(rows)

	events, err := store.ListMonth(context.Background(), 2015, time.March)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "FD: Judy", events[0].Summary)
	assert.Equal(t, "uid-1", events[0].ExternalRef)
	assert.Equal(t, int64(3), events[0].Revision)
	assert.True(t, start.Equal(events[0].Start))
}

func TestStore_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `calendar_events`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := roster.NewShiftRecord(roster.Early, 2015, time.March, 2, "Judy")
	ref, err := store.Create(context.Background(), rec)
	require.NoError(t, err)
	assert.NotEmpty(t, ref)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `calendar_events`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rec := roster.NewShiftRecord(roster.Late, 2015, time.March, 2, "Benny")
		rev, err := store.Update(context.Background(), "uid-1", rec, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), rev)
	})

	t.Run("RevisionConflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `calendar_events`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `calendar_events`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rec := roster.NewShiftRecord(roster.Late, 2015, time.March, 2, "Benny")
		_, err := store.Update(context.Background(), "uid-1", rec, 2)
		assert.ErrorIs(t, err, ErrRevisionConflict)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `calendar_events`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `calendar_events`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		rec := roster.NewShiftRecord(roster.Late, 2015, time.March, 2, "Benny")
		_, err := store.Update(context.Background(), "uid-gone", rec, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `calendar_events`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.Delete(context.Background(), "uid-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `calendar_events`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, store.Delete(context.Background(), "uid-gone"), ErrNotFound)
	})
}
