package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"nbcli/core/database"
	"nbcli/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func memoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestJournal_RecordAndRecent(t *testing.T) {
	db := memoryDB(t)
	j, err := New(db, "device", nil)
	require.NoError(t, err)
	require.NotEmpty(t, j.RunID())

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	j.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	ctx := context.Background()
	require.NoError(t, j.RecordAction(ctx, reconcile.Action{Type: reconcile.ActionDelete, Key: "sw1", RecordID: 1}, nil))
	require.NoError(t, j.RecordAction(ctx, reconcile.Action{Type: reconcile.ActionRename, Key: "sw2", RecordID: 2, NewName: "sw3"}, errors.New("400 Bad Request")))

	entries, err := j.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "rename", entries[0].Action)
	assert.Equal(t, "sw3", entries[0].NewName)
	assert.Equal(t, StatusFailed, entries[0].Status)
	assert.Equal(t, "400 Bad Request", entries[0].Error)

	assert.Equal(t, "delete", entries[1].Action)
	assert.Equal(t, "device", entries[1].Category)
	assert.Equal(t, StatusOK, entries[1].Status)
	assert.Equal(t, j.RunID(), entries[1].RunID)

	limited, err := j.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestOpen(t *testing.T) {
	db := memoryDB(t)

	_, err := Open(db, nil)
	assert.ErrorIs(t, err, ErrNoJournal)

	_, err = New(db, "ip", nil)
	require.NoError(t, err)

	j, err := Open(db, nil)
	require.NoError(t, err)
	entries, err := j.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_MissingColumns(t *testing.T) {
	db := memoryDB(t)
	require.NoError(t, db.Exec("CREATE TABLE nbcli_journal (id TEXT PRIMARY KEY, action TEXT)").Error)

	_, err := Open(db, nil)
	assert.ErrorContains(t, err, "missing columns")
}

func TestRecordAction_InsertFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `nbcli_journal`").WillReturnError(errors.New("table is read only"))
	mock.ExpectRollback()

	j := newJournal(db, "device", nil)
	err = j.RecordAction(context.Background(), reconcile.Action{Type: reconcile.ActionDelete, Key: "sw1", RecordID: 1}, nil)
	assert.ErrorContains(t, err, "failed to write journal entry")
	assert.NoError(t, mock.ExpectationsWereMet())
}
