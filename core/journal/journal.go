package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nbcli/core/database"
	"nbcli/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TableName is the journal table.
const TableName = "nbcli_journal"

// Entry statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// ErrNoJournal is returned by Open when the journal table does not exist yet.
var ErrNoJournal = errors.New("journal table does not exist")

// Entry is one attempted rename or delete.
type Entry struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	RunID     string    `gorm:"column:run_id;size:36;index"`
	Action    string    `gorm:"column:action;size:16"`
	Category  string    `gorm:"column:category;size:32"`
	Key       string    `gorm:"column:record_key;size:255"`
	RecordID  int       `gorm:"column:record_id"`
	NewName   string    `gorm:"column:new_name;size:255"`
	Status    string    `gorm:"column:status;size:16"`
	Error     string    `gorm:"column:error;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

// TableName implements gorm's tabler.
func (Entry) TableName() string { return TableName }

var requiredColumns = []string{"id", "run_id", "action", "category", "record_key", "record_id", "new_name", "status", "error", "created_at"}

// Journal writes entries for one run and reads past entries.
type Journal struct {
	db       *gorm.DB
	runID    string
	category string
	logger   *zap.Logger
	now      func() time.Time
}

var _ reconcile.Recorder = (*Journal)(nil)

// New migrates the journal table and starts a run for category.
func New(db *gorm.DB, category string, logger *zap.Logger) (*Journal, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return newJournal(db, category, logger), nil
}

// Open attaches to an existing journal without migrating it. It returns
// ErrNoJournal when the table is missing and an error when it lacks columns.
func Open(db *gorm.DB, logger *zap.Logger) (*Journal, error) {
	if !db.Migrator().HasTable(TableName) {
		return nil, ErrNoJournal
	}
	missing, err := database.MissingColumns(db, TableName, requiredColumns...)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("journal table %s is missing columns %v", TableName, missing)
	}
	return newJournal(db, "", logger), nil
}

func newJournal(db *gorm.DB, category string, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	return &Journal{
		db:       db,
		runID:    runID,
		category: category,
		logger:   logger.With(zap.String("run_id", runID)),
		now:      time.Now,
	}
}

// RunID returns the identifier shared by every entry of this run.
func (j *Journal) RunID() string {
	return j.runID
}

// RecordAction stores the outcome of an attempted action.
func (j *Journal) RecordAction(ctx context.Context, action reconcile.Action, actErr error) error {
	entry := Entry{
		ID:        uuid.NewString(),
		RunID:     j.runID,
		Action:    string(action.Type),
		Category:  j.category,
		Key:       action.Key,
		RecordID:  action.RecordID,
		NewName:   action.NewName,
		Status:    StatusOK,
		CreatedAt: j.now().UTC(),
	}
	if actErr != nil {
		entry.Status = StatusFailed
		entry.Error = actErr.Error()
	}

	if err := j.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to write journal entry: %w", err)
	}
	j.logger.Debug("Journal entry written",
		zap.String("action", entry.Action),
		zap.String("key", entry.Key),
		zap.String("status", entry.Status))
	return nil
}

// Recent returns up to limit entries, newest first. A limit <= 0 returns all entries.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	q := j.db.WithContext(ctx).Order("created_at DESC").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}
