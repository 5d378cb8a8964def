// Package runs persists the aggregate outcome of importer invocations.
package runs

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contentbridge/wpimport/internal/entities"
)

// Repository handles import-run bookkeeping.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Start records the beginning of a run over the given source document.
func (r *Repository) Start(source string) (*entities.ImportRun, error) {
	run := &entities.ImportRun{
		RunID:     uuid.NewString(),
		Source:    source,
		Status:    entities.RunStatusRunning,
		StartedAt: time.Now(),
	}
	if err := r.db.Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

// Complete finalizes a run with its counters. A non-empty errMsg marks the
// run failed.
func (r *Repository) Complete(run *entities.ImportRun, processed, imported, skipped int, errMsg string) error {
	now := time.Now()
	run.Processed = processed
	run.Imported = imported
	run.Skipped = skipped
	run.CompletedAt = &now
	run.Status = entities.RunStatusCompleted
	if errMsg != "" {
		run.Status = entities.RunStatusFailed
		run.Errors = errMsg
	}
	return r.db.Save(run).Error
}

// GetRecent returns the latest runs, newest first.
func (r *Repository) GetRecent(limit int) ([]entities.ImportRun, error) {
	var runs []entities.ImportRun
	err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
