package orthology

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrHistoryDisabled is returned when no database is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// RunRecord is the archived summary of one reconciliation run.
type RunRecord struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Source    string          `gorm:"size:16" json:"source"`
	Files     []RunFileRecord `gorm:"foreignKey:RunID" json:"files"`
}

// TableName overrides the default table name.
func (RunRecord) TableName() string {
	return "orthology_runs"
}

// RunFileRecord holds the counts reported for one file of a run.
type RunFileRecord struct {
	ID                   uint   `gorm:"primaryKey" json:"-"`
	RunID                string `gorm:"size:36;index" json:"-"`
	Position             int    `json:"position"`
	File                 string `gorm:"size:1024" json:"file"`
	TotalFamilies        int    `json:"total_families"`
	InconsistentFamilies int    `json:"inconsistent_families"`
}

// TableName overrides the default table name.
func (RunFileRecord) TableName() string {
	return "orthology_run_files"
}

// History archives run summaries. Only counts are stored; the identity
// tables of a run are never persisted.
type History struct {
	db *gorm.DB
}

// NewHistory creates a history backed by db. A nil db disables it.
func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Enabled reports whether a database is configured.
func (h *History) Enabled() bool {
	return h != nil && h.db != nil
}

// Migrate creates or updates the history tables.
func (h *History) Migrate(ctx context.Context) error {
	if !h.Enabled() {
		return ErrHistoryDisabled
	}
	if err := h.db.WithContext(ctx).AutoMigrate(&RunRecord{}, &RunFileRecord{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Save archives a finished run.
func (h *History) Save(ctx context.Context, summary *RunSummary) error {
	if !h.Enabled() {
		return ErrHistoryDisabled
	}

	run := RunRecord{
		ID:        summary.ID,
		CreatedAt: summary.StartedAt,
		Source:    summary.Source,
	}
	files := make([]RunFileRecord, 0, len(summary.Reports))
	for i, r := range summary.Reports {
		files = append(files, RunFileRecord{
			RunID:                summary.ID,
			Position:             i,
			File:                 r.File,
			TotalFamilies:        r.TotalFamilies,
			InconsistentFamilies: r.InconsistentFamilies,
		})
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}
		return tx.Create(&files).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", summary.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first, with their files.
func (h *History) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	if !h.Enabled() {
		return nil, ErrHistoryDisabled
	}

	var runs []RunRecord
	err := h.db.WithContext(ctx).
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
