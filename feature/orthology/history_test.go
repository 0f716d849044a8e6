package orthology

import (
	"context"
	"testing"
	"time"

	"orth-check/core/reconcile"

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

func sampleSummary() *RunSummary {
	return &RunSummary{
		ID:        "0b6a3c8e-5d1f-4a57-9a44-1f4f1c1e2d3b",
		Source:    SourceCLI,
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Reports: []*reconcile.FileReport{
			{File: "split1.tsv", TotalFamilies: 2},
			{File: "split2.tsv", TotalFamilies: 2, InconsistentFamilies: 2},
		},
	}
}

func TestHistory_Disabled(t *testing.T) {
	h := NewHistory(nil)
	assert.False(t, h.Enabled())

	assert.ErrorIs(t, h.Save(context.Background(), sampleSummary()), ErrHistoryDisabled)
	assert.ErrorIs(t, h.Migrate(context.Background()), ErrHistoryDisabled)
	_, err := h.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	var nilHistory *History
	assert.False(t, nilHistory.Enabled())
}

func TestHistory_Save(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	h := NewHistory(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `orthology_runs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("INSERT INTO `orthology_run_files`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	sqlMock.ExpectCommit()

	require.NoError(t, h.Save(context.Background(), sampleSummary()))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHistory_SaveRollsBack(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	h := NewHistory(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `orthology_runs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("INSERT INTO `orthology_run_files`").
		WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	err := h.Save(context.Background(), sampleSummary())
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "failed to save run")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHistory_Recent(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	h := NewHistory(db)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sqlMock.ExpectQuery("SELECT \\* FROM `orthology_runs`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "source"}).
			AddRow("run-2", created.Add(time.Hour), SourceHTTP).
			AddRow("run-1", created, SourceCLI))
	sqlMock.ExpectQuery("SELECT \\* FROM `orthology_run_files`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "run_id", "position", "file", "total_families", "inconsistent_families"}).
			AddRow(1, "run-1", 0, "split1.tsv", 2, 0).
			AddRow(2, "run-1", 1, "split2.tsv", 2, 2).
			AddRow(3, "run-2", 0, "upload.tsv", 7, 0))

	runs, err := h.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "run-2", runs[0].ID)
	require.Len(t, runs[0].Files, 1)
	assert.Equal(t, "upload.tsv", runs[0].Files[0].File)

	assert.Equal(t, "run-1", runs[1].ID)
	require.Len(t, runs[1].Files, 2)
	assert.Equal(t, 2, runs[1].Files[1].InconsistentFamilies)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHistory_RecentError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	h := NewHistory(db)

	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	runs, err := h.Recent(context.Background(), 10)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, runs)
}
