package runs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contentbridge/wpimport/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_runs_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.ImportRun{}))

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_StartAndComplete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	run, err := repo.Start("export.xml")
	require.NoError(t, err)
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, entities.RunStatusRunning, run.Status)

	require.NoError(t, repo.Complete(run, 10, 8, 2, ""))
	assert.Equal(t, entities.RunStatusCompleted, run.Status)
	assert.Equal(t, 10, run.Processed)
	assert.NotNil(t, run.CompletedAt)
}

func TestRepository_CompleteWithError(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	run, err := repo.Start("export.xml")
	require.NoError(t, err)

	require.NoError(t, repo.Complete(run, 3, 1, 1, "malformed export document"))
	assert.Equal(t, entities.RunStatusFailed, run.Status)
	assert.Equal(t, "malformed export document", run.Errors)
}

func TestRepository_GetRecent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Start("a.xml")
	require.NoError(t, err)
	require.NoError(t, repo.Complete(first, 1, 1, 0, ""))

	_, err = repo.Start("b.xml")
	require.NoError(t, err)

	recent, err := repo.GetRecent(10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}
