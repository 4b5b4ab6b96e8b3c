package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/test/helpers"
)

func TestServiceLogRepository_DeduplicatesWithinWindow(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewSimulationClock(time.Time{})
	repo := persistence.NewGormServiceLogRepository(db, clock, time.Minute)
	ctx := context.Background()

	// Act
	require.NoError(t, repo.Log(ctx, "run-1", "Order timed out", "INFO", nil))
	clock.Advance(30 * time.Second)
	require.NoError(t, repo.Log(ctx, "run-1", "Order timed out", "INFO", nil))
	clock.Advance(31 * time.Second)
	require.NoError(t, repo.Log(ctx, "run-1", "Order timed out", "INFO", map[string]interface{}{"recipe": "Tamago"}))

	// Assert
	entries, err := repo.GetLogs(ctx, "run-1", 10, 0, nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tamago", entries[0].Metadata["recipe"])
}

func TestServiceLogRepository_FiltersByLevelAndRun(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormServiceLogRepository(db, shared.NewSimulationClock(time.Time{}), 0)
	ctx := context.Background()
	require.NoError(t, repo.Log(ctx, "run-1", "Service started", "INFO", nil))
	require.NoError(t, repo.Log(ctx, "run-1", "Recipe not found", "ERROR", nil))
	require.NoError(t, repo.Log(ctx, "run-2", "Recipe not found", "ERROR", nil))

	// Act
	level := "ERROR"
	entries, err := repo.GetLogs(ctx, "run-1", 10, 0, &level, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Recipe not found", entries[0].Message)
}

func TestRunLogger_WritesThroughRepository(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormServiceLogRepository(db, nil, 0)
	logger := persistence.NewRunLogger(repo, "run-9")

	logger.Log("WARNING", "Unknown emotion", map[string]interface{}{"emotion": "smug"})

	entries, err := repo.GetLogs(context.Background(), "run-9", 10, 0, nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARNING", entries[0].Level)
}
