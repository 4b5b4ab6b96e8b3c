package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsApplied(t *testing.T) {
	// Arrange
	path := writeConfig(t, "service:\n  seat_count: 6\n")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 6, cfg.Service.SeatCount)
	assert.Equal(t, 6, cfg.Service.MaxActiveSeats)
	assert.Equal(t, 15*time.Second, cfg.Service.OrderTimeLimit)
	assert.Equal(t, 2*time.Second, cfg.Service.OrderingDuration)
	assert.Equal(t, 0.4, cfg.Service.CustomOrderProbability)
	assert.Equal(t, 3, cfg.Service.MaxWaitingParties)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
service:
  order_time_limit: 20s
  ordering_duration: 0s
  max_waiting_parties: 0
simulation:
  seed: 42
  frame_delta: 100ms
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, cfg.Service.OrderTimeLimit)
	assert.Equal(t, time.Duration(0), cfg.Service.OrderingDuration)
	assert.Equal(t, 0, cfg.Service.MaxWaitingParties)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.Simulation.FrameDelta)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "service:\n  patience: 8s\n")
	t.Setenv("SUSHI_SERVICE_PATIENCE", "12s")
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/sushi")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, cfg.Service.Patience)
	assert.Equal(t, "postgresql://u:p@db:5432/sushi", cfg.Database.URL)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "service:\n  custom_order_probability: 1.5\n")

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CustomOrderProbability")
}

func TestLoadConfig_RejectsMoreActiveSeatsThanSeats(t *testing.T) {
	// Arrange
	path := writeConfig(t, "service:\n  seat_count: 4\n  max_active_seats: 6\n")

	// Act
	_, err := config.LoadConfig(path)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxActiveSeats")
	assert.Contains(t, err.Error(), "ltefield=SeatCount")
}

func TestValidateConfig_AllowsEveryActiveSeatInUse(t *testing.T) {
	// Arrange
	cfg := config.Default()
	cfg.Service.SeatCount = 3
	cfg.Service.MaxActiveSeats = 3

	// Act
	err := config.ValidateConfig(cfg)

	// Assert
	assert.NoError(t, err)
}

func TestValidateConfig_RejectsActiveSeatsSetAfterLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Service.MaxActiveSeats = cfg.Service.SeatCount + 1

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Service.MaxActiveSeats")
}

func TestLoadConfig_FileOutputNeedsPath(t *testing.T) {
	path := writeConfig(t, "logging:\n  output: file\n")

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FilePath")
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, config.ValidateConfig(cfg))
	assert.Equal(t, 4, cfg.Service.SeatCount)
	assert.Equal(t, 0.5, cfg.Service.CraftDefault)
}
