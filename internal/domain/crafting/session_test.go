package crafting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/domain/crafting"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

func recipe(t *testing.T) *sushi.Recipe {
	t.Helper()
	r, ok := sushi.DefaultCatalog().FindByName("Tuna Nigiri")
	require.True(t, ok)
	return r
}

func TestSession_StartResetsToDefaults(t *testing.T) {
	// Arrange
	s := crafting.NewDefaultSession()

	// Act
	ok := s.Start(recipe(t))

	// Assert
	require.True(t, ok)
	assert.Equal(t, crafting.StateInProgress, s.State())
	assert.Equal(t, sushi.UniformParameters(0.5), s.Parameters())
}

func TestSession_StartRejectsNilRecipe(t *testing.T) {
	s := crafting.NewDefaultSession()

	assert.False(t, s.Start(nil))
	assert.Equal(t, crafting.StateIdle, s.State())
}

func TestSession_SettersClampAndIgnoreIdle(t *testing.T) {
	// Arrange
	s := crafting.NewDefaultSession()
	s.SetFishThickness(0.9)
	assert.Equal(t, sushi.ProcessParameters{}, s.Parameters())

	// Act
	s.Start(recipe(t))
	s.SetFishThickness(1.7)
	s.SetRiceAmount(-0.2)
	s.SetWasabiAmount(0.25)

	// Assert
	p := s.Parameters()
	assert.Equal(t, 1.0, p.FishThickness)
	assert.Equal(t, 0.0, p.RiceAmount)
	assert.Equal(t, 0.5, p.PressDuration)
	assert.Equal(t, 0.25, p.WasabiAmount)
}

func TestSession_CompleteCopiesAllFourParameters(t *testing.T) {
	// Arrange
	s := crafting.NewDefaultSession()
	r := recipe(t)
	s.Start(r)
	s.SetWasabiAmount(0.8)

	// Act
	plate := s.Complete()
	s.Start(r)
	s.SetWasabiAmount(0.1)

	// Assert
	require.NotNil(t, plate)
	assert.Equal(t, r, plate.Recipe())
	assert.Equal(t, 0.8, plate.Parameters().WasabiAmount)
}

func TestSession_CompleteWhileIdleReturnsNil(t *testing.T) {
	s := crafting.NewDefaultSession()

	assert.Nil(t, s.Complete())
}

func TestSession_CancelDiscards(t *testing.T) {
	// Arrange
	s := crafting.NewDefaultSession()
	s.Start(recipe(t))

	// Act
	s.Cancel()

	// Assert
	assert.Equal(t, crafting.StateCancelled, s.State())
	assert.False(t, s.IsCrafting())
	assert.Nil(t, s.Recipe())
	assert.Nil(t, s.Complete())
}

func TestSession_LinearHoldAccumulatesAndClampsOnRelease(t *testing.T) {
	// Arrange
	s := crafting.NewSession(sushi.UniformParameters(0.5), crafting.NewLinearHold(0.5))
	s.Start(recipe(t))

	// Act
	require.True(t, s.BeginHold(sushi.DimensionPressDuration))
	assert.False(t, s.BeginHold(sushi.DimensionRiceAmount), "one hold at a time")
	s.Tick(time.Second)
	mid := s.Parameters().PressDuration
	s.Tick(2 * time.Second)
	held := s.HeldValue()
	value, released := s.ReleaseHold()

	// Assert
	assert.Equal(t, 0.5, mid, "working value frozen until release")
	assert.InDelta(t, 1.5, held, 1e-9)
	assert.True(t, released)
	assert.Equal(t, 1.0, value)
	assert.Equal(t, 1.0, s.Parameters().PressDuration)
}

func TestSession_HoldIgnoredWhenIdle(t *testing.T) {
	s := crafting.NewDefaultSession()

	assert.False(t, s.BeginHold(sushi.DimensionRiceAmount))
	_, released := s.ReleaseHold()
	assert.False(t, released)
}

func TestPingPongHold_Sweeps(t *testing.T) {
	// Arrange
	h := crafting.NewPingPongHold(2 * time.Second)
	h.Start()

	// Act & Assert
	h.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, h.Value(), 1e-9)
	h.Advance(500 * time.Millisecond)
	assert.InDelta(t, 1.0, h.Value(), 1e-9)
	h.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, h.Value(), 1e-9)
	h.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.0, h.Value(), 1e-9)
}
