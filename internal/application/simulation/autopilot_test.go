package simulation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/application/mediator"
	"github.com/andrescamacho/sushibar-go/internal/application/scripting"
	"github.com/andrescamacho/sushibar-go/internal/application/simulation"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

func TestAutopilot_TakesCooksAndServes(t *testing.T) {
	// Arrange
	svc := newService(11)
	require.NoError(t, svc.StartGame())
	svc.Tick(10 * time.Millisecond)
	require.Equal(t, 1, svc.Customers().Count())
	guest := svc.Customers().Customers()[0]
	pilot := simulation.NewAutopilot(simulation.AutopilotConfig{CookTime: 500 * time.Millisecond}, shared.NewSeededRandom(2), nil)
	step := 100 * time.Millisecond

	// Act & Assert
	pilot.Step(svc, step)
	assert.Equal(t, gamemode.ModeCrafting, svc.Mode())
	assert.Equal(t, guest.ID(), pilot.Target())

	for i := 0; i < 5; i++ {
		pilot.Step(svc, step)
	}
	assert.Equal(t, gamemode.ModePlaying, svc.Mode())
	assert.True(t, svc.Serving().HasPlate())

	pilot.Step(svc, step)
	assert.False(t, svc.Serving().HasPlate())
	assert.Equal(t, 1, svc.Scores().Completed())
	assert.True(t, pilot.Target().IsZero())
}

func TestAutopilot_RoutesActionsThroughScripts(t *testing.T) {
	// Arrange
	svc := newService(11)
	require.NoError(t, svc.StartGame())
	svc.Tick(10 * time.Millisecond)
	require.Equal(t, 1, svc.Customers().Count())

	scripts, err := scripting.NewScriptMediator(svc, nil)
	require.NoError(t, err)
	var sent []string
	scripts.Use(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		sent = append(sent, mediator.RequestName(request))
		return next(ctx, request)
	})

	pilot := simulation.NewAutopilot(simulation.AutopilotConfig{CookTime: 500 * time.Millisecond}, shared.NewSeededRandom(2), nil)
	pilot.UseScripts(scripts)
	step := 100 * time.Millisecond

	// Act
	for i := 0; i < 7; i++ {
		pilot.Step(svc, step)
	}

	// Assert
	assert.Equal(t, []string{"StartCookingCommand", "ServeCustomerCommand"}, sent)
	assert.Equal(t, 1, svc.Scores().Completed())
	assert.False(t, svc.Serving().HasPlate())
}
