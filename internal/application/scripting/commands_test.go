package scripting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/application/game"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/mediator"
	"github.com/andrescamacho/sushibar-go/internal/application/scripting"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

type fixture struct {
	svc      *game.Service
	mediator mediator.Mediator
	logs     *logging.Recorder
	guest    *customer.Customer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Customers.SpawnInterval = time.Hour
	cfg.Customers.OrderingDuration = 0

	logs := logging.NewRecorder()
	svc := game.NewService(cfg, game.Dependencies{
		Profiles: []*customer.Profile{customer.NewProfile("regular", "Regular")},
		Clock:    shared.NewSimulationClock(time.Time{}),
		Random:   shared.NewSequenceRandom(0.9),
		Logger:   logs,
	})
	require.NoError(t, svc.StartGame())
	svc.Tick(time.Millisecond)
	require.Equal(t, 1, svc.Customers().Count())

	m, err := scripting.NewScriptMediator(svc, logs)
	require.NoError(t, err)
	return fixture{svc: svc, mediator: m, logs: logs, guest: svc.Customers().Customers()[0]}
}

func TestStartCooking_CreatesOrderAndEntersKitchen(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	resp, err := f.mediator.Send(context.Background(), &scripting.StartCookingCommand{
		CustomerID:  f.guest.ID().String(),
		RecipeName:  "Eel Nigiri",
		RequestType: "MoreWasabi",
	})

	// Assert
	require.NoError(t, err)
	out := resp.(*scripting.StartCookingResponse)
	assert.Equal(t, "Eel Nigiri", out.Recipe)
	assert.NotEmpty(t, out.Request)
	assert.Equal(t, gamemode.ModeCrafting, f.svc.Mode())
	assert.Equal(t, "Eel Nigiri", f.svc.Craft().Recipe().Name())
	assert.Equal(t, customer.StateWaitingFood, f.guest.State())
}

func TestStartCooking_ReusesCurrentOrder(t *testing.T) {
	// Arrange
	f := newFixture(t)
	existing, err := f.svc.CreateSpecificOrder(f.guest.ID(), "Tamago", "")
	require.NoError(t, err)

	// Act
	resp, err := f.mediator.Send(context.Background(), &scripting.StartCookingCommand{
		CustomerID: f.guest.ID().String(),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, existing.ID().String(), resp.(*scripting.StartCookingResponse).OrderID)
	assert.Equal(t, 1, f.svc.Orders().Len())
}

func TestStartCooking_WithoutOrderFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.mediator.Send(context.Background(), &scripting.StartCookingCommand{
		CustomerID: f.guest.ID().String(),
	})

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, gamemode.ModePlaying, f.svc.Mode())
	assert.Equal(t, 2, f.logs.Count(logging.LevelWarn))
}

func TestStartCooking_UnknownRecipe(t *testing.T) {
	f := newFixture(t)

	_, err := f.mediator.Send(context.Background(), &scripting.StartCookingCommand{
		CustomerID: f.guest.ID().String(),
		RecipeName: "Dragon Roll",
	})

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "recipe", notFound.Kind)
}

func TestSetEmotion_ParsesCaseInsensitively(t *testing.T) {
	f := newFixture(t)

	resp, err := f.mediator.Send(context.Background(), &scripting.SetEmotionCommand{
		CustomerID: f.guest.ID().String(),
		Emotion:    "surprised",
	})

	require.NoError(t, err)
	assert.Equal(t, customer.EmotionSurprised, resp.(*scripting.SetEmotionResponse).Emotion)
	assert.Equal(t, customer.EmotionSurprised, f.guest.Emotion())
}

func TestSetEmotion_UnknownEmotion(t *testing.T) {
	f := newFixture(t)

	_, err := f.mediator.Send(context.Background(), &scripting.SetEmotionCommand{
		CustomerID: f.guest.ID().String(),
		Emotion:    "smug",
	})

	require.Error(t, err)
	assert.Equal(t, customer.EmotionNeutral, f.guest.Emotion())
}

func TestSetEmotion_UnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.mediator.Send(context.Background(), &scripting.SetEmotionCommand{
		CustomerID: shared.NewCustomerID().String(),
		Emotion:    "Happy",
	})

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCommands_RejectMissingCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.mediator.Send(context.Background(), &scripting.ServeCustomerCommand{})

	var invalid *shared.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "customer_id", invalid.Field)
}

func TestServeCustomer_FullDialogueFlow(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.mediator.Send(ctx, &scripting.StartCookingCommand{
		CustomerID: f.guest.ID().String(),
		RecipeName: "Salmon Nigiri",
	})
	require.NoError(t, err)
	ideal := f.svc.Craft().Recipe().Ideal()
	for _, d := range sushi.AllDimensions() {
		f.svc.SetParameter(d, ideal.Get(d))
	}
	_, err = f.svc.CompleteCraft()
	require.NoError(t, err)
	require.NoError(t, f.svc.ReturnToHall())

	// Act
	resp, err := f.mediator.Send(ctx, &scripting.ServeCustomerCommand{CustomerID: f.guest.ID().String()})

	// Assert
	require.NoError(t, err)
	out := resp.(*scripting.ServeCustomerResponse)
	assert.True(t, out.Served)
	assert.Equal(t, "PERFECT", out.Result)
	assert.Equal(t, 120, out.Delta)
}

func TestServeCustomer_NothingInHand(t *testing.T) {
	f := newFixture(t)

	resp, err := f.mediator.Send(context.Background(), &scripting.ServeCustomerCommand{CustomerID: f.guest.ID().String()})

	require.NoError(t, err)
	assert.False(t, resp.(*scripting.ServeCustomerResponse).Served)
}
