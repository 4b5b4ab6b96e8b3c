package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/application/game"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/test/helpers"
)

type fixture struct {
	svc      *game.Service
	notifier *helpers.RecordingNotifier
	logs     *logging.Recorder
}

func testConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Customers.SpawnInterval = time.Hour
	cfg.Customers.OrderingDuration = 0
	return cfg
}

func newFixture(t *testing.T, cfg game.Config) fixture {
	t.Helper()
	regular := customer.NewProfile("regular", "Regular")
	regular.CanMakeCustomOrders = false

	f := fixture{notifier: helpers.NewRecordingNotifier(), logs: logging.NewRecorder()}
	f.svc = game.NewService(cfg, game.Dependencies{
		Catalog:  sushi.DefaultCatalog(),
		Profiles: []*customer.Profile{regular},
		Clock:    shared.NewSimulationClock(time.Time{}),
		Random:   shared.NewSequenceRandom(0),
		Notifier: f.notifier,
		Logger:   f.logs,
	})
	return f
}

// seatOne starts the service and lets the first customer arrive
func (f fixture) seatOne(t *testing.T) *customer.Customer {
	t.Helper()
	require.NoError(t, f.svc.StartGame())
	f.svc.Tick(16 * time.Millisecond)
	list := f.svc.Customers().Customers()
	require.Len(t, list, 1)
	return list[0]
}

func tickFor(svc *game.Service, total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		svc.Tick(step)
	}
}

func TestService_PerfectServeScoresAndStartsEating(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	require.Equal(t, "Salmon Nigiri", o.Recipe().Name())

	// Act
	require.NoError(t, f.svc.GoToKitchen(o.ID()))
	for _, d := range sushi.AllDimensions() {
		f.svc.SetParameter(d, o.Recipe().Ideal().Get(d))
	}
	_, err = f.svc.CompleteCraft()
	require.NoError(t, err)
	require.NoError(t, f.svc.ReturnToHall())
	served, ok := f.svc.Serve(c.ID())

	// Assert
	require.True(t, ok)
	assert.Equal(t, sushi.ResultPerfect, served.Result)
	assert.Equal(t, 120, served.Delta)
	assert.Equal(t, 120, f.svc.Scores().Total())
	assert.Equal(t, customer.StateEating, c.State())
	assert.Equal(t, customer.EmotionVeryHappy, c.Emotion())
	assert.Equal(t, 0, f.svc.Orders().Len())

	resolved, found := f.notifier.LastResolved()
	require.True(t, found)
	assert.Equal(t, score.ReactionVeryHappy, resolved.Reaction)
	assert.False(t, resolved.TimedOut)
}

func TestService_OrderTimeoutPenalizesAndSendsCustomerHome(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.Customers.Patience = 30 * time.Second
	f := newFixture(t, cfg)
	c := f.seatOne(t)
	_, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)

	// Act
	tickFor(f.svc, 15*time.Second, time.Second)

	// Assert
	assert.Equal(t, -50, f.svc.Scores().Total())
	assert.Equal(t, 1, f.svc.Scores().Failed())
	_, stillHere := f.svc.Customers().Get(c.ID())
	assert.False(t, stillHere)
	assert.Equal(t, 0, f.svc.Allocator().Occupancy())

	resolved, found := f.notifier.LastResolved()
	require.True(t, found)
	assert.True(t, resolved.TimedOut)
	assert.Equal(t, sushi.ResultFail, resolved.Result)
	assert.Contains(t, f.notifier.StatesOf(c.ID()), customer.StateLeaving)
}

func TestService_PatienceTimeoutAbandonsOrder(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	_, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)

	// Act
	tickFor(f.svc, 10*time.Second, time.Second)

	// Assert
	assert.Equal(t, 0, f.svc.Orders().Len())
	assert.Equal(t, -50, f.svc.Scores().Total())
	require.Len(t, f.notifier.Resolved, 1)
	assert.True(t, f.notifier.Resolved[0].TimedOut)
}

func TestService_SeatedCustomerWithoutOrderNeverTimesOut(t *testing.T) {
	f := newFixture(t, testConfig())
	c := f.seatOne(t)

	tickFor(f.svc, 20*time.Second, 500*time.Millisecond)

	assert.Equal(t, customer.StateOrdering, c.State())
	assert.Equal(t, 0, f.svc.Scores().Failed())
}

func TestService_FailedDishSendsCustomerHome(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	require.NoError(t, f.svc.GoToKitchen(o.ID()))
	for _, d := range sushi.AllDimensions() {
		f.svc.SetParameter(d, 1)
	}
	_, err = f.svc.CompleteCraft()
	require.NoError(t, err)
	require.NoError(t, f.svc.ReturnToHall())

	// Act
	served, ok := f.svc.Serve(c.ID())

	// Assert
	require.True(t, ok)
	assert.Equal(t, sushi.ResultFail, served.Result)
	assert.Equal(t, -50, served.Delta)
	_, stillHere := f.svc.Customers().Get(c.ID())
	assert.False(t, stillHere)
	assert.Len(t, f.notifier.Resolved, 1, "penalty must be applied once")
}

func TestService_PauseFreezesTime(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	elapsed := f.svc.Elapsed()

	// Act
	require.NoError(t, f.svc.PauseGame())
	f.svc.Tick(time.Minute)

	// Assert
	assert.Equal(t, gamemode.ModePaused, f.svc.Mode())
	assert.Equal(t, elapsed, f.svc.Elapsed())
	assert.Equal(t, 15*time.Second, o.Remaining())

	require.NoError(t, f.svc.ResumeGame())
	assert.Equal(t, gamemode.ModePlaying, f.svc.Mode())
}

func TestService_ResumeReturnsToKitchen(t *testing.T) {
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	require.NoError(t, f.svc.GoToKitchen(o.ID()))

	require.NoError(t, f.svc.PauseGame())
	require.NoError(t, f.svc.ResumeGame())

	assert.Equal(t, gamemode.ModeCrafting, f.svc.Mode())
	assert.True(t, f.svc.Craft().IsCrafting())
}

func TestService_TickBeforeStartIsNoOp(t *testing.T) {
	f := newFixture(t, testConfig())

	f.svc.Tick(10 * time.Second)

	assert.Equal(t, time.Duration(0), f.svc.Elapsed())
	assert.Equal(t, 0, f.svc.Customers().Count())
}

func TestService_GoToKitchenUnknownOrder(t *testing.T) {
	f := newFixture(t, testConfig())
	f.seatOne(t)

	err := f.svc.GoToKitchen(shared.NewOrderID())

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.Kind)
	assert.Equal(t, gamemode.ModePlaying, f.svc.Mode())
}

func TestService_ServeIgnoredInKitchen(t *testing.T) {
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	require.NoError(t, f.svc.GoToKitchen(o.ID()))
	_, err = f.svc.CompleteCraft()
	require.NoError(t, err)

	_, ok := f.svc.Serve(c.ID())

	assert.False(t, ok)
	assert.True(t, f.svc.Serving().HasPlate())
}

func TestService_DetailViewOnlyInKitchen(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)

	// Act & Assert
	var invalid *shared.InvalidStateError
	require.ErrorAs(t, f.svc.EnterDetailView(gamemode.StationRice), &invalid)

	require.NoError(t, f.svc.GoToKitchen(o.ID()))
	require.NoError(t, f.svc.EnterDetailView(gamemode.StationRice))
	assert.Equal(t, gamemode.StationRice, f.svc.Station())
	require.Error(t, f.svc.EnterDetailView(gamemode.StationCutting))

	require.NoError(t, f.svc.ExitDetailView())
	assert.Equal(t, gamemode.StationNone, f.svc.Station())
}

func TestService_CreateSpecificOrderWithRequest(t *testing.T) {
	f := newFixture(t, testConfig())
	c := f.seatOne(t)

	o, err := f.svc.CreateSpecificOrder(c.ID(), "tuna nigiri", "riceless")

	require.NoError(t, err)
	assert.Equal(t, "Tuna Nigiri", o.Recipe().Name())
	assert.True(t, o.Request().Has(sushi.DimensionRiceAmount))
	assert.Equal(t, customer.StateWaitingFood, c.State())
	assert.Equal(t, o.ID(), c.OrderID())
}

func TestService_CreateSpecificOrderUnknownRecipe(t *testing.T) {
	f := newFixture(t, testConfig())
	c := f.seatOne(t)

	o, err := f.svc.CreateSpecificOrder(c.ID(), "Dragon Roll", "")

	assert.Nil(t, o)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 1, f.logs.Count(logging.LevelError))
}

func TestService_CreateSpecificOrderRejectsQueuedCustomer(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.SeatCount = 2
	cfg.MaxActiveSeats = 2
	f := newFixture(t, cfg)
	require.NoError(t, f.svc.StartGame())
	pair := customer.NewProfile("pair", "Pair")
	pair.PartySize = 2
	pair.CanMakeCustomOrders = false
	seated, ok := f.svc.Customers().SpawnParty(pair)
	require.True(t, ok)
	queued, ok := f.svc.Customers().SpawnParty(pair)
	require.True(t, ok)
	require.Equal(t, 1, f.svc.Allocator().QueueLen())
	guest := queued.Members()[0]

	// Act
	o, err := f.svc.CreateSpecificOrder(guest, "Salmon Nigiri", "")
	tickFor(f.svc, 16*time.Second, time.Second)

	// Assert
	assert.Nil(t, o)
	var invalid *shared.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Nil(t, f.svc.OrderOf(guest))
	assert.Equal(t, 0, f.svc.Scores().Total())
	assert.Equal(t, 0, f.svc.Scores().Failed())
	for _, id := range append(seated.Members(), queued.Members()...) {
		_, present := f.svc.Customers().Get(id)
		assert.True(t, present)
	}
}

func TestService_CreateSpecificOrderIgnoredWhileEating(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	o, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	require.NoError(t, f.svc.GoToKitchen(o.ID()))
	for _, d := range sushi.AllDimensions() {
		f.svc.SetParameter(d, o.Recipe().Ideal().Get(d))
	}
	_, err = f.svc.CompleteCraft()
	require.NoError(t, err)
	require.NoError(t, f.svc.ReturnToHall())
	_, served := f.svc.Serve(c.ID())
	require.True(t, served)
	require.Equal(t, customer.StateEating, c.State())

	// Act
	extra, err := f.svc.CreateSpecificOrder(c.ID(), "Tuna Nigiri", "")

	// Assert
	assert.Nil(t, extra)
	var invalid *shared.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, f.svc.Orders().Len())
}

func TestService_RestartResetsScore(t *testing.T) {
	// Arrange
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	_, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)
	tickFor(f.svc, 10*time.Second, time.Second)
	require.NoError(t, f.svc.EndGame())
	require.Equal(t, gamemode.ModeResult, f.svc.Mode())

	// Act
	require.NoError(t, f.svc.StartGame())

	// Assert
	assert.Equal(t, 0, f.svc.Scores().Total())
	assert.Equal(t, 0, f.svc.Customers().Count())
	assert.Equal(t, gamemode.ModePlaying, f.svc.Mode())
}

func TestService_SnapshotCopiesState(t *testing.T) {
	f := newFixture(t, testConfig())
	c := f.seatOne(t)
	_, err := f.svc.TakeOrder(c.ID())
	require.NoError(t, err)

	snap := f.svc.Snapshot()

	assert.Equal(t, "PLAYING", snap.Mode)
	require.Len(t, snap.Customers, 1)
	assert.Equal(t, "WAITING_FOOD", snap.Customers[0].State)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "Salmon Nigiri", snap.Orders[0].Recipe)
	assert.Equal(t, 1, snap.Seats.Occupied)
}

func TestService_SelectSeatIsForwarded(t *testing.T) {
	f := newFixture(t, testConfig())

	f.svc.SelectSeat(customer.SeatID(2))

	require.Len(t, f.notifier.Selections, 1)
	assert.Equal(t, customer.SeatID(2), f.notifier.Selections[0].Seat)
}
