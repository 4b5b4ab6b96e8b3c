package game

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/application/customers"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/orders"
	"github.com/andrescamacho/sushibar-go/internal/application/scheduling"
	"github.com/andrescamacho/sushibar-go/internal/application/seating"
	"github.com/andrescamacho/sushibar-go/internal/application/serving"
	"github.com/andrescamacho/sushibar-go/internal/domain/crafting"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// Dependencies groups what a Service is built from
type Dependencies struct {
	Catalog  *sushi.Catalog
	Profiles []*customer.Profile
	Clock    shared.Clock
	Random   shared.RandomSource
	Notifier ports.ViewNotifier
	Logger   logging.ServiceLogger
}

// Service is the context object for one restaurant service. It owns every
// subsystem and is the only thing the tick loop and the scripting layer talk to.
//
// Tick order:
//  1. order timers, failing expired orders
//  2. customer patience and eating timers
//  3. spawn timer
//  4. one-shot scheduler
//
// Invariants:
// - Only Playing and Crafting advance simulation time
// - A failed order always sends its owner home
// - Each scored outcome is applied to the score ledger exactly once
type Service struct {
	config   Config
	clock    shared.Clock
	notifier ports.ViewNotifier
	logger   logging.ServiceLogger

	modes     *gamemode.ModeMachine
	catalog   *sushi.Catalog
	orders    *orders.Ledger
	scores    *score.Ledger
	allocator *seating.Allocator
	scheduler *scheduling.Scheduler
	customers *customers.Manager
	craft     *crafting.Session
	serving   *serving.Controller

	craftingOrder shared.OrderID
	elapsed       time.Duration
	frames        int
}

// NewService builds and wires every subsystem for a run
func NewService(config Config, deps Dependencies) *Service {
	if deps.Catalog == nil {
		deps.Catalog = sushi.DefaultCatalog()
	}
	if deps.Clock == nil {
		deps.Clock = shared.NewRealClock()
	}
	if deps.Random == nil {
		deps.Random = shared.NewSeededRandom(uint64(deps.Clock.Now().UnixNano()))
	}
	if deps.Notifier == nil {
		deps.Notifier = ports.NoopNotifier{}
	}
	logger := logging.OrNoOp(deps.Logger)

	s := &Service{
		config:    config,
		clock:     deps.Clock,
		notifier:  deps.Notifier,
		logger:    logger,
		modes:     gamemode.NewModeMachine(deps.Clock),
		catalog:   deps.Catalog,
		orders:    orders.NewLedger(deps.Catalog, config.Orders, deps.Random, logger),
		scores:    score.NewLedger(),
		allocator: seating.NewAllocator(config.SeatCount, config.MaxActiveSeats, config.MaxWaitingParties),
		scheduler: scheduling.NewScheduler(),
		craft:     crafting.NewSession(config.CraftDefaults, crafting.NewLinearHold(config.HoldRate)),
	}
	s.customers = customers.NewManager(config.Customers, customers.Dependencies{
		Profiles:  deps.Profiles,
		Allocator: s.allocator,
		Scheduler: s.scheduler,
		Random:    deps.Random,
		Clock:     deps.Clock,
		Notifier:  deps.Notifier,
		Logger:    logger,
	})
	s.serving = serving.NewController(s.orders, s.scores)

	s.orders.OnPlaced(s.handleOrderPlaced)
	s.orders.OnFailed(s.handleOrderTimedOut)
	s.customers.OnExit(s.handleCustomerExit)
	s.scores.OnReaction(s.handleReaction)
	return s
}

// Getters

func (s *Service) Mode() gamemode.Mode { return s.modes.Mode() }
func (s *Service) Station() gamemode.Station { return s.modes.Station() }
func (s *Service) Elapsed() time.Duration { return s.elapsed }
func (s *Service) Frames() int { return s.frames }
func (s *Service) Catalog() *sushi.Catalog { return s.catalog }
func (s *Service) Orders() *orders.Ledger { return s.orders }
func (s *Service) Scores() *score.Ledger { return s.scores }
func (s *Service) Customers() *customers.Manager { return s.customers }
func (s *Service) Allocator() *seating.Allocator { return s.allocator }
func (s *Service) Scheduler() *scheduling.Scheduler { return s.scheduler }
func (s *Service) Craft() *crafting.Session { return s.craft }
func (s *Service) Serving() *serving.Controller { return s.serving }
func (s *Service) CraftingOrder() shared.OrderID { return s.craftingOrder }

// Tick advances the simulation by dt. Outside Playing and Crafting it does nothing.
func (s *Service) Tick(dt time.Duration) {
	if dt <= 0 || !s.modes.Mode().IsRunning() {
		return
	}
	if sim, ok := s.clock.(*shared.SimulationClock); ok {
		sim.Advance(dt)
	}
	s.elapsed += dt
	s.frames++

	s.orders.Tick(dt)
	s.customers.Tick(dt)
	s.scheduler.Tick(dt)
	s.craft.Tick(dt)
}

// Listeners

func (s *Service) handleOrderPlaced(o *order.Order) {
	s.notifier.OrderPlaced(ports.OrderPlaced{
		OrderID:    o.ID(),
		CustomerID: o.Owner(),
		Recipe:     o.Recipe().Name(),
		Request:    o.Request().String(),
		TimeLimit:  o.TimeLimit(),
		At:         s.clock.Now(),
	})
}

// handleOrderTimedOut scores the failure and sends the owner home
func (s *Service) handleOrderTimedOut(o *order.Order) {
	s.applyFailure(o, true)
	s.customers.Leave(o.Owner(), customers.ExitOrderFailed)
}

// handleCustomerExit closes any order the customer walks out on. Running
// out of patience is penalized; a service ending is not.
func (s *Service) handleCustomerExit(c *customer.Customer, reason customers.ExitReason) {
	o := s.orders.AbandonOrder(c.ID())
	if o == nil {
		return
	}
	if reason == customers.ExitServiceEnded {
		s.dropCraftFor(o)
		return
	}
	s.applyFailure(o, reason == customers.ExitPatience)
}

func (s *Service) handleReaction(id shared.CustomerID, reaction score.Reaction) {
	s.customers.SetEmotion(id, emotionFor(reaction))
}

func (s *Service) dropCraftFor(o *order.Order) {
	if o.ID() == s.craftingOrder {
		s.craft.Cancel()
		s.craftingOrder = shared.OrderID{}
	}
}

func (s *Service) applyFailure(o *order.Order, timedOut bool) {
	s.dropCraftFor(o)
	delta, reaction := s.scores.ApplyResult(o.Owner(), o.Recipe(), sushi.ResultFail, 0)
	s.notifier.OrderResolved(ports.OrderResolved{
		OrderID:    o.ID(),
		CustomerID: o.Owner(),
		Recipe:     o.Recipe().Name(),
		Result:     sushi.ResultFail,
		Delta:      delta,
		Reaction:   reaction,
		Total:      s.scores.Total(),
		TimedOut:   timedOut,
		At:         s.clock.Now(),
	})
}

func emotionFor(reaction score.Reaction) customer.Emotion {
	switch reaction {
	case score.ReactionVeryHappy:
		return customer.EmotionVeryHappy
	case score.ReactionHappy:
		return customer.EmotionHappy
	case score.ReactionNeutral:
		return customer.EmotionNeutral
	default:
		return customer.EmotionAngry
	}
}
