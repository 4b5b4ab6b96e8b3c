package simulation

import (
	"context"
	"time"

	"github.com/andrescamacho/sushibar-go/internal/application/game"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/mediator"
	"github.com/andrescamacho/sushibar-go/internal/application/scripting"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/pkg/utils"
)

// AutopilotConfig tunes how well and how fast the autopilot cooks
type AutopilotConfig struct {
	// SkillNoise is the largest error added to each parameter, in [0,1]
	SkillNoise float64
	// CookTime is how long a dish takes in the kitchen
	CookTime time.Duration
}

func DefaultAutopilotConfig() AutopilotConfig {
	return AutopilotConfig{SkillNoise: 0.1, CookTime: 2 * time.Second}
}

// Autopilot plays the game without a player. Each Step it either takes an
// order, cooks it or serves the plate in hand, one customer at a time.
type Autopilot struct {
	config AutopilotConfig
	rng    shared.RandomSource
	logger logging.ServiceLogger

	// scripts, when set, carries kitchen and serving actions as script commands
	scripts mediator.Mediator

	target  shared.CustomerID
	cooking time.Duration
}

func NewAutopilot(config AutopilotConfig, rng shared.RandomSource, logger logging.ServiceLogger) *Autopilot {
	if rng == nil {
		rng = shared.NewSeededRandom(uint64(time.Now().UnixNano()))
	}
	return &Autopilot{config: config, rng: rng, logger: logging.OrNoOp(logger)}
}

// UseScripts routes cooking and serving through a script mediator built by
// scripting.NewScriptMediator
func (a *Autopilot) UseScripts(m mediator.Mediator) {
	a.scripts = m
}

// Target is the customer currently being served, zero when idle
func (a *Autopilot) Target() shared.CustomerID { return a.target }

// Step acts on the service once, dt after the previous step
func (a *Autopilot) Step(svc *game.Service, dt time.Duration) {
	switch svc.Mode() {
	case gamemode.ModeCrafting:
		a.cook(svc, dt)
	case gamemode.ModePlaying:
		if svc.Serving().HasPlate() {
			a.serve(svc)
			return
		}
		a.pickCustomer(svc)
	}
}

func (a *Autopilot) pickCustomer(svc *game.Service) {
	for _, c := range svc.Customers().Customers() {
		if !waitingOnKitchen(c) {
			continue
		}
		o := svc.OrderOf(c.ID())
		if o == nil {
			var err error
			if o, err = svc.TakeOrder(c.ID()); err != nil {
				continue
			}
		}
		if err := a.startCooking(svc, c.ID(), o.ID()); err != nil {
			return
		}
		a.target = c.ID()
		a.cooking = 0
		return
	}
}

func (a *Autopilot) cook(svc *game.Service, dt time.Duration) {
	o := svc.Orders().FindByID(svc.CraftingOrder())
	if o == nil {
		// the customer left while we were cooking
		_ = svc.ReturnToHall()
		a.target = shared.CustomerID{}
		return
	}

	a.cooking += dt
	if a.cooking < a.config.CookTime {
		return
	}

	ideal := sushi.EffectiveIdeal(o.Recipe(), o.Request())
	for _, d := range sushi.AllDimensions() {
		noise := (a.rng.Float64()*2 - 1) * a.config.SkillNoise
		svc.SetParameter(d, utils.Clamp01(ideal.Get(d)+noise))
	}
	if _, err := svc.CompleteCraft(); err != nil {
		return
	}
	_ = svc.ReturnToHall()
}

func (a *Autopilot) startCooking(svc *game.Service, customerID shared.CustomerID, orderID shared.OrderID) error {
	if a.scripts == nil {
		return svc.GoToKitchen(orderID)
	}
	_, err := a.scripts.Send(context.Background(), &scripting.StartCookingCommand{CustomerID: customerID.String()})
	return err
}

func (a *Autopilot) serveTarget(svc *game.Service) (string, bool) {
	if a.scripts == nil {
		served, ok := svc.Serve(a.target)
		return served.Result.String(), ok
	}
	response, err := a.scripts.Send(context.Background(), &scripting.ServeCustomerCommand{CustomerID: a.target.String()})
	if err != nil {
		return "", false
	}
	served, ok := response.(*scripting.ServeCustomerResponse)
	if !ok || !served.Served {
		return "", false
	}
	return served.Result, true
}

func (a *Autopilot) serve(svc *game.Service) {
	result, ok := a.serveTarget(svc)
	if !ok {
		a.logger.Log(logging.LevelDebug, "Plate discarded, customer gone", map[string]interface{}{
			"customer_id": a.target.Short(),
		})
		svc.DiscardPlate()
	} else {
		a.logger.Log(logging.LevelDebug, "Autopilot served", map[string]interface{}{
			"customer_id": a.target.Short(),
			"result":      result,
		})
	}
	a.target = shared.CustomerID{}
}

func waitingOnKitchen(c *customer.Customer) bool {
	switch c.State() {
	case customer.StateOrdering, customer.StateWaitingOrder, customer.StateWaitingFood:
		return true
	default:
		return false
	}
}
