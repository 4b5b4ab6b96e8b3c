package serving

import (
	"github.com/andrescamacho/sushibar-go/internal/application/orders"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// Served describes a plate that reached a customer with an active order
type Served struct {
	orders.Outcome
	Delta    int
	Reaction score.Reaction
}

// Controller carries the finished plate from the kitchen to a customer
type Controller struct {
	ledger *orders.Ledger
	scores *score.Ledger
	held   *sushi.Plate
}

func NewController(ledger *orders.Ledger, scores *score.Ledger) *Controller {
	return &Controller{ledger: ledger, scores: scores}
}

func (c *Controller) HoldPlate(plate *sushi.Plate) { c.held = plate }
func (c *Controller) ClearPlate() { c.held = nil }
func (c *Controller) HasPlate() bool { return c.held != nil }
func (c *Controller) Held() *sushi.Plate { return c.held }

// Serve completes the customer's order with the held plate and scores it.
// Without a plate or an active order nothing happens and the plate is kept.
func (c *Controller) Serve(customerID shared.CustomerID) (Served, bool) {
	if c.held == nil || customerID.IsZero() {
		return Served{}, false
	}

	outcome := c.ledger.TryCompleteOrder(customerID, c.held)
	if outcome.Result == sushi.ResultNone {
		return Served{}, false
	}

	delta, reaction := c.scores.ApplyResult(customerID, outcome.Order.Recipe(), outcome.Result, outcome.Quality)
	c.held = nil
	return Served{Outcome: outcome, Delta: delta, Reaction: reaction}, true
}
