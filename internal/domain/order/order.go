package order

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// State is the order lifecycle state
type State int

const (
	StateNone State = iota
	StateActive
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateCompleted:
		return "COMPLETED"
	case StateFailed:
		return "FAILED"
	default:
		return "NONE"
	}
}

// IsTerminal reports whether no further transitions are possible
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Order is a contract between a customer and the kitchen: a recipe, an
// optional request and a deadline. The owner is a handle, not a reference.
//
// Lifecycle: Active on construction, then Completed or Failed. Terminal
// orders are never reactivated and every further call is a no-op.
type Order struct {
	id        shared.OrderID
	owner     shared.CustomerID
	recipe    *sushi.Recipe
	request   *sushi.CustomRequest
	timeLimit time.Duration
	remaining time.Duration
	state     State

	result  sushi.Result
	quality float64
}

// NewOrder creates an active order
func NewOrder(owner shared.CustomerID, recipe *sushi.Recipe, request *sushi.CustomRequest, timeLimit time.Duration) (*Order, error) {
	if owner.IsZero() {
		return nil, shared.NewValidationError("owner", "order must belong to a customer")
	}
	if recipe == nil {
		return nil, shared.NewValidationError("recipe", "order requires a recipe")
	}
	if timeLimit <= 0 {
		return nil, shared.NewValidationError("time_limit", "time limit must be positive")
	}

	return &Order{
		id:        shared.NewOrderID(),
		owner:     owner,
		recipe:    recipe,
		request:   request,
		timeLimit: timeLimit,
		remaining: timeLimit,
		state:     StateActive,
	}, nil
}

func (o *Order) ID() shared.OrderID { return o.id }
func (o *Order) Owner() shared.CustomerID { return o.owner }
func (o *Order) Recipe() *sushi.Recipe { return o.recipe }
func (o *Order) Request() *sushi.CustomRequest { return o.request }
func (o *Order) TimeLimit() time.Duration { return o.timeLimit }
func (o *Order) Remaining() time.Duration { return o.remaining }
func (o *Order) State() State { return o.state }
func (o *Order) Result() sushi.Result { return o.result }
func (o *Order) Quality() float64 { return o.quality }
func (o *Order) IsActive() bool { return o.state == StateActive }

// RemainingRatio returns remaining/limit in [0, 1], for countdown gauges
func (o *Order) RemainingRatio() float64 {
	return float64(o.remaining) / float64(o.timeLimit)
}

// Tick advances the countdown. Returns true only on the tick that fails the order.
func (o *Order) Tick(dt time.Duration) bool {
	if o.state != StateActive {
		return false
	}

	o.remaining -= dt
	if o.remaining > 0 {
		return false
	}

	o.remaining = 0
	o.Fail()
	return true
}

// Fail moves an active order to Failed. Idempotent.
func (o *Order) Fail() {
	if o.state != StateActive {
		return
	}
	o.state = StateFailed
	o.result = sushi.ResultFail
	o.quality = 0
}

// Complete judges a served plate against the order.
// A nil plate or one made for another recipe fails the order without evaluation.
// Non-active orders return ResultNone.
func (o *Order) Complete(plate *sushi.Plate) (sushi.Result, float64) {
	if o.state != StateActive {
		return sushi.ResultNone, 0
	}

	if plate == nil || !o.recipe.SameAs(plate.Recipe()) {
		o.Fail()
		return sushi.ResultFail, 0
	}

	quality, result := sushi.Evaluate(o.recipe, plate.Parameters(), o.request)
	o.state = StateCompleted
	o.result = result
	o.quality = quality
	return result, quality
}
