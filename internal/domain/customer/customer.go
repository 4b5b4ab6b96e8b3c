package customer

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// TickOutcome reports what a customer's timers produced during one tick
type TickOutcome int

const (
	TickNothing TickOutcome = iota
	TickPatienceExpired
	TickFinishedEating
)

// Customer is one guest. Seat, order and party are handles into their
// owning registries.
//
// Lifecycle:
//
//	Entering -> Ordering (seated) -> WaitingOrder -> WaitingFood -> Eating -> Leaving
//
// Patience counts down only while waiting and resets on entering each
// waiting state. Leaving is terminal.
type Customer struct {
	id      shared.CustomerID
	profile *Profile
	party   shared.PartyID
	state   State
	emotion Emotion

	patienceBudget time.Duration
	patience       time.Duration
	eatDuration    time.Duration
	eatRemaining   time.Duration

	seat   SeatID
	seated bool
	order  shared.OrderID

	ordersPlaced int
	ordersServed int
}

// New creates a customer in the Entering state
func New(id shared.CustomerID, profile *Profile, party shared.PartyID, patience, eatDuration time.Duration) *Customer {
	return &Customer{
		id:             id,
		profile:        profile,
		party:          party,
		state:          StateEntering,
		emotion:        EmotionNeutral,
		patienceBudget: patience,
		patience:       patience,
		eatDuration:    eatDuration,
	}
}

func (c *Customer) ID() shared.CustomerID { return c.id }
func (c *Customer) Profile() *Profile { return c.profile }
func (c *Customer) PartyID() shared.PartyID { return c.party }
func (c *Customer) State() State { return c.state }
func (c *Customer) Emotion() Emotion { return c.emotion }
func (c *Customer) Patience() time.Duration { return c.patience }
func (c *Customer) PatienceBudget() time.Duration { return c.patienceBudget }
func (c *Customer) OrderID() shared.OrderID { return c.order }
func (c *Customer) OrdersPlaced() int { return c.ordersPlaced }
func (c *Customer) OrdersServed() int { return c.ordersServed }

// Seat returns the occupied seat, if any
func (c *Customer) Seat() (SeatID, bool) {
	return c.seat, c.seated
}

// DisplayName falls back to the short id when there is no profile
func (c *Customer) DisplayName() string {
	if c.profile != nil && c.profile.DisplayName != "" {
		return c.profile.DisplayName
	}
	return c.id.Short()
}

// AssignSeat moves an entering customer onto a seat and into Ordering
func (c *Customer) AssignSeat(seat SeatID) bool {
	if c.state != StateEntering {
		return false
	}
	c.seat = seat
	c.seated = true
	c.state = StateOrdering
	return true
}

// ReadyToOrder starts the wait for the kitchen to take the order
func (c *Customer) ReadyToOrder() bool {
	if c.state != StateOrdering {
		return false
	}
	c.enterWaiting(StateWaitingOrder)
	return true
}

// SetOrder attaches the placed order and starts waiting for food
func (c *Customer) SetOrder(id shared.OrderID) bool {
	if c.state != StateOrdering && c.state != StateWaitingOrder {
		return false
	}
	c.order = id
	c.ordersPlaced++
	c.enterWaiting(StateWaitingFood)
	return true
}

// ReceiveFood starts eating. The order handle is cleared.
func (c *Customer) ReceiveFood() bool {
	if c.state != StateWaitingFood {
		return false
	}
	c.order = shared.OrderID{}
	c.ordersServed++
	c.eatRemaining = c.eatDuration
	c.state = StateEating
	return true
}

// FinishEating either returns the customer to Ordering for another round
// or reports that the visit is over. Returns true when the customer should leave.
func (c *Customer) FinishEating() bool {
	if c.state != StateEating {
		return false
	}
	if c.profile != nil && c.ordersPlaced < c.profile.OrderLimit() {
		c.state = StateOrdering
		return false
	}
	return true
}

// Tick advances patience while waiting and the meal while eating
func (c *Customer) Tick(dt time.Duration) TickOutcome {
	switch {
	case c.state.IsWaiting():
		c.patience -= dt
		if c.patience <= 0 {
			c.patience = 0
			return TickPatienceExpired
		}
	case c.state == StateEating:
		c.eatRemaining -= dt
		if c.eatRemaining <= 0 {
			c.eatRemaining = 0
			return TickFinishedEating
		}
	}
	return TickNothing
}

// BeginLeaving marks the customer as leaving and detaches the seat and order
// handles, returning the seat to release. Idempotent.
func (c *Customer) BeginLeaving() (SeatID, bool) {
	if c.state == StateLeaving {
		return 0, false
	}
	c.state = StateLeaving
	c.order = shared.OrderID{}
	seat, had := c.seat, c.seated
	c.seat, c.seated = 0, false
	return seat, had
}

// SetEmotion changes the displayed emotion
func (c *Customer) SetEmotion(e Emotion) {
	c.emotion = e
}

// Conversation names the dialogue entry for the current state
func (c *Customer) Conversation() string {
	if c.profile == nil {
		return ""
	}
	conv := c.profile.Conversations
	switch c.state {
	case StateOrdering:
		if c.ordersPlaced == 0 {
			if conv.FirstOrder != "" {
				return conv.FirstOrder
			}
			return conv.Greeting
		}
		return conv.AdditionalOrder
	case StateLeaving:
		return conv.Farewell
	default:
		return ""
	}
}

func (c *Customer) enterWaiting(s State) {
	c.patience = c.patienceBudget
	c.state = s
}
