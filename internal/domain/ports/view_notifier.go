package ports

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// ViewNotifier is the only channel from the simulation core to whatever
// renders it (a game client, metrics, a message bus, an audit journal).
//
// The interface lives in the domain layer so the core never depends on
// presentation:
//
//	┌─────────────────────────┐
//	│  Application Layer      │
//	│  (game service, tick)   │
//	└───────────┬─────────────┘
//	            │ calls
//	            ↓
//	┌─────────────────────────┐
//	│  Domain Ports           │  ← This interface
//	└───────────┬─────────────┘
//	            ↑
//	            │ implements
//	┌─────────────────────────┐
//	│  Adapters               │
//	│  (metrics, nats, gorm)  │
//	└─────────────────────────┘
//
// Implementations are called synchronously from the tick loop and must not block.
type ViewNotifier interface {
	CustomerStateChanged(event CustomerStateChanged)
	OrderPlaced(event OrderPlaced)
	OrderResolved(event OrderResolved)
	SeatOccupancyChanged(event SeatOccupancyChanged)
	ModeChanged(event ModeChanged)
	SeatSelected(event SeatSelected)
}

// CustomerStateChanged drives sprite and animation selection
type CustomerStateChanged struct {
	CustomerID   shared.CustomerID
	PartyID      shared.PartyID
	ProfileID    string
	DisplayName  string
	State        customer.State
	Emotion      customer.Emotion
	Seat         customer.SeatID
	Seated       bool
	Conversation string
	At           time.Time
}

// OrderPlaced is emitted when an order enters the ledger
type OrderPlaced struct {
	OrderID    shared.OrderID
	CustomerID shared.CustomerID
	Recipe     string
	Request    string
	TimeLimit  time.Duration
	At         time.Time
}

// OrderResolved carries a scored outcome. TimedOut marks failures caused by
// the order or the customer running out of time.
type OrderResolved struct {
	OrderID    shared.OrderID
	CustomerID shared.CustomerID
	Recipe     string
	Result     sushi.Result
	Quality    float64
	Delta      int
	Reaction   score.Reaction
	Total      int
	TimedOut   bool
	At         time.Time
}

// SeatOccupancyChanged drives queue and seating visuals
type SeatOccupancyChanged struct {
	Seat       customer.SeatID
	CustomerID shared.CustomerID
	Occupied   bool
	Occupancy  int
	Capacity   int
	Waiting    int
	At         time.Time
}

// ModeChanged covers hall, kitchen, detail view, pause and result transitions
type ModeChanged struct {
	From    game.Mode
	To      game.Mode
	Station game.Station
	At      time.Time
}

// SeatSelected is a pass-through click notification
type SeatSelected struct {
	Seat customer.SeatID
	At   time.Time
}

// NoopNotifier discards every event
type NoopNotifier struct{}

func (NoopNotifier) CustomerStateChanged(CustomerStateChanged) {}
func (NoopNotifier) OrderPlaced(OrderPlaced) {}
func (NoopNotifier) OrderResolved(OrderResolved) {}
func (NoopNotifier) SeatOccupancyChanged(SeatOccupancyChanged) {}
func (NoopNotifier) ModeChanged(ModeChanged) {}
func (NoopNotifier) SeatSelected(SeatSelected) {}

// MultiNotifier fans every event out to each notifier in order
type MultiNotifier []ViewNotifier

// NewMultiNotifier drops nil entries
func NewMultiNotifier(notifiers ...ViewNotifier) MultiNotifier {
	out := make(MultiNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m MultiNotifier) CustomerStateChanged(e CustomerStateChanged) {
	for _, n := range m {
		n.CustomerStateChanged(e)
	}
}

func (m MultiNotifier) OrderPlaced(e OrderPlaced) {
	for _, n := range m {
		n.OrderPlaced(e)
	}
}

func (m MultiNotifier) OrderResolved(e OrderResolved) {
	for _, n := range m {
		n.OrderResolved(e)
	}
}

func (m MultiNotifier) SeatOccupancyChanged(e SeatOccupancyChanged) {
	for _, n := range m {
		n.SeatOccupancyChanged(e)
	}
}

func (m MultiNotifier) ModeChanged(e ModeChanged) {
	for _, n := range m {
		n.ModeChanged(e)
	}
}

func (m MultiNotifier) SeatSelected(e SeatSelected) {
	for _, n := range m {
		n.SeatSelected(e)
	}
}
