package events

import (
	"encoding/json"
	"time"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
)

// Subject suffixes, appended to the configured prefix
const (
	SubjectCustomerState = "customer.state"
	SubjectOrderPlaced   = "order.placed"
	SubjectOrderResolved = "order.resolved"
	SubjectSeats         = "seats.occupancy"
	SubjectMode          = "mode.changed"
	SubjectSeatSelected  = "seat.selected"
)

// Notifier publishes every view event as JSON on <prefix>.<subject>
type Notifier struct {
	publisher Publisher
	prefix    string
	logger    logging.ServiceLogger
}

var _ ports.ViewNotifier = (*Notifier)(nil)

func NewNotifier(publisher Publisher, prefix string, logger logging.ServiceLogger) *Notifier {
	return &Notifier{publisher: publisher, prefix: prefix, logger: logging.OrNoOp(logger)}
}

type customerStateEvent struct {
	CustomerID   string    `json:"customer_id"`
	PartyID      string    `json:"party_id"`
	Profile      string    `json:"profile"`
	Name         string    `json:"name"`
	State        string    `json:"state"`
	Emotion      string    `json:"emotion"`
	Seat         *int      `json:"seat,omitempty"`
	Conversation string    `json:"conversation,omitempty"`
	At           time.Time `json:"at"`
}

type orderPlacedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Recipe     string    `json:"recipe"`
	Request    string    `json:"request,omitempty"`
	TimeLimit  float64   `json:"time_limit_seconds"`
	At         time.Time `json:"at"`
}

type orderResolvedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Recipe     string    `json:"recipe"`
	Result     string    `json:"result"`
	Quality    float64   `json:"quality"`
	Delta      int       `json:"delta"`
	Reaction   string    `json:"reaction,omitempty"`
	Total      int       `json:"total"`
	TimedOut   bool      `json:"timed_out"`
	At         time.Time `json:"at"`
}

type seatsEvent struct {
	Seat       int       `json:"seat"`
	CustomerID string    `json:"customer_id,omitempty"`
	Occupied   bool      `json:"occupied"`
	Occupancy  int       `json:"occupancy"`
	Capacity   int       `json:"capacity"`
	Waiting    int       `json:"waiting_parties"`
	At         time.Time `json:"at"`
}

type modeEvent struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	Station string    `json:"station"`
	At      time.Time `json:"at"`
}

type seatSelectedEvent struct {
	Seat int       `json:"seat"`
	At   time.Time `json:"at"`
}

func (n *Notifier) CustomerStateChanged(e ports.CustomerStateChanged) {
	evt := customerStateEvent{
		CustomerID:   e.CustomerID.String(),
		PartyID:      e.PartyID.String(),
		Profile:      e.ProfileID,
		Name:         e.DisplayName,
		State:        e.State.String(),
		Emotion:      string(e.Emotion),
		Conversation: e.Conversation,
		At:           e.At,
	}
	if e.Seated {
		seat := int(e.Seat)
		evt.Seat = &seat
	}
	n.publish(SubjectCustomerState, evt)
}

func (n *Notifier) OrderPlaced(e ports.OrderPlaced) {
	n.publish(SubjectOrderPlaced, orderPlacedEvent{
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		Recipe:     e.Recipe,
		Request:    e.Request,
		TimeLimit:  e.TimeLimit.Seconds(),
		At:         e.At,
	})
}

func (n *Notifier) OrderResolved(e ports.OrderResolved) {
	n.publish(SubjectOrderResolved, orderResolvedEvent{
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		Recipe:     e.Recipe,
		Result:     e.Result.String(),
		Quality:    e.Quality,
		Delta:      e.Delta,
		Reaction:   string(e.Reaction),
		Total:      e.Total,
		TimedOut:   e.TimedOut,
		At:         e.At,
	})
}

func (n *Notifier) SeatOccupancyChanged(e ports.SeatOccupancyChanged) {
	evt := seatsEvent{
		Seat:      int(e.Seat),
		Occupied:  e.Occupied,
		Occupancy: e.Occupancy,
		Capacity:  e.Capacity,
		Waiting:   e.Waiting,
		At:        e.At,
	}
	if !e.CustomerID.IsZero() {
		evt.CustomerID = e.CustomerID.String()
	}
	n.publish(SubjectSeats, evt)
}

func (n *Notifier) ModeChanged(e ports.ModeChanged) {
	n.publish(SubjectMode, modeEvent{
		From:    string(e.From),
		To:      string(e.To),
		Station: string(e.Station),
		At:      e.At,
	})
}

func (n *Notifier) SeatSelected(e ports.SeatSelected) {
	n.publish(SubjectSeatSelected, seatSelectedEvent{Seat: int(e.Seat), At: e.At})
}

// publish drops the event on failure; the tick loop never waits on the bus
func (n *Notifier) publish(subject string, payload interface{}) {
	full := subject
	if n.prefix != "" {
		full = n.prefix + "." + subject
	}
	data, err := json.Marshal(payload)
	if err != nil {
		n.logger.Log(logging.LevelError, "Failed to encode event", map[string]interface{}{
			"subject": full,
			"error":   err.Error(),
		})
		return
	}
	if err := n.publisher.Publish(full, data); err != nil {
		n.logger.Log(logging.LevelWarn, "Failed to publish event", map[string]interface{}{
			"subject": full,
			"error":   err.Error(),
		})
	}
}
