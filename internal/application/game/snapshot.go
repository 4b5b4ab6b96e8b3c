package game

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// Snapshot is an immutable copy of the service state for readers outside
// the tick loop
type Snapshot struct {
	Mode      string         `json:"mode"`
	Station   string         `json:"station"`
	Elapsed   time.Duration  `json:"elapsed"`
	Frames    int            `json:"frames"`
	TakenAt   time.Time      `json:"taken_at"`
	Score     ScoreView      `json:"score"`
	Seats     SeatsView      `json:"seats"`
	Customers []CustomerView `json:"customers"`
	Orders    []OrderView    `json:"orders"`
	Kitchen   KitchenView    `json:"kitchen"`
	Spawned   int            `json:"spawned"`
	Timers    []string       `json:"timers"`
}

type ScoreView struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Failed         int     `json:"failed"`
	AverageQuality float64 `json:"average_quality"`
}

type SeatsView struct {
	Capacity int `json:"capacity"`
	Occupied int `json:"occupied"`
	Waiting  int `json:"waiting_parties"`
}

type CustomerView struct {
	ID       string        `json:"id"`
	Party    string        `json:"party"`
	Profile  string        `json:"profile"`
	Name     string        `json:"name"`
	State    string        `json:"state"`
	Emotion  string        `json:"emotion"`
	Seat     int           `json:"seat"`
	Patience time.Duration `json:"patience"`
}

type OrderView struct {
	ID        string        `json:"id"`
	Customer  string        `json:"customer"`
	Recipe    string        `json:"recipe"`
	Request   string        `json:"request,omitempty"`
	Remaining time.Duration `json:"remaining"`
}

type KitchenView struct {
	Crafting   bool                    `json:"crafting"`
	Recipe     string                  `json:"recipe,omitempty"`
	Parameters sushi.ProcessParameters `json:"parameters"`
	Holding    bool                    `json:"holding"`
	HeldPlate  string                  `json:"held_plate,omitempty"`
}

// Snapshot copies the current state. Seat is -1 for customers still queued.
func (s *Service) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:    string(s.modes.Mode()),
		Station: string(s.modes.Station()),
		Elapsed: s.elapsed,
		Frames:  s.frames,
		TakenAt: s.clock.Now(),
		Score: ScoreView{
			Total:          s.scores.Total(),
			Completed:      s.scores.Completed(),
			Failed:         s.scores.Failed(),
			AverageQuality: s.scores.Average(),
		},
		Seats: SeatsView{
			Capacity: s.allocator.Capacity(),
			Occupied: s.allocator.Occupancy(),
			Waiting:  s.allocator.QueueLen(),
		},
		Spawned: s.customers.SpawnedTotal(),
		Timers:  s.scheduler.Labels(),
	}

	for _, c := range s.customers.Customers() {
		seat := -1
		if id, ok := c.Seat(); ok {
			seat = int(id)
		}
		profileID := ""
		if c.Profile() != nil {
			profileID = c.Profile().ID
		}
		snap.Customers = append(snap.Customers, CustomerView{
			ID:       c.ID().String(),
			Party:    c.PartyID().String(),
			Profile:  profileID,
			Name:     c.DisplayName(),
			State:    c.State().String(),
			Emotion:  string(c.Emotion()),
			Seat:     seat,
			Patience: c.Patience(),
		})
	}

	for _, o := range s.orders.Active() {
		snap.Orders = append(snap.Orders, OrderView{
			ID:        o.ID().String(),
			Customer:  o.Owner().String(),
			Recipe:    o.Recipe().Name(),
			Request:   o.Request().String(),
			Remaining: o.Remaining(),
		})
	}

	snap.Kitchen = KitchenView{
		Crafting:   s.craft.IsCrafting(),
		Parameters: s.craft.Parameters(),
		Holding:    s.craft.IsHolding(),
	}
	if r := s.craft.Recipe(); r != nil && s.craft.IsCrafting() {
		snap.Kitchen.Recipe = r.Name()
	}
	if plate := s.serving.Held(); plate != nil {
		snap.Kitchen.HeldPlate = plate.Recipe().Name()
	}
	return snap
}
