package helpers

import (
	"sync"

	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// RecordingNotifier is an in-memory ViewNotifier that keeps every event for assertions
type RecordingNotifier struct {
	mu            sync.Mutex
	CustomerState []ports.CustomerStateChanged
	Placed        []ports.OrderPlaced
	Resolved      []ports.OrderResolved
	Occupancy     []ports.SeatOccupancyChanged
	Modes         []ports.ModeChanged
	Selections    []ports.SeatSelected
}

// NewRecordingNotifier creates an empty recording notifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) CustomerStateChanged(e ports.CustomerStateChanged) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CustomerState = append(r.CustomerState, e)
}

func (r *RecordingNotifier) OrderPlaced(e ports.OrderPlaced) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Placed = append(r.Placed, e)
}

func (r *RecordingNotifier) OrderResolved(e ports.OrderResolved) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Resolved = append(r.Resolved, e)
}

func (r *RecordingNotifier) SeatOccupancyChanged(e ports.SeatOccupancyChanged) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Occupancy = append(r.Occupancy, e)
}

func (r *RecordingNotifier) ModeChanged(e ports.ModeChanged) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Modes = append(r.Modes, e)
}

func (r *RecordingNotifier) SeatSelected(e ports.SeatSelected) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Selections = append(r.Selections, e)
}

// StatesOf returns the sequence of states reported for one customer
func (r *RecordingNotifier) StatesOf(id shared.CustomerID) []customer.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []customer.State
	for _, e := range r.CustomerState {
		if e.CustomerID == id {
			out = append(out, e.State)
		}
	}
	return out
}

// LastResolved returns the most recent order outcome
func (r *RecordingNotifier) LastResolved() (ports.OrderResolved, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Resolved) == 0 {
		return ports.OrderResolved{}, false
	}
	return r.Resolved[len(r.Resolved)-1], true
}

// Reset clears all recorded events
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CustomerState = nil
	r.Placed = nil
	r.Resolved = nil
	r.Occupancy = nil
	r.Modes = nil
	r.Selections = nil
}
