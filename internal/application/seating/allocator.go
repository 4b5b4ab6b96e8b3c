package seating

import (
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// Assignment pairs a seat with the customer placed on it
type Assignment struct {
	Seat       customer.SeatID
	CustomerID shared.CustomerID
}

// AdmitResult tells a caller what happened to an arriving party
type AdmitResult int

const (
	AdmitSeated AdmitResult = iota
	AdmitQueued
	AdmitRejected
)

func (r AdmitResult) String() string {
	switch r {
	case AdmitSeated:
		return "SEATED"
	case AdmitQueued:
		return "QUEUED"
	default:
		return "REJECTED"
	}
}

// SeatedListener is called whenever a party is seated, directly or from the queue
type SeatedListener func(partyID shared.PartyID, assignments []Assignment)

// OccupancyListener is called for every seat that becomes occupied or empty
type OccupancyListener func(seat customer.SeatID, customerID shared.CustomerID, occupied bool)

type waitingParty struct {
	id      shared.PartyID
	members []shared.CustomerID
}

// Allocator is a generic seat pool with a cap on active seats and a FIFO
// waiting queue. Parties claim all their seats at once or none. The queue is
// head-of-line: a later, smaller party never overtakes the head.
type Allocator struct {
	seats     []*customer.SeatSlot
	maxActive int
	maxQueue  int
	queue     []waitingParty

	onSeated    []SeatedListener
	onOccupancy []OccupancyListener
}

// NewAllocator creates seatCount seats. maxActive caps simultaneously occupied
// seats (non-positive means no cap); maxQueue bounds waiting parties
// (non-positive means unbounded).
func NewAllocator(seatCount, maxActive, maxQueue int) *Allocator {
	if seatCount < 0 {
		seatCount = 0
	}
	seats := make([]*customer.SeatSlot, seatCount)
	for i := range seats {
		seats[i] = customer.NewSeatSlot(customer.SeatID(i))
	}
	return &Allocator{seats: seats, maxActive: maxActive, maxQueue: maxQueue}
}

func (a *Allocator) OnSeated(fn SeatedListener) {
	if fn != nil {
		a.onSeated = append(a.onSeated, fn)
	}
}

func (a *Allocator) OnOccupancy(fn OccupancyListener) {
	if fn != nil {
		a.onOccupancy = append(a.onOccupancy, fn)
	}
}

// Capacity is the number of seats that may be occupied at once
func (a *Allocator) Capacity() int {
	if a.maxActive <= 0 || a.maxActive > len(a.seats) {
		return len(a.seats)
	}
	return a.maxActive
}

// Occupancy is the number of occupied seats
func (a *Allocator) Occupancy() int {
	n := 0
	for _, s := range a.seats {
		if !s.IsEmpty() {
			n++
		}
	}
	return n
}

// Available is how many more seats may be claimed right now
func (a *Allocator) Available() int {
	return a.Capacity() - a.Occupancy()
}

func (a *Allocator) QueueLen() int {
	return len(a.queue)
}

// Seats returns a snapshot of every seat
func (a *Allocator) Seats() []Assignment {
	out := make([]Assignment, len(a.seats))
	for i, s := range a.seats {
		out[i] = Assignment{Seat: s.ID(), CustomerID: s.Occupant()}
	}
	return out
}

// SeatOf returns the seat a customer occupies
func (a *Allocator) SeatOf(id shared.CustomerID) (customer.SeatID, bool) {
	for _, s := range a.seats {
		if s.Occupant() == id {
			return s.ID(), true
		}
	}
	return 0, false
}

// Admit seats a party if nobody is waiting and enough seats are free,
// otherwise queues it. Parties larger than Capacity are rejected.
func (a *Allocator) Admit(partyID shared.PartyID, members []shared.CustomerID) AdmitResult {
	if len(members) == 0 || len(members) > a.Capacity() {
		return AdmitRejected
	}
	if len(a.queue) == 0 {
		if _, ok := a.Reserve(partyID, members); ok {
			return AdmitSeated
		}
	}
	if a.Enqueue(partyID, members) {
		return AdmitQueued
	}
	return AdmitRejected
}

// Reserve claims one seat per member atomically. Nothing is claimed on failure.
func (a *Allocator) Reserve(partyID shared.PartyID, members []shared.CustomerID) ([]Assignment, bool) {
	if len(members) == 0 || len(members) > a.Available() {
		return nil, false
	}

	free := make([]*customer.SeatSlot, 0, len(members))
	for _, s := range a.seats {
		if s.IsEmpty() {
			free = append(free, s)
			if len(free) == len(members) {
				break
			}
		}
	}
	if len(free) < len(members) {
		return nil, false
	}

	assignments := make([]Assignment, len(members))
	for i, id := range members {
		free[i].Assign(id)
		assignments[i] = Assignment{Seat: free[i].ID(), CustomerID: id}
	}
	for _, as := range assignments {
		a.emitOccupancy(as.Seat, as.CustomerID, true)
	}
	for _, fn := range a.onSeated {
		fn(partyID, assignments)
	}
	return assignments, true
}

// Enqueue adds a party to the back of the waiting queue
func (a *Allocator) Enqueue(partyID shared.PartyID, members []shared.CustomerID) bool {
	if a.maxQueue > 0 && len(a.queue) >= a.maxQueue {
		return false
	}
	m := make([]shared.CustomerID, len(members))
	copy(m, members)
	a.queue = append(a.queue, waitingParty{id: partyID, members: m})
	return true
}

// Dequeue removes a waiting party, wherever it is in the queue
func (a *Allocator) Dequeue(partyID shared.PartyID) bool {
	for i, w := range a.queue {
		if w.id == partyID {
			a.queue = append(a.queue[:i], a.queue[i+1:]...)
			return true
		}
	}
	return false
}

// ClearQueue drops every waiting party and returns them
func (a *Allocator) ClearQueue() []shared.PartyID {
	ids := make([]shared.PartyID, len(a.queue))
	for i, w := range a.queue {
		ids[i] = w.id
	}
	a.queue = nil
	return ids
}

// Release empties a seat and then seats waiting parties that now fit
func (a *Allocator) Release(seat customer.SeatID) shared.CustomerID {
	if int(seat) < 0 || int(seat) >= len(a.seats) {
		return shared.CustomerID{}
	}
	prev := a.seats[seat].Clear()
	if prev.IsZero() {
		return prev
	}
	a.emitOccupancy(seat, prev, false)
	a.drainQueue()
	return prev
}

func (a *Allocator) drainQueue() {
	for len(a.queue) > 0 {
		head := a.queue[0]
		if len(head.members) > a.Available() {
			return
		}
		a.queue = a.queue[1:]
		a.Reserve(head.id, head.members)
	}
}

func (a *Allocator) emitOccupancy(seat customer.SeatID, id shared.CustomerID, occupied bool) {
	for _, fn := range a.onOccupancy {
		fn(seat, id, occupied)
	}
}
