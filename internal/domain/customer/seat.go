package customer

import "github.com/andrescamacho/sushibar-go/internal/domain/shared"

// SeatID is the fixed index of a seat
type SeatID int

// SeatSlot holds at most one customer
type SeatSlot struct {
	id       SeatID
	occupant shared.CustomerID
}

func NewSeatSlot(id SeatID) *SeatSlot {
	return &SeatSlot{id: id}
}

func (s *SeatSlot) ID() SeatID { return s.id }
func (s *SeatSlot) IsEmpty() bool { return s.occupant.IsZero() }
func (s *SeatSlot) Occupant() shared.CustomerID { return s.occupant }

// Assign seats a customer. False if the seat is taken.
func (s *SeatSlot) Assign(id shared.CustomerID) bool {
	if !s.IsEmpty() || id.IsZero() {
		return false
	}
	s.occupant = id
	return true
}

// Clear empties the seat and returns who was there
func (s *SeatSlot) Clear() shared.CustomerID {
	prev := s.occupant
	s.occupant = shared.CustomerID{}
	return prev
}
