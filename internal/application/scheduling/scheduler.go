package scheduling

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled action
type TimerID uint64

type timer struct {
	id        TimerID
	remaining time.Duration
	label     string
	action    func()
}

// Scheduler runs one-shot actions after a delay measured in simulation time.
// It is driven by Tick from the game loop and never starts goroutines.
type Scheduler struct {
	nextID TimerID
	timers []*timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules action to run once delay has elapsed.
// A non-positive delay fires on the next Tick.
func (s *Scheduler) After(delay time.Duration, label string, action func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, &timer{id: s.nextID, remaining: delay, label: label, action: action})
	return s.nextID
}

// Cancel removes a pending timer. Returns false if it already fired or never existed.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer and returns how many were dropped
func (s *Scheduler) CancelAll() int {
	n := len(s.timers)
	s.timers = nil
	return n
}

// Pending returns the number of timers waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Labels returns the labels of pending timers, soonest first
func (s *Scheduler) Labels() []string {
	sorted := make([]*timer, len(s.timers))
	copy(sorted, s.timers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].remaining < sorted[j].remaining })
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = t.label
	}
	return out
}

// Tick advances every timer and fires those that are due, in scheduling order.
// Actions scheduled while firing wait for the next Tick.
func (s *Scheduler) Tick(dt time.Duration) int {
	if len(s.timers) == 0 {
		return 0
	}

	var due []*timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	s.timers = kept

	for _, t := range due {
		if t.action != nil {
			t.action()
		}
	}
	return len(due)
}
