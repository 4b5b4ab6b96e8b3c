package shared

import (
	"sync"
	"time"
)

// Clock is an abstraction for time operations, allowing time to be controlled in tests
// and in headless simulations where game time runs faster than wall time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// SimulationClock is a Clock that only moves when the tick loop advances it.
// The runner advances it by the frame delta so event timestamps follow game time.
type SimulationClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulationClock creates a SimulationClock starting at the given time.
// A zero start time begins at the Unix epoch so runs are reproducible.
func NewSimulationClock(start time.Time) *SimulationClock {
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	return &SimulationClock{current: start}
}

// Now returns the simulated current time
func (c *SimulationClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the clock forward by d
func (c *SimulationClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Set jumps the clock to t
func (c *SimulationClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}
