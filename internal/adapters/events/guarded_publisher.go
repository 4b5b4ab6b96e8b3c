package events

import (
	"errors"
	"sync"
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// ErrBusUnavailable is returned while the breaker is open
var ErrBusUnavailable = errors.New("event bus unavailable")

// BreakerState of a GuardedPublisher
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

// GuardedPublisher stops publishing after maxFailures consecutive errors and
// probes the bus again once cooldown has passed on the given clock. The
// simulation clock keeps this deterministic under test.
type GuardedPublisher struct {
	inner       Publisher
	maxFailures int
	cooldown    time.Duration
	clock       shared.Clock

	mu          sync.Mutex
	state       BreakerState
	failures    int
	lastFailure time.Time
}

// NewGuardedPublisher wraps inner. If clock is nil, uses RealClock.
func NewGuardedPublisher(inner Publisher, maxFailures int, cooldown time.Duration, clock shared.Clock) *GuardedPublisher {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &GuardedPublisher{inner: inner, maxFailures: maxFailures, cooldown: cooldown, clock: clock}
}

func (g *GuardedPublisher) Publish(subject string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == BreakerOpen {
		if g.clock.Now().Sub(g.lastFailure) < g.cooldown {
			return ErrBusUnavailable
		}
		g.state = BreakerHalfOpen
	}

	if err := g.inner.Publish(subject, data); err != nil {
		g.failures++
		g.lastFailure = g.clock.Now()
		if g.state == BreakerHalfOpen || g.failures >= g.maxFailures {
			g.state = BreakerOpen
		}
		return err
	}

	g.failures = 0
	g.state = BreakerClosed
	return nil
}

// State returns the current breaker state
func (g *GuardedPublisher) State() BreakerState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
