package crafting

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/pkg/utils"
)

// State of a crafting session. Completed and Cancelled are reported by the
// last outcome; the session itself returns to Idle immediately.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateCompleted:
		return "COMPLETED"
	case StateCancelled:
		return "CANCELLED"
	default:
		return "IDLE"
	}
}

// DefaultStartValue is applied to every dimension when a craft starts
const DefaultStartValue = 0.5

// Session captures operator input into ProcessParameters.
// Every call made while Idle is ignored.
type Session struct {
	defaults sushi.ProcessParameters
	recipe   *sushi.Recipe
	working  sushi.ProcessParameters
	active   bool
	last     State

	strategy   CaptureStrategy
	holding    bool
	holdTarget sushi.Dimension
}

// NewSession creates an idle session. strategy may be nil when only discrete setters are used.
func NewSession(defaults sushi.ProcessParameters, strategy CaptureStrategy) *Session {
	return &Session{defaults: defaults, strategy: strategy}
}

// NewDefaultSession uses 0.5 defaults and a one-unit-per-second linear hold
func NewDefaultSession() *Session {
	return NewSession(sushi.UniformParameters(DefaultStartValue), NewLinearHold(1))
}

// Start begins crafting recipe. A nil recipe is rejected.
func (s *Session) Start(recipe *sushi.Recipe) bool {
	if recipe == nil {
		return false
	}
	s.recipe = recipe
	s.working = s.defaults.Clamped()
	s.active = true
	s.holding = false
	return true
}

func (s *Session) IsCrafting() bool { return s.active }
func (s *Session) Recipe() *sushi.Recipe { return s.recipe }
func (s *Session) Parameters() sushi.ProcessParameters { return s.working }
func (s *Session) IsHolding() bool { return s.holding }

// State returns InProgress while crafting, otherwise the last outcome
func (s *Session) State() State {
	if s.active {
		return StateInProgress
	}
	return s.last
}

// Set writes one dimension, clamped to [0, 1]
func (s *Session) Set(d sushi.Dimension, value float64) {
	if !s.active {
		return
	}
	s.working = s.working.With(d, utils.Clamp01(value))
}

func (s *Session) SetFishThickness(v float64) { s.Set(sushi.DimensionFishThickness, v) }
func (s *Session) SetRiceAmount(v float64) { s.Set(sushi.DimensionRiceAmount, v) }
func (s *Session) SetPressDuration(v float64) { s.Set(sushi.DimensionPressDuration, v) }
func (s *Session) SetWasabiAmount(v float64) { s.Set(sushi.DimensionWasabiAmount, v) }

// SetStrategy swaps the capture strategy. Ignored while a hold is in progress.
func (s *Session) SetStrategy(strategy CaptureStrategy) {
	if s.holding {
		return
	}
	s.strategy = strategy
}

// BeginHold starts time-based capture for d. One dimension at a time.
func (s *Session) BeginHold(d sushi.Dimension) bool {
	if !s.active || s.holding || s.strategy == nil {
		return false
	}
	s.strategy.Start()
	s.holding = true
	s.holdTarget = d
	return true
}

// Tick advances the held capture
func (s *Session) Tick(dt time.Duration) {
	if !s.active || !s.holding {
		return
	}
	s.strategy.Advance(dt)
}

// HeldValue returns the unclamped value of the current hold
func (s *Session) HeldValue() float64 {
	if !s.holding {
		return 0
	}
	return s.strategy.Value()
}

// ReleaseHold freezes the held value into its dimension
func (s *Session) ReleaseHold() (float64, bool) {
	if !s.active || !s.holding {
		return 0, false
	}
	s.holding = false
	v := utils.Clamp01(s.strategy.Value())
	s.working = s.working.With(s.holdTarget, v)
	return v, true
}

// Complete captures a copy of the working parameters into a plate and returns to Idle.
// Returns nil when not crafting.
func (s *Session) Complete() *sushi.Plate {
	if !s.active || s.recipe == nil {
		return nil
	}
	plate := sushi.NewPlate(s.recipe, s.working)
	s.reset(StateCompleted)
	return plate
}

// Cancel discards the craft without producing a plate
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.reset(StateCancelled)
}

func (s *Session) reset(outcome State) {
	s.active = false
	s.holding = false
	s.recipe = nil
	s.working = sushi.ProcessParameters{}
	s.last = outcome
}
