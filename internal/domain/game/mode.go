package game

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// Mode is the top-level game state
type Mode string

const (
	ModeNone     Mode = "NONE"
	ModeReady    Mode = "READY"
	ModePlaying  Mode = "PLAYING"
	ModeCrafting Mode = "CRAFTING"
	ModePaused   Mode = "PAUSED"
	ModeResult   Mode = "RESULT"
)

// IsRunning reports whether simulation time advances in this mode
func (m Mode) IsRunning() bool {
	return m == ModePlaying || m == ModeCrafting
}

// Station is a kitchen close-up view
type Station string

const (
	StationNone     Station = "NONE"
	StationRice     Station = "RICE"
	StationCutting  Station = "CUTTING"
	StationAssembly Station = "ASSEMBLY"
)

// ModeMachine manages the game's mode transitions:
//
//	None -> Ready -> Playing <-> Crafting
//	Playing/Crafting -> Paused -> (mode before pause)
//	any -> Result
//
// It also tracks the kitchen detail view, which is only meaningful while Crafting.
//
// Invariants:
// - Resume always returns to the mode that was paused
// - Leaving Crafting closes any open detail view
// - Clock is injected for testability
type ModeMachine struct {
	mode        Mode
	beforePause Mode
	station     Station
	changedAt   time.Time
	clock       shared.Clock
}

// NewModeMachine creates a machine in the None mode
func NewModeMachine(clock shared.Clock) *ModeMachine {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ModeMachine{
		mode:      ModeNone,
		station:   StationNone,
		changedAt: clock.Now(),
		clock:     clock,
	}
}

// Getters

func (m *ModeMachine) Mode() Mode { return m.mode }
func (m *ModeMachine) Station() Station { return m.station }
func (m *ModeMachine) ChangedAt() time.Time { return m.changedAt }

// State transition methods

// Prepare moves None or Result to Ready
func (m *ModeMachine) Prepare() error {
	if m.mode != ModeNone && m.mode != ModeResult {
		return shared.NewInvalidStateError("prepare", string(m.mode))
	}
	m.set(ModeReady)
	return nil
}

// Start moves Ready to Playing
func (m *ModeMachine) Start() error {
	if m.mode != ModeReady {
		return shared.NewInvalidStateError("start", string(m.mode))
	}
	m.set(ModePlaying)
	return nil
}

// EnterKitchen moves Playing to Crafting
func (m *ModeMachine) EnterKitchen() error {
	if m.mode != ModePlaying {
		return shared.NewInvalidStateError("go to kitchen", string(m.mode))
	}
	m.set(ModeCrafting)
	return nil
}

// ReturnToHall moves Crafting to Playing and closes the detail view
func (m *ModeMachine) ReturnToHall() error {
	if m.mode != ModeCrafting {
		return shared.NewInvalidStateError("return to hall", string(m.mode))
	}
	m.station = StationNone
	m.set(ModePlaying)
	return nil
}

// Pause remembers the running mode and moves to Paused
func (m *ModeMachine) Pause() error {
	if !m.mode.IsRunning() {
		return shared.NewInvalidStateError("pause", string(m.mode))
	}
	m.beforePause = m.mode
	m.set(ModePaused)
	return nil
}

// Resume returns to the mode that was paused
func (m *ModeMachine) Resume() error {
	if m.mode != ModePaused {
		return shared.NewInvalidStateError("resume", string(m.mode))
	}
	target := m.beforePause
	if target == "" {
		target = ModePlaying
	}
	m.beforePause = ""
	m.set(target)
	return nil
}

// End moves any mode to Result
func (m *ModeMachine) End() error {
	if m.mode == ModeResult {
		return shared.NewInvalidStateError("end", string(m.mode))
	}
	m.station = StationNone
	m.beforePause = ""
	m.set(ModeResult)
	return nil
}

// EnterDetailView opens a station close-up. Only from the main kitchen view.
func (m *ModeMachine) EnterDetailView(station Station) error {
	if m.mode != ModeCrafting {
		return shared.NewInvalidStateError("enter detail view", string(m.mode))
	}
	if m.station != StationNone || station == StationNone {
		return shared.NewInvalidStateError("enter detail view", "station "+string(m.station))
	}
	m.station = station
	return nil
}

// ExitDetailView returns to the main kitchen view
func (m *ModeMachine) ExitDetailView() error {
	if m.station == StationNone {
		return shared.NewInvalidStateError("exit detail view", "station "+string(m.station))
	}
	m.station = StationNone
	return nil
}

func (m *ModeMachine) set(mode Mode) {
	m.mode = mode
	m.changedAt = m.clock.Now()
}
