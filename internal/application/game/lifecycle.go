package game

import (
	"github.com/andrescamacho/sushibar-go/internal/application/customers"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// StartGame opens a new service: the score is reset, old orders dropped and
// the spawn timer started. Allowed from None and Result.
func (s *Service) StartGame() error {
	from := s.modes.Mode()
	if from != gamemode.ModeReady {
		if err := s.modes.Prepare(); err != nil {
			return s.rejected(err)
		}
	}
	if err := s.modes.Start(); err != nil {
		return s.rejected(err)
	}

	// customers left over from a previous service go home unscored
	for _, c := range s.customers.Customers() {
		s.customers.Leave(c.ID(), customers.ExitServiceEnded)
	}
	s.scores.Reset()
	s.orders.Clear()
	s.craft.Cancel()
	s.serving.ClearPlate()
	s.craftingOrder = shared.OrderID{}
	s.elapsed = 0
	s.frames = 0
	s.customers.BeginService()

	s.logger.Log(logging.LevelInfo, "Service started", map[string]interface{}{
		"seats":      s.allocator.Capacity(),
		"day":        s.config.Customers.CurrentDay,
		"time_limit": s.config.Orders.TimeLimit.String(),
	})
	s.emitMode(from)
	return nil
}

// EndGame closes the service and shows the result. Queued parties are sent
// home and pending spawns cancelled.
func (s *Service) EndGame() error {
	from := s.modes.Mode()
	if err := s.modes.End(); err != nil {
		return s.rejected(err)
	}
	s.customers.EndService()
	s.craft.Cancel()
	s.craftingOrder = shared.OrderID{}

	s.logger.Log(logging.LevelInfo, "Service ended", map[string]interface{}{
		"score":     s.scores.Total(),
		"completed": s.scores.Completed(),
		"failed":    s.scores.Failed(),
		"elapsed":   s.elapsed.String(),
	})
	s.emitMode(from)
	return nil
}

// PauseGame freezes simulation time
func (s *Service) PauseGame() error {
	from := s.modes.Mode()
	if err := s.modes.Pause(); err != nil {
		return s.rejected(err)
	}
	s.emitMode(from)
	return nil
}

// ResumeGame returns to the mode that was paused
func (s *Service) ResumeGame() error {
	from := s.modes.Mode()
	if err := s.modes.Resume(); err != nil {
		return s.rejected(err)
	}
	s.emitMode(from)
	return nil
}

// SelectSeat forwards a seat click to presentation
func (s *Service) SelectSeat(seat customer.SeatID) {
	s.notifier.SeatSelected(ports.SeatSelected{Seat: seat, At: s.clock.Now()})
}

// rejected logs an invalid transition at debug level and hands the error back.
// Callers that treat it as a no-op may ignore it.
func (s *Service) rejected(err error) error {
	s.logger.Log(logging.LevelDebug, "Transition ignored", map[string]interface{}{
		"error": err.Error(),
		"mode":  string(s.modes.Mode()),
	})
	return err
}

func (s *Service) emitMode(from gamemode.Mode) {
	s.notifier.ModeChanged(ports.ModeChanged{
		From:    from,
		To:      s.modes.Mode(),
		Station: s.modes.Station(),
		At:      s.clock.Now(),
	})
}

