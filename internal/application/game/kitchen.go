package game

import (
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// GoToKitchen switches to Crafting and starts a craft for the order's recipe
func (s *Service) GoToKitchen(orderID shared.OrderID) error {
	o := s.orders.FindByID(orderID)
	if o == nil {
		s.logger.Log(logging.LevelWarn, "Order not found for kitchen", map[string]interface{}{
			"order_id": orderID.Short(),
		})
		return shared.NewNotFoundError("order", orderID.String())
	}

	from := s.modes.Mode()
	if err := s.modes.EnterKitchen(); err != nil {
		return s.rejected(err)
	}
	s.craft.Start(o.Recipe())
	s.craftingOrder = o.ID()
	s.emitMode(from)
	return nil
}

// ReturnToHall switches back to Playing. An unfinished craft is cancelled;
// a completed plate stays in hand.
func (s *Service) ReturnToHall() error {
	from := s.modes.Mode()
	if err := s.modes.ReturnToHall(); err != nil {
		return s.rejected(err)
	}
	if s.craft.IsCrafting() {
		s.craft.Cancel()
	}
	s.craftingOrder = shared.OrderID{}
	s.emitMode(from)
	return nil
}

// EnterDetailView opens a station close-up while in the kitchen
func (s *Service) EnterDetailView(station gamemode.Station) error {
	from := s.modes.Mode()
	if err := s.modes.EnterDetailView(station); err != nil {
		return s.rejected(err)
	}
	s.emitMode(from)
	return nil
}

// ExitDetailView returns to the kitchen overview
func (s *Service) ExitDetailView() error {
	from := s.modes.Mode()
	if err := s.modes.ExitDetailView(); err != nil {
		return s.rejected(err)
	}
	s.emitMode(from)
	return nil
}

// SetParameter writes a crafting parameter directly. Ignored when no craft is running.
func (s *Service) SetParameter(d sushi.Dimension, value float64) {
	s.craft.Set(d, value)
}

// BeginHold starts time-based capture of one parameter
func (s *Service) BeginHold(d sushi.Dimension) bool {
	return s.craft.BeginHold(d)
}

// ReleaseHold stops capture and writes the clamped value
func (s *Service) ReleaseHold() (float64, bool) {
	return s.craft.ReleaseHold()
}

// CompleteCraft plates the current craft and puts the plate in hand
func (s *Service) CompleteCraft() (*sushi.Plate, error) {
	plate := s.craft.Complete()
	if plate == nil {
		return nil, s.rejected(shared.NewInvalidStateError("CompleteCraft", s.craft.State().String()))
	}
	s.serving.HoldPlate(plate)
	s.craftingOrder = shared.OrderID{}
	s.logger.Log(logging.LevelDebug, "Plate ready", map[string]interface{}{
		"recipe":     plate.Recipe().Name(),
		"parameters": plate.Parameters().String(),
	})
	return plate, nil
}

// CancelCraft abandons the current craft without producing a plate
func (s *Service) CancelCraft() {
	s.craft.Cancel()
	s.craftingOrder = shared.OrderID{}
}

// DiscardPlate throws away the plate in hand
func (s *Service) DiscardPlate() {
	s.serving.ClearPlate()
}
