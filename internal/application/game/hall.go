package game

import (
	"github.com/andrescamacho/sushibar-go/internal/application/customers"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/serving"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	gamemode "github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// TakeOrder places an order for a seated customer using their profile.
// A customer who already has an order gets that order back.
func (s *Service) TakeOrder(customerID shared.CustomerID) (*order.Order, error) {
	c, err := s.customerForOrder(customerID, "TakeOrder")
	if err != nil {
		return nil, err
	}

	o := s.orders.CreateOrderForCustomer(customerID, c.Profile())
	if o == nil {
		return nil, shared.NewDomainError("no recipe available for order")
	}
	s.customers.AttachOrder(customerID, o.ID())
	return o, nil
}

// CreateSpecificOrder places an order chosen by a script. Only customers
// TakeOrder would accept can order; others get an InvalidStateError and no
// order is created. Unknown recipes return a NotFoundError; an unknown
// request type is dropped.
func (s *Service) CreateSpecificOrder(customerID shared.CustomerID, recipeName, requestType string) (*order.Order, error) {
	c, err := s.customerForOrder(customerID, "CreateSpecificOrder")
	if err != nil {
		return nil, err
	}

	o := s.orders.CreateSpecificOrder(customerID, recipeName, requestType)
	if o == nil {
		return nil, shared.NewNotFoundError("recipe", recipeName)
	}
	if c.State() == customer.StateOrdering || c.State() == customer.StateWaitingOrder {
		s.customers.AttachOrder(customerID, o.ID())
	}
	return o, nil
}

// Serve hands the held plate to a customer. The outcome is scored once; a
// failed dish sends the customer home, anything else starts them eating.
// Serving only happens in the hall.
func (s *Service) Serve(customerID shared.CustomerID) (serving.Served, bool) {
	if s.modes.Mode() != gamemode.ModePlaying {
		s.logger.Log(logging.LevelDebug, "Serve ignored outside the hall", map[string]interface{}{
			"mode": string(s.modes.Mode()),
		})
		return serving.Served{}, false
	}

	served, ok := s.serving.Serve(customerID)
	if !ok {
		return served, false
	}

	s.notifier.OrderResolved(ports.OrderResolved{
		OrderID:    served.Order.ID(),
		CustomerID: customerID,
		Recipe:     served.Order.Recipe().Name(),
		Result:     served.Result,
		Quality:    served.Quality,
		Delta:      served.Delta,
		Reaction:   served.Reaction,
		Total:      s.scores.Total(),
		At:         s.clock.Now(),
	})
	s.logger.Log(logging.LevelInfo, "Dish served", map[string]interface{}{
		"customer_id": customerID.Short(),
		"recipe":      served.Order.Recipe().Name(),
		"result":      served.Result.String(),
		"quality":     served.Quality,
		"delta":       served.Delta,
	})

	if served.Result == sushi.ResultFail {
		s.customers.Leave(customerID, customers.ExitOrderFailed)
	} else {
		s.customers.DeliverFood(customerID)
	}
	return served, true
}

func (s *Service) customerForOrder(id shared.CustomerID, operation string) (*customer.Customer, error) {
	c, ok := s.customers.Get(id)
	if !ok {
		return nil, shared.NewNotFoundError("customer", id.String())
	}
	switch c.State() {
	case customer.StateOrdering, customer.StateWaitingOrder, customer.StateWaitingFood:
		return c, nil
	default:
		return nil, shared.NewInvalidStateError(operation, c.State().String())
	}
}

// OrderOf returns the customer's active order, or nil
func (s *Service) OrderOf(customerID shared.CustomerID) *order.Order {
	return s.orders.FindByCustomer(customerID)
}

// SetEmotion changes the emotion a customer shows. False for unknown customers.
func (s *Service) SetEmotion(customerID shared.CustomerID, emotion customer.Emotion) bool {
	return s.customers.SetEmotion(customerID, emotion)
}
