package scripting

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/mediator"
	"github.com/andrescamacho/sushibar-go/internal/application/serving"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// GameService is the part of the game service dialogue scripts may drive
type GameService interface {
	CreateSpecificOrder(customerID shared.CustomerID, recipeName, requestType string) (*order.Order, error)
	OrderOf(customerID shared.CustomerID) *order.Order
	GoToKitchen(orderID shared.OrderID) error
	SetEmotion(customerID shared.CustomerID, emotion customer.Emotion) bool
	Serve(customerID shared.CustomerID) (serving.Served, bool)
}

// StartCookingCommand sends the cook to the kitchen for a customer's order
type StartCookingCommand struct {
	CustomerID  string // Required
	RecipeName  string // Optional: order this recipe; empty reuses the current order
	RequestType string // Optional: RiceLess, ThickFish, MoreWasabi or SoftPress
}

// StartCookingResponse describes the order being cooked
type StartCookingResponse struct {
	OrderID string
	Recipe  string
	Request string
}

// StartCookingHandler handles the StartCooking command
type StartCookingHandler struct {
	game GameService
}

func NewStartCookingHandler(game GameService) *StartCookingHandler {
	return &StartCookingHandler{game: game}
}

// Handle creates or reuses the order, then switches to the kitchen
func (h *StartCookingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*StartCookingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartCookingCommand")
	}
	customerID, err := parseCustomer(cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	logger := logging.LoggerFromContext(ctx)

	var o *order.Order
	if cmd.RecipeName != "" {
		o, err = h.game.CreateSpecificOrder(customerID, cmd.RecipeName, cmd.RequestType)
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
	} else {
		o = h.game.OrderOf(customerID)
		if o == nil {
			logger.Log(logging.LevelWarn, "Customer has no order to cook", map[string]interface{}{
				"customer_id": customerID.Short(),
			})
			return nil, shared.NewNotFoundError("order", "customer "+customerID.String())
		}
	}

	if err := h.game.GoToKitchen(o.ID()); err != nil {
		return nil, fmt.Errorf("failed to enter kitchen: %w", err)
	}

	logger.Log(logging.LevelInfo, "Started cooking", map[string]interface{}{
		"customer_id": customerID.Short(),
		"recipe":      o.Recipe().Name(),
		"request":     o.Request().String(),
	})
	return &StartCookingResponse{
		OrderID: o.ID().String(),
		Recipe:  o.Recipe().Name(),
		Request: o.Request().String(),
	}, nil
}

// SetEmotionCommand changes the emotion a customer shows
type SetEmotionCommand struct {
	CustomerID string // Required
	Emotion    string // Required: case-insensitive emotion name
}

type SetEmotionResponse struct {
	Emotion customer.Emotion
}

// SetEmotionHandler handles the SetEmotion command
type SetEmotionHandler struct {
	game GameService
}

func NewSetEmotionHandler(game GameService) *SetEmotionHandler {
	return &SetEmotionHandler{game: game}
}

func (h *SetEmotionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SetEmotionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SetEmotionCommand")
	}
	customerID, err := parseCustomer(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	emotion, err := customer.ParseEmotion(cmd.Emotion)
	if err != nil {
		logging.LoggerFromContext(ctx).Log(logging.LevelWarn, "Unknown emotion", map[string]interface{}{
			"emotion": cmd.Emotion,
		})
		return nil, err
	}

	if !h.game.SetEmotion(customerID, emotion) {
		return nil, shared.NewNotFoundError("customer", customerID.String())
	}
	return &SetEmotionResponse{Emotion: emotion}, nil
}

// ServeCustomerCommand hands the plate in hand to a customer
type ServeCustomerCommand struct {
	CustomerID string // Required
}

// ServeCustomerResponse reports the scored outcome. Served is false when
// there was no plate or no order; nothing changes in that case.
type ServeCustomerResponse struct {
	Served   bool
	Result   string
	Quality  float64
	Delta    int
	Reaction string
}

// ServeCustomerHandler handles the ServeCustomer command
type ServeCustomerHandler struct {
	game GameService
}

func NewServeCustomerHandler(game GameService) *ServeCustomerHandler {
	return &ServeCustomerHandler{game: game}
}

func (h *ServeCustomerHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ServeCustomerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ServeCustomerCommand")
	}
	customerID, err := parseCustomer(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	served, ok := h.game.Serve(customerID)
	if !ok {
		logging.LoggerFromContext(ctx).Log(logging.LevelDebug, "Nothing to serve", map[string]interface{}{
			"customer_id": customerID.Short(),
		})
		return &ServeCustomerResponse{}, nil
	}
	return &ServeCustomerResponse{
		Served:   true,
		Result:   served.Result.String(),
		Quality:  served.Quality,
		Delta:    served.Delta,
		Reaction: string(served.Reaction),
	}, nil
}

func parseCustomer(raw string) (shared.CustomerID, error) {
	if raw == "" {
		return shared.CustomerID{}, shared.NewValidationError("customer_id", "is required")
	}
	id, err := shared.ParseCustomerID(raw)
	if err != nil {
		return shared.CustomerID{}, shared.NewValidationError("customer_id", err.Error())
	}
	return id, nil
}
