package scripting

import (
	"context"
	"fmt"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/mediator"
)

// RegisterHandlers wires every scripting command to the game service
func RegisterHandlers(m mediator.Mediator, game GameService) error {
	if err := mediator.RegisterHandler[*StartCookingCommand](m, NewStartCookingHandler(game)); err != nil {
		return fmt.Errorf("failed to register StartCooking handler: %w", err)
	}
	if err := mediator.RegisterHandler[*SetEmotionCommand](m, NewSetEmotionHandler(game)); err != nil {
		return fmt.Errorf("failed to register SetEmotion handler: %w", err)
	}
	if err := mediator.RegisterHandler[*ServeCustomerCommand](m, NewServeCustomerHandler(game)); err != nil {
		return fmt.Errorf("failed to register ServeCustomer handler: %w", err)
	}
	return nil
}

// LoggerMiddleware injects logger into the context of every command and logs
// commands that fail. Scripts ignore those failures, so the log is the only
// trace left of them.
func LoggerMiddleware(logger logging.ServiceLogger) mediator.Middleware {
	logger = logging.OrNoOp(logger)
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		ctx = logging.WithLogger(ctx, logger)
		response, err := next(ctx, request)
		if err != nil {
			logger.Log(logging.LevelWarn, "Script command failed", map[string]interface{}{
				"command": mediator.RequestName(request),
				"error":   err.Error(),
			})
		}
		return response, err
	}
}

// NewScriptMediator builds a mediator with the scripting handlers and logger installed
func NewScriptMediator(game GameService, logger logging.ServiceLogger) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	m.Use(LoggerMiddleware(logger))
	if err := RegisterHandlers(m, game); err != nil {
		return nil, err
	}
	return m, nil
}
