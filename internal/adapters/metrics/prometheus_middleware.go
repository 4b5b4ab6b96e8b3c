package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/sushibar-go/internal/application/mediator"
)

// PrometheusMiddleware records duration and outcome of every script command
// sent through the mediator. A nil collector makes it a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(mediator.RequestName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}
