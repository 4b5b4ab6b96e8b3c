package simulation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/sushibar-go/internal/application/game"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
)

// RunnerConfig controls how a service run is driven
type RunnerConfig struct {
	// Frames is the number of ticks to run; zero runs until the context ends
	Frames     int
	FrameDelta time.Duration
	// Realtime paces frames against the wall clock
	Realtime bool
	// PublishEvery is how many frames pass between snapshots
	PublishEvery int
}

func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{Frames: 3600, FrameDelta: time.Second / 60, PublishEvery: 30}
}

// Runner owns the tick loop. It is the only goroutine that touches the
// service; everyone else reads the published snapshot.
type Runner struct {
	svc    *game.Service
	pilot  *Autopilot
	config RunnerConfig
	logger logging.ServiceLogger

	latest atomic.Pointer[game.Snapshot]
}

// NewRunner creates a runner. pilot may be nil when something else drives the service.
func NewRunner(svc *game.Service, pilot *Autopilot, config RunnerConfig, logger logging.ServiceLogger) *Runner {
	if config.FrameDelta <= 0 {
		config.FrameDelta = DefaultRunnerConfig().FrameDelta
	}
	if config.PublishEvery <= 0 {
		config.PublishEvery = 1
	}
	r := &Runner{svc: svc, pilot: pilot, config: config, logger: logging.OrNoOp(logger)}
	r.publish()
	return r
}

// Latest returns the most recently published snapshot
func (r *Runner) Latest() *game.Snapshot {
	return r.latest.Load()
}

// Run starts the service, ticks it and ends it. The final snapshot is
// returned even when ctx is cancelled part way through.
func (r *Runner) Run(ctx context.Context) (game.Snapshot, error) {
	if err := r.svc.StartGame(); err != nil {
		return game.Snapshot{}, fmt.Errorf("failed to start service: %w", err)
	}

	var limiter *rate.Limiter
	if r.config.Realtime {
		limiter = rate.NewLimiter(rate.Every(r.config.FrameDelta), 1)
	}

	r.logger.Log(logging.LevelInfo, "Simulation started", map[string]interface{}{
		"frames":      r.config.Frames,
		"frame_delta": r.config.FrameDelta.String(),
		"realtime":    r.config.Realtime,
	})

	runErr := r.loop(ctx, limiter)

	if err := r.svc.EndGame(); err != nil {
		r.logger.Log(logging.LevelWarn, "Failed to end service", map[string]interface{}{"error": err.Error()})
	}
	final := r.publish()

	r.logger.Log(logging.LevelInfo, "Simulation finished", map[string]interface{}{
		"frames":    final.Frames,
		"score":     final.Score.Total,
		"completed": final.Score.Completed,
		"failed":    final.Score.Failed,
	})
	return *final, runErr
}

func (r *Runner) loop(ctx context.Context, limiter *rate.Limiter) error {
	dt := r.config.FrameDelta
	for frame := 0; r.config.Frames <= 0 || frame < r.config.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		}

		if r.pilot != nil {
			r.pilot.Step(r.svc, dt)
		}
		r.svc.Tick(dt)

		if (frame+1)%r.config.PublishEvery == 0 {
			r.publish()
		}
	}
	return nil
}

func (r *Runner) publish() *game.Snapshot {
	snap := r.svc.Snapshot()
	r.latest.Store(&snap)
	return &snap
}
