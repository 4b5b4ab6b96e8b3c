package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/sushibar-go/internal/adapters/httpapi"
	"github.com/andrescamacho/sushibar-go/internal/adapters/metrics"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/infrastructure/pidfile"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var (
		pidPath string
		persist bool
		frames  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the service in real time behind an HTTP status endpoint",
		Long: `Run the service continuously at wall-clock speed. The HTTP server exposes
/status, /status/orders, /status/customers, /healthz, /runs (with --persist)
and the Prometheus metrics path when metrics are enabled.

Examples:
  sushibar serve
  sushibar serve --persist --pid-file /tmp/sushibar.pid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if pidPath != "" {
				lock := pidfile.New(pidPath)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer func() { _ = lock.Release() }()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sess, err := newSession(ctx, cfg, sessionOptions{persist: persist, realtime: true, frames: frames})
			if err != nil {
				return err
			}
			defer sess.Close()

			var runs httpapi.RunLister
			if sess.runs != nil {
				runs = sess.runs
			}
			handler := httpapi.NewHandler(sess.runner, runs, sess.logger)
			addr := net.JoinHostPort(cfg.Metrics.Host, strconv.Itoa(cfg.Metrics.Port))
			server := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(handler, metrics.GetRegistry(), cfg.Metrics.Path),
				ReadHeaderTimeout: 5 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				sess.logger.Log(logging.LevelInfo, "HTTP server listening", map[string]interface{}{"addr": addr})
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			runCtx, cancelRun := context.WithCancel(ctx)
			defer cancelRun()
			go func() {
				if err, ok := <-serverErr; ok && err != nil {
					sess.logger.Log(logging.LevelError, "HTTP server failed", map[string]interface{}{"error": err.Error()})
					cancelRun()
				}
			}()

			final, runErr := sess.Run(runCtx)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				sess.logger.Log(logging.LevelWarn, "HTTP server shutdown failed", map[string]interface{}{"error": err.Error()})
			}

			printSummary(cmd.OutOrStdout(), sess.runID, sess.seed, final)
			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return fmt.Errorf("service stopped: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pidPath, "pid-file", "", "Refuse to start if another server holds this pid file")
	cmd.Flags().BoolVar(&persist, "persist", false, "Record the run and its order outcomes in the database")
	cmd.Flags().IntVar(&frames, "frames", 0, "Stop after this many frames (0 = until interrupted)")

	return cmd
}
