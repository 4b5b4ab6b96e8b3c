package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/sushibar-go/internal/application/game"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		frames   int
		seed     uint64
		noise    float64
		day      int
		realtime bool
		persist  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one service with the autopilot and print the result",
		Long: `Run a full service headlessly. The autopilot takes orders, cooks toward
each order's target with the configured skill noise and serves the plate.

Examples:
  sushibar simulate
  sushibar simulate --frames 7200 --seed 7 --noise 0.2
  sushibar simulate --persist --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("frames") {
				cfg.Simulation.Frames = frames
			}
			if flags.Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if flags.Changed("noise") {
				cfg.Simulation.SkillNoise = noise
			}
			if flags.Changed("day") {
				cfg.Service.CurrentDay = day
			}
			if flags.Changed("realtime") {
				cfg.Simulation.Realtime = realtime
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sess, err := newSession(ctx, cfg, sessionOptions{
				persist:  persist,
				realtime: cfg.Simulation.Realtime,
				frames:   cfg.Simulation.Frames,
			})
			if err != nil {
				return err
			}
			defer sess.Close()

			final, err := sess.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(final)
			}
			printSummary(out, sess.runID, sess.seed, final)
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 0, "Number of frames to run (0 = until interrupted)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = from clock)")
	cmd.Flags().Float64Var(&noise, "noise", 0, "Autopilot skill noise in [0,1]")
	cmd.Flags().IntVar(&day, "day", 1, "Service day, gates which customers appear")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Pace frames against the wall clock")
	cmd.Flags().BoolVar(&persist, "persist", false, "Record the run and its order outcomes in the database")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final snapshot as JSON")

	return cmd
}

func printSummary(w io.Writer, runID string, seed uint64, snap game.Snapshot) {
	fmt.Fprintln(w, "Service Summary")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "  Run:              %s\n", runID)
	fmt.Fprintf(w, "  Seed:             %d\n", seed)
	fmt.Fprintf(w, "  Frames:           %d (%s)\n", snap.Frames, snap.Elapsed)
	fmt.Fprintf(w, "  Customers:        %d\n", snap.Spawned)
	fmt.Fprintf(w, "  Orders completed: %d\n", snap.Score.Completed)
	fmt.Fprintf(w, "  Orders failed:    %d\n", snap.Score.Failed)
	fmt.Fprintf(w, "  Average quality:  %.3f\n", snap.Score.AverageQuality)
	fmt.Fprintf(w, "  Score:            %d\n", snap.Score.Total)
}
