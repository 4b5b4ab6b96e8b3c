package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/sushibar-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect the effective configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SUSHI_* prefix, plus DATABASE_URL and NATS_URL)
2. Config file (config.yaml)
3. Default values

Example:
  sushibar config show`,
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nUsing default configuration.\n", err)
				cfg = config.Default()
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Sushibar Configuration")
			fmt.Fprintln(out, "======================")

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:               %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:                %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:               %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:               %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(out, "  Database:           %s\n", cfg.Database.Name)
			}

			s := cfg.Service
			fmt.Fprintln(out, "\nService:")
			fmt.Fprintf(out, "  Order time limit:   %s\n", s.OrderTimeLimit)
			fmt.Fprintf(out, "  Custom orders:      %.2f\n", s.CustomOrderProbability)
			fmt.Fprintf(out, "  Spawn interval:     %s (respawn %s)\n", s.SpawnInterval, s.RespawnDelay)
			fmt.Fprintf(out, "  Patience:           %s\n", s.Patience)
			fmt.Fprintf(out, "  Eat duration:       %s\n", s.EatDuration)
			fmt.Fprintf(out, "  Seats:              %d (max active %d, queue %d)\n", s.SeatCount, s.MaxActiveSeats, s.MaxWaitingParties)
			fmt.Fprintf(out, "  Day:                %d\n", s.CurrentDay)

			sim := cfg.Simulation
			fmt.Fprintln(out, "\nSimulation:")
			fmt.Fprintf(out, "  Frames:             %d x %s\n", sim.Frames, sim.FrameDelta)
			fmt.Fprintf(out, "  Realtime:           %t\n", sim.Realtime)
			fmt.Fprintf(out, "  Skill noise:        %.2f\n", sim.SkillNoise)
			fmt.Fprintf(out, "  Cook time:          %s\n", sim.CookTime)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:            %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Listen:             %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nEvents:")
			fmt.Fprintf(out, "  Enabled:            %t\n", cfg.Events.Enabled)
			fmt.Fprintf(out, "  NATS:               %s (prefix %s)\n", maskPassword(cfg.Events.URL), cfg.Events.SubjectPrefix)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:              %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:             %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:             %s\n", cfg.Logging.Output)
			fmt.Fprintf(out, "  Persist:            %t\n", cfg.Logging.Persist)

			return nil
		},
	}
}

// maskPassword hides the password component of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
