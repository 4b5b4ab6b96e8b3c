package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/infrastructure/database"
)

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	var (
		level  string
		limit  int
		offset int
		since  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "logs [run-id]",
		Short: "Show recorded runs or the persisted log of one run",
		Long: `Without arguments, list recent runs. With a run id, print its persisted
log entries, newest first. Runs are recorded with --persist; log entries
need logging.persist enabled.

Examples:
  sushibar logs
  sushibar logs 2f1c... --level ERROR --limit 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			if len(args) == 0 {
				runs, err := persistence.NewGormRunRepository(db).ListRecent(ctx, limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				fmt.Fprintln(w, "RUN\tSTARTED\tSCORE\tDONE\tFAILED\tQUALITY")
				for _, r := range runs {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.3f\n",
						r.ID, r.StartedAt.Format(time.RFC3339), r.Score, r.Completed, r.Failed, r.AverageQuality)
				}
				return nil
			}

			var levelFilter *string
			if level != "" {
				levelFilter = &level
			}
			var sinceFilter *time.Time
			if since > 0 {
				t := time.Now().Add(-since)
				sinceFilter = &t
			}

			repo := persistence.NewGormServiceLogRepository(db, nil, 0)
			entries, err := repo.GetLogs(ctx, args[0], limit, offset, levelFilter, sinceFilter)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s", e.Timestamp.Format(time.RFC3339), e.Level, e.Message)
				for k, v := range e.Metadata {
					fmt.Fprintf(w, " %s=%v", k, v)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "Only entries at this level (DEBUG, INFO, WARNING, ERROR)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of rows")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rows to skip")
	cmd.Flags().DurationVar(&since, "since", 0, "Only entries newer than this (e.g. 1h)")

	return cmd
}
