package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/internal/infrastructure/database"
)

// NewEvaluateCommand creates the evaluate command
func NewEvaluateCommand() *cobra.Command {
	var (
		params      sushi.ProcessParameters
		requestName string
		fromDB      bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <recipe>",
		Short: "Score a set of crafting parameters against a recipe",
		Long: `Score crafting parameters against a recipe, optionally shifted by a
custom request, and print the per-dimension breakdown.

Examples:
  sushibar evaluate "Salmon Nigiri"
  sushibar evaluate tuna --fish 0.7 --rice 0.3 --request RiceLess`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := sushi.DefaultCatalog()
			if fromDB {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				db, err := openDatabase(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = database.Close(db) }()
				catalog, _, err = loadMenu(cmd.Context(), db)
				if err != nil {
					return err
				}
			}

			recipe, ok := catalog.FindByName(args[0])
			if !ok {
				return fmt.Errorf("recipe %q not found", args[0])
			}

			var request *sushi.CustomRequest
			if requestName != "" {
				reqType, err := sushi.ParseRequestType(requestName)
				if err != nil {
					return err
				}
				request, err = sushi.NewRequest(reqType)
				if err != nil {
					return err
				}
			}

			quality, result := sushi.Evaluate(recipe, params, request)
			ideal := sushi.EffectiveIdeal(recipe, request)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recipe:   %s\n", recipe)
			if request != nil {
				fmt.Fprintf(out, "Request:  %s\n", request)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %-16s %8s %8s %8s %8s\n", "DIMENSION", "ACTUAL", "TARGET", "TOL", "SCORE")
			for _, d := range sushi.AllDimensions() {
				fmt.Fprintf(out, "  %-16s %8.3f %8.3f %8.3f %8.3f\n",
					d, params.Get(d), ideal.Get(d), recipe.Tolerance().Get(d),
					sushi.DimensionScore(params.Get(d), ideal.Get(d), recipe.Tolerance().Get(d)))
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Quality:  %.3f\n", quality)
			fmt.Fprintf(out, "Result:   %s\n", result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&params.FishThickness, "fish", 0.5, "Fish thickness in [0,1]")
	cmd.Flags().Float64Var(&params.RiceAmount, "rice", 0.5, "Rice amount in [0,1]")
	cmd.Flags().Float64Var(&params.PressDuration, "press", 0.5, "Press duration in [0,1]")
	cmd.Flags().Float64Var(&params.WasabiAmount, "wasabi", 0.5, "Wasabi amount in [0,1]")
	cmd.Flags().StringVar(&requestName, "request", "", "Custom request: RiceLess, ThickFish, MoreWasabi, SoftPress")
	cmd.Flags().BoolVar(&fromDB, "db", false, "Look the recipe up in the database catalog")

	return cmd
}
