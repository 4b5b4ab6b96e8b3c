package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/sushibar-go/internal/adapters/catalogjson"
	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/internal/infrastructure/database"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the recipe and customer profile catalog",
		Long: `Manage the recipes and customer profiles stored in the database.
Services fall back to the built-in menu while the tables are empty.

Examples:
  sushibar catalog list
  sushibar catalog seed
  sushibar catalog import menu.json`,
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogSeedCommand())
	cmd.AddCommand(newCatalogImportCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes and customer profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, profiles := sushi.DefaultCatalog(), customer.DefaultProfiles()
			if !builtin {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				db, err := openDatabase(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = database.Close(db) }()
				catalog, profiles, err = loadMenu(cmd.Context(), db)
				if err != nil {
					return err
				}
			}
			printCatalog(cmd.OutOrStdout(), catalog, profiles)
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "Show the built-in menu without touching the database")
	return cmd
}

func newCatalogSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in recipes and profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle := &catalogjson.Bundle{
				Recipes:  sushi.DefaultCatalog().All(),
				Profiles: customer.DefaultProfiles(),
			}
			return saveBundle(cmd, bundle)
		},
	}
}

func newCatalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import recipes and profiles from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			bundle, err := catalogjson.Parse(doc, sushi.DefaultCatalog())
			if err != nil {
				return err
			}
			return saveBundle(cmd, bundle)
		},
	}
}

func saveBundle(cmd *cobra.Command, bundle *catalogjson.Bundle) error {
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
	recipes := persistence.NewGormRecipeRepository(db)
	for _, r := range bundle.Recipes {
		if err := recipes.Save(ctx, r); err != nil {
			return err
		}
	}
	profiles := persistence.NewGormProfileRepository(db)
	for _, p := range bundle.Profiles {
		if err := profiles.Save(ctx, p); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d recipes and %d profiles\n", len(bundle.Recipes), len(bundle.Profiles))
	return nil
}

func printCatalog(out io.Writer, catalog *sushi.Catalog, profiles []*customer.Profile) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECIPE\tTYPE\tBASE\tIDEAL")
	for _, r := range catalog.All() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Name(), r.SushiType(), r.BaseScore(), r.Ideal())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PROFILE\tTYPE\tDAYS\tWEIGHT\tPARTY\tPRESETS")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%d-%d\t%.1f\t%d\t%d\n",
			p.ID, p.Type, p.MinDay, p.MaxDay, p.SpawnWeight, p.EffectivePartySize(), len(p.OrderPresets))
	}
	_ = w.Flush()
}
