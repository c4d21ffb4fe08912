package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/cocktaildb"
	"github.com/five82/cocktaildb/internal/app"
)

// clientRunE adapts a call against the configured client to cobra.
func clientRunE(s *session, call func(context.Context, *cocktaildb.Client, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := s.client()
		if err != nil {
			return err
		}
		return call(cmd.Context(), client, args)
	}
}

func searchCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search drinks by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, args []string) error {
			return s.printer().drinks(c.Search(ctx, strings.Join(args, " ")))
		}),
	}
}

func letterCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "letter <letter>",
		Short: "List drinks whose name starts with a letter",
		Args:  cobra.ExactArgs(1),
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, args []string) error {
			return s.printer().drinks(c.SearchByLetter(ctx, args[0]))
		}),
	}
}

func ingredientCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ingredient <name>",
		Short: "Look up an ingredient by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, args []string) error {
			return s.printer().ingredient(c.SearchIngredient(ctx, strings.Join(args, " ")))
		}),
	}
}

func drinkCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "drink <id>",
		Short: "Look up a drink by id",
		Args:  cobra.ExactArgs(1),
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return s.printer().drink(c.LookupDrink(ctx, id))
		}),
	}
}

func ingredientIDCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ingredient-id <id>",
		Short: "Look up an ingredient by id",
		Args:  cobra.ExactArgs(1),
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return s.printer().ingredient(c.LookupIngredient(ctx, id))
		}),
	}
}

func randomCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random drink",
		Args:  cobra.NoArgs,
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, _ []string) error {
			return s.printer().drink(c.Random(ctx))
		}),
	}
}

func filterCommand(s *session) *cobra.Command {
	var ingredient, alcoholic, category, glass string

	var cmd *cobra.Command
	cmd = &cobra.Command{
		Use:   "filter",
		Short: "List drinks by ingredient, alcoholic flag, category or glass",
		Args:  cobra.NoArgs,
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, _ []string) error {
			// Exactly one flag is set; an explicit empty value still picks its endpoint.
			flags := cmd.Flags()
			var drinks []cocktaildb.Drink
			switch {
			case flags.Changed("ingredient"):
				drinks = c.FilterByIngredient(ctx, ingredient)
			case flags.Changed("alcoholic"):
				drinks = c.FilterByAlcoholic(ctx, alcoholic)
			case flags.Changed("category"):
				drinks = c.FilterByCategory(ctx, category)
			default:
				drinks = c.FilterByGlass(ctx, glass)
			}
			return s.printer().drinks(drinks)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&ingredient, "ingredient", "", "ingredient name, e.g. Gin")
	flags.StringVar(&alcoholic, "alcoholic", "", "alcoholic flag, e.g. Non_Alcoholic")
	flags.StringVar(&category, "category", "", "category, e.g. Cocktail")
	flags.StringVar(&glass, "glass", "", "glass, e.g. Champagne_flute")
	cmd.MarkFlagsMutuallyExclusive("ingredient", "alcoholic", "category", "glass")
	cmd.MarkFlagsOneRequired("ingredient", "alcoholic", "category", "glass")
	return cmd
}

// listKinds maps list arguments to their operation.
var listKinds = map[string]func(*cocktaildb.Client, context.Context) []string{
	"categories":  (*cocktaildb.Client).Categories,
	"glasses":     (*cocktaildb.Client).Glasses,
	"ingredients": (*cocktaildb.Client).Ingredients,
	"alcoholic":   (*cocktaildb.Client).AlcoholicFilters,
}

func listCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:       "list categories|glasses|ingredients|alcoholic",
		Short:     "List the values the filter command accepts",
		ValidArgs: []string{"categories", "glasses", "ingredients", "alcoholic"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: clientRunE(s, func(ctx context.Context, c *cocktaildb.Client, args []string) error {
			return s.printer().list(listKinds[args[0]](c, ctx))
		}),
	}
}

func browseCommand(s *session) *cobra.Command {
	var prefsPath, metricsAddr, logPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse drinks in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				Config:      s.cfg,
				PrefsPath:   prefsPath,
				MetricsAddr: metricsAddr,
				LogPath:     logPath,
			})
		},
	}
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "prefs file (default ~/.config/cocktaildb/prefs.toml)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	cmd.Flags().StringVar(&logPath, "log-file", "", "session log (default ~/.cache/cocktaildb/browse.log)")
	return cmd
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
