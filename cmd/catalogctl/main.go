// Command catalogctl exports the bundled sample catalog and seeds Postgres
// with catalog files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"menu-kart/internal/catalog"
	"menu-kart/internal/config"
	"menu-kart/internal/database"
	"menu-kart/internal/model"
	"menu-kart/internal/repository"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Manage menu-kart restaurant catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newExportCmd(), newSeedCmd(), newPingCmd())
	return root
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the bundled sample catalog to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurants := catalog.SampleRestaurants()
			if err := catalog.WriteFile(out, restaurants); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d restaurants to %s\n", len(restaurants), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", catalog.DefaultFileSetConfig().FilePaths[0], "output path; gzipped when it ends in .gz")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the catalog schema and load restaurants into Postgres",
		Long: "Loads restaurants from --file (repeatable) or the bundled sample catalog " +
			"and replaces their stored definitions. Database settings come from DB_* variables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			restaurants, err := loadRestaurants(ctx, files, logger)
			if err != nil {
				return err
			}

			pool, err := database.NewPool(ctx, *cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := repository.NewCatalogRepository(pool, logger)
			if err := repo.Migrate(ctx); err != nil {
				return err
			}
			if err := repo.Seed(ctx, restaurants); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d restaurants into %s\n", len(restaurants), cfg.Database)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "catalog file to load (repeatable)")
	return cmd
}

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the Postgres connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			pool, err := database.NewPool(cmd.Context(), *cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			var name string
			if err := pool.QueryRow(cmd.Context(), "SELECT current_database()").Scan(&name); err != nil {
				return fmt.Errorf("query failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "connected to database %s\n", name)
			return nil
		},
	}
}

func loadConfig() (*config.DatabaseConfig, zerolog.Logger, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})
	return cfg, logger, nil
}

func loadRestaurants(ctx context.Context, files []string, logger zerolog.Logger) ([]model.Restaurant, error) {
	if len(files) == 0 {
		return catalog.SampleRestaurants(), nil
	}

	provider, err := catalog.NewFileSetProvider(ctx, &catalog.FileSetConfig{FilePaths: files}, catalog.NewFileLoader(logger), logger)
	if err != nil {
		return nil, err
	}
	return provider.ListRestaurants(ctx)
}
