package main

import (
	"os"
	"strconv"

	"github.com/Mariha-B/nc-news/internal/config"
	"github.com/Mariha-B/nc-news/internal/database"
	"github.com/Mariha-B/nc-news/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// openFunc connects to the configured database. Tests replace it.
var openFunc = func(cfg *config.Config, log zerolog.Logger) (*database.DB, error) {
	return database.New(&cfg.Database, log)
}

func newRootCmd() *cobra.Command {
	var migrationsPath string

	root := &cobra.Command{
		Use:          "dbctl",
		Short:        "Manage the NC News database schema and development data",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&migrationsPath, "migrations", "",
		"directory holding migration files (defaults to MIGRATIONS_PATH or ./migrations)")

	// withDB loads configuration, connects and hands the pool to fn
	withDB := func(fn func(db *database.DB, cfg *config.Config) error) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if migrationsPath != "" {
			cfg.Migrations.Path = migrationsPath
		}

		log := logger.New(cfg.Log)
		db, err := openFunc(cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(db, cfg)
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *database.DB, cfg *config.Config) error {
				return db.RunMigrations(cfg.Migrations.Path)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *database.DB, cfg *config.Config) error {
				return db.MigrateDown(cfg.Migrations.Path)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "to <version>",
		Short: "Migrate up or down to a specific version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}
			return withDB(func(db *database.DB, cfg *config.Config) error {
				return db.MigrateToVersion(cfg.Migrations.Path, uint(version))
			})
		},
	})

	var seedDir string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Truncate every table and load the development dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeed(seedDir)
			if err != nil {
				return err
			}
			return withDB(func(db *database.DB, cfg *config.Config) error {
				return db.Seed(cmd.Context(), data)
			})
		},
	}
	seedCmd.Flags().StringVar(&seedDir, "dir", "",
		"directory with topics.json, users.json, articles.json and comments.json (defaults to the bundled dataset)")

	root.AddCommand(migrateCmd, seedCmd)
	return root
}

func loadSeed(dir string) (*database.SeedData, error) {
	if dir == "" {
		return database.DevelopmentSeed()
	}
	return database.LoadSeedData(os.DirFS(dir))
}
