package main

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Seed flags
	seedFile  string
	seedReset bool
)

// rootCmd represents the base command; without a subcommand it serves the API
var rootCmd = &cobra.Command{
	Use:   "pizza-api",
	Short: "Pizza Restaurants API",
	Long: `HTTP/JSON API over restaurants, pizzas and the prices restaurants charge for them.

Commands:
  serve    - Run the HTTP server (default)
  migrate  - Create or update the database schema
  seed     - Load seed data into the database`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

// seedCmd loads seed data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load seed data into the database",
	Long: `Load restaurants, pizzas and restaurant pizzas from a YAML seed file.

Examples:
  pizza-api seed                      # Seed an empty database with the built-in data
  pizza-api seed --file data.yaml     # Seed from a file
  pizza-api seed --reset              # Delete every row, then seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to SEED_FILE, then the built-in data)")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete existing rows before seeding")
}

func runServe(ctx context.Context) error {
	conf, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := setupDatabase(ctx, conf)
	if err != nil {
		return err
	}
	defer database.Close(db)

	router := setupRouter(db, conf)

	// Start the server
	log.Infof("Starting server on %s:%d", conf.Host, conf.Port)
	return router.Run(fmt.Sprintf("%s:%d", conf.Host, conf.Port))
}

func runMigrate() error {
	conf, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := openDatabase(conf)
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Info("Schema is up to date")
	return nil
}

func runSeed(ctx context.Context) error {
	conf, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := openDatabase(conf)
	if err != nil {
		return err
	}
	defer database.Close(db)

	path := seedFile
	if path == "" {
		path = conf.SeedFile
	}
	seed, err := database.LoadSeedFile(path)
	if err != nil {
		return err
	}

	if seedReset {
		if err := database.Reset(ctx, db); err != nil {
			return err
		}
		log.Info("Existing rows deleted")
	}

	seeded, err := database.SeedIfEmpty(ctx, db, seed)
	if err != nil {
		return err
	}
	if !seeded {
		log.Warn("Database already has data, nothing seeded (use --reset to replace it)")
		return nil
	}
	log.WithField("restaurants", len(seed.Restaurants)).Info("Database seeded")
	return nil
}
