package main

import (
	"context"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap runs the steps shared by every command: environment, logger and configuration
func bootstrap() (*config.Config, error) {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// Initialize logger
	setUpLogger(conf)
	return conf, nil
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter.
// LOG_LEVEL wins when it parses, otherwise the level follows APP_ENV
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil || os.Getenv("LOG_LEVEL") == "" {
		level = config.LevelForEnvironment(conf.Environment)
	}
	log.SetLevel(level)
	database.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() (*config.Config, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return conf, nil
}

// setupDatabase opens the database, migrates the schema and seeds it when it is empty and AutoSeed is on
func setupDatabase(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	db, err := openDatabase(conf)
	if err != nil {
		return nil, err
	}

	if !conf.AutoSeed {
		log.Info("Automatic seeding disabled")
		return db, nil
	}

	seed, err := database.LoadSeedFile(conf.SeedFile)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	seeded, err := database.SeedIfEmpty(ctx, db, seed)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	if seeded {
		log.Info("Database was empty, seeded initial data")
	}
	return db, nil
}

// openDatabase connects and migrates the schema
func openDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter(db *gorm.DB, conf *config.Config) *gin.Engine {
	return routes.NewRouter(db, routes.Options{
		Logger:         log.StandardLogger(),
		AllowedOrigins: conf.AllowedOrigins,
	})
}
