package main

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, seedCmd.Flags().Lookup("file"))
	assert.NotNil(t, seedCmd.Flags().Lookup("reset"))
}

func TestSetUpLogger(t *testing.T) {
	t.Run("LOG_LEVEL wins when set", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		setUpLogger(&config.Config{LogLevel: "warn", Environment: "development"})
		assert.Equal(t, log.WarnLevel, log.GetLevel())
	})

	t.Run("APP_ENV decides when LOG_LEVEL is unset", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		setUpLogger(&config.Config{LogLevel: "info", Environment: "production"})
		assert.Equal(t, log.ErrorLevel, log.GetLevel())
	})
}

func TestSetupDatabaseSeedsEmptyDatabase(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("DB_URI", "")
	t.Setenv("DB_AUTO_SEED", "")
	t.Setenv("SEED_FILE", "")
	conf, err := config.LoadConfig()
	require.NoError(t, err)

	db, err := setupDatabase(context.Background(), conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	var restaurants int64
	require.NoError(t, db.Table("restaurants").Count(&restaurants).Error)
	assert.EqualValues(t, 3, restaurants)
}

func TestBootstrapLogsOncePerEvent(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("DB_URI", "")
	t.Setenv("DB_AUTO_SEED", "")
	t.Setenv("SEED_FILE", "")
	hook := test.NewLocal(log.StandardLogger())
	t.Cleanup(func() { log.StandardLogger().ReplaceHooks(make(log.LevelHooks)) })
	log.SetLevel(log.InfoLevel)

	conf, err := loadConfig()
	require.NoError(t, err)

	db, err := setupDatabase(context.Background(), conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	_, err = database.SeedIfEmpty(context.Background(), db, database.SeedData{})
	require.NoError(t, err)

	messages := make([]string, 0, len(hook.AllEntries()))
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	// config and database log these through their own loggers
	assert.NotContains(t, messages, "Loading configuration from environment variables")
	assert.NotContains(t, messages, "Database already seeded with initial data")
	assert.Contains(t, messages, "Database was empty, seeded initial data")
}
