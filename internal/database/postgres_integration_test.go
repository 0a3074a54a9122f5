//go:build integration
// +build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupPostgres starts a disposable PostgreSQL container and returns a migrated connection
func setupPostgres(t *testing.T) *gorm.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pizzas"),
		postgres.WithUsername("pizza"),
		postgres.WithPassword("pizza"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := InitDatabase(DatabaseConfig{Driver: "postgres", URL: connStr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	return db
}

func TestPostgresConstraints(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	seed, err := LoadSeedFile("")
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, db, seed))

	var restaurant models.Restaurant
	require.NoError(t, db.Where("name = ?", "Karen's Pizza Shack").First(&restaurant).Error)
	var pizza models.Pizza
	require.NoError(t, db.Where("name = ?", "Emma").First(&pizza).Error)

	t.Run("check constraint rejects price", func(t *testing.T) {
		rp := models.RestaurantPizza{Price: 31, PizzaID: pizza.ID, RestaurantID: restaurant.ID}
		err := db.Session(&gorm.Session{SkipHooks: true}).Create(&rp).Error
		require.Error(t, err)
		assert.True(t, IsConstraintViolation(err))
	})

	t.Run("foreign key rejects missing pizza", func(t *testing.T) {
		rp := models.RestaurantPizza{Price: 5, PizzaID: 424242, RestaurantID: restaurant.ID}
		err := db.Create(&rp).Error
		require.Error(t, err)
		assert.ErrorIs(t, TranslateError(err), models.ErrConstraintViolation)
	})

	t.Run("deleting a restaurant cascades", func(t *testing.T) {
		require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

		var count int64
		require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}
