package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture holds the rows created by setupTestDB
type fixture struct {
	karens  models.Restaurant
	sanjays models.Restaurant
	emma    models.Pizza
	geri    models.Pizza
}

// setupTestDB returns an in-memory database holding two restaurants, two pizzas
// and three restaurant pizzas: karens-emma, karens-geri and sanjays-emma
func setupTestDB(t *testing.T) (*gorm.DB, fixture) {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	f := fixture{
		karens:  models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"},
		sanjays: models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"},
		emma:    models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		geri:    models.Pizza{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&f.karens).Error)
	require.NoError(t, db.Create(&f.sanjays).Error)
	require.NoError(t, db.Create(&f.emma).Error)
	require.NoError(t, db.Create(&f.geri).Error)

	for _, link := range []struct {
		price        int
		pizzaID      uint
		restaurantID uint
	}{
		{1, f.emma.ID, f.karens.ID},
		{2, f.geri.ID, f.karens.ID},
		{3, f.emma.ID, f.sanjays.ID},
	} {
		rp, err := models.NewRestaurantPizza(link.price, link.pizzaID, link.restaurantID)
		require.NoError(t, err)
		require.NoError(t, db.Create(&rp).Error)
	}
	return db, f
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	var count int64
	q := db.Model(&models.RestaurantPizza{})
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}

var ctx = context.Background()
