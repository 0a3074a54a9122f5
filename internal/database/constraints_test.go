package database

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPair(t *testing.T, db *gorm.DB) (models.Restaurant, models.Pizza) {
	restaurant := models.Restaurant{Name: "Kiki's Pizza", Address: "address3"}
	pizza := models.Pizza{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)
	return restaurant, pizza
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func TestCheckConstraintRejectsPriceWhenHooksAreSkipped(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := createPair(t, db)

	for _, price := range []int{0, 31} {
		rp := models.RestaurantPizza{Price: price, PizzaID: pizza.ID, RestaurantID: restaurant.ID}
		err := db.Session(&gorm.Session{SkipHooks: true}).Create(&rp).Error

		require.Error(t, err, "price %d", price)
		assert.True(t, IsConstraintViolation(err), "price %d: %v", price, err)
	}
	assert.Zero(t, countRestaurantPizzas(t, db))
}

func TestBeforeSaveHookRejectsPrice(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := createPair(t, db)

	err := db.Create(&models.RestaurantPizza{Price: 35, PizzaID: pizza.ID, RestaurantID: restaurant.ID}).Error
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Zero(t, countRestaurantPizzas(t, db))
}

func TestForeignKeyRejectsMissingParent(t *testing.T) {
	db := setupTestDB(t)
	restaurant, _ := createPair(t, db)

	err := db.Create(&models.RestaurantPizza{Price: 5, PizzaID: 999, RestaurantID: restaurant.ID}).Error
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err))
	assert.ErrorIs(t, TranslateError(err), models.ErrConstraintViolation)
}

func TestNativeCascadeOnParentDelete(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := createPair(t, db)
	other := models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"}
	require.NoError(t, db.Create(&other).Error)

	for _, r := range []models.Restaurant{restaurant, other} {
		rp, err := models.NewRestaurantPizza(10, pizza.ID, r.ID)
		require.NoError(t, err)
		require.NoError(t, db.Create(&rp).Error)
	}
	require.EqualValues(t, 2, countRestaurantPizzas(t, db))

	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)
	assert.EqualValues(t, 1, countRestaurantPizzas(t, db))

	require.NoError(t, db.Exec("DELETE FROM pizzas WHERE id = ?", pizza.ID).Error)
	assert.Zero(t, countRestaurantPizzas(t, db))
}
