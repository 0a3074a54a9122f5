package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables,
// including the foreign keys and the price check constraint
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
