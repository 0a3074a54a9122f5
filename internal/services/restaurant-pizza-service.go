package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the priced links between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the price, checks that both parents exist and
	// stores the link. The result has its Pizza and Restaurant loaded.
	CreateRestaurantPizza(ctx context.Context, price int, pizzaID, restaurantID uint) (models.RestaurantPizza, error)
	// UpdateRestaurantPizzaPrice changes the price of an existing link
	UpdateRestaurantPizzaPrice(ctx context.Context, id uint, price int) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, price int, pizzaID, restaurantID uint) (models.RestaurantPizza, error) {
	// Price is checked before any lookup so an invalid price wins over unknown ids
	rp, err := models.NewRestaurantPizza(price, pizzaID, restaurantID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	if err := requireID("pizza", pizzaID); err != nil {
		return models.RestaurantPizza{}, err
	}
	if err := requireID("restaurant", restaurantID); err != nil {
		return models.RestaurantPizza{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, pizzaID).Error; err != nil {
			return fmt.Errorf("pizza %d: %w", pizzaID, database.TranslateError(err))
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			return fmt.Errorf("restaurant %d: %w", restaurantID, database.TranslateError(err))
		}

		if err := tx.Create(&rp).Error; err != nil {
			return database.TranslateError(err)
		}
		rp.Pizza = &pizza
		rp.Restaurant = &restaurant
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}

func (s *restaurantPizzaService) UpdateRestaurantPizzaPrice(ctx context.Context, id uint, price int) (models.RestaurantPizza, error) {
	if err := requireID("restaurant pizza", id); err != nil {
		return models.RestaurantPizza{}, err
	}
	var rp models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Pizza").Preload("Restaurant").First(&rp, id).Error; err != nil {
			return fmt.Errorf("restaurant pizza %d: %w", id, database.TranslateError(err))
		}
		if err := rp.SetPrice(price); err != nil {
			return err
		}
		return database.TranslateError(tx.Model(&rp).Omit(clause.Associations).Update("price", rp.Price).Error)
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}
