package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their pizzas
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// GetRestaurantPizzas retrieves the pizzas served by a restaurant
	GetRestaurantPizzas(ctx context.Context, id uint) ([]models.Pizza, error)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	if err := requireID("restaurant", id); err != nil {
		return models.Restaurant{}, err
	}
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("restaurant %d: %w", id, database.TranslateError(err))
	}
	return restaurant, nil
}

func (s *restaurantService) GetRestaurantPizzas(ctx context.Context, id uint) ([]models.Pizza, error) {
	restaurant, err := s.GetRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return restaurant.Pizzas(), nil
}

// DeleteRestaurant removes the children explicitly before the parent so the
// cascade holds even where the engine does not enforce foreign keys
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	if err := requireID("restaurant", id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return fmt.Errorf("restaurant %d: %w", id, database.TranslateError(err))
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return database.TranslateError(err)
		}
		return database.TranslateError(tx.Delete(&restaurant).Error)
	})
}
