package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaRestaurants retrieves the restaurants serving a pizza
	GetPizzaRestaurants(ctx context.Context, id uint) ([]models.Restaurant, error)
	// DeletePizza deletes a pizza and its restaurant pizzas
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaRestaurants(ctx context.Context, id uint) ([]models.Restaurant, error) {
	if err := requireID("pizza", id); err != nil {
		return nil, err
	}
	var pizza models.Pizza
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Restaurant").
		First(&pizza, id).Error
	if err != nil {
		return nil, fmt.Errorf("pizza %d: %w", id, database.TranslateError(err))
	}
	return pizza.Restaurants(), nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	if err := requireID("pizza", id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return fmt.Errorf("pizza %d: %w", id, database.TranslateError(err))
		}
		if err := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return database.TranslateError(err)
		}
		return database.TranslateError(tx.Delete(&pizza).Error)
	})
}
