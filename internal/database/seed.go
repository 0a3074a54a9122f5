package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedData is the content of a seed file. Restaurant pizzas reference
// restaurants and pizzas of the same file by name.
type SeedData struct {
	Restaurants      []SeedRestaurant      `yaml:"restaurants"`
	Pizzas           []SeedPizza           `yaml:"pizzas"`
	RestaurantPizzas []SeedRestaurantPizza `yaml:"restaurant_pizzas"`
}

type SeedRestaurant struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type SeedPizza struct {
	Name        string `yaml:"name"`
	Ingredients string `yaml:"ingredients"`
}

type SeedRestaurantPizza struct {
	Restaurant string `yaml:"restaurant"`
	Pizza      string `yaml:"pizza"`
	Price      int    `yaml:"price"`
}

// LoadSeedFile reads seed data from a YAML file, or the embedded default when path is empty
func LoadSeedFile(path string) (SeedData, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return SeedData{}, fmt.Errorf("read seed file: %w", err)
		}
	}
	return ParseSeed(data)
}

// ParseSeed decodes YAML seed data
func ParseSeed(data []byte) (SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return seed, nil
}

// IsEmpty reports whether no restaurant or pizza has been stored yet
func IsEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, err
	}
	if err := db.WithContext(ctx).Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, err
	}
	return restaurants == 0 && pizzas == 0, nil
}

// Seed inserts the seed data in a single transaction
func Seed(ctx context.Context, db *gorm.DB, seed SeedData) error {
	log.WithFields(logrus.Fields{
		"restaurants":       len(seed.Restaurants),
		"pizzas":            len(seed.Pizzas),
		"restaurant_pizzas": len(seed.RestaurantPizzas),
	}).Info("Seeding database")

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurantIDs := make(map[string]uint, len(seed.Restaurants))
		for _, r := range seed.Restaurants {
			restaurant := models.Restaurant{Name: r.Name, Address: r.Address}
			if err := tx.Create(&restaurant).Error; err != nil {
				return fmt.Errorf("seed restaurant %q: %w", r.Name, err)
			}
			restaurantIDs[r.Name] = restaurant.ID
		}

		pizzaIDs := make(map[string]uint, len(seed.Pizzas))
		for _, p := range seed.Pizzas {
			pizza := models.Pizza{Name: p.Name, Ingredients: p.Ingredients}
			if err := tx.Create(&pizza).Error; err != nil {
				return fmt.Errorf("seed pizza %q: %w", p.Name, err)
			}
			pizzaIDs[p.Name] = pizza.ID
		}

		for _, link := range seed.RestaurantPizzas {
			restaurantID, ok := restaurantIDs[link.Restaurant]
			if !ok {
				return fmt.Errorf("seed restaurant pizza: unknown restaurant %q", link.Restaurant)
			}
			pizzaID, ok := pizzaIDs[link.Pizza]
			if !ok {
				return fmt.Errorf("seed restaurant pizza: unknown pizza %q", link.Pizza)
			}
			rp, err := models.NewRestaurantPizza(link.Price, pizzaID, restaurantID)
			if err != nil {
				return fmt.Errorf("seed restaurant pizza %s/%s: %w", link.Restaurant, link.Pizza, err)
			}
			if err := tx.Create(&rp).Error; err != nil {
				return fmt.Errorf("seed restaurant pizza %s/%s: %w", link.Restaurant, link.Pizza, err)
			}
		}
		return nil
	})
}

// SeedIfEmpty seeds the database only when it holds no restaurants and no pizzas
func SeedIfEmpty(ctx context.Context, db *gorm.DB, seed SeedData) (bool, error) {
	empty, err := IsEmpty(ctx, db)
	if err != nil {
		return false, err
	}
	if !empty {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	if err := Seed(ctx, db, seed); err != nil {
		return false, err
	}
	return true, nil
}

// Reset deletes every row, children first
func Reset(ctx context.Context, db *gorm.DB) error {
	log.Warn("Deleting all restaurants, pizzas and restaurant pizzas")
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
