package models

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// Price bounds of a RestaurantPizza, mirrored by the storage check constraint
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza links a pizza to a restaurant and carries its price there
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey"`
	Price        int  `gorm:"not null;check:chk_price_range,price >= 1 AND price <= 30"`
	PizzaID      uint `gorm:"not null;index"`
	RestaurantID uint `gorm:"not null;index"`

	Pizza      *Pizza      `gorm:"constraint:OnDelete:CASCADE"`
	Restaurant *Restaurant `gorm:"constraint:OnDelete:CASCADE"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice rejects prices outside [MinPrice, MaxPrice] with ErrValidation
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return fmt.Errorf("%w: price %d must be between %d and %d", ErrValidation, price, MinPrice, MaxPrice)
	}
	return nil
}

// NewRestaurantPizza builds a validated, not yet persisted RestaurantPizza
func NewRestaurantPizza(price int, pizzaID, restaurantID uint) (RestaurantPizza, error) {
	if err := ValidatePrice(price); err != nil {
		return RestaurantPizza{}, err
	}
	return RestaurantPizza{Price: price, PizzaID: pizzaID, RestaurantID: restaurantID}, nil
}

// SetPrice changes the price, leaving it untouched when the new value is invalid
func (rp *RestaurantPizza) SetPrice(price int) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	rp.Price = price
	return nil
}

// BeforeSave is a gorm hook so no write path can bypass price validation
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}

// ToMap serializes the row's own columns, omitting any field named in exclude
func (rp RestaurantPizza) ToMap(exclude ...string) map[string]any {
	data := map[string]any{}
	putField(data, exclude, "id", rp.ID)
	putField(data, exclude, "price", rp.Price)
	putField(data, exclude, "pizza_id", rp.PizzaID)
	putField(data, exclude, "restaurant_id", rp.RestaurantID)
	return data
}

// ToMapEmbedded is ToMap plus the loaded pizza and restaurant, each without
// their own restaurant_pizzas list. Pass FieldPizza or FieldRestaurant in
// exclude to drop the back-reference to the caller.
func (rp RestaurantPizza) ToMapEmbedded(exclude ...string) map[string]any {
	data := rp.ToMap(exclude...)
	if rp.Pizza != nil && !slices.Contains(exclude, FieldPizza) {
		data[FieldPizza] = rp.Pizza.ToMap(FieldRestaurantPizzas)
	}
	if rp.Restaurant != nil && !slices.Contains(exclude, FieldRestaurant) {
		data[FieldRestaurant] = rp.Restaurant.ToMap(FieldRestaurantPizzas)
	}
	return data
}
