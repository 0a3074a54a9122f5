package models

import "slices"

// Serialized field names. Callers pass them to ToMap to drop a field,
// which is how the Restaurant -> RestaurantPizza -> Restaurant cycle is broken.
const (
	FieldRestaurantPizzas = "restaurant_pizzas"
	FieldRestaurant       = "restaurant"
	FieldPizza            = "pizza"
)

// Restaurant is a place that serves pizzas at a price
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string
	Address string

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Pizzas returns the pizzas served by the restaurant, following the loaded
// RestaurantPizzas rows. Rows whose Pizza was not preloaded are skipped.
func (r Restaurant) Pizzas() []Pizza {
	pizzas := make([]Pizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		if rp.Pizza != nil {
			pizzas = append(pizzas, *rp.Pizza)
		}
	}
	return pizzas
}

// ToMap serializes the restaurant, omitting any field named in exclude.
// Nested restaurant pizzas never carry their restaurant back-reference.
func (r Restaurant) ToMap(exclude ...string) map[string]any {
	data := map[string]any{}
	putField(data, exclude, "id", r.ID)
	putField(data, exclude, "name", r.Name)
	putField(data, exclude, "address", r.Address)
	if !slices.Contains(exclude, FieldRestaurantPizzas) {
		rps := make([]map[string]any, 0, len(r.RestaurantPizzas))
		for _, rp := range r.RestaurantPizzas {
			rps = append(rps, rp.ToMapEmbedded(FieldRestaurant))
		}
		data[FieldRestaurantPizzas] = rps
	}
	return data
}

func putField(data map[string]any, exclude []string, field string, value any) {
	if !slices.Contains(exclude, field) {
		data[field] = value
	}
}
