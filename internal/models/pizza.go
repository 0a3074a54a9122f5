package models

import "slices"

// Pizza represents a pizza with its ingredients
type Pizza struct {
	ID          uint `gorm:"primaryKey"`
	Name        string
	Ingredients string

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Restaurants returns the restaurants serving the pizza, following the
// loaded RestaurantPizzas rows.
func (p Pizza) Restaurants() []Restaurant {
	restaurants := make([]Restaurant, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		if rp.Restaurant != nil {
			restaurants = append(restaurants, *rp.Restaurant)
		}
	}
	return restaurants
}

// ToMap serializes the pizza, omitting any field named in exclude.
// Nested restaurant pizzas never carry their pizza back-reference.
func (p Pizza) ToMap(exclude ...string) map[string]any {
	data := map[string]any{}
	putField(data, exclude, "id", p.ID)
	putField(data, exclude, "name", p.Name)
	putField(data, exclude, "ingredients", p.Ingredients)
	if !slices.Contains(exclude, FieldRestaurantPizzas) {
		rps := make([]map[string]any, 0, len(p.RestaurantPizzas))
		for _, rp := range p.RestaurantPizzas {
			rps = append(rps, rp.ToMapEmbedded(FieldPizza))
		}
		data[FieldRestaurantPizzas] = rps
	}
	return data
}
