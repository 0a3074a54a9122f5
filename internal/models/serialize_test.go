package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() (Restaurant, Pizza, RestaurantPizza) {
	restaurant := Restaurant{ID: 1, Name: "Karen's Pizza Shack", Address: "address1"}
	pizza := Pizza{ID: 2, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}
	rp := RestaurantPizza{ID: 3, Price: 5, PizzaID: pizza.ID, RestaurantID: restaurant.ID}
	return restaurant, pizza, rp
}

func TestRestaurantPizzaToMap(t *testing.T) {
	_, _, rp := fixture()

	data := rp.ToMap()
	assert.Equal(t, map[string]any{
		"id":            uint(3),
		"price":         5,
		"pizza_id":      uint(2),
		"restaurant_id": uint(1),
	}, data)

	assert.NotContains(t, rp.ToMap("price"), "price")
}

func TestRestaurantPizzaToMapEmbedded(t *testing.T) {
	restaurant, pizza, rp := fixture()
	rp.Pizza = &pizza
	rp.Restaurant = &restaurant

	data := rp.ToMapEmbedded()
	require.Contains(t, data, FieldPizza)
	require.Contains(t, data, FieldRestaurant)

	embeddedPizza := data[FieldPizza].(map[string]any)
	embeddedRestaurant := data[FieldRestaurant].(map[string]any)
	assert.Equal(t, uint(2), embeddedPizza["id"])
	assert.Equal(t, uint(1), embeddedRestaurant["id"])
	assert.NotContains(t, embeddedPizza, FieldRestaurantPizzas)
	assert.NotContains(t, embeddedRestaurant, FieldRestaurantPizzas)

	withoutRestaurant := rp.ToMapEmbedded(FieldRestaurant)
	assert.Contains(t, withoutRestaurant, FieldPizza)
	assert.NotContains(t, withoutRestaurant, FieldRestaurant)
}

func TestRestaurantPizzaToMapEmbeddedSkipsUnloadedRelations(t *testing.T) {
	_, _, rp := fixture()

	data := rp.ToMapEmbedded()
	assert.NotContains(t, data, FieldPizza)
	assert.NotContains(t, data, FieldRestaurant)
}

func TestRestaurantToMap(t *testing.T) {
	restaurant, pizza, rp := fixture()
	rp.Pizza = &pizza
	rp.Restaurant = &restaurant
	restaurant.RestaurantPizzas = []RestaurantPizza{rp}

	data := restaurant.ToMap()
	assert.Equal(t, "Karen's Pizza Shack", data["name"])
	assert.Equal(t, "address1", data["address"])

	rps := data[FieldRestaurantPizzas].([]map[string]any)
	require.Len(t, rps, 1)
	assert.NotContains(t, rps[0], FieldRestaurant)
	assert.Equal(t, "Emma", rps[0][FieldPizza].(map[string]any)["name"])
	assert.NotContains(t, rps[0][FieldPizza], FieldRestaurantPizzas)

	summary := restaurant.ToMap(FieldRestaurantPizzas)
	assert.Equal(t, map[string]any{"id": uint(1), "name": "Karen's Pizza Shack", "address": "address1"}, summary)
}

func TestRestaurantToMapWithoutPizzasIsEmptyList(t *testing.T) {
	restaurant, _, _ := fixture()

	rps := restaurant.ToMap()[FieldRestaurantPizzas]
	assert.NotNil(t, rps)
	assert.Empty(t, rps)
}

func TestPizzaToMap(t *testing.T) {
	restaurant, pizza, rp := fixture()
	rp.Pizza = &pizza
	rp.Restaurant = &restaurant
	pizza.RestaurantPizzas = []RestaurantPizza{rp}

	data := pizza.ToMap()
	rps := data[FieldRestaurantPizzas].([]map[string]any)
	require.Len(t, rps, 1)
	assert.NotContains(t, rps[0], FieldPizza)
	assert.Equal(t, uint(1), rps[0][FieldRestaurant].(map[string]any)["id"])

	summary := pizza.ToMap(FieldRestaurantPizzas)
	assert.Equal(t, map[string]any{"id": uint(2), "name": "Emma", "ingredients": "Dough, Tomato Sauce, Cheese"}, summary)
}

func TestDerivedCollections(t *testing.T) {
	restaurant, pizza, rp := fixture()
	other := Pizza{ID: 9, Name: "Geri"}

	restaurant.RestaurantPizzas = []RestaurantPizza{
		{ID: 1, Pizza: &pizza},
		{ID: 2, Pizza: &other},
		{ID: 3},
	}
	pizzas := restaurant.Pizzas()
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Geri", pizzas[1].Name)

	rp.Restaurant = &restaurant
	pizza.RestaurantPizzas = []RestaurantPizza{rp}
	restaurants := pizza.Restaurants()
	require.Len(t, restaurants, 1)
	assert.Equal(t, restaurant.ID, restaurants[0].ID)
}
