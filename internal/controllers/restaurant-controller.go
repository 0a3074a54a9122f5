package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas
	GetRestaurantByID(c *gin.Context)
	// GetRestaurantPizzas lists the pizzas a restaurant serves
	GetRestaurantPizzas(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		serverError(ctx, "Failed to retrieve restaurants", err)
		return
	}
	ctx.JSON(http.StatusOK, toMaps(restaurants, models.FieldRestaurantPizzas))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant pizzas, each embedding its pizza
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
			return
		}
		serverError(ctx, "Failed to retrieve restaurant", err)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.ToMap())
}

// GetRestaurantPizzas godoc
// @Summary Get the pizzas of a restaurant
// @Description List the pizzas served by a restaurant
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id}/pizzas [get]
func (c *restaurantController) GetRestaurantPizzas(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	pizzas, err := c.service.GetRestaurantPizzas(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
			return
		}
		serverError(ctx, "Failed to retrieve restaurant pizzas", err)
		return
	}
	ctx.JSON(http.StatusOK, toMaps(pizzas, models.FieldRestaurantPizzas))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza that references it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
			return
		}
		serverError(ctx, "Failed to delete restaurant", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
