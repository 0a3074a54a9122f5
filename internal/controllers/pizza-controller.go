package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaRestaurants retrieves the restaurants serving a pizza
	GetPizzaRestaurants(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas, without their restaurant pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		serverError(ctx, "Failed to retrieve pizzas", err)
		return
	}
	ctx.JSON(http.StatusOK, toMaps(pizzas, models.FieldRestaurantPizzas))
}

// GetPizzaRestaurants godoc
// @Summary Get the restaurants of a pizza
// @Description List the restaurants serving a pizza
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id}/restaurants [get]
func (c *controller) GetPizzaRestaurants(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	restaurants, err := c.service.GetPizzaRestaurants(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgPizzaNotFound})
			return
		}
		serverError(ctx, "Failed to retrieve pizza restaurants", err)
		return
	}
	ctx.JSON(http.StatusOK, toMaps(restaurants, models.FieldRestaurantPizzas))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and every restaurant pizza that references it
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgPizzaNotFound})
			return
		}
		serverError(ctx, "Failed to delete pizza", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
