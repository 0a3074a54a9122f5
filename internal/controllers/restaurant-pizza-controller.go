package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza links a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
	// UpdateRestaurantPizza changes the price of a restaurant pizza
	UpdateRestaurantPizza(c *gin.Context)
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required" example:"5"`
	PizzaID      int64    `json:"pizza_id" example:"1"`
	RestaurantID int64    `json:"restaurant_id" example:"1"`
}

// UpdateRestaurantPizzaRequest is the body of PATCH /restaurant_pizzas/{id}
type UpdateRestaurantPizzaRequest struct {
	Price *float64 `json:"price" binding:"required" example:"10"`
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer a pizza at a restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Price, pizza and restaurant"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorsResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationErrors(ctx)
		return
	}
	price, ok := toPrice(*req.Price)
	if !ok {
		validationErrors(ctx)
		return
	}

	rp, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), price, toID(req.PizzaID), toID(req.RestaurantID))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConstraintViolation):
			validationErrors(ctx)
		case errors.Is(err, models.ErrNotFound):
			ctx.JSON(http.StatusNotFound, models.ErrorsResponse{Errors: []string{models.MsgPizzaOrRestaurantMissing}})
		default:
			serverErrors(ctx, "Failed to create restaurant pizza", err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, rp.ToMapEmbedded())
}

// UpdateRestaurantPizza godoc
// @Summary Update the price of a restaurant pizza
// @Description Change the price of an existing restaurant pizza
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Param restaurant_pizza body UpdateRestaurantPizzaRequest true "New price"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorsResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas/{id} [patch]
func (c *restaurantPizzaController) UpdateRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant pizza")
	if !ok {
		return
	}

	var req UpdateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		validationErrors(ctx)
		return
	}
	price, ok := toPrice(*req.Price)
	if !ok {
		validationErrors(ctx)
		return
	}

	rp, err := c.service.UpdateRestaurantPizzaPrice(ctx.Request.Context(), id, price)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConstraintViolation):
			validationErrors(ctx)
		case errors.Is(err, models.ErrNotFound):
			ctx.JSON(http.StatusNotFound, models.ErrorsResponse{Errors: []string{models.MsgRestaurantPizzaNotFound}})
		default:
			serverErrors(ctx, "Failed to update restaurant pizza", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, rp.ToMapEmbedded())
}

func validationErrors(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, models.ErrorsResponse{Errors: []string{models.MsgValidationErrors}})
}

// serverErrors is serverError for endpoints whose error body is a list
func serverErrors(ctx *gin.Context, message string, err error) {
	logRequestError(ctx, message, err)
	ctx.JSON(http.StatusInternalServerError, models.ErrorsResponse{Errors: []string{message}})
}
