package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName is reported by the health check
const ServiceName = "gin-pizza-restaurants-api"

// Options configures the router
type Options struct {
	// Logger receives one access log entry per request
	Logger logrus.FieldLogger
	// AllowedOrigins for CORS, "*" for any
	AllowedOrigins []string
}

// NewRouter builds the gin engine with middleware and every route wired to db
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))

	RegisterRoutes(router, db)
	return router
}

// RegisterRoutes defines the routes for the Gin router
func RegisterRoutes(router *gin.Engine, db *gorm.DB) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.GET("/:id/pizzas", restaurantController.GetRestaurantPizzas)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}

	pizzas := router.Group("/pizzas")
	{
		pizzas.GET("", pizzaController.GetAllPizzas)
		pizzas.GET("/:id/restaurants", pizzaController.GetPizzaRestaurants)
		pizzas.DELETE("/:id", pizzaController.DeletePizza)
	}

	restaurantPizzas := router.Group("/restaurant_pizzas")
	{
		restaurantPizzas.POST("", restaurantPizzaController.CreateRestaurantPizza)
		restaurantPizzas.PATCH("/:id", restaurantPizzaController.UpdateRestaurantPizza)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}
