package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quickmart/checkout-api/internal/config"
	"github.com/quickmart/checkout-api/internal/presentation/http/handler"
	"github.com/quickmart/checkout-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Checkout     *handler.CheckoutHandler
	Product      *handler.ProductHandler
	DiscountCard *handler.DiscountCardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.NewClientRateLimiter(&cfg.RateLimit).Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/checkout", h.Checkout.Checkout)
		v1.POST("/checkout/print", h.Checkout.Print)
		v1.GET("/printer/status", h.Checkout.PrinterStatus)

		v1.GET("/products", h.Product.List)
		v1.GET("/products/:id", h.Product.Get)

		v1.GET("/discount-cards/:number", h.DiscountCard.Get)
	}

	return router
}
