package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/api/handlers"
	"github.com/sk-sazzad/tinystepsbd/internal/cart"
	"github.com/sk-sazzad/tinystepsbd/internal/catalog"
	"github.com/sk-sazzad/tinystepsbd/internal/checkout"
	"github.com/sk-sazzad/tinystepsbd/internal/config"
	"github.com/sk-sazzad/tinystepsbd/internal/wishlist"
)

// Deps collects the storefront collaborators the handlers work with
type Deps struct {
	Catalog  *catalog.Loader
	Cart     *cart.Manager
	Wishlist *wishlist.Manager
	Checkout *checkout.Orchestrator
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "TinyStepsBD Storefront API",
			"endpoints": []string{
				"GET /health",
				"GET /v1/catalog/products",
				"GET /v1/catalog/products/:id",
				"GET /v1/cart",
				"POST /v1/cart/items",
				"PATCH /v1/cart/items/:id",
				"DELETE /v1/cart/items/:id",
				"DELETE /v1/cart",
				"GET /v1/cart/summary",
				"GET /v1/wishlist",
				"POST /v1/wishlist",
				"DELETE /v1/wishlist/:id",
				"POST /v1/checkout",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/catalog/products", handlers.HandleListProducts(deps.Catalog, logger))
		v1.GET("/catalog/products/:id", handlers.HandleGetProduct(deps.Catalog, logger))

		v1.GET("/cart", handlers.HandleGetCart(deps.Cart))
		v1.POST("/cart/items", handlers.HandleAddCartItem(deps.Cart, logger))
		v1.PATCH("/cart/items/:id", handlers.HandleSetCartItemQuantity(deps.Cart))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveCartItem(deps.Cart))
		v1.DELETE("/cart", handlers.HandleClearCart(deps.Cart))
		v1.GET("/cart/summary", handlers.HandleCartSummary(deps.Cart))

		v1.GET("/wishlist", handlers.HandleGetWishlist(deps.Wishlist))
		v1.POST("/wishlist", handlers.HandleAddWishlistItem(deps.Wishlist, deps.Catalog))
		v1.DELETE("/wishlist/:id", handlers.HandleRemoveWishlistItem(deps.Wishlist))

		v1.POST("/checkout", handlers.HandleCheckout(deps.Checkout, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
