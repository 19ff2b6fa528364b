package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/catalog"
)

// HandleListProducts handles GET /v1/catalog/products with optional
// q, category, size and sort query parameters
func HandleListProducts(loader *catalog.Loader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := loader.Search(catalog.Query{
			Text:     c.Query("q"),
			Category: c.Query("category"),
			Size:     c.Query("size"),
			Sort:     c.Query("sort"),
		})
		_, source := loader.Products()

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"source":  source,
			"count":   len(products),
			"data":    products,
		})
	}
}

// HandleGetProduct handles GET /v1/catalog/products/:id
func HandleGetProduct(loader *catalog.Loader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, ok := loader.Product(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "product_id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}
