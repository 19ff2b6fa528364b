package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sk-sazzad/tinystepsbd/internal/catalog"
	"github.com/sk-sazzad/tinystepsbd/internal/wishlist"
)

// AddWishlistRequest is the wishlist-add payload
type AddWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// HandleGetWishlist handles GET /v1/wishlist
func HandleGetWishlist(mgr *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"product_ids": mgr.List()})
	}
}

// HandleAddWishlistItem handles POST /v1/wishlist. Adding an id
// already on the list succeeds and reports added=false.
func HandleAddWishlistItem(mgr *wishlist.Manager, loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if _, ok := loader.Product(req.ProductID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "product_id": req.ProductID})
			return
		}

		added := mgr.Add(req.ProductID)
		c.JSON(http.StatusOK, gin.H{"added": added, "product_ids": mgr.List()})
	}
}

// HandleRemoveWishlistItem handles DELETE /v1/wishlist/:id
func HandleRemoveWishlistItem(mgr *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr.Remove(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"product_ids": mgr.List()})
	}
}
