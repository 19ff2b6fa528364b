package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/cart"
	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/pricing"
	"github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// AddCartItemRequest is the add-to-cart payload
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// SetQuantityRequest is the quantity-update payload. Zero removes the
// line item, matching the quantity controls on the cart page.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(cartMgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cartMgr.Items()
		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"total_items": cartMgr.TotalItems(),
			"subtotal":    pricing.Subtotal(items),
		})
	}
}

// HandleAddCartItem handles POST /v1/cart/items
func HandleAddCartItem(cartMgr *cart.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		if err := cartMgr.AddItem(req.ProductID, req.Quantity, req.Color, req.Size); err != nil {
			if _, ok := err.(*errors.ErrItemNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Add to cart failed", zap.String("product_id", req.ProductID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       cartMgr.Items(),
			"total_items": cartMgr.TotalItems(),
		})
	}
}

// HandleSetCartItemQuantity handles PATCH /v1/cart/items/:id
func HandleSetCartItemQuantity(cartMgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cartMgr.SetQuantity(c.Param("id"), *req.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items":       cartMgr.Items(),
			"total_items": cartMgr.TotalItems(),
		})
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:id
func HandleRemoveCartItem(cartMgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartMgr.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{
			"items":       cartMgr.Items(),
			"total_items": cartMgr.TotalItems(),
		})
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(cartMgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartMgr.Clear()
		c.JSON(http.StatusOK, gin.H{"items": []domain.LineItem{}, "total_items": 0})
	}
}

// HandleCartSummary handles GET /v1/cart/summary with area and coupon
// query parameters. An unknown coupon still returns the summary with a
// zero discount alongside the error message.
func HandleCartSummary(cartMgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		area := domain.DeliveryArea(c.Query("area"))
		coupon := c.Query("coupon")

		summary, err := pricing.Summarize(cartMgr.Items(), area, coupon)
		resp := gin.H{"summary": summary}
		if err != nil {
			resp["coupon_error"] = err.Error()
		} else if coupon != "" {
			rate, _ := pricing.CouponRate(coupon)
			resp["coupon_rate"] = rate
		}
		c.JSON(http.StatusOK, resp)
	}
}
