package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/checkout"
	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// HandleCheckout handles POST /v1/checkout. Every failure category
// maps to its own status so the client can show the right retry
// affordance; the cart is only cleared on success.
func HandleCheckout(orch *checkout.Orchestrator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.ShippingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		confirmation, err := orch.Submit(c.Request.Context(), form)
		if err != nil {
			switch e := err.(type) {
			case *errors.ErrEmptyCart:
				c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
			case *errors.ErrValidation:
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":  "validation failed",
					"fields": e.Fields,
				})
			case *errors.ErrTimeout:
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": e.Error(), "retryable": true})
			case *errors.ErrNetwork:
				c.JSON(http.StatusBadGateway, gin.H{"error": e.Error(), "retryable": true})
			case *errors.ErrServerRejected:
				c.JSON(http.StatusBadGateway, gin.H{"error": e.Error(), "retryable": true})
			default:
				logger.Error("Checkout failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    confirmation,
		})
	}
}
