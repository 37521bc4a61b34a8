package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_back_end/internal/cart"
	"storefront_back_end/internal/models"
	"storefront_back_end/internal/orders"
	"storefront_back_end/internal/repository"
)

// writeError maps domain errors onto the JSON error contract: a message field
// plus, for inventory shortfalls, a details block naming the requested and
// available amounts.
func writeError(c *gin.Context, err error) {
	var shortfall *models.InsufficientInventoryError
	if errors.As(err, &shortfall) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": shortfall.Error(),
			"details": gin.H{
				"requested": shortfall.Requested,
				"available": shortfall.Available,
				"productId": shortfall.ProductID,
			},
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case errors.Is(err, repository.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
	case errors.Is(err, repository.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be positive"})
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
	case errors.Is(err, cart.ErrItemSubtotal):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error calculating item subtotal"})
	case errors.Is(err, cart.ErrCartTotal):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error calculating cart total"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	}
}
