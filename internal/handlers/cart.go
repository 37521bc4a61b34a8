package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/cart"
)

type CartHandler struct {
	svc *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// GET /api/cart/:userId
func (h *CartHandler) Get(c *gin.Context) {
	result, err := h.svc.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId" binding:"required"`
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
		Variant   string `json:"variant"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID format"})
		return
	}

	result, err := h.svc.Add(c.Request.Context(), req.UserID, productID, req.Quantity, req.Variant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PUT /api/cart/update
func (h *CartHandler) Update(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		ItemID   string `json:"itemId" binding:"required"`
		Quantity *int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	result, err := h.svc.UpdateQuantity(c.Request.Context(), req.UserID, req.ItemID, *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /api/cart/:userId/items/:itemId
func (h *CartHandler) Remove(c *gin.Context) {
	result, err := h.svc.Remove(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /api/cart/:userId
func (h *CartHandler) Clear(c *gin.Context) {
	result, err := h.svc.Clear(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
