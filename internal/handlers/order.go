package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/models"
	"storefront_back_end/internal/orders"
)

type OrderHandler struct {
	svc *orders.Service
}

func NewOrderHandler(svc *orders.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// POST /api/orders. Legacy direct single-product checkout.
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		ProductID   string              `json:"productId" binding:"required"`
		Variant     string              `json:"variant"`
		Quantity    int                 `json:"quantity" binding:"required"`
		Subtotal    float64             `json:"subtotal"`
		Total       float64             `json:"total"`
		Customer    models.Customer     `json:"customer" binding:"required"`
		PaymentInfo *models.PaymentInfo `json:"paymentInfo"`
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

	order, _, err := h.svc.CreateDirect(c.Request.Context(), orders.DirectRequest{
		ProductID:   productID,
		Variant:     req.Variant,
		Quantity:    req.Quantity,
		Subtotal:    req.Subtotal,
		Total:       req.Total,
		Customer:    req.Customer,
		PaymentInfo: req.PaymentInfo,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// POST /api/orders/from-cart. Checkout of the whole cart.
func (h *OrderHandler) CreateFromCart(c *gin.Context) {
	var req struct {
		UserID      string              `json:"userId" binding:"required"`
		Customer    models.Customer     `json:"customer" binding:"required"`
		PaymentInfo *models.PaymentInfo `json:"paymentInfo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	order, _, err := h.svc.CreateFromCart(c.Request.Context(), req.UserID, req.Customer, req.PaymentInfo)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// GET /api/orders/:orderNumber
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	order, err := h.svc.GetByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
