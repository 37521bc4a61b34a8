package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/cache"
	"storefront_back_end/internal/catalog"
)

type ProductHandler struct {
	catalog *catalog.Service
	cache   *cache.ProductCache
	log     zerolog.Logger
}

func NewProductHandler(cat *catalog.Service, pc *cache.ProductCache, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{catalog: cat, cache: pc, log: log}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, err := h.cache.GetList(ctx); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, err := h.catalog.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetList(ctx, products); err != nil {
			h.log.Warn().Err(err).Msg("failed to cache product list")
		}
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID format"})
		return
	}

	p, err := h.catalog.Lookup(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/products/init. Idempotent demo seed.
func (h *ProductHandler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	p, created, err := h.catalog.Seed(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Using existing product", "product": p})
		return
	}

	if h.cache != nil {
		if err := h.cache.Invalidate(ctx); err != nil {
			h.log.Warn().Err(err).Msg("failed to invalidate product cache")
		}
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Initial product created successfully", "product": p})
}
