package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront_back_end/internal/config"
	"storefront_back_end/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, ph *handlers.ProductHandler, ch *handlers.CartHandler, oh *handlers.OrderHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{config.CORSOrigin()},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	api := r.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", ph.List)
		products.GET("/:id", ph.GetByID)
		products.POST("/init", ph.Seed)
	}

	cart := api.Group("/cart")
	{
		cart.GET("/:userId", ch.Get)
		cart.POST("/add", ch.Add)
		cart.PUT("/update", ch.Update)
		cart.DELETE("/:userId/items/:itemId", ch.Remove)
		cart.DELETE("/:userId", ch.Clear)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", oh.Create)
		orders.POST("/from-cart", oh.CreateFromCart)
		orders.GET("/:orderNumber", oh.GetByNumber)
	}
}
