package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront_back_end/internal/cache"
	"storefront_back_end/internal/cart"
	"storefront_back_end/internal/catalog"
	"storefront_back_end/internal/config"
	"storefront_back_end/internal/database"
	"storefront_back_end/internal/handlers"
	"storefront_back_end/internal/notify"
	"storefront_back_end/internal/orders"
	"storefront_back_end/internal/repository"
	"storefront_back_end/internal/routes"
)

func main() {
	config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	database.Connect()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Disconnect(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repository.EnsureIndexes(ctx, database.MongoDB); err != nil {
		log.Printf("⚠️  Index creation failed: %v", err)
	}
	cancel()

	productRepo := repository.NewMongoProductRepository(database.MongoDB)
	cartRepo := repository.NewMongoCartRepository(database.MongoDB)
	orderRepo := repository.NewMongoOrderRepository(database.MongoDB)

	demo := config.CatalogDemoFallbacks()
	catalogSvc := catalog.NewService(productRepo, catalog.Policy{
		AutoCreateMissing:  demo,
		ReplenishDemoStock: demo,
		RepairInvalidPrice: demo,
	}, logger)

	mailer := notify.NewMailer(notify.SMTPConfig{
		Host:     config.SMTPHost(),
		Port:     config.SMTPPort(),
		Username: config.SMTPUsername(),
		Password: config.SMTPPassword(),
		From:     config.SenderEmail(),
		FromName: config.SenderName(),
	}, logger)

	cartSvc := cart.NewService(cartRepo, catalogSvc, logger)
	orderSvc := orders.NewService(orderRepo, cartRepo, catalogSvc, mailer, logger)
	productCache := cache.NewProductCache(database.RedisClient)

	r := gin.Default()
	routes.RegisterRoutes(r,
		handlers.NewProductHandler(catalogSvc, productCache, logger),
		handlers.NewCartHandler(cartSvc),
		handlers.NewOrderHandler(orderSvc),
	)

	port := config.Port()
	log.Println("🚀 Server listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
