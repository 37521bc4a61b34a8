package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront_back_end/internal/config"
)

var (
	Mongo       *mongo.Client
	MongoDB     *mongo.Database
	RedisClient *redis.Client
)

// Connect establishes the Mongo and Redis connections and fills the package
// clients. Mongo is required; an unreachable Redis only disables the product
// cache.
func Connect() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)

	log.Println("✅ All databases connected")
}

func connectMongo(ctx context.Context) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI()))
	if err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	Mongo = client
	MongoDB = client.Database(config.MongoDatabase())
	log.Println("✅ Connected to MongoDB")
}

func connectRedis(ctx context.Context) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable, product cache disabled: %v", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Connected to Redis")
}

// Disconnect closes the Mongo connection on shutdown.
func Disconnect(ctx context.Context) {
	if Mongo != nil {
		if err := Mongo.Disconnect(ctx); err != nil {
			log.Printf("⚠️  MongoDB disconnect error: %v", err)
		}
	}
}
