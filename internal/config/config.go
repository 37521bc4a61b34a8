package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads .env when present and falls back to the process environment.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return getenv("PORT", "8080")
}

func MongoURI() string {
	return getenv("MONGODB_URI", "mongodb://localhost:27017/ecommerce")
}

func MongoDatabase() string {
	return getenv("MONGODB_DATABASE", "ecommerce")
}

func RedisAddr() string {
	return getenv("REDIS_ADDR", "localhost:6379")
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

func CORSOrigin() string {
	return getenv("CORS_ORIGIN", "*")
}

func SMTPHost() string {
	return getenv("SMTP_HOST", "sandbox.smtp.mailtrap.io")
}

func SMTPPort() int {
	p, err := strconv.Atoi(getenv("SMTP_PORT", "2525"))
	if err != nil {
		return 2525
	}
	return p
}

func SMTPUsername() string {
	return os.Getenv("SMTP_USERNAME")
}

func SMTPPassword() string {
	return os.Getenv("SMTP_PASSWORD")
}

func SenderEmail() string {
	return getenv("SENDER_EMAIL", "noreply@ecommercestore.com")
}

func SenderName() string {
	return getenv("SENDER_NAME", "eCommerce Store")
}

// CatalogDemoFallbacks gates the demo conveniences: auto-created products,
// inventory replenishment and price self-healing. Defaults on to match the
// demo deployment; production sets CATALOG_DEMO_FALLBACKS=false.
func CatalogDemoFallbacks() bool {
	v, err := strconv.ParseBool(getenv("CATALOG_DEMO_FALLBACKS", "true"))
	if err != nil {
		return true
	}
	return v
}
