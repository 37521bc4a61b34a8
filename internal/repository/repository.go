// Package repository defines the storage contracts for carts, products and
// orders. Consumers depend on these interfaces, not on the MongoDB
// implementations, so services can be exercised against in-memory doubles.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_back_end/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrOrderNotFound   = errors.New("order not found")
)

type ProductRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p *models.Product) error
	SetPrice(ctx context.Context, id primitive.ObjectID, price float64) error
	SetInventory(ctx context.Context, id primitive.ObjectID, inventory int) error
	// DecrementInventory applies a single atomic $inc at the storage layer so
	// concurrent orders against the same product serialize there.
	DecrementInventory(ctx context.Context, id primitive.ObjectID, quantity int) error
}

type CartRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	// Save upserts the whole cart document keyed by user. Last write wins;
	// concurrent mutations of the same cart are an accepted limitation.
	Save(ctx context.Context, cart *models.Cart) error
}

type OrderRepository interface {
	Insert(ctx context.Context, o *models.Order) error
	FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
}
