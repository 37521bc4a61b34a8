package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a cart. Product is resolved from the catalog when the
// cart is returned to a caller and never stored alongside the line itself.
type CartItem struct {
	ID        string             `json:"_id" bson:"item_id"`
	ProductID primitive.ObjectID `json:"productId" bson:"product_id"`
	Product   *Product           `json:"product,omitempty" bson:"-"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Variant   string             `json:"variant" bson:"variant"`
	Price     float64            `json:"price" bson:"price"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
}

type Cart struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	Items     []CartItem         `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// FindItem returns the index of the line matching id, or -1.
func (c *Cart) FindItem(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// FindLine returns the index of the line matching (product, variant), or -1.
// A cart never holds two lines for the same pair.
func (c *Cart) FindLine(productID primitive.ObjectID, variant string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Variant == variant {
			return i
		}
	}
	return -1
}
