package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
	StatusError    = "error"
)

type Customer struct {
	FullName string `json:"fullName" bson:"full_name"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	ZipCode  string `json:"zipCode" bson:"zip_code"`
}

type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// OrderItem mirrors CartItem but its price and subtotal are frozen at order
// creation and never recomputed.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"product_id"`
	Product   *Product           `json:"product,omitempty" bson:"-"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Variant   string             `json:"variant" bson:"variant"`
	Price     float64            `json:"price" bson:"price"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
}

// Order is immutable once persisted. Either Items is populated (cart checkout)
// or the legacy ProductID/Variant/Quantity trio is (direct checkout).
type Order struct {
	ID          primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	OrderNumber string              `json:"orderNumber" bson:"order_number"`
	Items       []OrderItem         `json:"items,omitempty" bson:"items,omitempty"`
	ProductID   *primitive.ObjectID `json:"productId,omitempty" bson:"product_id,omitempty"`
	Product     *Product            `json:"product,omitempty" bson:"-"`
	Variant     string              `json:"variant,omitempty" bson:"variant,omitempty"`
	Quantity    int                 `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Subtotal    float64             `json:"subtotal" bson:"subtotal"`
	Total       float64             `json:"total" bson:"total"`
	Customer    Customer            `json:"customer" bson:"customer"`
	Status      string              `json:"status" bson:"status"`
	CreatedAt   time.Time           `json:"createdAt" bson:"created_at"`
}
