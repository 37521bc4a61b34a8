package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Variant struct {
	Name    string   `json:"name" bson:"name"`
	Options []string `json:"options" bson:"options"`
}

type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image" bson:"image"`
	Variants    []Variant          `json:"variants,omitempty" bson:"variants,omitempty"`
	Inventory   int                `json:"inventory" bson:"inventory"`
}
