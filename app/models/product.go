package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductCollection is the entity store collection for products.
const ProductCollection = "products"

// Product is a catalogue item referencing exactly one Category.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	CategoryID  primitive.ObjectID `bson:"categoryId" json:"categoryId" validate:"required"`
}
