package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CategoryCollection is the entity store collection for categories.
const CategoryCollection = "categories"

// Category groups products. Name is unique across the collection.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
