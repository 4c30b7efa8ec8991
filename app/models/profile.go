package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProfileCollection is the entity store collection for profiles.
const ProfileCollection = "profiles"

// Profile is an access profile referenced (never owned) by users.
// Name is unique across the collection.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
