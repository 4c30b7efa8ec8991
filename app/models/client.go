package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientCollection is the entity store collection for clients.
const ClientCollection = "clients"

// Address is a subdocument on a Client's address list. Each address gets its
// own generated id so the edit-by-id mutation can target it.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Street       string             `bson:"street" json:"street" validate:"required"`
	District     string             `bson:"district" json:"district" validate:"required"`
	Region       string             `bson:"region" json:"region" validate:"required"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Client is the person behind a user account. NationalID is unique across
// the collection; each client is referenced by at most one user.
type Client struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"fullName" json:"fullName" validate:"required"`
	NationalID string             `bson:"nationalId" json:"nationalId" validate:"required"`
	BirthDate  *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Sex        string             `bson:"sex,omitempty" json:"sex,omitempty"`
	Phone      string             `bson:"phone" json:"phone" validate:"required"`
	Addresses  []Address          `bson:"addresses" json:"addresses" validate:"dive"`
}
