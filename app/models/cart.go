package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartCollection is the entity store collection for carts.
const CartCollection = "carts"

// CartItem is a line in a cart, referencing a live Product. Duplicate lines
// for the same product are permitted; lines are addressed by their own id.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId" validate:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"gte=1"`
}

// Cart is a client's shopping cart. Exactly one cart per client; carts are
// never auto-provisioned by the API.
type Cart struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID     primitive.ObjectID `bson:"clientId" json:"clientId" validate:"required"`
	Items        []CartItem         `bson:"items" json:"items" validate:"dive"`
	LastAccessed time.Time          `bson:"lastAccessed" json:"lastAccessed"`
}
