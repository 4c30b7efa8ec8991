package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// CartRepository handles store operations for Cart, including the line-item
// array mutations. Carts are keyed by client: the API never addresses a cart
// by its own id.
type CartRepository struct {
	base[models.Cart]
}

func NewCartRepository(db *database.DB) *CartRepository {
	return &CartRepository{newBase[models.Cart](db.Collection(models.CartCollection), "cart")}
}

// Create persists a new cart, generating ids for the cart and any line
// items it carries. One cart per client.
func (r *CartRepository) Create(ctx context.Context, c *models.Cart) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	for i := range c.Items {
		if c.Items[i].ID.IsZero() {
			c.Items[i].ID = primitive.NewObjectID()
		}
	}
	return r.insert(ctx, c)
}

// FindByClient returns the client's cart, or NotFound. Carts are never
// auto-provisioned.
func (r *CartRepository) FindByClient(ctx context.Context, clientID primitive.ObjectID) (*models.Cart, error) {
	return r.findOne(ctx, bson.M{"clientId": clientID})
}

// ExistsByClient reports whether the client already has a cart.
func (r *CartRepository) ExistsByClient(ctx context.Context, clientID primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"clientId": clientID})
}

// PushItem appends a line item to the client's cart and returns the updated
// cart. Duplicate lines for the same product are permitted.
func (r *CartRepository) PushItem(ctx context.Context, clientID primitive.ObjectID, item models.CartItem) (*models.Cart, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"clientId": clientID},
		bson.M{
			"$push":        bson.M{"items": item},
			"$currentDate": bson.M{"lastAccessed": true},
		},
	)
}

// SetItemQuantity sets the quantity of the line with itemID. NotFound when
// the cart or the line is absent.
func (r *CartRepository) SetItemQuantity(ctx context.Context, clientID, itemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"clientId": clientID, "items._id": itemID},
		bson.M{
			"$set":         bson.M{"items.$.quantity": quantity},
			"$currentDate": bson.M{"lastAccessed": true},
		},
	)
}

// PullItem removes the line with itemID if present. Removal is idempotent:
// a missing line is not an error, only a missing cart is.
func (r *CartRepository) PullItem(ctx context.Context, clientID, itemID primitive.ObjectID) (*models.Cart, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"clientId": clientID},
		bson.M{
			"$pull":        bson.M{"items": bson.M{"_id": itemID}},
			"$currentDate": bson.M{"lastAccessed": true},
		},
	)
}
