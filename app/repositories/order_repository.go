package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// OrderRepository handles store operations for Order.
type OrderRepository struct {
	base[models.Order]
}

func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{newBase[models.Order](db.Collection(models.OrderCollection), "order")}
}

// Create persists a new order, generating ids for the order and its line
// items.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	for i := range o.Items {
		if o.Items[i].ID.IsZero() {
			o.Items[i].ID = primitive.NewObjectID()
		}
	}
	return r.insert(ctx, o)
}

// ByClient returns every order placed by the given client.
func (r *OrderRepository) ByClient(ctx context.Context, clientID primitive.ObjectID) ([]models.Order, error) {
	return r.Find(ctx, bson.M{"clientId": clientID})
}

// SetStatus overwrites the order's status and returns the updated order.
func (r *OrderRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	return r.UpdateByID(ctx, id, bson.M{"status": status})
}
