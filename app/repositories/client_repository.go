package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// ClientRepository handles store operations for Client, including the
// address-list array mutations.
type ClientRepository struct {
	base[models.Client]
}

func NewClientRepository(db *database.DB) *ClientRepository {
	return &ClientRepository{newBase[models.Client](db.Collection(models.ClientCollection), "client")}
}

// Create persists a new client, generating ids for the client and any
// addresses it carries.
func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	for i := range c.Addresses {
		if c.Addresses[i].ID.IsZero() {
			c.Addresses[i].ID = primitive.NewObjectID()
		}
	}
	return r.insert(ctx, c)
}

// ExistsByNationalID reports whether another client already uses nationalID.
func (r *ClientRepository) ExistsByNationalID(ctx context.Context, nationalID string, exclude primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"nationalId": nationalID, "_id": notID(exclude)})
}

// PushAddress appends addr to the client's address list and returns the
// updated client, or NotFound when the client is absent.
func (r *ClientRepository) PushAddress(ctx context.Context, clientID primitive.ObjectID, addr models.Address) (*models.Client, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": clientID},
		bson.M{"$push": bson.M{"addresses": addr}},
	)
}

// SetAddress replaces the address with addressID in place. NotFound when the
// (clientID, addressID) pair matches nothing; the list is left unmodified.
func (r *ClientRepository) SetAddress(ctx context.Context, clientID, addressID primitive.ObjectID, addr models.Address) (*models.Client, error) {
	addr.ID = addressID // the replacement keeps the slot's id
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": clientID, "addresses._id": addressID},
		bson.M{"$set": bson.M{"addresses.$": addr}},
	)
}
