package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// UserRepository handles store operations for User.
type UserRepository struct {
	base[models.User]
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{newBase[models.User](db.Collection(models.UserCollection), "user")}
}

// Create persists a new user, generating its id.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	return r.insert(ctx, u)
}

// ExistsByEmail reports whether another user already uses email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"email": email, "_id": notID(exclude)})
}
