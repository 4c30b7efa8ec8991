package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// ProfileRepository handles store operations for Profile.
type ProfileRepository struct {
	base[models.Profile]
}

func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{newBase[models.Profile](db.Collection(models.ProfileCollection), "profile")}
}

// Create persists a new profile, generating its id.
func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return r.insert(ctx, p)
}

// ExistsByName reports whether another profile already uses name.
func (r *ProfileRepository) ExistsByName(ctx context.Context, name string, exclude primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"name": name, "_id": notID(exclude)})
}
