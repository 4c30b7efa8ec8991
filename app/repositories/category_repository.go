package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// CategoryRepository handles store operations for Category.
type CategoryRepository struct {
	base[models.Category]
}

func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{newBase[models.Category](db.Collection(models.CategoryCollection), "category")}
}

// Create persists a new category, generating its id.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return r.insert(ctx, c)
}

// ExistsByName reports whether another category already uses name.
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string, exclude primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"name": name, "_id": notID(exclude)})
}
