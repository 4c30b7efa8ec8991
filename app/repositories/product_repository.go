package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

// ProductRepository handles store operations for Product.
type ProductRepository struct {
	base[models.Product]
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{newBase[models.Product](db.Collection(models.ProductCollection), "product")}
}

// Create persists a new product, generating its id.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return r.insert(ctx, p)
}

// ByCategory returns every product referencing the given category.
func (r *ProductRepository) ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return r.Find(ctx, bson.M{"categoryId": categoryID})
}
