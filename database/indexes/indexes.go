// Package indexes declares the unique indexes backing the uniqueness
// constraints: profile and category names, user emails, client national
// ids, and one cart per client.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/database"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
)

type spec struct {
	collection string
	field      string
}

var unique = []spec{
	{models.ProfileCollection, "name"},
	{models.CategoryCollection, "name"},
	{models.UserCollection, "email"},
	{models.ClientCollection, "nationalId"},
	{models.CartCollection, "clientId"},
}

// Ensure creates every declared index. Creation is idempotent; an index
// that already exists is left alone.
func Ensure(ctx context.Context, db *database.DB) error {
	for _, s := range unique {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: s.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		name, err := db.Collection(s.collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("indexes: %s.%s: %w", s.collection, s.field, err)
		}
		logger.Debug("index ensured", "collection", s.collection, "index", name)
	}
	return nil
}
