// Package seeders loads a demo data set for local development: the two
// standard profiles, a small catalog, one registered client with a user
// account, and the client's (empty) cart.
//
// Carts are provisioned here and only here; the API never creates one.
package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/app/repositories"
	"github.com/shashiranjanraj/nikkei/pkg/database"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
)

// Run inserts the demo documents. It is not idempotent: run it against an
// empty database, or the unique indexes will reject the rerun.
func Run(ctx context.Context, db *database.DB) error {
	profiles := repositories.NewProfileRepository(db)
	categories := repositories.NewCategoryRepository(db)
	products := repositories.NewProductRepository(db)
	clients := repositories.NewClientRepository(db)
	users := repositories.NewUserRepository(db)
	carts := repositories.NewCartRepository(db)

	admin := &models.Profile{Name: "Administrator", Description: "Full catalog and order management"}
	customer := &models.Profile{Name: "Customer", Description: "Shop, cart and order operations"}
	for _, p := range []*models.Profile{admin, customer} {
		if err := profiles.Create(ctx, p); err != nil {
			return err
		}
	}

	sushi := &models.Category{Name: "Sushi", Description: "Rolls and handrolls"}
	drinks := &models.Category{Name: "Drinks"}
	for _, c := range []*models.Category{sushi, drinks} {
		if err := categories.Create(ctx, c); err != nil {
			return err
		}
	}

	catalog := []*models.Product{
		{Name: "Roll", Price: 5000, Available: true, CategoryID: sushi.ID},
		{Name: "Acevichado Roll", Description: "Shrimp, avocado, acevichada sauce", Price: 7500, Available: true, CategoryID: sushi.ID},
		{Name: "Lemonade", Price: 1500, Available: true, CategoryID: drinks.ID},
	}
	for _, p := range catalog {
		if err := products.Create(ctx, p); err != nil {
			return err
		}
	}

	birthDate := time.Date(1992, time.March, 14, 0, 0, 0, 0, time.UTC)
	client := &models.Client{
		FullName:   "Ana Sato",
		NationalID: "12345678-9",
		BirthDate:  &birthDate,
		Phone:      "+56 9 1234 5678",
		Addresses: []models.Address{{
			ID:       primitive.NewObjectID(),
			Street:   "Av. Providencia 1234",
			District: "Providencia",
			Region:   "RM",
		}},
	}
	if err := clients.Create(ctx, client); err != nil {
		return err
	}

	user := &models.User{
		Email:     "ana@example.com",
		Password:  "s3cret",
		Status:    models.UserStatusActive,
		ClientID:  client.ID,
		ProfileID: customer.ID,
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	cart := &models.Cart{ClientID: client.ID, LastAccessed: time.Now().UTC()}
	if err := carts.Create(ctx, cart); err != nil {
		return err
	}

	logger.Info("seed data loaded",
		"profiles", 2, "categories", 2, "products", len(catalog),
		"client", client.ID.Hex(), "user", user.Email)
	return nil
}
