// Package graphql defines the API surface: the object and input types, the
// root query and mutation objects, and the HTTP handler that executes
// documents against the schema.
//
// Reads go straight to the repositories through the reader interfaces
// below; writes go through the services, which own validation and
// referential-integrity checks.
package graphql

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/app/services"
)

type ProfileReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	All(ctx context.Context) ([]models.Profile, error)
}

type CategoryReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
}

type ClientReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
}

type CartReader interface {
	FindByClient(ctx context.Context, clientID primitive.ObjectID) (*models.Cart, error)
}

type OrderReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ByClient(ctx context.Context, clientID primitive.ObjectID) ([]models.Order, error)
}

// Deps collects everything the schema resolvers call into.
type Deps struct {
	Profiles   ProfileReader
	Categories CategoryReader
	Products   ProductReader
	Users      UserReader
	Clients    ClientReader
	Carts      CartReader
	Orders     OrderReader

	ProfileService  *services.ProfileService
	CategoryService *services.CategoryService
	ProductService  *services.ProductService
	UserService     *services.UserService
	ClientService   *services.ClientService
	CartService     *services.CartService
	OrderService    *services.OrderService
}
