// Package services implements the mutation flows on top of the
// repositories: entity CRUD with uniqueness and referential-integrity
// checks, the cart line-item flow, the order snapshot flow, and the client
// address flow.
//
// Services depend on narrow store interfaces rather than the concrete
// repositories so each flow tests in isolation.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

// ProfileFinder resolves a profile reference.
type ProfileFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
}

// CategoryFinder resolves a category reference.
type CategoryFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
}

// ProductFinder resolves a product reference.
type ProductFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

// ClientFinder resolves a client reference.
type ClientFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
}

// AddressInput carries the fields of an address subdocument.
type AddressInput struct {
	Street       string
	District     string
	Region       string
	Instructions *string
}

func (in AddressInput) model() models.Address {
	addr := models.Address{
		Street:   in.Street,
		District: in.District,
		Region:   in.Region,
	}
	if in.Instructions != nil {
		addr.Instructions = *in.Instructions
	}
	return addr
}

func validationErr(fields map[string]string) error {
	return errors.New(errors.CodeValidation, "validation failed").WithFields(fields)
}

// refCheck turns a NotFound from a reference lookup into BadInput: the
// caller named a foreign entity that does not exist.
func refCheck(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.IsNotFound(err) {
		return errors.Newf(errors.CodeBadInput, "selected %s does not exist", what)
	}
	return err
}
