package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

// ProductStore is the slice of the product repository the service uses.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Product, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	Available   *bool
	CategoryID  primitive.ObjectID
}

type ProductService struct {
	products   ProductStore
	categories CategoryFinder
}

func NewProductService(products ProductStore, categories CategoryFinder) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:       in.Name,
		Price:      in.Price,
		Available:  true,
		CategoryID: in.CategoryID,
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		product.Available = *in.Available
	}
	if errs := validate.Struct(product); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, in ProductInput) (*models.Product, error) {
	probe := &models.Product{Name: in.Name, Price: in.Price, Available: true, CategoryID: in.CategoryID}
	if errs := validate.Struct(probe); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	fields := bson.M{
		"name":       in.Name,
		"price":      in.Price,
		"categoryId": in.CategoryID,
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ImageURL != nil {
		fields["imageUrl"] = *in.ImageURL
	}
	if in.Available != nil {
		fields["available"] = *in.Available
	}
	return s.products.UpdateByID(ctx, id, fields)
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.products.DeleteByID(ctx, id)
}

func (s *ProductService) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) (*models.Product, error) {
	return s.products.UpdateByID(ctx, id, bson.M{"available": available})
}

func (s *ProductService) checkCategory(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.categories.FindByID(ctx, id)
	return refCheck(err, "category")
}
