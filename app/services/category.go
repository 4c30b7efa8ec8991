package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

// CategoryStore is the slice of the category repository the service uses.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Category, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	ExistsByName(ctx context.Context, name string, exclude primitive.ObjectID) (bool, error)
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description *string
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	category := &models.Category{Name: in.Name}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if errs := validate.Struct(category); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	if err := s.checkName(ctx, in.Name, primitive.NilObjectID); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, in CategoryInput) (*models.Category, error) {
	probe := &models.Category{Name: in.Name}
	if errs := validate.Struct(probe); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	if err := s.checkName(ctx, in.Name, id); err != nil {
		return nil, err
	}
	fields := bson.M{"name": in.Name}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	return s.store.UpdateByID(ctx, id, fields)
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteByID(ctx, id)
}

func (s *CategoryService) checkName(ctx context.Context, name string, exclude primitive.ObjectID) error {
	taken, err := s.store.ExistsByName(ctx, name, exclude)
	if err != nil {
		return err
	}
	if taken {
		return validationErr(map[string]string{"name": "name is already in use"})
	}
	return nil
}
