package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

// ProfileStore is the slice of the profile repository the service uses.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Profile, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	ExistsByName(ctx context.Context, name string, exclude primitive.ObjectID) (bool, error)
}

// ProfileInput carries the writable fields of a profile.
type ProfileInput struct {
	Name        string
	Description *string
}

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Create(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	profile := &models.Profile{Name: in.Name}
	if in.Description != nil {
		profile.Description = *in.Description
	}
	if errs := validate.Struct(profile); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	if err := s.checkName(ctx, in.Name, primitive.NilObjectID); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, id primitive.ObjectID, in ProfileInput) (*models.Profile, error) {
	probe := &models.Profile{Name: in.Name}
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

func (s *ProfileService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteByID(ctx, id)
}

func (s *ProfileService) checkName(ctx context.Context, name string, exclude primitive.ObjectID) error {
	taken, err := s.store.ExistsByName(ctx, name, exclude)
	if err != nil {
		return err
	}
	if taken {
		return validationErr(map[string]string{"name": "name is already in use"})
	}
	return nil
}
