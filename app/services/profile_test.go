package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/nikkei/pkg/errors"
)

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()
	store := newFakeProfileStore()
	svc := NewProfileService(store)

	p, err := svc.Create(ctx, ProfileInput{Name: "Administrator"})
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
	assert.Equal(t, "Administrator", p.Name)

	_, err = svc.Create(ctx, ProfileInput{Name: "Administrator"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidation, errors.CodeOf(err))
}

func TestProfileService_Create_MissingName(t *testing.T) {
	svc := NewProfileService(newFakeProfileStore())

	_, err := svc.Create(context.Background(), ProfileInput{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidation, errors.CodeOf(err))
}

func TestProfileService_Update_KeepsOwnName(t *testing.T) {
	ctx := context.Background()
	store := newFakeProfileStore()
	svc := NewProfileService(store)

	p, err := svc.Create(ctx, ProfileInput{Name: "Customer"})
	require.NoError(t, err)

	// Renaming a profile to its current name is not a collision.
	got, err := svc.Update(ctx, p.ID, ProfileInput{Name: "Customer"})
	require.NoError(t, err)
	assert.Equal(t, "Customer", got.Name)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.Create(ctx, CategoryInput{Name: "Sushi"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CategoryInput{Name: "Sushi"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidation, errors.CodeOf(err))
}
