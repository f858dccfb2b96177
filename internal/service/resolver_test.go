package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

func TestReferenceResolver_ResolveCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Should name every missing category", func(t *testing.T) {
		categoryRepo := &mockCategoryRepo{}
		categoryRepo.On("GetCategories", mock.Anything, []int64{1, 2, 99, 100}).
			Return([]model.Category{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil)

		resolver := NewReferenceResolver(&mockBrandRepo{}, categoryRepo)
		_, err := resolver.ResolveCategories(ctx, []int64{100, 1, 99, 2})

		require.Error(t, err)
		var zerr zerror.ZError
		require.True(t, errors.As(err, &zerr))
		assert.Equal(t, zerror.StatusNotFound, zerr.Status())
		assert.Equal(t, "Resources are not found: [Category[99] Category[100]]", zerr.Msg())
	})

	t.Run("Should return categories when all exist", func(t *testing.T) {
		categoryRepo := &mockCategoryRepo{}
		categoryRepo.On("GetCategories", mock.Anything, []int64{1, 2}).
			Return([]model.Category{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil)

		resolver := NewReferenceResolver(&mockBrandRepo{}, categoryRepo)
		categories, err := resolver.ResolveCategories(ctx, []int64{2, 1, 2})

		require.NoError(t, err)
		assert.Equal(t, []model.Category{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, categories)
	})

	t.Run("Should pass through store errors", func(t *testing.T) {
		categoryRepo := &mockCategoryRepo{}
		categoryRepo.On("GetCategories", mock.Anything, []int64{1}).
			Return([]model.Category(nil), errors.New("connection reset"))

		resolver := NewReferenceResolver(&mockBrandRepo{}, categoryRepo)
		_, err := resolver.ResolveCategories(ctx, []int64{1})

		require.Error(t, err)
		assert.False(t, errors.Is(err, apperr.NotFoundErr))
	})
}

func TestReferenceResolver_ResolveBrand(t *testing.T) {
	brandRepo := &mockBrandRepo{}
	brandRepo.On("GetBrand", mock.Anything, int64(3)).
		Return(model.Brand{}, apperr.NewNotFound(apperr.Resource(apperr.ResourceBrand, 3)))

	_, err := NewReferenceResolver(brandRepo, &mockCategoryRepo{}).ResolveBrand(context.Background(), 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.NotFoundErr))
	assert.Contains(t, err.Error(), "Brand[3]")
}
