package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/event"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/dbtest"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

var testNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type productServiceFixture struct {
	db           *dbtest.FakeDB
	productRepo  *mockProductRepo
	brandRepo    *mockBrandRepo
	categoryRepo *mockCategoryRepo
	outboxRepo   *mockOutboxMsgRepo
	svc          *productService
}

func newProductServiceFixture() productServiceFixture {
	f := productServiceFixture{
		db:           &dbtest.FakeDB{},
		productRepo:  &mockProductRepo{},
		brandRepo:    &mockBrandRepo{},
		categoryRepo: &mockCategoryRepo{},
		outboxRepo:   &mockOutboxMsgRepo{},
	}
	f.svc = NewProductService(
		f.db,
		f.productRepo,
		f.outboxRepo,
		NewReferenceResolver(f.brandRepo, f.categoryRepo),
	).(*productService)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func outboxMsgWithTopic(topic string) any {
	return mock.MatchedBy(func(msg repository.OutboxMsg) bool {
		return msg.Topic == topic
	})
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	brand := model.Brand{ID: 1, Name: "Acme", CountryCode: "US"}
	categories := []model.Category{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	params := ProductParams{
		Name:         ptr.New("Phone"),
		Rating:       ptr.New(9.0),
		BrandID:      ptr.New(int64(1)),
		CategoryIDs:  []int64{2, 1},
		ItemsInStock: ptr.New(3),
	}

	t.Run("Should create product and write event", func(t *testing.T) {
		f := newProductServiceFixture()
		f.brandRepo.On("GetBrand", mock.Anything, int64(1)).Return(brand, nil)
		f.categoryRepo.On("GetCategories", mock.Anything, []int64{1, 2}).Return(categories, nil)
		f.productRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("model.Product")).Return(int64(42), nil)

		var written repository.OutboxMsg
		f.outboxRepo.On("CreateOutboxMsg", mock.Anything, outboxMsgWithTopic(event.TopicProductCreated)).
			Run(func(args mock.Arguments) { written = args.Get(1).(repository.OutboxMsg) }).
			Return(nil)

		product, err := f.svc.CreateProduct(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, model.Product{
			ID:           42,
			Name:         "Phone",
			Rating:       9,
			Featured:     true,
			CreatedAt:    testNow,
			Brand:        brand,
			Categories:   categories,
			ItemsInStock: 3,
		}, product)
		assert.Equal(t, 1, f.db.Commits)

		var ev event.ProductEvent
		require.NoError(t, json.Unmarshal(written.Payload, &ev))
		assert.Equal(t, int64(42), ev.ProductID)
		assert.Equal(t, []int64{1, 2}, ev.CategoryIDs)
		assert.Equal(t, "42", *written.PartitionKey)
	})

	t.Run("Should abort when a category is missing", func(t *testing.T) {
		f := newProductServiceFixture()
		f.brandRepo.On("GetBrand", mock.Anything, int64(1)).Return(brand, nil)
		f.categoryRepo.On("GetCategories", mock.Anything, []int64{1, 2}).Return(categories[:1], nil)

		_, err := f.svc.CreateProduct(ctx, params)

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.NotFoundErr))
		assert.Contains(t, err.Error(), "Category[2]")
		assert.Equal(t, 1, f.db.Rollbacks)
		f.productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		f.outboxRepo.AssertNotCalled(t, "CreateOutboxMsg", mock.Anything, mock.Anything)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	stored := model.Product{
		ID:           7,
		Name:         "Phone",
		Rating:       9,
		Featured:     true,
		CreatedAt:    testNow,
		Brand:        model.Brand{ID: 1, Name: "Acme", CountryCode: "US"},
		Categories:   []model.Category{{ID: 1, Name: "a"}},
		ItemsInStock: 3,
	}

	t.Run("Should change only supplied fields", func(t *testing.T) {
		f := newProductServiceFixture()
		f.productRepo.On("GetProduct", mock.Anything, int64(7)).Return(stored, nil)
		f.productRepo.On("UpdateProduct", mock.Anything, mock.AnythingOfType("model.Product")).Return(nil)
		f.outboxRepo.On("CreateOutboxMsg", mock.Anything, outboxMsgWithTopic(event.TopicProductUpdated)).Return(nil)

		product, err := f.svc.UpdateProduct(ctx, 7, ProductParams{Rating: ptr.New(0.0)})
		require.NoError(t, err)

		want := stored
		want.Rating = 0
		want.Featured = false
		assert.Equal(t, want, product)
		f.productRepo.AssertCalled(t, "UpdateProduct", mock.Anything, want)
		f.productRepo.AssertNotCalled(t, "SetProductCategories", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should replace categories when supplied", func(t *testing.T) {
		f := newProductServiceFixture()
		f.productRepo.On("GetProduct", mock.Anything, int64(7)).Return(stored, nil)
		f.categoryRepo.On("GetCategories", mock.Anything, []int64{2, 3}).
			Return([]model.Category{{ID: 2, Name: "b"}, {ID: 3, Name: "c"}}, nil)
		f.productRepo.On("UpdateProduct", mock.Anything, mock.AnythingOfType("model.Product")).Return(nil)
		f.productRepo.On("SetProductCategories", mock.Anything, int64(7), []int64{2, 3}).Return(nil)
		f.outboxRepo.On("CreateOutboxMsg", mock.Anything, outboxMsgWithTopic(event.TopicProductUpdated)).Return(nil)

		product, err := f.svc.UpdateProduct(ctx, 7, ProductParams{CategoryIDs: []int64{3, 2}})
		require.NoError(t, err)

		assert.Equal(t, []int64{2, 3}, product.CategoryIDs())
		f.productRepo.AssertExpectations(t)
	})

	t.Run("Should fail for missing product", func(t *testing.T) {
		f := newProductServiceFixture()
		f.productRepo.On("GetProduct", mock.Anything, int64(8)).
			Return(model.Product{}, apperr.NewNotFound(apperr.Resource(apperr.ResourceProduct, 8)))

		_, err := f.svc.UpdateProduct(ctx, 8, ProductParams{Name: ptr.New("x")})

		assert.True(t, errors.Is(err, apperr.NotFoundErr))
		assert.Equal(t, 1, f.db.Rollbacks)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete and write event", func(t *testing.T) {
		f := newProductServiceFixture()
		f.productRepo.On("DeleteProduct", mock.Anything, int64(5)).Return(nil)
		f.outboxRepo.On("CreateOutboxMsg", mock.Anything, outboxMsgWithTopic(event.TopicProductDeleted)).Return(nil)

		require.NoError(t, f.svc.DeleteProduct(ctx, 5))
		assert.Equal(t, 1, f.db.Commits)
	})

	t.Run("Should report missing product", func(t *testing.T) {
		f := newProductServiceFixture()
		f.productRepo.On("DeleteProduct", mock.Anything, int64(5)).
			Return(apperr.NewNotFound(apperr.Resource(apperr.ResourceProduct, 5)))

		err := f.svc.DeleteProduct(ctx, 5)

		assert.True(t, errors.Is(err, apperr.NotFoundErr))
		assert.Contains(t, err.Error(), "Product[5]")
		f.outboxRepo.AssertNotCalled(t, "CreateOutboxMsg", mock.Anything, mock.Anything)
	})
}
