package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) WithDB(db.DB) repository.ProductRepository { return m }

func (m *mockProductRepo) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, product model.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) UpdateProduct(ctx context.Context, product model.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) SetProductCategories(ctx context.Context, productID int64, categoryIDs []int64) error {
	return m.Called(ctx, productID, categoryIDs).Error(0)
}

func (m *mockProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBrandRepo struct {
	mock.Mock
}

func (m *mockBrandRepo) WithDB(db.DB) repository.BrandRepository { return m }

func (m *mockBrandRepo) GetBrand(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *mockBrandRepo) ListAllBrands(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *mockBrandRepo) UpsertBrands(ctx context.Context, brands []model.Brand) error {
	return m.Called(ctx, brands).Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) WithDB(db.DB) repository.CategoryRepository { return m }

func (m *mockCategoryRepo) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *mockCategoryRepo) ListAllCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetCategories(ctx context.Context, ids []int64) ([]model.Category, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryRepo) UpsertCategories(ctx context.Context, categories []model.Category) error {
	return m.Called(ctx, categories).Error(0)
}

type mockOutboxMsgRepo struct {
	mock.Mock
}

func (m *mockOutboxMsgRepo) WithDB(db.DB) repository.OutboxMsgRepository { return m }

func (m *mockOutboxMsgRepo) CreateOutboxMsg(ctx context.Context, msg repository.OutboxMsg) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockOutboxMsgRepo) ListUnprocessedOutboxMsgs(ctx context.Context, limit int32) ([]repository.OutboxMsg, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]repository.OutboxMsg), args.Error(1)
}

func (m *mockOutboxMsgRepo) BulkUpdateOutboxMsgs(ctx context.Context, outcomes []repository.OutboxMsgOutcome) error {
	return m.Called(ctx, outcomes).Error(0)
}
