package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	// GetProduct returns the product with its brand and categories loaded.
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	// CreateProduct inserts the product row and its category links and returns the new id.
	CreateProduct(ctx context.Context, product model.Product) (int64, error)
	// UpdateProduct writes every scalar column and the brand of the product. Category links are untouched.
	UpdateProduct(ctx context.Context, product model.Product) error
	// SetProductCategories replaces the category links of a product.
	SetProductCategories(ctx context.Context, productID int64, categoryIDs []int64) error
	DeleteProduct(ctx context.Context, id int64) error
}

type productRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewProductRepository(db db.DB, queries sqlc.Queries) ProductRepository {
	return &productRepository{
		db:      db,
		queries: queries,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	row, err := r.queries.ProductGet(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.NewNotFound(apperr.Resource(apperr.ResourceProduct, id))
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	categories, err := r.listCategoriesByProductIDs(ctx, []int64{row.ID})
	if err != nil {
		return model.Product{}, err
	}

	product := sqlcProductToModelProduct(sqlc.ProductListAllRow(row))
	product.Categories = categories[row.ID]

	return product, nil
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.queries.ProductListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	categories, err := r.listCategoriesByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		product := sqlcProductToModelProduct(row)
		product.Categories = categories[row.ID]
		products = append(products, product)
	}

	return products, nil
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (int64, error) {
	itemsInStock, err := toInt32(product.ItemsInStock)
	if err != nil {
		return 0, err
	}

	id, err := r.queries.ProductCreate(ctx, r.db, sqlc.ProductCreateParams{
		Name:           product.Name,
		Rating:         product.Rating,
		Featured:       product.Featured,
		CreatedAt:      product.CreatedAt,
		ExpirationDate: product.ExpirationDate,
		BrandID:        product.Brand.ID,
		ItemsInStock:   itemsInStock,
		ReceiptDate:    product.ReceiptDate,
	})
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	if err := r.queries.ProductCategoryCreateMany(ctx, r.db, sqlc.ProductCategoryCreateManyParams{
		ProductID:   id,
		CategoryIds: product.CategoryIDs(),
	}); err != nil {
		return 0, fmt.Errorf("create product categories: %w", err)
	}

	return id, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	itemsInStock, err := toInt32(product.ItemsInStock)
	if err != nil {
		return err
	}

	if err := r.queries.ProductUpdate(ctx, r.db, sqlc.ProductUpdateParams{
		ID:             product.ID,
		Name:           product.Name,
		Rating:         product.Rating,
		Featured:       product.Featured,
		ExpirationDate: product.ExpirationDate,
		BrandID:        product.Brand.ID,
		ItemsInStock:   itemsInStock,
		ReceiptDate:    product.ReceiptDate,
	}); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (r productRepository) SetProductCategories(ctx context.Context, productID int64, categoryIDs []int64) error {
	if err := r.queries.ProductCategoryDeleteByProductID(ctx, r.db, productID); err != nil {
		return fmt.Errorf("delete product categories: %w", err)
	}

	if err := r.queries.ProductCategoryCreateMany(ctx, r.db, sqlc.ProductCategoryCreateManyParams{
		ProductID:   productID,
		CategoryIds: categoryIDs,
	}); err != nil {
		return fmt.Errorf("create product categories: %w", err)
	}

	return nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) error {
	affected, err := r.queries.ProductDelete(ctx, r.db, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if affected == 0 {
		return apperr.NewNotFound(apperr.Resource(apperr.ResourceProduct, id))
	}

	return nil
}

func (r productRepository) listCategoriesByProductIDs(ctx context.Context, productIDs []int64) (map[int64][]model.Category, error) {
	rows, err := r.queries.CategoryListByProductIDs(ctx, r.db, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list categories by product ids: %w", err)
	}

	categories := make(map[int64][]model.Category, len(productIDs))
	for _, row := range rows {
		categories[row.ProductID] = append(categories[row.ProductID], model.Category{
			ID:   row.ID,
			Name: row.Name,
		})
	}

	return categories, nil
}

func sqlcProductToModelProduct(row sqlc.ProductListAllRow) model.Product {
	return model.Product{
		ID:             row.ID,
		Name:           row.Name,
		Rating:         row.Rating,
		Featured:       row.Featured,
		CreatedAt:      row.CreatedAt,
		ExpirationDate: row.ExpirationDate,
		Brand: model.Brand{
			ID:          row.BrandID,
			Name:        row.BrandName,
			CountryCode: row.BrandCountryCode,
		},
		ItemsInStock: int(row.ItemsInStock),
		ReceiptDate:  row.ReceiptDate,
	}
}

func toInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("items in stock out of range: %d", v)
	}
	return int32(v), nil
}
