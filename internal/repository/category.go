package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

type CategoryRepository interface {
	WithDB(db db.DB) CategoryRepository
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	ListAllCategories(ctx context.Context) ([]model.Category, error)
	// GetCategories returns the categories that exist among ids, ordered by id.
	// Missing ids are not an error here.
	GetCategories(ctx context.Context, ids []int64) ([]model.Category, error)
	// UpsertCategories writes categories keyed by their id and moves the id sequence past the highest id.
	UpsertCategories(ctx context.Context, categories []model.Category) error
}

type categoryRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewCategoryRepository(db db.DB, queries sqlc.Queries) CategoryRepository {
	return &categoryRepository{
		db:      db,
		queries: queries,
	}
}

func (r categoryRepository) WithDB(db db.DB) CategoryRepository {
	return &categoryRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r categoryRepository) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	category, err := r.queries.CategoryGet(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, apperr.NewNotFound(apperr.Resource(apperr.ResourceCategory, id))
		}
		return model.Category{}, fmt.Errorf("get category: %w", err)
	}

	return model.Category(category), nil
}

func (r categoryRepository) ListAllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := r.queries.CategoryListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("list all categories: %w", err)
	}

	return toModelCategories(categories), nil
}

func (r categoryRepository) GetCategories(ctx context.Context, ids []int64) ([]model.Category, error) {
	categories, err := r.queries.CategoryListByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, fmt.Errorf("list categories by ids: %w", err)
	}

	return toModelCategories(categories), nil
}

func (r categoryRepository) UpsertCategories(ctx context.Context, categories []model.Category) error {
	for _, category := range categories {
		if err := r.queries.CategoryUpsert(ctx, r.db, sqlc.CategoryUpsertParams{
			ID:   category.ID,
			Name: category.Name,
		}); err != nil {
			return fmt.Errorf("upsert category %d: %w", category.ID, err)
		}
	}

	if err := r.queries.CategorySyncIDSequence(ctx, r.db); err != nil {
		return fmt.Errorf("sync category id sequence: %w", err)
	}

	return nil
}

func toModelCategories(categories []sqlc.Category) []model.Category {
	modelCategories := make([]model.Category, 0, len(categories))
	for _, category := range categories {
		modelCategories = append(modelCategories, model.Category(category))
	}
	return modelCategories
}
