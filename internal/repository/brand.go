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

type BrandRepository interface {
	WithDB(db db.DB) BrandRepository
	GetBrand(ctx context.Context, id int64) (model.Brand, error)
	ListAllBrands(ctx context.Context) ([]model.Brand, error)
	// UpsertBrands writes brands keyed by their id and moves the id sequence past the highest id.
	UpsertBrands(ctx context.Context, brands []model.Brand) error
}

type brandRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewBrandRepository(db db.DB, queries sqlc.Queries) BrandRepository {
	return &brandRepository{
		db:      db,
		queries: queries,
	}
}

func (r brandRepository) WithDB(db db.DB) BrandRepository {
	return &brandRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r brandRepository) GetBrand(ctx context.Context, id int64) (model.Brand, error) {
	brand, err := r.queries.BrandGet(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Brand{}, apperr.NewNotFound(apperr.Resource(apperr.ResourceBrand, id))
		}
		return model.Brand{}, fmt.Errorf("get brand: %w", err)
	}

	return model.Brand(brand), nil
}

func (r brandRepository) ListAllBrands(ctx context.Context) ([]model.Brand, error) {
	brands, err := r.queries.BrandListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("list all brands: %w", err)
	}

	modelBrands := make([]model.Brand, 0, len(brands))
	for _, brand := range brands {
		modelBrands = append(modelBrands, model.Brand(brand))
	}

	return modelBrands, nil
}

func (r brandRepository) UpsertBrands(ctx context.Context, brands []model.Brand) error {
	for _, brand := range brands {
		if err := r.queries.BrandUpsert(ctx, r.db, sqlc.BrandUpsertParams{
			ID:          brand.ID,
			Name:        brand.Name,
			CountryCode: brand.CountryCode,
		}); err != nil {
			return fmt.Errorf("upsert brand %d: %w", brand.ID, err)
		}
	}

	if err := r.queries.BrandSyncIDSequence(ctx, r.db); err != nil {
		return fmt.Errorf("sync brand id sequence: %w", err)
	}

	return nil
}
