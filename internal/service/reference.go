package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

// ReferenceData is a full set of brands and categories to load.
type ReferenceData struct {
	Brands     []model.Brand
	Categories []model.Category
}

// ReferenceService reads brands and categories and loads them in bulk.
type ReferenceService interface {
	ListAllBrands(ctx context.Context) ([]model.Brand, error)
	GetBrand(ctx context.Context, id int64) (model.Brand, error)
	ListAllCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	// ImportReferenceData upserts data in one transaction.
	ImportReferenceData(ctx context.Context, data ReferenceData) error
}

type referenceService struct {
	db           db.DB
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
}

func NewReferenceService(
	db db.DB,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
) ReferenceService {
	return &referenceService{
		db:           db,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *referenceService) ListAllBrands(ctx context.Context) ([]model.Brand, error) {
	brands, err := s.brandRepo.ListAllBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("brand repository list all brands: %w", err)
	}
	return brands, nil
}

func (s *referenceService) GetBrand(ctx context.Context, id int64) (model.Brand, error) {
	brand, err := s.brandRepo.GetBrand(ctx, id)
	if err != nil {
		return model.Brand{}, fmt.Errorf("brand repository get brand: %w", err)
	}
	return brand, nil
}

func (s *referenceService) ListAllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.ListAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category repository list all categories: %w", err)
	}
	return categories, nil
}

func (s *referenceService) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	category, err := s.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("category repository get category: %w", err)
	}
	return category, nil
}

// ImportReferenceData upserts every brand and category in one transaction.
// An id listed twice in the same set is a Conflict, since either row could win.
func (s *referenceService) ImportReferenceData(ctx context.Context, data ReferenceData) error {
	var duplicated []string
	for _, id := range duplicatedIDs(data.Brands, func(b model.Brand) int64 { return b.ID }) {
		duplicated = append(duplicated, apperr.Resource(apperr.ResourceBrand, id))
	}
	for _, id := range duplicatedIDs(data.Categories, func(c model.Category) int64 { return c.ID }) {
		duplicated = append(duplicated, apperr.Resource(apperr.ResourceCategory, id))
	}
	if len(duplicated) > 0 {
		return apperr.NewDuplicated(duplicated...)
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if len(data.Brands) > 0 {
			if err := s.brandRepo.WithDB(db).UpsertBrands(ctx, data.Brands); err != nil {
				return fmt.Errorf("brand repository upsert brands: %w", err)
			}
		}

		if len(data.Categories) > 0 {
			if err := s.categoryRepo.WithDB(db).UpsertCategories(ctx, data.Categories); err != nil {
				return fmt.Errorf("category repository upsert categories: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

// duplicatedIDs returns the ids seen more than once, each reported once, in first-repeat order.
func duplicatedIDs[T any](items []T, id func(T) int64) []int64 {
	seen := make(map[int64]int, len(items))
	var dups []int64
	for _, item := range items {
		key := id(item)
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, key)
		}
	}
	return dups
}
