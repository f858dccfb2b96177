package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

// ReferenceResolver turns brand and category ids into stored entities.
type ReferenceResolver interface {
	WithDB(db db.DB) ReferenceResolver
	ResolveBrand(ctx context.Context, id int64) (model.Brand, error)
	// ResolveCategories fails with a single NotFound naming every missing id in ascending order.
	ResolveCategories(ctx context.Context, ids []int64) ([]model.Category, error)
}

type referenceResolver struct {
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
}

func NewReferenceResolver(
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
) ReferenceResolver {
	return &referenceResolver{
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

func (r *referenceResolver) WithDB(db db.DB) ReferenceResolver {
	return &referenceResolver{
		brandRepo:    r.brandRepo.WithDB(db),
		categoryRepo: r.categoryRepo.WithDB(db),
	}
}

func (r *referenceResolver) ResolveBrand(ctx context.Context, id int64) (model.Brand, error) {
	brand, err := r.brandRepo.GetBrand(ctx, id)
	if err != nil {
		return model.Brand{}, fmt.Errorf("get brand: %w", err)
	}
	return brand, nil
}

func (r *referenceResolver) ResolveCategories(ctx context.Context, ids []int64) ([]model.Category, error) {
	wanted := slices.Clone(ids)
	slices.Sort(wanted)
	wanted = slices.Compact(wanted)

	categories, err := r.categoryRepo.GetCategories(ctx, wanted)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	if len(categories) == len(wanted) {
		return categories, nil
	}

	found := make(map[int64]struct{}, len(categories))
	for _, c := range categories {
		found[c.ID] = struct{}{}
	}

	missing := make([]string, 0, len(wanted)-len(categories))
	for _, id := range wanted {
		if _, ok := found[id]; !ok {
			missing = append(missing, apperr.Resource(apperr.ResourceCategory, id))
		}
	}

	return nil, apperr.NewNotFound(missing...)
}
