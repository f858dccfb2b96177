package service

import (
	"context"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// featuredRatingThreshold is the rating above which a product becomes featured.
const featuredRatingThreshold = 8

// ProductParams carries the supplied product fields. Nil means the field was not supplied.
type ProductParams struct {
	Name           *string
	Rating         *float64
	Featured       *bool
	ReceiptDate    *time.Time
	ExpirationDate *time.Time
	BrandID        *int64
	CategoryIDs    []int64
	ItemsInStock   *int
}

// productUpdateSet holds the present fields of ProductParams with references resolved.
type productUpdateSet struct {
	name           *string
	rating         *float64
	featured       *bool
	receiptDate    *time.Time
	expirationDate *time.Time
	brand          *model.Brand
	categories     []model.Category
	itemsInStock   *int
}

func newProductUpdateSet(ctx context.Context, resolver ReferenceResolver, params ProductParams) (productUpdateSet, error) {
	set := productUpdateSet{
		name:           params.Name,
		rating:         params.Rating,
		featured:       params.Featured,
		receiptDate:    params.ReceiptDate,
		expirationDate: params.ExpirationDate,
		itemsInStock:   params.ItemsInStock,
	}

	if params.BrandID != nil {
		brand, err := resolver.ResolveBrand(ctx, *params.BrandID)
		if err != nil {
			return productUpdateSet{}, err
		}
		set.brand = &brand
	}

	if params.CategoryIDs != nil {
		categories, err := resolver.ResolveCategories(ctx, params.CategoryIDs)
		if err != nil {
			return productUpdateSet{}, err
		}
		set.categories = categories
	}

	if params.Rating != nil {
		set.featured = ptr.New(*params.Rating > featuredRatingThreshold)
	}

	return set, nil
}

func (u productUpdateSet) hasCategories() bool {
	return u.categories != nil
}

// apply copies the present fields onto p.
func (u productUpdateSet) apply(p *model.Product) {
	if u.name != nil {
		p.Name = *u.name
	}
	if u.rating != nil {
		p.Rating = *u.rating
	}
	if u.featured != nil {
		p.Featured = *u.featured
	}
	if u.receiptDate != nil {
		p.ReceiptDate = ptr.New(*u.receiptDate)
	}
	if u.expirationDate != nil {
		p.ExpirationDate = ptr.New(*u.expirationDate)
	}
	if u.brand != nil {
		p.Brand = *u.brand
	}
	if u.hasCategories() {
		p.Categories = u.categories
	}
	if u.itemsInStock != nil {
		p.ItemsInStock = *u.itemsInStock
	}
}
