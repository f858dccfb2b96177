package model

import (
	"time"
)

// Product is a catalog item together with its resolved brand and categories.
type Product struct {
	ID             int64
	Name           string
	Rating         float64
	Featured       bool
	CreatedAt      time.Time
	ExpirationDate *time.Time
	Brand          Brand
	Categories     []Category
	ItemsInStock   int
	ReceiptDate    *time.Time
}

// CategoryIDs returns the ids of the product categories in their current order.
func (p Product) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
