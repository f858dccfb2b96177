package event

import (
	"strconv"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

// ProductTopics lists every topic a product mutation publishes to.
var ProductTopics = []string{TopicProductCreated, TopicProductUpdated, TopicProductDeleted}

// ProductEvent is the payload of every product topic. Only ProductID and OccurredAt
// are set for deletions.
type ProductEvent struct {
	ProductID    int64     `json:"product_id"`
	Name         string    `json:"name,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	Featured     bool      `json:"featured,omitempty"`
	BrandID      int64     `json:"brand_id,omitempty"`
	CategoryIDs  []int64   `json:"category_ids,omitempty"`
	ItemsInStock int       `json:"items_in_stock,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewProductEvent(p model.Product, occurredAt time.Time) ProductEvent {
	return ProductEvent{
		ProductID:    p.ID,
		Name:         p.Name,
		Rating:       p.Rating,
		Featured:     p.Featured,
		BrandID:      p.Brand.ID,
		CategoryIDs:  p.CategoryIDs(),
		ItemsInStock: p.ItemsInStock,
		OccurredAt:   occurredAt.UTC(),
	}
}

func NewProductDeletedEvent(id int64, occurredAt time.Time) ProductEvent {
	return ProductEvent{
		ProductID:  id,
		OccurredAt: occurredAt.UTC(),
	}
}

// PartitionKey keeps every event of one product on the same partition.
func (e ProductEvent) PartitionKey() string {
	return strconv.FormatInt(e.ProductID, 10)
}
