package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

// httpTime renders a datetime as an RFC-1123 GMT string, or null when unset.
type httpTime struct {
	t *time.Time
}

func (h httpTime) MarshalJSON() ([]byte, error) {
	if h.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(h.t.UTC().Format(http.TimeFormat))
}

type brandPresentation struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

type categoryPresentation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productPresentation struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Rating         float64                `json:"rating"`
	Featured       bool                   `json:"featured"`
	ItemsInStock   int                    `json:"items_in_stock"`
	ReceiptDate    httpTime               `json:"receipt_date"`
	Brand          brandPresentation      `json:"brand"`
	Categories     []categoryPresentation `json:"categories"`
	ExpirationDate httpTime               `json:"expiration_date"`
	CreatedAt      httpTime               `json:"created_at"`
}

type listResponse[T any] struct {
	Results []T `json:"results"`
}

type statusResponse struct {
	Status string `json:"status"`
}

var statusOK = statusResponse{Status: "ok"}

func presentBrand(b model.Brand) brandPresentation {
	return brandPresentation{
		ID:          b.ID,
		Name:        b.Name,
		CountryCode: b.CountryCode,
	}
}

func presentCategory(c model.Category) categoryPresentation {
	return categoryPresentation{
		ID:   c.ID,
		Name: c.Name,
	}
}

func presentProduct(p model.Product) productPresentation {
	createdAt := p.CreatedAt
	return productPresentation{
		ID:             p.ID,
		Name:           p.Name,
		Rating:         p.Rating,
		Featured:       p.Featured,
		ItemsInStock:   p.ItemsInStock,
		ReceiptDate:    httpTime{p.ReceiptDate},
		Brand:          presentBrand(p.Brand),
		Categories:     presentList(p.Categories, presentCategory),
		ExpirationDate: httpTime{p.ExpirationDate},
		CreatedAt:      httpTime{&createdAt},
	}
}

// presentList never returns nil so empty lists render as [].
func presentList[T, P any](items []T, present func(T) P) []P {
	out := make([]P, 0, len(items))
	for _, item := range items {
		out = append(out, present(item))
	}
	return out
}
