package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/schema"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
)

type productHandler struct {
	*Service
}

func (h productHandler) listProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListAllProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list all products: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, listResponse[productPresentation]{
		Results: presentList(products, presentProduct),
	})
	return nil
}

func (h productHandler) createProduct(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}

	req, err := h.schema.DecodeProductCreate(body)
	if err != nil {
		return fmt.Errorf("decode product create request: %w", err)
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.ProductParams{
		Name:           req.Name,
		Rating:         req.Rating,
		Featured:       req.Featured,
		ReceiptDate:    dateTimeToTime(req.ReceiptDate),
		ExpirationDate: dateTimeToTime(req.ExpirationDate),
		BrandID:        req.Brand,
		CategoryIDs:    req.Categories,
		ItemsInStock:   req.ItemsInStock,
	})
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	h.writeJSON(w, r, http.StatusCreated, presentProduct(product))
	return nil
}

func (h productHandler) getProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, apperr.ResourceProduct)
	if err != nil {
		return err
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, presentProduct(product))
	return nil
}

func (h productHandler) updateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, apperr.ResourceProduct)
	if err != nil {
		return err
	}

	body, err := readBody(w, r)
	if err != nil {
		return err
	}

	req, err := h.schema.DecodeProductUpdate(body)
	if err != nil {
		return fmt.Errorf("decode product update request: %w", err)
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, service.ProductParams{
		Name:           req.Name,
		Rating:         req.Rating,
		Featured:       req.Featured,
		ReceiptDate:    dateTimeToTime(req.ReceiptDate),
		ExpirationDate: dateTimeToTime(req.ExpirationDate),
		BrandID:        req.Brand,
		CategoryIDs:    req.Categories,
		ItemsInStock:   req.ItemsInStock,
	})
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, presentProduct(product))
	return nil
}

func (h productHandler) deleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, apperr.ResourceProduct)
	if err != nil {
		return err
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, statusOK)
	return nil
}

func dateTimeToTime(d *schema.DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
