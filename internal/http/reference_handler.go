package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
)

type referenceHandler struct {
	*Service
}

func (h referenceHandler) listBrands(w http.ResponseWriter, r *http.Request) error {
	brands, err := h.referenceSvc.ListAllBrands(r.Context())
	if err != nil {
		return fmt.Errorf("reference service list all brands: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, listResponse[brandPresentation]{
		Results: presentList(brands, presentBrand),
	})
	return nil
}

func (h referenceHandler) getBrand(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, apperr.ResourceBrand)
	if err != nil {
		return err
	}

	brand, err := h.referenceSvc.GetBrand(r.Context(), id)
	if err != nil {
		return fmt.Errorf("reference service get brand: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, presentBrand(brand))
	return nil
}

func (h referenceHandler) listCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.referenceSvc.ListAllCategories(r.Context())
	if err != nil {
		return fmt.Errorf("reference service list all categories: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, listResponse[categoryPresentation]{
		Results: presentList(categories, presentCategory),
	})
	return nil
}

func (h referenceHandler) getCategory(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, apperr.ResourceCategory)
	if err != nil {
		return err
	}

	category, err := h.referenceSvc.GetCategory(r.Context(), id)
	if err != nil {
		return fmt.Errorf("reference service get category: %w", err)
	}

	h.writeJSON(w, r, http.StatusOK, presentCategory(category))
	return nil
}
