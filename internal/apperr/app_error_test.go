package apperr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

func TestNewNotFound(t *testing.T) {
	err := apperr.NewNotFound(
		apperr.Resource(apperr.ResourceCategory, 99),
		apperr.Resource(apperr.ResourceCategory, 100),
	)

	assert.Equal(t, "Resources are not found: [Category[99] Category[100]]", err.Msg())
	assert.Equal(t, zerror.StatusNotFound, err.Status())
	assert.ErrorIs(t, err, apperr.NotFoundErr)
}

func TestNewDuplicated(t *testing.T) {
	err := apperr.NewDuplicated(apperr.Resource(apperr.ResourceBrand, 3))

	assert.Equal(t, "Resources are duplicated: [Brand[3]]", err.Msg())
	assert.Equal(t, zerror.StatusConflict, err.Status())
	assert.ErrorIs(t, err, apperr.ConflictErr)
	assert.NotErrorIs(t, err, apperr.NotFoundErr)
}
