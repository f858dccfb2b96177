package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/product-catalog/api-contract"
)

func TestLoad(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{"/products", "/products/{id}", "/brands", "/brands/{id}", "/categories", "/categories/{id}", "/healthz"} {
		assert.NotNil(t, doc.Paths.Value(path), path)
	}

	product := doc.Components.Schemas["Product"].Value
	require.NotNil(t, product)
	assert.Contains(t, product.Required, "created_at")
}
