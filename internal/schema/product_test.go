package schema_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/schema"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

var fixedNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(schema.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s
}

func requireErrors(t *testing.T, err error) validator.Errors {
	t.Helper()
	var errs validator.Errors
	require.True(t, errors.As(err, &errs), "expected validation errors, got %v", err)
	return errs
}

func TestSchema_DecodeProductCreate(t *testing.T) {
	s := newSchema(t)

	t.Run("Should decode valid body", func(t *testing.T) {
		req, err := s.DecodeProductCreate([]byte(`{
			"name": "Phone",
			"rating": 9.5,
			"brand": 1,
			"categories": [2, 1, 2],
			"items_in_stock": 3,
			"receipt_date": "Wed, 21 Oct 2015 07:28:00 GMT",
			"unknown": "ignored"
		}`))
		require.NoError(t, err)

		assert.Equal(t, "Phone", *req.Name)
		assert.Equal(t, 9.5, *req.Rating)
		assert.Nil(t, req.Featured)
		assert.Equal(t, int64(1), *req.Brand)
		assert.Equal(t, []int64{2, 1}, req.Categories)
		assert.Equal(t, 3, *req.ItemsInStock)
		assert.True(t, time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC).Equal(req.ReceiptDate.Time))
	})

	t.Run("Should collect every rule violation", func(t *testing.T) {
		_, err := s.DecodeProductCreate([]byte(`{
			"name": "` + strings.Repeat("x", 51) + `",
			"rating": 11,
			"categories": [],
			"items_in_stock": 0
		}`))

		assert.Equal(t, validator.Errors{
			{Loc: "name", Msg: "ensure this value has at most 50 characters", Type: "value_error.max"},
			{Loc: "rating", Msg: "ensure this value is less than or equal to 10", Type: "value_error.lte"},
			{Loc: "brand", Msg: "field required", Type: "value_error.missing"},
			{Loc: "categories", Msg: "ensure this value has at least 1 items", Type: "value_error.min"},
			{Loc: "items_in_stock", Msg: "ensure this value is greater than 0", Type: "value_error.gt"},
		}, requireErrors(t, err))
	})

	t.Run("Should report type errors once per field", func(t *testing.T) {
		_, err := s.DecodeProductCreate([]byte(`{
			"name": 5,
			"rating": "high",
			"brand": 1,
			"categories": ["a"],
			"items_in_stock": 1,
			"receipt_date": "not a date"
		}`))

		assert.Equal(t, validator.Errors{
			{Loc: "name", Msg: "str type expected", Type: "type_error.str"},
			{Loc: "rating", Msg: "value is not a valid float", Type: "type_error.float"},
			{Loc: "receipt_date", Msg: "invalid datetime format", Type: "type_error.datetime"},
			{Loc: "categories", Msg: "value is not a valid integer", Type: "type_error.integer"},
		}, requireErrors(t, err))
	})

	t.Run("Should reject categories above limit", func(t *testing.T) {
		_, err := s.DecodeProductCreate([]byte(`{"name":"a","rating":1,"brand":1,"categories":[1,2,3,4,5,6],"items_in_stock":1}`))

		errs := requireErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "categories", errs[0].Loc)
		assert.Equal(t, "value_error.max", errs[0].Type)
	})

	t.Run("Should reject stock above integer column range", func(t *testing.T) {
		_, err := s.DecodeProductCreate([]byte(`{"name":"a","rating":1,"brand":1,"categories":[1],"items_in_stock":3000000000}`))

		assert.Equal(t, validator.Errors{
			{Loc: "items_in_stock", Msg: "ensure this value is less than or equal to 2147483647", Type: "value_error.lte"},
		}, requireErrors(t, err))
	})

	t.Run("Should reject non object body", func(t *testing.T) {
		for _, body := range []string{``, `null`, `[]`, `"x"`, `{`} {
			_, err := s.DecodeProductCreate([]byte(body))
			assert.Equal(t, validator.Errors{
				{Msg: "value is not a valid dict", Type: "type_error.dict"},
			}, requireErrors(t, err), body)
		}
	})

	t.Run("Should apply expiration threshold", func(t *testing.T) {
		threshold := fixedNow.Add(schema.MinimalExpiration)
		body := func(exp time.Time) []byte {
			return []byte(`{"name":"a","rating":1,"brand":1,"categories":[1],"items_in_stock":1,"expiration_date":"` +
				exp.Format(time.RFC3339) + `"}`)
		}

		_, err := s.DecodeProductCreate(body(threshold))
		assert.NoError(t, err)

		_, err = s.DecodeProductCreate(body(threshold.Add(time.Second)))
		assert.NoError(t, err)

		_, err = s.DecodeProductCreate(body(threshold.Add(-time.Second)))
		assert.Equal(t, validator.Errors{
			{
				Loc:  "expiration_date",
				Msg:  "Expiration date should be at least 30 days in the future",
				Type: "value_error.expiration",
			},
		}, requireErrors(t, err))
	})
}

func TestSchema_DecodeProductUpdate(t *testing.T) {
	s := newSchema(t)

	t.Run("Should keep falsy values present", func(t *testing.T) {
		req, err := s.DecodeProductUpdate([]byte(`{"rating": 0, "featured": false}`))
		require.NoError(t, err)

		require.NotNil(t, req.Rating)
		assert.Zero(t, *req.Rating)
		require.NotNil(t, req.Featured)
		assert.False(t, *req.Featured)
		assert.Nil(t, req.Name)
		assert.Nil(t, req.Categories)
	})

	t.Run("Should treat null as absent", func(t *testing.T) {
		req, err := s.DecodeProductUpdate([]byte(`{"name": null, "categories": null, "items_in_stock": null}`))
		require.NoError(t, err)

		assert.Nil(t, req.Name)
		assert.Nil(t, req.Categories)
		assert.Nil(t, req.ItemsInStock)
	})

	t.Run("Should accept empty body object", func(t *testing.T) {
		req, err := s.DecodeProductUpdate([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, schema.ProductUpdateRequest{}, req)
	})

	t.Run("Should validate present fields only", func(t *testing.T) {
		_, err := s.DecodeProductUpdate([]byte(`{"rating": -1, "categories": []}`))

		assert.Equal(t, validator.Errors{
			{Loc: "rating", Msg: "ensure this value is greater than or equal to 0", Type: "value_error.gte"},
			{Loc: "categories", Msg: "ensure this value has at least 1 items", Type: "value_error.min"},
		}, requireErrors(t, err))
	})

	t.Run("Should bound stock on update", func(t *testing.T) {
		_, err := s.DecodeProductUpdate([]byte(`{"items_in_stock": 2147483648}`))
		assert.Equal(t, "value_error.lte", requireErrors(t, err)[0].Type)

		req, err := s.DecodeProductUpdate([]byte(`{"items_in_stock": 2147483647}`))
		require.NoError(t, err)
		assert.Equal(t, 2147483647, *req.ItemsInStock)
	})

	t.Run("Should not apply expiration rule", func(t *testing.T) {
		req, err := s.DecodeProductUpdate([]byte(`{"expiration_date": "2020-01-01T00:00:00Z"}`))
		require.NoError(t, err)
		assert.Equal(t, 2020, req.ExpirationDate.Year())
	})
}
