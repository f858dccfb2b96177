// Package schema decodes and validates product request bodies.
package schema

import (
	"fmt"
	"reflect"
	"time"

	playvalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

// MinimalExpiration is how far in the future a new product must expire, with 5 seconds of tolerance.
const MinimalExpiration = 30*24*time.Hour - 5*time.Second

const expirationMsg = "Expiration date should be at least 30 days in the future"

// ProductUpdateRequest is a partial product. Nil fields were not supplied.
type ProductUpdateRequest struct {
	Name           *string   `json:"name" validate:"omitempty,max=50"`
	Rating         *float64  `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Featured       *bool     `json:"featured"`
	ReceiptDate    *DateTime `json:"receipt_date"`
	ExpirationDate *DateTime `json:"expiration_date"`
	Brand          *int64    `json:"brand"`
	Categories     []int64   `json:"categories" validate:"omitempty,min=1,max=5,unique"`
	ItemsInStock   *int      `json:"items_in_stock" validate:"omitempty,gt=0,lte=2147483647"`
}

// ProductCreateRequest has the update shape with the identifying fields required.
type ProductCreateRequest struct {
	Name           *string   `json:"name" validate:"required,max=50"`
	Rating         *float64  `json:"rating" validate:"required,gte=0,lte=10"`
	Featured       *bool     `json:"featured"`
	ReceiptDate    *DateTime `json:"receipt_date"`
	ExpirationDate *DateTime `json:"expiration_date" validate:"omitempty,expiration"`
	Brand          *int64    `json:"brand" validate:"required"`
	Categories     []int64   `json:"categories" validate:"required,min=1,max=5,unique"`
	ItemsInStock   *int      `json:"items_in_stock" validate:"required,gt=0,lte=2147483647"`
}

type Schema struct {
	validator *validator.DefaultValidator
	now       func() time.Time
}

type Option func(*Schema)

// WithClock replaces the clock the expiration rule compares against.
func WithClock(now func() time.Time) Option {
	return func(s *Schema) {
		s.now = now
	}
}

func New(opts ...Option) (*Schema, error) {
	s := &Schema{
		validator: validator.NewDefaultValidator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.validator.RegisterCustomTypeFunc(func(v reflect.Value) any {
		return v.Interface().(DateTime).Time
	}, DateTime{})

	if err := s.validator.RegisterValidation("expiration", s.validateExpiration); err != nil {
		return nil, fmt.Errorf("register expiration rule: %w", err)
	}
	s.validator.RegisterMessage("expiration", expirationMsg)

	return s, nil
}

// DecodeProductCreate decodes body and reports every type and rule violation at once.
func (s *Schema) DecodeProductCreate(body []byte) (ProductCreateRequest, error) {
	p, err := newPayload(body)
	if err != nil {
		return ProductCreateRequest{}, err
	}

	var req ProductCreateRequest
	decodeField(p, "name", &req.Name, typeStr)
	decodeField(p, "rating", &req.Rating, typeFloat)
	decodeField(p, "featured", &req.Featured, typeBool)
	decodeField(p, "receipt_date", &req.ReceiptDate, typeDateTime)
	decodeField(p, "expiration_date", &req.ExpirationDate, typeDateTime)
	decodeField(p, "brand", &req.Brand, typeInteger)
	decodeIDSet(p, "categories", &req.Categories)
	decodeField(p, "items_in_stock", &req.ItemsInStock, typeInteger)

	if err := p.merge(s.validator.Validate(req)); err != nil {
		return ProductCreateRequest{}, err
	}
	return req, nil
}

// DecodeProductUpdate decodes body and reports every type and rule violation at once.
func (s *Schema) DecodeProductUpdate(body []byte) (ProductUpdateRequest, error) {
	p, err := newPayload(body)
	if err != nil {
		return ProductUpdateRequest{}, err
	}

	var req ProductUpdateRequest
	decodeField(p, "name", &req.Name, typeStr)
	decodeField(p, "rating", &req.Rating, typeFloat)
	decodeField(p, "featured", &req.Featured, typeBool)
	decodeField(p, "receipt_date", &req.ReceiptDate, typeDateTime)
	decodeField(p, "expiration_date", &req.ExpirationDate, typeDateTime)
	decodeField(p, "brand", &req.Brand, typeInteger)
	decodeIDSet(p, "categories", &req.Categories)
	decodeField(p, "items_in_stock", &req.ItemsInStock, typeInteger)

	if err := p.merge(s.validator.Validate(req)); err != nil {
		return ProductUpdateRequest{}, err
	}
	return req, nil
}

func (s *Schema) validateExpiration(fl playvalidator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(s.now().UTC().Add(MinimalExpiration))
}
