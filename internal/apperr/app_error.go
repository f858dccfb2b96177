package apperr

import (
	"fmt"
	"strings"

	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

const (
	ValidationErrorCode = "validation_error"
	NotFoundErrorCode   = "not_found"
	ConflictErrorCode   = "conflict"
	InternalErrorCode   = "internal_error"
	UnavailableCode     = "service_unavailable"
)

const (
	ResourceProduct  = "Product"
	ResourceBrand    = "Brand"
	ResourceCategory = "Category"
)

var (
	ValidationErr  = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	NotFoundErr    = zerror.NewNotFound(NotFoundErrorCode, "resources are not found")
	ConflictErr    = zerror.NewConflict(ConflictErrorCode, "resources conflict")
	UnavailableErr = zerror.NewServiceUnavailable(UnavailableCode, "service unavailable")
)

// Resource names a single entity, e.g. Category[99].
func Resource(kind string, id int64) string {
	return fmt.Sprintf("%s[%d]", kind, id)
}

// NewNotFound returns a NotFound error naming every missing resource.
func NewNotFound(resources ...string) zerror.ZError {
	return NotFoundErr.WithMsg(fmt.Sprintf("Resources are not found: [%s]", strings.Join(resources, " ")))
}

// NewDuplicated returns a Conflict error naming every resource given more than once.
func NewDuplicated(resources ...string) zerror.ZError {
	return ConflictErr.WithMsg(fmt.Sprintf("Resources are duplicated: [%s]", strings.Join(resources, " ")))
}
