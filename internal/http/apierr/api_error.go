package apierr

import (
	"errors"
	"net/http"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

// ErrorItem is one entry of an error response.
type ErrorItem struct {
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
	Loc  []string `json:"loc,omitempty"`
}

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	Errors: []ErrorItem{{
		Msg:  "an unknown error occurred",
		Type: apperr.InternalErrorCode,
	}},
	StatusCode: http.StatusInternalServerError,
}

func errorToErrorResponse(err error) ErrorResponse {
	var validationErrs validator.Errors
	if errors.As(err, &validationErrs) {
		items := make([]ErrorItem, 0, len(validationErrs))
		for _, fe := range validationErrs {
			item := ErrorItem{Msg: fe.Msg, Type: fe.Type}
			if fe.Loc != "" {
				item.Loc = []string{fe.Loc}
			}
			items = append(items, item)
		}

		return ErrorResponse{
			Errors:     items,
			StatusCode: http.StatusBadRequest,
		}
	}

	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		status := ZErrorStatusToHTTPStatus(zErr.Status())
		if status == http.StatusInternalServerError {
			return InternalServerErr
		}

		return ErrorResponse{
			Errors: []ErrorItem{{
				Msg:  zErr.Msg(),
				Type: zErr.Code(),
			}},
			StatusCode: status,
		}
	}

	return InternalServerErr
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusBadRequest, zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	case zerror.StatusMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
