package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v        *validator.Validate
	messages map[string]string
}

// NewDefaultValidator creates a new default validator.
// Field errors are reported under the field's json name.
func NewDefaultValidator() *DefaultValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	return &DefaultValidator{
		v:        v,
		messages: map[string]string{},
	}
}

// RegisterValidation adds a custom validation for the given tag.
func (v *DefaultValidator) RegisterValidation(tag string, fn validator.Func) error {
	if err := v.v.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register %s validator: %w", tag, err)
	}
	return nil
}

// RegisterMessage overrides the message reported when the rule tag fails.
func (v *DefaultValidator) RegisterMessage(tag, msg string) {
	v.messages[tag] = msg
}

// RegisterCustomTypeFunc makes the validator see values of types through fn.
func (v *DefaultValidator) RegisterCustomTypeFunc(fn validator.CustomTypeFunc, types ...any) {
	v.v.RegisterCustomTypeFunc(fn, types...)
}

// Validate validates s and returns Errors holding every violated rule.
func (v DefaultValidator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := FromValidationErrors(validationErrs)
	for i, fe := range validationErrs {
		if msg, ok := v.messages[fe.Tag()]; ok {
			errs[i].Msg = msg
		}
	}
	return errs
}

// FromValidationErrors converts validator errors into Errors, keeping their order.
func FromValidationErrors(validationErrs validator.ValidationErrors) Errors {
	errs := make(Errors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		errs = append(errs, FieldError{
			Loc:  fe.Field(),
			Msg:  ValidationErrorMessage(fe),
			Type: ValidationErrorType(fe),
		})
	}
	return errs
}

func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("ensure this value has at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("ensure this value has at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("ensure this value is less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "unique":
		return "the list has duplicated items"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return "is invalid"
	}
}

// ValidationErrorType returns a machine readable type for the violated rule, e.g. value_error.lte.
func ValidationErrorType(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "value_error.missing"
	}
	return "value_error." + fe.Tag()
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
