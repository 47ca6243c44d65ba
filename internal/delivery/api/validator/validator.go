// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with required struct validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Details flattens validation failures into "Field: tag" pairs. Other errors yield their message.
func Details(err error) string {
	validationErrs, ok := errors.Find[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Namespace()+": "+fieldErr.Tag())
	}

	return strings.Join(fields, "; ")
}
