// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/gitops-secrets/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// KeyLength validates that an int is a supported AES key size in bytes.
var KeyLength = validation.In(16, 24, 32).Error("must be 16, 24 or 32")

// HTTPURL validates that a string is an absolute http or https URL.
var HTTPURL = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_http_url_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return validation.NewError("validation_http_url", "must be an absolute http or https URL")
	}
	return nil
})
