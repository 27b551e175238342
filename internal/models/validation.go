package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/spf13/cast"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank is not a baked-in tag.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ErrNotNumeric is returned by ParsePrice for values that are not numbers.
var ErrNotNumeric = errors.New("value is not numeric")

// ParsePrice reads a unit price from a decoded JSON value. Numbers and
// numeric strings are accepted; booleans, empty strings and anything else
// are not.
func ParsePrice(v interface{}) (float64, error) {
	switch value := v.(type) {
	case bool, nil:
		return 0, ErrNotNumeric
	case string:
		if strings.TrimSpace(value) == "" {
			return 0, ErrNotNumeric
		}
		price, err := cast.ToFloat64E(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, value)
		}
		return price, nil
	default:
		price, err := cast.ToFloat64E(value)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNotNumeric, value)
		}
		return price, nil
	}
}

// FieldErrors turns a validator error into per-field messages.
func FieldErrors(err error) []apperr.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]apperr.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		msg := fmt.Sprintf("failed on the '%s' rule", e.Tag())
		switch e.Tag() {
		case "required", "notblank":
			msg = "is required"
		}
		fields = append(fields, apperr.FieldError{Field: e.Field(), Error: msg})
	}
	return fields
}
