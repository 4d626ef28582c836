// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"pumpdesk/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs tagged with `validate`.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("query"), ",")
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return errors.WithStack(err)
		}

		msgs := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			msgs = append(msgs, describe(fieldErr))
		}

		return errors.New(strings.Join(msgs, "; "))
	}

	return nil
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fieldErr.Param()
	case "gte":
		return field + " must be greater than or equal to " + fieldErr.Param()
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "oneof":
		return field + " must be one of [" + fieldErr.Param() + "]"
	case "datetime":
		return field + " must match " + fieldErr.Param()
	default:
		return field + " failed " + fieldErr.Tag() + " validation"
	}
}
