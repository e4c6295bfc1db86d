package middleware

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/sectiontrack/internal/app/models/dto"
)

var (
	validate     = newValidator()
	registerOnce sync.Once
)

func newValidator() *validator.Validate {
	v := validator.New()
	configureValidator(v)
	return v
}

// configureValidator reports fields by their json name.
func configureValidator(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RegisterValidators makes gin's binding validator report fields by their json name.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			configureValidator(v)
		}
	})
}

// ValidateVar validates a single value (such as a request map) against tag
// and returns the failures as field errors, or nil.
func ValidateVar(value interface{}, tag string) []dto.FieldError {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	return FieldErrors(err)
}

// FieldErrors converts a binding or validation error into client-facing field errors.
func FieldErrors(err error) []dto.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldError{{Message: err.Error()}}
	}

	out := make([]dto.FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, dto.FieldError{
			Field:   fieldName(e),
			Message: formatValidationError(e),
		})
	}
	return out
}

func fieldName(e validator.FieldError) string {
	// map entries are reported by key, e.g. "[2024-01-10]"
	if name := strings.Trim(e.Field(), "[]"); name != "" {
		return name
	}
	return strings.Trim(e.Namespace(), "[]")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	name := fieldName(e)
	if name == "" {
		name = "value"
	}
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return name + " must be at least " + e.Param()
	case "max":
		return name + " must be at most " + e.Param()
	case "oneof":
		return name + " must be one of: " + e.Param()
	default:
		return name + " validation failed: " + e.Tag()
	}
}
