package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/iain-kirkham/Mental-Health-App/pkg/apierrors"
)

// FieldError describes one rejected request field by its JSON name.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// Errors is returned when a payload fails field validation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fieldErr := range e {
		parts = append(parts, fieldErr.Field+": "+fieldErr.Rule)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// MessageID returns the translation key rendering this field error.
func (e FieldError) MessageID() string {
	switch e.Rule {
	case "required":
		return apierrors.MsgValidationRequired
	case "min", "gte":
		return apierrors.MsgValidationMin
	case "max", "lte":
		return apierrors.MsgValidationMax
	case "date":
		return apierrors.MsgValidationDate
	case "time":
		return apierrors.MsgValidationTime
	default:
		return apierrors.MsgValidationInvalid
	}
}

var registerOnce sync.Once

// RegisterJSONTagNames makes the gin validator report fields by their JSON
// name instead of the Go struct field name.
func RegisterJSONTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// FromBindingError converts validator errors produced by ShouldBindJSON. It
// reports false for anything else, such as malformed JSON.
func FromBindingError(err error) (Errors, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fieldErrs := make(Errors, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field: fieldPath(fieldErr.Namespace()),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}
	return fieldErrs, true
}

// fieldPath drops the struct name validator puts in front of the namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
