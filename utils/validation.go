package utils

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations adds the custom binding rules used by request models and
// makes field errors report JSON names. Safe to call more than once; every
// call returns the result of the first.
func RegisterValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			registerErr = errors.Wrap(err, "register notblank")
		}
	})
	return registerErr
}

// MustRegisterValidations panics if the binding rules cannot be installed.
func MustRegisterValidations() {
	if err := RegisterValidations(); err != nil {
		panic(err)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// ValidationMessage turns a binding error into text safe to return to
// clients: field names as they appear in JSON and no Go type names.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Malformed request body"
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, describeFieldError(fe))
	}
	return strings.Join(parts, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "email":
		return field + " must be an e-mail address"
	case "url":
		return field + " must be a URL"
	case "min":
		return field + " must have at least " + fe.Param() + " characters"
	case "max":
		return field + " must have at most " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
