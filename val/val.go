// Package val validates request schemas with go-playground/validator and
// translates failures into errx validation errors with per-field messages.
package val

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/code19m/errx"
	"github.com/go-playground/validator/v10"
)

const CodeValidationFailed = "VALIDATION_FAILED"

var validate = newValidator() //nolint:gochecknoglobals // single shared validator instance

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(tagName)
	return v
}

// tagName resolves the reported field name from the json, query or params
// struct tags, falling back to the Go field name.
func tagName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "params"} {
		name := strings.Split(field.Tag.Get(tag), ",")[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

// ValidateSchema validates a struct using its `validate` tags. On failure it
// returns an errx validation error whose Fields map names each offending
// field with a human-readable description.
func ValidateSchema(schema any) error {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(errx.M)
		for _, fe := range verrs {
			fields[fe.Field()] = describe(fe)
		}

		return errx.New(
			"Validation failed. See fields for details.",
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
			errx.WithFields(fields),
		)
	}

	return errx.New(
		fmt.Sprintf("Unknown validation error: %s", err.Error()),
		errx.WithCode(CodeValidationFailed),
		errx.WithType(errx.T_Validation),
	)
}

func describe(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return fmt.Sprintf("Must be at least %s", param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", param)
		}
		return fmt.Sprintf("Must be at most %s", param)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", param)
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", param)
	case "gt":
		return fmt.Sprintf("Must be greater than %s", param)
	case "lt":
		return fmt.Sprintf("Must be less than %s", param)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	case "datetime":
		return fmt.Sprintf("Must be a valid datetime in format: %s", param)
	}

	return fmt.Sprintf("Failed validation: %s", fe.Tag())
}
