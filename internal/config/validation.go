package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report file keys rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the value constraints of c that decoding cannot express:
// URL syntax, temperature range, log level and complete roster entries.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// describe renders a field error as "ai.temperature must be at most 2".
func describe(fe validator.FieldError) string {
	// Namespace is "Config.ai.temperature"; drop the root type name.
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "url":
		return key + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}
