// Package validator wraps go-playground/validator so request and
// configuration structs can be checked declaratively (`validate:"..."` tags)
// with one error format across the module.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when a value
// does not satisfy its rules.
var ErrValidationFailed = errors.New("validation failed")

var validator *gvalidator.Validate

// errStringFormat describes one violated rule.
//
// Example: "'To': value '0x12' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError turns validator errors into ErrValidationFailed joined with
// one message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks a struct against its validation tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// ValidateVar checks a single value against tag, e.g.
// ValidateVar("0xabc", "eth_addr"). name is used in the error message.
func ValidateVar(name string, v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		var validationErrors gvalidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errs := []error{ErrValidationFailed}
			for _, validationErr := range validationErrors {
				errs = append(errs, fmt.Errorf(errStringFormat, name, validationErr.Value(), validationErr.Tag()))
			}
			return errors.Join(errs...)
		}
		return err
	}

	return nil
}
