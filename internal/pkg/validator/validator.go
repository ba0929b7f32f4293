// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers `solana_address`, which accepts a
// base58 string decoding to exactly 32 bytes. The package is initialized
// automatically and safe to use directly.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("struct validation failed")

// solanaAddressTag is the struct tag name of the Solana public key rule.
const solanaAddressTag = "solana_address"

// solanaPublicKeySize is the length in bytes of a decoded Solana public key.
const solanaPublicKeySize = 32

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value 'abc' does not meet the requirements for the 'solana_address' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation(solanaAddressTag, validateSolanaAddress); err != nil {
		panic(err)
	}
}

// IsSolanaAddress reports whether s is a base58 string that decodes to a
// 32-byte public key.
func IsSolanaAddress(s string) bool {
	if s == "" {
		return false
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}

	return len(decoded) == solanaPublicKeySize
}

func validateSolanaAddress(fl gvalidator.FieldLevel) bool {
	return IsSolanaAddress(fl.Field().String())
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
