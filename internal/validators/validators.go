// Package validators holds the field checks the use cases apply to input
// that did not come through request binding. Every failure is an
// *httperr.ValidationError.
package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Text requires a non-blank value of at most maxLen characters.
func Text(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return httperr.ErrValidation(field, "is required")
	}
	return MaxLen(field, value, maxLen)
}

func MaxLen(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return httperr.ErrValidation(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return nil
}

// OptionalText checks value only when present.
func OptionalText(field string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	return MaxLen(field, *value, maxLen)
}

func IntRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return httperr.ErrValidation(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
