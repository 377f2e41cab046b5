// Package privacy redacts customer details before appointments reach a
// public listing. Detail views never go through it.
package privacy

import (
	"strings"
	"unicode"
)

const (
	FallbackName = "Customer"
	HiddenPhone  = "***"
)

// MaskName keeps the first letter of every word: "Jo Smith" becomes "J* S***".
// It never fails; any internal fault yields FallbackName.
func MaskName(name string) (masked string) {
	defer func() {
		if r := recover(); r != nil {
			masked = FallbackName
		}
	}()

	parts := strings.Fields(name)
	if len(parts) == 0 {
		return FallbackName
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		runes := []rune(p)
		if len(runes) <= 2 {
			out = append(out, string(runes[0])+"*")
		} else {
			out = append(out, string(runes[0])+"***")
		}
	}
	return strings.Join(out, " ")
}

// MaskPhone keeps only the last four digits: "555-123-4567" becomes
// "***-***-4567". Fewer than four digits yields HiddenPhone.
func MaskPhone(phone string) string {
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}

	if len(digits) < 4 {
		return HiddenPhone
	}
	return "***-***-" + string(digits[len(digits)-4:])
}
