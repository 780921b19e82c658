// Package phone canonicalises Indonesian WhatsApp numbers.
//
// The canonical form is the international one without a plus sign
// ("6281234567890"). Group identifiers ("...@g.us") are never rewritten.
package phone

import (
	"strings"
)

const (
	countryCode = "62"
	groupSuffix = "@g.us"
)

// IsGroup reports whether id addresses a WhatsApp group rather than a person.
func IsGroup(id string) bool {
	return strings.HasSuffix(strings.TrimSpace(id), groupSuffix)
}

// Normalize returns the canonical form of number. It is idempotent.
// Input without any digits normalises to the empty string.
func Normalize(number string) string {
	if IsGroup(number) {
		return strings.TrimSpace(number)
	}

	digits := digitsOnly(number)
	if digits == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(digits, countryCode):
		return digits
	case strings.HasPrefix(digits, "0"):
		return countryCode + digits[1:]
	default:
		return countryCode + digits
	}
}

// Variants lists the forms a number may have been stored under, most
// specific first: international, local with leading zero, bare.
func Variants(number string) []string {
	canonical := Normalize(number)
	if canonical == "" {
		return nil
	}
	if IsGroup(canonical) {
		return []string{canonical}
	}

	bare := strings.TrimPrefix(canonical, countryCode)

	return []string{canonical, "0" + bare, bare}
}

// Equal compares two numbers after normalisation. Empty numbers never match.
func Equal(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}

	return na == nb
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
