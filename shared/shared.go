package shared

import (
	"strings"
	"unicode"
)

// Digits strips every non-digit rune from value, keeping at most limit digits.
// A limit of zero or less keeps everything.
func Digits(value string, limit int) string {
	var builder strings.Builder

	for _, r := range value {
		if r < '0' || r > '9' {
			continue
		}

		if limit > 0 && builder.Len() >= limit {
			break
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

// IsDigits reports whether value consists of digits only. The empty string
// counts as digits.
func IsDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// LettersAndSpaces strips every rune that is neither a letter nor whitespace,
// the cardholder-name input rule.
func LettersAndSpaces(value string) string {
	var builder strings.Builder

	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
