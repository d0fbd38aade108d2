package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/risingbms/validate"
)

// Apply runs a value through a chain of transformations in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable transformation chain. Preferred over repeated
// Apply calls when the same chain is used for many values.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Text adapts string transformations into a schema transform. Non-string
// values pass through untouched, leaving the mismatch to the type check.
func Text(transforms ...func(string) string) validate.Transform {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return Apply(s, transforms...), nil
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts a string to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts a string to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

var titleCaser = cases.Title(language.Und)

// Title converts a string to title case using Unicode casing rules.
func Title(s string) string {
	return titleCaser.String(s)
}

// CollapseSpaces replaces runs of whitespace with a single space and trims
// the ends.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// StripControl removes control characters, keeping printable text intact.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
