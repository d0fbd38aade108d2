package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the category of a field error. Registered custom constraint
// rules report their own name as the kind.
type Kind string

const (
	KindRequired Kind = "required"
	KindType     Kind = "type"
	KindMin      Kind = "min"
	KindMax      Kind = "max"
	KindPattern  Kind = "pattern"
	KindEmail    Kind = "email"
	KindEnum     Kind = "enum"
	KindInteger  Kind = "integer"
	KindCustom   Kind = "custom"
)

// message resolves the text for an error of the given kind on this rule:
// per-kind override, then the rule-wide override, then the built-in template.
// The field path doubles as the label inside the message.
func (r Rule) message(kind Kind, path string, value any) string {
	if m, ok := r.Messages[kind]; ok {
		return m
	}
	if r.Message != "" {
		return r.Message
	}
	return defaultMessage(kind, path, r, value)
}

func defaultMessage(kind Kind, path string, r Rule, value any) string {
	switch kind {
	case KindRequired:
		return path + " is required"
	case KindType:
		return fmt.Sprintf("%s must be of type %s", path, r.Type)
	case KindEmail:
		return path + " must be a valid email address"
	case KindEnum:
		return fmt.Sprintf("%s must be one of: %s", path, joinValues(r.Enum))
	case KindMin:
		return boundMessage(path, "at least", *r.Min, value)
	case KindMax:
		return boundMessage(path, "at most", *r.Max, value)
	case KindPattern:
		return path + " has an invalid format"
	case KindInteger:
		return path + " must be an integer"
	default:
		return path + " is invalid"
	}
}

// boundMessage picks length or value wording based on the runtime type of the
// validated value.
func boundMessage(path, dir string, bound float64, value any) string {
	n := formatNumber(bound)
	switch value.(type) {
	case string:
		return fmt.Sprintf("%s must be %s %s characters long", path, dir, n)
	case time.Time:
		return fmt.Sprintf("%s must be %s %s", path, dir, n)
	}
	if _, ok := toSlice(value); ok {
		return fmt.Sprintf("%s must contain %s %s items", path, dir, n)
	}
	return fmt.Sprintf("%s must be %s %s", path, dir, n)
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
