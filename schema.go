package validate

import (
	"regexp"
	"slices"
)

// Schema maps field names to the Rule each field must satisfy. Fields are
// processed in sorted name order so error ordering is deterministic.
type Schema map[string]Rule

// Transform mutates a value before type checking. An error (or panic) from a
// transform is converted into a custom field error and never escapes Validate.
type Transform func(value any) (any, error)

// CheckFunc is a custom per-field check invoked with the value and the full
// input record. Return nil to pass, ErrInvalid to fail with the rule's custom
// message, or any other error to fail with that error's text verbatim.
type CheckFunc func(value any, record map[string]any) error

// Rule declares the type and constraints of a single field.
type Rule struct {
	// Type is the type tag resolved through the engine's type registry.
	// Unknown tags always pass, with a logged warning.
	Type string

	// Required rejects absent, nil, and empty-string values.
	Required bool

	// Default is substituted when the field is absent/nil/empty and the
	// field is not required.
	Default any

	// Min and Max bound the value: length for strings and arrays, numeric
	// value for numbers and dates.
	Min *float64
	Max *float64

	// Pattern is a regular expression applied to string values. Regexp may
	// be used instead when the expression is already compiled; it wins when
	// both are set.
	Pattern string
	Regexp  *regexp.Regexp

	// Integer requires number values to be exact integers.
	Integer bool

	// Enum lists the allowed values for the "enum" type.
	Enum []any

	// Items is the rule applied to every element of an "array" field.
	Items *Rule

	// Schema validates the fields of an "object" value.
	Schema Schema

	// Transform is applied in order before the type check.
	Transform []Transform

	// Check is an optional custom predicate, run after all constraint rules.
	Check CheckFunc

	// Message overrides the default message for every error kind; Messages
	// overrides per kind and takes precedence over Message.
	Message  string
	Messages map[Kind]string

	// Params carries parameters for registered custom constraint rules.
	// A rule registered under name N runs when Params[N] is set.
	Params map[string]any
}

// Num is a convenience for building Min/Max bounds in schema literals.
func Num(v float64) *float64 { return &v }

// Check verifies the schema's own invariants: enum rules carry options, array
// rules carry an item rule, bounds are ordered, and patterns compile. It is
// run by Validate before any field is examined, and can be called at schema
// definition time to fail fast.
func (s Schema) Check() error { return s.check("") }

func (s Schema) check(prefix string) error {
	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		if err := s[field].check(path); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) check(path string) error {
	if r.Type == TypeEnum && len(r.Enum) == 0 {
		return &SchemaError{Field: path, Reason: "enum rule has no options"}
	}
	if r.Type == TypeArray && r.Items == nil {
		return &SchemaError{Field: path, Reason: "array rule has no items"}
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return &SchemaError{Field: path, Reason: "min is greater than max"}
	}
	if r.Pattern != "" && r.Regexp == nil {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return &SchemaError{Field: path, Reason: "invalid pattern: " + err.Error()}
		}
	}
	if r.Items != nil {
		if err := r.Items.check(path + "[]"); err != nil {
			return err
		}
	}
	if r.Schema != nil {
		if err := r.Schema.check(path); err != nil {
			return err
		}
	}
	return nil
}
