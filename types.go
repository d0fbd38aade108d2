package validate

import (
	"reflect"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Built-in type tags.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeDate    = "date"
	TypeEmail   = "email"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeEnum    = "enum"
	TypeUUID    = "uuid"
)

// TypeFunc decides whether a value conforms to a type tag.
type TypeFunc func(value any, rule Rule) bool

// CoerceFunc attempts a best-effort conversion of a raw value into the type a
// rule expects, prior to the strict conformance check.
type CoerceFunc func(value any) (any, bool)

// TypeDef couples a conformance predicate with an optional coercion.
type TypeDef struct {
	Check  TypeFunc
	Coerce CoerceFunc
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Accepted layouts for date coercion, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func builtinTypes() map[string]TypeDef {
	return map[string]TypeDef{
		TypeString: {
			Check: func(v any, _ Rule) bool {
				_, ok := v.(string)
				return ok
			},
		},
		TypeNumber: {
			Check: func(v any, _ Rule) bool {
				_, ok := toFloat64(v)
				return ok
			},
			Coerce: coerceNumber,
		},
		TypeBoolean: {
			Check: func(v any, _ Rule) bool {
				_, ok := v.(bool)
				return ok
			},
			Coerce: coerceBoolean,
		},
		TypeDate: {
			Check: func(v any, _ Rule) bool {
				_, ok := v.(time.Time)
				return ok
			},
			Coerce: coerceDate,
		},
		TypeEmail: {
			Check: func(v any, _ Rule) bool {
				s, ok := v.(string)
				return ok && emailRegex.MatchString(s)
			},
		},
		TypeArray: {
			Check: func(v any, _ Rule) bool {
				_, ok := toSlice(v)
				return ok
			},
		},
		TypeObject: {
			Check: func(v any, _ Rule) bool {
				_, ok := v.(map[string]any)
				return ok
			},
		},
		TypeEnum: {
			Check: func(v any, rule Rule) bool {
				return containsDeepEqual(rule.Enum, v)
			},
		},
		TypeUUID: {
			Check: func(v any, _ Rule) bool {
				s, ok := v.(string)
				if !ok {
					return false
				}
				_, err := uuid.Parse(s)
				return err == nil
			},
		},
	}
}

// CheckType runs the registered predicate for tag against value. When convert
// is true the type's coercion is attempted first and the coerced value is
// both checked and returned. Unregistered tags always pass, with a warning.
func (e *Engine) CheckType(value any, tag string, rule Rule, convert bool) (any, bool) {
	def, ok := e.types[tag]
	if !ok {
		e.logger.Warn("unknown type tag, skipping type check", "type", tag)
		return value, true
	}

	if convert && def.Coerce != nil {
		if coerced, ok := def.Coerce(value); ok {
			value = coerced
		}
	}
	return value, def.Check(value, rule)
}

func coerceNumber(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

func coerceBoolean(v any) (any, bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return nil, false
}

func coerceDate(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return nil, false
}

// toFloat64 normalizes any Go numeric kind for comparisons.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toSlice normalizes any slice or array value to []any.
func toSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func containsDeepEqual(list []any, v any) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, v) {
			return true
		}
	}
	return false
}
