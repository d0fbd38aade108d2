package validate

import (
	"math"
	"time"
	"unicode/utf8"
)

// RuleFunc is a constraint predicate, invoked only when the schema rule
// declares the corresponding property.
type RuleFunc func(value any, rule Rule) bool

// Built-in constraint names, evaluated in this order before any registered
// custom rules (which run in sorted name order).
var builtinRuleOrder = []string{"min", "max", "pattern", "integer"}

func (e *Engine) builtinRules() map[string]RuleFunc {
	return map[string]RuleFunc{
		"min": func(v any, r Rule) bool {
			return compareBound(v, *r.Min, func(got, bound float64) bool { return got >= bound })
		},
		"max": func(v any, r Rule) bool {
			return compareBound(v, *r.Max, func(got, bound float64) bool { return got <= bound })
		},
		"pattern": e.rulePattern,
		"integer": func(v any, _ Rule) bool {
			f, ok := toFloat64(v)
			if !ok {
				return true // applies to numbers only
			}
			return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
		},
	}
}

// compareBound applies a min/max bound with type-dependent semantics: length
// for strings and arrays, numeric value for numbers and dates. String length
// is counted in runes, matching the "characters long" wording of the default
// messages.
func compareBound(v any, bound float64, cmp func(got, bound float64) bool) bool {
	switch val := v.(type) {
	case string:
		return cmp(float64(utf8.RuneCountInString(val)), bound)
	case time.Time:
		return cmp(float64(val.UnixMilli()), bound)
	}
	if s, ok := toSlice(v); ok {
		return cmp(float64(len(s)), bound)
	}
	if f, ok := toFloat64(v); ok {
		return cmp(f, bound)
	}
	// Unsupported runtime type; bounds do not apply.
	return true
}

func (e *Engine) rulePattern(v any, r Rule) bool {
	s, ok := v.(string)
	if !ok {
		return true // applies to strings only
	}

	re := r.Regexp
	if re == nil {
		cached, err := e.compilePattern(r.Pattern)
		if err != nil {
			// Schema.Check rejects bad patterns before validation starts.
			return false
		}
		re = cached
	}
	return re.MatchString(s)
}

// declared reports whether the rule object has the given constraint property
// set: typed fields for built-ins, Params presence for custom rules.
func declared(r Rule, name string) bool {
	switch name {
	case "min":
		return r.Min != nil
	case "max":
		return r.Max != nil
	case "pattern":
		return r.Pattern != "" || r.Regexp != nil
	case "integer":
		return r.Integer
	default:
		_, ok := r.Params[name]
		return ok
	}
}
