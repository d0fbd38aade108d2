package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sync"
)

// Engine validates records against schemas. The type and rule registries are
// instance state: construct isolated engines for tests or for call sites with
// custom types. Registration is startup-only; the engine assumes no
// RegisterType/RegisterRule calls happen concurrently with validation.
type Engine struct {
	types    map[string]TypeDef
	rules    map[string]RuleFunc
	logger   *slog.Logger
	patterns sync.Map // pattern string -> *regexp.Regexp
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the logger used for the unknown-type warning.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithType registers an additional type tag at construction.
func WithType(tag string, def TypeDef) Option {
	return func(e *Engine) {
		e.RegisterType(tag, def)
	}
}

// WithRule registers an additional constraint rule at construction.
func WithRule(name string, fn RuleFunc) Option {
	return func(e *Engine) {
		e.RegisterRule(name, fn)
	}
}

// New constructs an Engine with the built-in types and constraint rules.
func New(opts ...Option) *Engine {
	e := &Engine{
		types:  builtinTypes(),
		logger: slog.Default(),
	}
	e.rules = e.builtinRules()

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterType adds or overrides the predicate (and optional coercion) for a
// type tag.
func (e *Engine) RegisterType(tag string, def TypeDef) {
	e.types[tag] = def
}

// RegisterRule adds or overrides a constraint rule. The rule runs on fields
// whose Rule.Params declares the same name.
func (e *Engine) RegisterRule(name string, fn RuleFunc) {
	e.rules[name] = fn
}

type callOptions struct {
	abortEarly     bool
	stripUnknown   bool
	convert        bool
	errorOnInvalid bool
}

// ValidateOption configures a single Validate call.
type ValidateOption func(*callOptions)

// AbortEarly stops the pass at the first field that produces an error. The
// failing field's own errors are still reported in full.
func AbortEarly() ValidateOption {
	return func(o *callOptions) { o.abortEarly = true }
}

// StripUnknown omits input keys absent from the schema from the output record.
func StripUnknown() ValidateOption {
	return func(o *callOptions) { o.stripUnknown = true }
}

// WithoutConversion disables type coercion, which is on by default.
func WithoutConversion() ValidateOption {
	return func(o *callOptions) { o.convert = false }
}

// ErrorOnInvalid makes Validate return an *InvalidError instead of a Result
// when the input does not pass, for call sites that want a single
// error-handling path.
func ErrorOnInvalid() ValidateOption {
	return func(o *callOptions) { o.errorOnInvalid = true }
}

// Validate checks data against the schema and builds the normalized output
// record. Malformed input is a normal outcome reported through the Result;
// the returned error is non-nil only for a misconfigured schema, or for
// invalid input when ErrorOnInvalid is set.
func (e *Engine) Validate(data map[string]any, schema Schema, opts ...ValidateOption) (*Result, error) {
	if err := schema.Check(); err != nil {
		return nil, err
	}

	co := callOptions{convert: true}
	for _, opt := range opts {
		opt(&co)
	}

	res := e.validateSchema(data, schema, co, "")
	if !res.Valid && co.errorOnInvalid {
		return nil, &InvalidError{Errors: res.Errors, FieldErrors: res.FieldErrors}
	}
	return res, nil
}

// ValidateField runs the single-field pass (defaulting, required check,
// transforms, type and constraint checks, recursion) outside of a full
// Validate call, for incremental validation of live input. It returns the
// normalized value and any errors formatted as "<path>: <message>".
func (e *Engine) ValidateField(value any, rule Rule, field string, record map[string]any) (any, []string) {
	out, _, errs := e.validateField(value, rule, field, record, callOptions{convert: true})
	if len(errs) == 0 {
		return out, nil
	}

	msgs := make([]string, len(errs))
	for i, fe := range errs {
		msgs[i] = fe.String()
	}
	return out, msgs
}

func (e *Engine) validateSchema(data map[string]any, schema Schema, co callOptions, prefix string) *Result {
	c := newCollector(len(schema), co.abortEarly)

	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		if c.stopped {
			break
		}

		path := field
		if prefix != "" {
			path = prefix + "." + field
		}

		value, assign, errs := e.validateField(data[field], schema[field], path, data, co)
		if len(errs) > 0 {
			c.fail(errs)
			continue
		}
		if assign {
			c.set(field, value)
		}
	}

	if !co.stripUnknown {
		for key, value := range data {
			if _, known := schema[key]; !known {
				c.set(key, value)
			}
		}
	}

	return c.result()
}

// validateField implements the per-field algorithm. The returned bool reports
// whether the value should be assigned into the output record.
func (e *Engine) validateField(value any, rule Rule, path string, record map[string]any, co callOptions) (any, bool, []FieldError) {
	if isEmpty(value) && rule.Default != nil {
		value = rule.Default
	}

	if rule.Required && isEmpty(value) {
		return nil, false, []FieldError{{
			Path:    path,
			Kind:    KindRequired,
			Message: rule.message(KindRequired, path, value),
		}}
	}

	// Absent optional values skip all checks; the output carries the
	// default or nil.
	if isEmpty(value) {
		return rule.Default, true, nil
	}

	for _, tr := range rule.Transform {
		out, err := applyTransform(tr, value)
		if err != nil {
			return nil, false, []FieldError{{Path: path, Kind: KindCustom, Message: err.Error()}}
		}
		value = out
	}

	value, ok := e.CheckType(value, rule.Type, rule, co.convert)
	if !ok {
		kind := KindType
		switch rule.Type {
		case TypeEmail:
			kind = KindEmail
		case TypeEnum:
			kind = KindEnum
		}
		return nil, false, []FieldError{{
			Path:    path,
			Kind:    kind,
			Message: rule.message(kind, path, value),
		}}
	}

	var errs []FieldError
	for _, name := range e.ruleOrder() {
		if !declared(rule, name) {
			continue
		}
		if e.rules[name](value, rule) {
			continue
		}
		kind := Kind(name)
		errs = append(errs, FieldError{
			Path:    path,
			Kind:    kind,
			Message: rule.message(kind, path, value),
		})
	}

	if rule.Check != nil {
		if err := runCheck(rule.Check, value, record); err != nil {
			msg := err.Error()
			if errors.Is(err, ErrInvalid) {
				msg = rule.message(KindCustom, path, value)
			}
			errs = append(errs, FieldError{Path: path, Kind: KindCustom, Message: msg})
		}
	}

	switch {
	case rule.Type == TypeArray && rule.Items != nil:
		value, errs = e.validateItems(value, rule, path, record, co, errs)
	case rule.Type == TypeObject && rule.Schema != nil:
		if m, isMap := value.(map[string]any); isMap {
			nested := e.validateSchema(m, rule.Schema, co, path)
			errs = append(errs, nested.FieldErrors...)
			value = nested.Data
		}
	}

	if len(errs) > 0 {
		return nil, false, errs
	}
	return value, true, nil
}

// validateItems applies the element rule to every member of an array value,
// rebuilding the slice so element-level coercions surface in the output.
func (e *Engine) validateItems(value any, rule Rule, path string, record map[string]any, co callOptions, errs []FieldError) (any, []FieldError) {
	items, ok := toSlice(value)
	if !ok {
		return value, errs
	}

	out := make([]any, len(items))
	for i, item := range items {
		if co.abortEarly && len(errs) > 0 {
			break
		}

		elemPath := fmt.Sprintf("%s[%d]", path, i)
		elem, assign, elemErrs := e.validateField(item, *rule.Items, elemPath, record, co)
		if len(elemErrs) > 0 {
			errs = append(errs, elemErrs...)
			continue
		}
		if assign {
			out[i] = elem
		}
	}
	return out, errs
}

func (e *Engine) ruleOrder() []string {
	var custom []string
	for name := range e.rules {
		if !slices.Contains(builtinRuleOrder, name) {
			custom = append(custom, name)
		}
	}
	slices.Sort(custom)
	return append(slices.Clone(builtinRuleOrder), custom...)
}

func (e *Engine) compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := e.patterns.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	e.patterns.Store(pattern, re)
	return re, nil
}

// isEmpty mirrors the absent-value contract: missing keys, nils, and empty
// strings are all treated as "not provided".
func isEmpty(v any) bool {
	return v == nil || v == ""
}

func applyTransform(tr Transform, value any) (out any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("transform panic: %v", p)
		}
	}()
	return tr(value)
}

func runCheck(check CheckFunc, value any, record map[string]any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("check panic: %v", p)
		}
	}()
	return check(value, record)
}
