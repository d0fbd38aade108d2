package validate

// FieldError describes why a single field failed. Path uses dotted segments
// for nested objects and bracketed indexes for array elements.
type FieldError struct {
	Path    string
	Kind    Kind
	Message string
}

func (fe FieldError) String() string {
	return fe.Path + ": " + fe.Message
}

// Result is the outcome of one Validate call.
type Result struct {
	// Valid is true when no field produced an error.
	Valid bool

	// Errors holds one "<path>: <message>" entry per field error, in
	// deterministic field order.
	Errors []string

	// FieldErrors is the structured form of Errors.
	FieldErrors []FieldError

	// Data is the normalized output record: validated (and possibly
	// coerced) schema fields, plus pass-through unknown keys unless
	// stripping was requested.
	Data map[string]any
}

// collector owns the error list and output record under construction, and
// enforces the abortEarly stop policy.
type collector struct {
	errs       []FieldError
	data       map[string]any
	abortEarly bool
	stopped    bool
}

func newCollector(size int, abortEarly bool) *collector {
	return &collector{
		data:       make(map[string]any, size),
		abortEarly: abortEarly,
	}
}

// fail records a field's errors. With abortEarly set, the first failing field
// stops the pass; the field's own errors are still recorded in full.
func (c *collector) fail(errs []FieldError) {
	c.errs = append(c.errs, errs...)
	if c.abortEarly && len(errs) > 0 {
		c.stopped = true
	}
}

func (c *collector) set(field string, value any) {
	c.data[field] = value
}

func (c *collector) result() *Result {
	res := &Result{
		Valid:       len(c.errs) == 0,
		FieldErrors: c.errs,
		Data:        c.data,
	}
	if len(c.errs) > 0 {
		res.Errors = make([]string, len(c.errs))
		for i, fe := range c.errs {
			res.Errors[i] = fe.String()
		}
	}
	return res
}
