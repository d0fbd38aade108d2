package validate

import (
	"errors"
	"fmt"
)

// ErrInvalid signals a failed custom check that should be reported with the
// rule's custom message (or the built-in default). Returning any other error
// from a CheckFunc uses that error's text verbatim.
var ErrInvalid = errors.New("invalid value")

// SchemaError reports a misconfigured schema. It is a programmer error, not a
// data error, and is returned before any field of the input is examined.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: field %q: %s", e.Field, e.Reason)
}

// InvalidError is returned by Validate when the ErrorOnInvalid option is set
// and the input did not pass validation. It carries the same error list the
// Result would have contained.
type InvalidError struct {
	Errors      []string
	FieldErrors []FieldError
}

func (e *InvalidError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}

	msg := "validation failed: " + e.Errors[0]
	for _, s := range e.Errors[1:] {
		msg += "; " + s
	}
	return msg
}
