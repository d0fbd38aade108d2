// Package validate checks untrusted, loosely-typed records against
// declarative schemas, producing either a normalized, type-correct record or
// a deterministic list of field errors. It is the input boundary of the
// Rising BMS services: request handlers decode JSON into map[string]any,
// hand it to an Engine together with a Schema constant authored per entity
// operation, and consume the structured Result.
//
// # Architecture
//
// An Engine owns two registries: a type registry mapping type tags ("string",
// "email", "uuid", ...) to conformance predicates with optional coercions,
// and a rule registry mapping constraint names ("min", "pattern", ...) to
// predicates that run only when the schema rule declares the matching
// property. Both registries are instance state, so tests and call sites with
// custom types build isolated engines instead of sharing mutable globals.
// Registration is startup-only.
//
// Validation itself is a pure, synchronous reduction over the schema's
// fields in sorted name order. Per field the engine substitutes defaults,
// enforces required, runs the transform pipeline, type-checks (coercing
// numeric strings, "true"/"false", and RFC 3339 timestamps when conversion
// is on), accumulates every failing constraint, invokes the custom check,
// and recurses into array items and nested object schemas with
// "field[index]" and "field.subkey" error paths.
//
// # Usage
//
//	engine := validate.New()
//
//	schema := validate.Schema{
//		"name":  {Type: validate.TypeString, Required: true, Min: validate.Num(3), Max: validate.Num(50)},
//		"email": {Type: validate.TypeEmail, Required: true},
//		"role":  {Type: validate.TypeEnum, Enum: []any{"admin", "user"}, Default: "user"},
//	}
//
//	res, err := engine.Validate(data, schema, validate.StripUnknown())
//	if err != nil {
//		// misconfigured schema; programmer error
//	}
//	if !res.Valid {
//		// res.Errors holds "<path>: <message>" entries
//	}
//	record := res.Data
//
// Schemas can also be loaded from YAML documents with ParseSchema and
// LoadSchema.
//
// # Error Handling
//
// Bad input is a normal outcome represented as Result.Valid == false; the
// engine returns a non-nil error only for a misconfigured schema, or when
// the ErrorOnInvalid call option converts a failed pass into an
// *InvalidError. Errors or panics from transforms and custom checks are
// caught and reported as custom field errors, never propagated.
//
// # Concurrency
//
// Schemas and Rules are immutable data reused across calls; concurrent
// Validate calls against the same Engine and Schema are safe once
// registration has finished.
package validate
