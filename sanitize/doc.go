// Package sanitize provides small, composable string transformations used to
// normalize input before validation.
//
// Transformations are plain func(string) string values composed with Apply or
// Compose. Text adapts a chain into the validate package's Transform
// signature so it can be attached to a schema rule:
//
//	"name": {
//		Type:      validate.TypeString,
//		Required:  true,
//		Transform: []validate.Transform{sanitize.Text(sanitize.Trim, sanitize.CollapseSpaces)},
//	}
//
// All helpers are pure and goroutine-safe.
package sanitize
