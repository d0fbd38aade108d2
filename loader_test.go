package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingbms/validate"
)

const customerDoc = `
name:
  type: string
  required: true
  min: 3
  max: 50
email:
  type: email
  required: true
role:
  type: enum
  enum: [admin, user]
  default: user
tags:
  type: array
  items:
    type: string
address:
  type: object
  schema:
    city:
      type: string
      required: true
    zip:
      type: string
      pattern: '^\d{5}$'
      messages:
        pattern: zip must be five digits
`

func TestParseSchema(t *testing.T) {
	t.Run("parsed schema validates like a hand-built one", func(t *testing.T) {
		schema, err := validate.ParseSchema([]byte(customerDoc))
		require.NoError(t, err)

		engine := validate.New()

		res, err := engine.Validate(map[string]any{
			"name":    "Ada Lovelace",
			"email":   "ada@example.com",
			"tags":    []any{"vip"},
			"address": map[string]any{"city": "London", "zip": "12345"},
		}, schema)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "user", res.Data["role"])

		res, err = engine.Validate(map[string]any{
			"name":    "Ada",
			"email":   "ada@example.com",
			"address": map[string]any{"city": "London", "zip": "12"},
		}, schema)
		require.NoError(t, err)
		assert.Equal(t, []string{"address.zip: zip must be five digits"}, res.Errors)
	})

	t.Run("unknown keys are a decode error", func(t *testing.T) {
		_, err := validate.ParseSchema([]byte("name:\n  typ: string\n"))
		assert.Error(t, err)
	})

	t.Run("misconfigured schema is rejected at parse time", func(t *testing.T) {
		_, err := validate.ParseSchema([]byte("role:\n  type: enum\n"))

		var schemaErr *validate.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "role", schemaErr.Field)
	})

	t.Run("empty document yields an empty schema", func(t *testing.T) {
		schema, err := validate.ParseSchema(nil)
		require.NoError(t, err)
		assert.Empty(t, schema)
	})
}

func TestLoadSchema(t *testing.T) {
	t.Run("reads a schema document from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(customerDoc), 0o644))

		schema, err := validate.LoadSchema(path)
		require.NoError(t, err)
		assert.Contains(t, schema, "name")
		assert.Contains(t, schema, "address")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := validate.LoadSchema(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
