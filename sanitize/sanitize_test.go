package sanitize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingbms/validate/sanitize"
)

func TestApply(t *testing.T) {
	t.Run("runs transforms in order", func(t *testing.T) {
		got := sanitize.Apply("  Hello  World  ", sanitize.Trim, sanitize.CollapseSpaces, sanitize.Lower)
		assert.Equal(t, "hello world", got)
	})

	t.Run("no transforms returns the value unchanged", func(t *testing.T) {
		assert.Equal(t, "x", sanitize.Apply("x"))
	})
}

func TestCompose(t *testing.T) {
	normalize := sanitize.Compose(sanitize.Trim, sanitize.Lower)

	assert.Equal(t, "ada@example.com", normalize(" ADA@Example.COM "))
	assert.Equal(t, "plain", normalize("plain"))
}

func TestText(t *testing.T) {
	t.Run("applies string transforms through the schema transform", func(t *testing.T) {
		tr := sanitize.Text(sanitize.Trim, sanitize.Lower)

		got, err := tr("  ADA  ")
		require.NoError(t, err)
		assert.Equal(t, "ada", got)
	})

	t.Run("non-string values pass through untouched", func(t *testing.T) {
		tr := sanitize.Text(sanitize.Trim)

		got, err := tr(42)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})
}

func TestStringHelpers(t *testing.T) {
	t.Run("Trim", func(t *testing.T) {
		assert.Equal(t, "a", sanitize.Trim(" \t a \n"))
	})

	t.Run("Lower and Upper", func(t *testing.T) {
		assert.Equal(t, "abc", sanitize.Lower("AbC"))
		assert.Equal(t, "ABC", sanitize.Upper("AbC"))
	})

	t.Run("Title", func(t *testing.T) {
		assert.Equal(t, "Ada Lovelace", sanitize.Title("ada lovelace"))
	})

	t.Run("CollapseSpaces", func(t *testing.T) {
		assert.Equal(t, "a b c", sanitize.CollapseSpaces("  a \t b\n\nc  "))
		assert.Equal(t, "", sanitize.CollapseSpaces("   "))
	})

	t.Run("StripControl", func(t *testing.T) {
		assert.Equal(t, "abc", sanitize.StripControl("a\x00b\x1bc"))
		assert.Equal(t, "keep spaces", sanitize.StripControl("keep spaces"))
	})

	t.Run("StripControl drops newlines and tabs", func(t *testing.T) {
		got := sanitize.StripControl("a\nb\tc")
		assert.False(t, strings.ContainsAny(got, "\n\t"))
	})
}
