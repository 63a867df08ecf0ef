package is

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestNotBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, NotBlank().CheckValid("hello").IsValid())
	assert.False(t, NotBlank().CheckValid("").IsValid())
	assert.False(t, NotBlank().CheckValid(" \t\n").IsValid())

	result := NotBlank().CheckValid("")
	require.False(t, result.IsValid())
	assert.Equal(t, "must not be blank", result.Reasons()[0].Message)
	assert.Equal(t, "not_blank", result.Reasons()[0].Constraint)
}

func TestBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, Blank().CheckValid("").IsValid())
	assert.True(t, Blank().CheckValid("  ").IsValid())
	assert.False(t, Blank().CheckValid("hello").IsValid())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	v := Match(regexp.MustCompile(`^[a-z]+$`))

	assert.True(t, v.CheckValid("hello").IsValid())
	assert.False(t, v.CheckValid("Hello123").IsValid())

	t.Run("nil pattern panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			Match(nil)
		})
	})
}

func TestUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, UUID().CheckValid("6ba7b810-9dad-11d1-80b4-00c04fd430c8").IsValid())
	assert.True(t, UUID().CheckValid("6ba7b8109dad11d180b400c04fd430c8").IsValid())
	assert.False(t, UUID().CheckValid("not-a-uuid").IsValid())
	assert.False(t, UUID().CheckValid("").IsValid())
}

func TestNormalized(t *testing.T) {
	t.Parallel()

	v := Normalized(norm.NFC)

	// "é" as a single precomposed rune is NFC.
	assert.True(t, v.CheckValid("café").IsValid())
	// "e" followed by a combining acute accent is not.
	assert.False(t, v.CheckValid("café").IsValid())
}
