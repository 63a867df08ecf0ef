package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: name must not be blank", ErrValidation)
	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.False(t, errors.Is(wrapped, ErrWrongType))
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Len(t, c.errors, 2)
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errors.New("error 1")) //nolint:err113

	c.Clear()

	assert.False(t, c.HasError())
	assert.Empty(t, c.errors)
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection returns nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err := errors.New("only error") //nolint:err113
		c.Add(err)

		require.ErrorIs(t, c.GetError(), err)
		assert.Equal(t, err, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		err2 := errors.New("error 2") //nolint:err113
		c.Add(err1)
		c.Add(err2)

		combined := c.GetError()
		require.Error(t, combined)
		assert.True(t, errors.Is(combined, err1))
		assert.True(t, errors.Is(combined, err2))
	})
}
