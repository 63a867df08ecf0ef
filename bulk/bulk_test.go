package bulk

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-validation/errors"
	"github.com/amp-labs/amp-validation/is"
	"github.com/amp-labs/amp-validation/validity"
)

func TestCheckAll(t *testing.T) {
	t.Parallel()

	t.Run("results preserve candidate order", func(t *testing.T) {
		t.Parallel()

		results, err := CheckAll(context.Background(), is.AtLeast(18),
			[]int{21, 15, 30, 17})
		require.NoError(t, err)
		require.Len(t, results, 4)

		assert.True(t, results[0].IsValid())
		assert.False(t, results[1].IsValid())
		assert.True(t, results[2].IsValid())
		assert.False(t, results[3].IsValid())
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		results, err := CheckAll(context.Background(), is.AtLeast(18), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("bounded concurrency", func(t *testing.T) {
		t.Parallel()

		candidates := make([]int, 100)
		for i := range candidates {
			candidates[i] = i
		}

		results, err := CheckAll(context.Background(), is.AtLeast(50), candidates,
			WithConcurrency(2))
		require.NoError(t, err)
		require.Len(t, results, 100)

		for i, result := range results {
			assert.Equal(t, i >= 50, result.IsValid())
		}
	})

	t.Run("logs failures when a logger is configured", func(t *testing.T) {
		t.Parallel()

		results, err := CheckAll(context.Background(), is.NotBlank(),
			[]string{"ok", ""},
			WithLogger(slogt.New(t)))
		require.NoError(t, err)
		assert.True(t, results[0].IsValid())
		assert.False(t, results[1].IsValid())
	})

	t.Run("cancelled context returns the context error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := CheckAll(ctx, is.AtLeast(18), []int{21, 15})
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, results)
	})
}

func TestCheckAllErr(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, CheckAllErr(context.Background(), is.AtLeast(18), []int{21, 30}))
	})

	t.Run("failures name the candidate index", func(t *testing.T) {
		t.Parallel()

		err := CheckAllErr(context.Background(), is.AtLeast(18), []int{21, 15, 17})
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrValidation))
		assert.Contains(t, err.Error(), "candidate 1:")
		assert.Contains(t, err.Error(), "candidate 2:")
	})
}

func TestCheckAll_SharedTreeIsSafe(t *testing.T) {
	t.Parallel()

	// One tree, many concurrent candidates; referential transparency means
	// repeated runs agree.
	tree := validity.Of(func(n int) bool { return n%2 == 0 }, "must be even", "even")

	candidates := make([]int, 64)
	for i := range candidates {
		candidates[i] = i
	}

	first, err := CheckAll(context.Background(), tree, candidates, WithConcurrency(16))
	require.NoError(t, err)

	second, err := CheckAll(context.Background(), tree, candidates, WithConcurrency(16))
	require.NoError(t, err)

	for i := range first {
		assert.True(t, first[i].Equals(second[i]))
	}
}
