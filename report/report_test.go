package report

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-validation/errors"
	"github.com/amp-labs/amp-validation/validity"
)

func invalidResult() validity.Result {
	return validity.Invalid(
		validity.NewReason("must not be blank").WithConstraint("not_blank").AtPath(".name"),
		validity.NewReason("must be at least 18").AtPath(".age"),
	)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid result", func(t *testing.T) {
		t.Parallel()

		data, err := JSON(validity.Valid())
		require.NoError(t, err)
		assert.JSONEq(t, `{"valid":true}`, string(data))
	})

	t.Run("invalid result", func(t *testing.T) {
		t.Parallel()

		data, err := JSON(invalidResult())
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"valid": false,
			"reasons": [
				{"message": "must not be blank", "constraint": "not_blank", "path": ".name"},
				{"message": "must be at least 18", "path": ".age"}
			]
		}`, string(data))
	})
}

func TestYAML(t *testing.T) {
	t.Parallel()

	data, err := YAML(invalidResult())
	require.NoError(t, err)

	var decoded struct {
		Valid   bool `yaml:"valid"`
		Reasons []struct {
			Message    string `yaml:"message"`
			Constraint string `yaml:"constraint"`
			Path       string `yaml:"path"`
		} `yaml:"reasons"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.False(t, decoded.Valid)
	require.Len(t, decoded.Reasons, 2)
	assert.Equal(t, "must not be blank", decoded.Reasons[0].Message)
	assert.Equal(t, "not_blank", decoded.Reasons[0].Constraint)
	assert.Equal(t, ".name", decoded.Reasons[0].Path)
	assert.Equal(t, ".age", decoded.Reasons[1].Path)
}

func TestPaths(t *testing.T) {
	t.Parallel()

	t.Run("valid result has no paths", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Paths(validity.Valid()))
	})

	t.Run("distinct paths only", func(t *testing.T) {
		t.Parallel()

		result := validity.Invalid(
			validity.NewReason("too short").AtPath(".name"),
			validity.NewReason("bad characters").AtPath(".name"),
			validity.NewReason("too young").AtPath(".age"),
		)

		assert.Equal(t, []string{".age", ".name"}, Paths(result))
	})

	t.Run("indices sort naturally", func(t *testing.T) {
		t.Parallel()

		result := validity.Invalid(
			validity.NewReason("nope").AtPath(".items[10]"),
			validity.NewReason("nope").AtPath(".items[2]"),
		)

		assert.Equal(t, []string{".items[2]", ".items[10]"}, Paths(result))
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("valid result is nil", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, Error(validity.Valid()))
	})

	t.Run("invalid result wraps ErrValidation", func(t *testing.T) {
		t.Parallel()

		err := Error(invalidResult())
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrValidation))
		assert.Contains(t, err.Error(), ".name: must not be blank")
		assert.Contains(t, err.Error(), ".age: must be at least 18")
	})
}
