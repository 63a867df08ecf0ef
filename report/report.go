// Package report turns validation results into the shapes downstream
// consumers want: serialized failure documents for API responses, distinct
// failing paths for form renderers, and plain Go errors for call sites that
// speak error rather than Result.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"facette.io/natsort"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-validation/errors"
	"github.com/amp-labs/amp-validation/validity"
)

// document is the stable serialized shape of a Result. The field names and
// the per-reason message/constraint/path fields are part of the external
// contract and must not change between versions.
type document struct {
	Valid   bool              `json:"valid"             yaml:"valid"`
	Reasons []validity.Reason `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// JSON renders the result as a JSON document:
//
//	{"valid":false,"reasons":[{"message":"must not be blank","path":".name"}]}
func JSON(result validity.Result) ([]byte, error) {
	return json.Marshal(document{
		Valid:   result.IsValid(),
		Reasons: result.Reasons(),
	})
}

// YAML renders the result as a YAML document with the same shape as JSON.
func YAML(result validity.Result) ([]byte, error) {
	return yaml.Marshal(document{
		Valid:   result.IsValid(),
		Reasons: result.Reasons(),
	})
}

// Paths returns the distinct paths that have at least one failure, in natural
// sort order so that "[2]" sorts before "[10]". A valid result yields an
// empty slice.
func Paths(result validity.Result) []string {
	var (
		paths []string
		seen  = make(map[string]bool)
	)

	for _, reason := range result.Reasons() {
		if !seen[reason.Path] {
			paths = append(paths, reason.Path)
			seen[reason.Path] = true
		}
	}

	natsort.Sort(paths)

	return paths
}

// Error bridges a Result into Go error handling: nil for a valid result,
// otherwise an error wrapping errors.ErrValidation whose message lists every
// reason with its path. Callers can detect the class of failure with
// errors.Is(err, errors.ErrValidation).
func Error(result validity.Result) error {
	if result.IsValid() {
		return nil
	}

	reasons := result.Reasons()
	parts := make([]string, len(reasons))

	for i, reason := range reasons {
		parts[i] = reason.String()
	}

	return fmt.Errorf("%w: %s", errors.ErrValidation, strings.Join(parts, "; "))
}
