package is

import (
	"fmt"
	"math"

	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/validity"
)

// CloseTo accepts floats within the given absolute tolerance of the target.
// The tolerance must be non-negative; a negative tolerance is a programming
// error and panics.
//
//nolint:ireturn
func CloseTo(target, tolerance float64) validity.Validator[float64] {
	assert.True(tolerance >= 0, "is: CloseTo requires a non-negative tolerance, got %v", tolerance)

	return validity.Of(func(candidate float64) bool {
		return math.Abs(candidate-target) <= tolerance
	}, fmt.Sprintf("must be within %v of %v", tolerance, target), "close_to")
}
