// Package node provides the path-aware tree validator: a node validator
// applies an ordered list of (mapper, validator) pairs to a structured
// candidate and merges the child results, prefixing each reason's path with
// the mapper's path label. Nesting node validators accumulates paths to
// arbitrary depth, so a reason produced three levels down carries the full
// dotted and bracketed path from the root (e.g. ".orders[2].total").
//
// Mappers are plain accessor functions paired with a path label; no
// reflection is involved. A mapper must be total over its declared candidate
// type: a mapper that panics indicates a broken validator tree, and the panic
// propagates rather than being folded into the validation result.
package node

import (
	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/validity"
)

// Pair couples a path label with the check for one mapped sub-value of T.
// Construct pairs with Field (or Self for constraints on the candidate
// itself), then assemble them into a validator with Of.
type Pair[T any] struct {
	path  string
	check func(candidate T) validity.Result
}

// Field builds a Pair from a path label, an accessor projecting the candidate
// to a sub-value, and the validator for that sub-value. The path label
// describes how the sub-value was derived and becomes the prefix of every
// reason the validator reports, e.g. ".email" or ".total()".
//
// The accessor must be a pure function and must not panic for any candidate
// of type T; nullability of the sub-value belongs in R's type (use a pointer
// with combine.NotNilValid or combine.NilOrValid), never in the accessor.
func Field[T any, R any](path string, get func(T) R, validator validity.Validator[R]) Pair[T] {
	assert.True(get != nil, "node: Field %q requires an accessor", path)
	assert.NotNil(validator, "node: Field %q requires a validator", path)

	return Pair[T]{
		path: path,
		check: func(candidate T) validity.Result {
			return validator.CheckValid(get(candidate))
		},
	}
}

// Self builds a Pair that applies a validator to the candidate itself, with
// no path prefix. Use this to mix whole-value constraints (cross-field rules)
// into a node alongside per-field pairs.
func Self[T any](validator validity.Validator[T]) Pair[T] {
	assert.NotNil(validator, "node: Self requires a validator")

	return Pair[T]{
		path: "",
		check: func(candidate T) validity.Result {
			return validator.CheckValid(candidate)
		},
	}
}

// Of assembles an ordered list of pairs into a node validator for T.
//
// Checking a candidate applies every pair: each pair's mapper projects the
// sub-value, the paired validator checks it, and each resulting reason has
// the pair's path prepended to its own. Evaluation never short-circuits, so a
// single check surfaces all violations at once. Reasons are concatenated in
// pair order, preserving each pair's internal sub-order; overall validity is
// the AND of all pairs and does not depend on pair order.
//
//nolint:ireturn
func Of[T any](pairs ...Pair[T]) validity.Validator[T] {
	return validity.Func[T](func(candidate T) validity.Result {
		var reasons []validity.Reason

		for _, pair := range pairs {
			for _, reason := range pair.check(candidate).Reasons() {
				reasons = append(reasons, reason.AtPath(pair.path))
			}
		}

		return validity.FromReasons(reasons)
	})
}
