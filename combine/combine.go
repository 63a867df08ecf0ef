package combine

import (
	"fmt"

	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/validity"
)

// AllValid returns a validator that accepts a candidate only if every child
// accepts it (logical AND, universal quantification). With no children it
// accepts everything.
//
// Every child is evaluated even after one fails, so a single check surfaces
// all violations at once. The aggregate reasons are the failing children's
// reasons concatenated in child order.
//
//nolint:ireturn
func AllValid[T any](children ...validity.Validator[T]) validity.Validator[T] {
	requireChildren(children)

	return validity.Func[T](func(candidate T) validity.Result {
		var reasons []validity.Reason

		for _, child := range children {
			reasons = append(reasons, child.CheckValid(candidate).Reasons()...)
		}

		return validity.FromReasons(reasons)
	})
}

// AnyValid returns a validator that accepts a candidate if at least one child
// accepts it (logical OR, existential quantification). With no children it
// rejects everything: there is no child to satisfy.
//
// When every child rejects the candidate, the aggregate reasons are all
// children's reasons concatenated in child order, so the caller can see every
// alternative that was tried.
//
//nolint:ireturn
func AnyValid[T any](children ...validity.Validator[T]) validity.Validator[T] {
	requireChildren(children)

	return validity.Func[T](func(candidate T) validity.Result {
		if len(children) == 0 {
			return validity.Invalid(validity.
				NewReason("must satisfy at least one constraint, but none were given").
				WithConstraint("any_valid"))
		}

		var reasons []validity.Reason

		for _, child := range children {
			result := child.CheckValid(candidate)
			if result.IsValid() {
				return validity.Valid()
			}

			reasons = append(reasons, result.Reasons()...)
		}

		return validity.FromReasons(reasons)
	})
}

// NotValid returns a validator that inverts its child: it accepts a candidate
// only if the child rejects it. Since the child's reasons describe the
// opposite polarity, the result carries a single synthetic reason instead of
// the child's own.
//
//nolint:ireturn
func NotValid[T any](child validity.Validator[T]) validity.Validator[T] {
	assert.NotNil(child, "combine: NotValid requires a child validator")

	return validity.Func[T](func(candidate T) validity.Result {
		if child.CheckValid(candidate).IsValid() {
			return validity.Invalid(validity.
				NewReason("must not satisfy the given constraint").
				WithConstraint("not_valid"))
		}

		return validity.Valid()
	})
}

// OnlyOneValid returns a validator that accepts a candidate if exactly one
// child accepts it (logical XOR). With no children it rejects everything.
//
// Both failure modes are explicit, not undefined behavior:
//   - zero children valid: the aggregate reasons are all children's reasons
//     concatenated in child order;
//   - two or more children valid: a single synthetic reason names the indices
//     of the conflicting children.
//
// All children are always evaluated; the valid count cannot be decided early.
//
//nolint:ireturn
func OnlyOneValid[T any](children ...validity.Validator[T]) validity.Validator[T] {
	requireChildren(children)

	return validity.Func[T](func(candidate T) validity.Result {
		var (
			reasons      []validity.Reason
			validIndices []int
		)

		for i, child := range children {
			result := child.CheckValid(candidate)
			if result.IsValid() {
				validIndices = append(validIndices, i)
			} else {
				reasons = append(reasons, result.Reasons()...)
			}
		}

		switch len(validIndices) {
		case 1:
			return validity.Valid()
		case 0:
			if len(children) == 0 {
				return validity.Invalid(validity.
					NewReason("must satisfy exactly one constraint, but none were given").
					WithConstraint("only_one_valid"))
			}

			return validity.FromReasons(reasons)
		default:
			return validity.Invalid(validity.
				NewReason(fmt.Sprintf(
					"must satisfy exactly one constraint, but %d were satisfied (at indices %v)",
					len(validIndices), validIndices)).
				WithConstraint("only_one_valid"))
		}
	})
}

// WithConstraint wraps a validator so that every reason it produces carries
// the given constraint identifier, overwriting whatever identifier the child
// assigned. Use this to give a composed validator a single machine-stable
// identity regardless of which inner rule fired.
//
//nolint:ireturn
func WithConstraint[T any](child validity.Validator[T], constraint string) validity.Validator[T] {
	assert.NotNil(child, "combine: WithConstraint requires a child validator")

	return validity.Func[T](func(candidate T) validity.Result {
		result := child.CheckValid(candidate)
		if result.IsValid() {
			return result
		}

		reasons := result.Reasons()
		for i := range reasons {
			reasons[i] = reasons[i].WithConstraint(constraint)
		}

		return validity.FromReasons(reasons)
	})
}

// requireChildren panics if any child in a variadic combinator is nil.
// A nil child is a broken validator tree, caught at assembly time rather than
// at first use.
func requireChildren[T any](children []validity.Validator[T]) {
	for i, child := range children {
		assert.NotNil(child, "combine: child validator at index %d is nil", i)
	}
}
