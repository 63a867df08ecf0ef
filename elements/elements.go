// Package elements provides adapters that lift an element-level validator to
// operate over a slice, either by cardinality (Size) or by quantifying over
// the elements (All, Any, OnlyOne).
//
// The empty-collection conventions follow the quantification semantics of
// package combine: All accepts an empty collection, Any and OnlyOne reject
// it. Reasons produced by element validators are prefixed with the failing
// element's "[i]" index; any ambient path above the collection itself is
// layered on by the node validator that maps to it.
package elements

import (
	"fmt"

	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/validity"
)

// Size returns a validator that checks only the collection's cardinality,
// delegating to the given numeric validator applied to len(candidate).
// Elements are never inspected.
//
//nolint:ireturn
func Size[E any](size validity.Validator[int]) validity.Validator[[]E] {
	assert.NotNil(size, "elements: Size requires a cardinality validator")

	return validity.Func[[]E](func(candidate []E) validity.Result {
		return size.CheckValid(len(candidate))
	})
}

// All returns a validator that accepts a collection only if every element
// satisfies the element validator (universal quantification). An empty
// collection is always valid.
//
// Every element is checked even after one fails; each failing element's
// reasons are prefixed with its "[i]" index and concatenated in element
// order.
//
//nolint:ireturn
func All[E any](element validity.Validator[E]) validity.Validator[[]E] {
	assert.NotNil(element, "elements: All requires an element validator")

	return validity.Func[[]E](func(candidate []E) validity.Result {
		var reasons []validity.Reason

		for i, value := range candidate {
			for _, reason := range element.CheckValid(value).Reasons() {
				reasons = append(reasons, reason.AtPath(fmt.Sprintf("[%d]", i)))
			}
		}

		return validity.FromReasons(reasons)
	})
}

// Any returns a validator that accepts a collection if at least one element
// satisfies the element validator (existential quantification). An empty
// collection is always invalid: there is no element to satisfy.
//
// When no element passes, every element's reasons are reported, each prefixed
// with its "[i]" index.
//
//nolint:ireturn
func Any[E any](element validity.Validator[E]) validity.Validator[[]E] {
	assert.NotNil(element, "elements: Any requires an element validator")

	return validity.Func[[]E](func(candidate []E) validity.Result {
		if len(candidate) == 0 {
			return validity.Invalid(validity.
				NewReason("must contain at least one element satisfying the constraint, but the collection is empty").
				WithConstraint("any_element"))
		}

		var reasons []validity.Reason

		for i, value := range candidate {
			result := element.CheckValid(value)
			if result.IsValid() {
				return validity.Valid()
			}

			for _, reason := range result.Reasons() {
				reasons = append(reasons, reason.AtPath(fmt.Sprintf("[%d]", i)))
			}
		}

		return validity.FromReasons(reasons)
	})
}

// OnlyOne returns a validator that accepts a collection if exactly one
// element satisfies the element validator. An empty collection is always
// invalid.
//
// With zero passing elements the result reports every element's reasons,
// index-prefixed; with two or more passing elements it reports a single
// synthetic reason naming the passing indices.
//
//nolint:ireturn
func OnlyOne[E any](element validity.Validator[E]) validity.Validator[[]E] {
	assert.NotNil(element, "elements: OnlyOne requires an element validator")

	return validity.Func[[]E](func(candidate []E) validity.Result {
		if len(candidate) == 0 {
			return validity.Invalid(validity.
				NewReason("must contain exactly one element satisfying the constraint, but the collection is empty").
				WithConstraint("only_one_element"))
		}

		var (
			reasons      []validity.Reason
			validIndices []int
		)

		for i, value := range candidate {
			result := element.CheckValid(value)
			if result.IsValid() {
				validIndices = append(validIndices, i)

				continue
			}

			for _, reason := range result.Reasons() {
				reasons = append(reasons, reason.AtPath(fmt.Sprintf("[%d]", i)))
			}
		}

		switch len(validIndices) {
		case 1:
			return validity.Valid()
		case 0:
			return validity.FromReasons(reasons)
		default:
			return validity.Invalid(validity.
				NewReason(fmt.Sprintf(
					"must contain exactly one element satisfying the constraint, but %d do (at indices %v)",
					len(validIndices), validIndices)).
				WithConstraint("only_one_element"))
		}
	})
}
