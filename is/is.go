// Package is provides the concrete leaf predicates of the validation
// library: equality, ordering, string blankness, pattern matching, and
// numeric tolerance checks. Each leaf is a plain validity.Validator built
// from a one-line predicate with a default message and a machine-stable
// constraint identifier; wrap a leaf with combine.WithConstraint to override
// the identifier.
package is

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-validation/validity"
)

// Equal accepts candidates equal to the expected value.
//
//nolint:ireturn
func Equal[T comparable](expected T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		return candidate == expected
	}, fmt.Sprintf("must equal %v", expected), "equal")
}

// NotEqual accepts candidates different from the forbidden value.
//
//nolint:ireturn
func NotEqual[T comparable](forbidden T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		return candidate != forbidden
	}, fmt.Sprintf("must not equal %v", forbidden), "not_equal")
}

// OneOf accepts candidates equal to any of the allowed values.
//
//nolint:ireturn
func OneOf[T comparable](allowed ...T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		for _, value := range allowed {
			if candidate == value {
				return true
			}
		}

		return false
	}, fmt.Sprintf("must be one of %v", allowed), "one_of")
}

// NotZero accepts candidates different from their type's zero value.
//
//nolint:ireturn
func NotZero[T comparable]() validity.Validator[T] {
	var zero T

	return validity.Of(func(candidate T) bool {
		return candidate != zero
	}, "must not be the zero value", "not_zero")
}

// AtLeast accepts candidates greater than or equal to the bound.
//
//nolint:ireturn
func AtLeast[T cmp.Ordered](bound T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		return candidate >= bound
	}, fmt.Sprintf("must be at least %v", bound), "at_least")
}

// AtMost accepts candidates less than or equal to the bound.
//
//nolint:ireturn
func AtMost[T cmp.Ordered](bound T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		return candidate <= bound
	}, fmt.Sprintf("must be at most %v", bound), "at_most")
}

// GreaterThan accepts candidates strictly greater than the bound.
//
//nolint:ireturn
func GreaterThan[T cmp.Ordered](bound T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		return candidate > bound
	}, fmt.Sprintf("must be greater than %v", bound), "greater_than")
}

// LessThan accepts candidates strictly less than the bound.
//
//nolint:ireturn
func LessThan[T cmp.Ordered](bound T) validity.Validator[T] {
	return validity.Of(func(candidate T) bool {
		return candidate < bound
	}, fmt.Sprintf("must be less than %v", bound), "less_than")
}
