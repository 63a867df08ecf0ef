package combine

import (
	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/validity"
)

// NotNilValid lifts a validator over T to a validator over *T that requires
// the pointer to be non-nil. A nil candidate yields a single "must not be
// nil" reason; a non-nil candidate is dereferenced and delegated to the
// child.
//
//nolint:ireturn
func NotNilValid[T any](child validity.Validator[T]) validity.Validator[*T] {
	assert.NotNil(child, "combine: NotNilValid requires a child validator")

	return validity.Func[*T](func(candidate *T) validity.Result {
		if candidate == nil {
			return validity.Invalid(validity.
				NewReason("must not be nil").
				WithConstraint("not_nil"))
		}

		return child.CheckValid(*candidate)
	})
}

// NilOrValid lifts a validator over T to a validator over *T that treats a
// nil pointer as valid. A non-nil candidate is dereferenced and delegated to
// the child; its reasons pass through unchanged. Use this for optional fields
// that must be well-formed only when present.
//
//nolint:ireturn
func NilOrValid[T any](child validity.Validator[T]) validity.Validator[*T] {
	assert.NotNil(child, "combine: NilOrValid requires a child validator")

	return validity.Func[*T](func(candidate *T) validity.Result {
		if candidate == nil {
			return validity.Valid()
		}

		return child.CheckValid(*candidate)
	})
}
