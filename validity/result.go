package validity

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/compare"
)

// Reason is one unit of explanation for why a candidate was invalid.
// It is an immutable value: the With* methods return modified copies.
//
// Message is a human-readable description of the violation. Constraint is an
// optional machine-stable identifier of the violated rule (empty when unset).
// Path locates the offending sub-value within the originally validated root,
// using "." field segments and "[i]" index segments; it is empty for the root
// itself. Both field names and path syntax are part of the stable external
// contract consumed by error renderers.
type Reason struct {
	Message    string `json:"message"              yaml:"message"`
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	Path       string `json:"path"                 yaml:"path"`
}

// Compile-time assertion that Reason implements compare.Comparable.
var _ compare.Comparable[Reason] = Reason{}

// NewReason creates a Reason with the given message, no constraint
// identifier, and the root path.
func NewReason(message string) Reason {
	return Reason{Message: message}
}

// WithConstraint returns a copy of the reason with the constraint identifier
// replaced.
func (r Reason) WithConstraint(constraint string) Reason {
	r.Constraint = constraint

	return r
}

// AtPath returns a copy of the reason with the given path segment prepended
// to its existing path. Segments concatenate by plain string prefixing, so a
// reason at ".value" prefixed with ".inner" ends up at ".inner.value", and a
// reason at ".email" prefixed with "[2]" ends up at "[2].email".
func (r Reason) AtPath(prefix string) Reason {
	r.Path = prefix + r.Path

	return r
}

// Equals reports whether two reasons are identical in message, constraint,
// and path. This implements compare.Comparable.
func (r Reason) Equals(other Reason) bool {
	return r == other
}

// String returns a readable rendering of the reason, prefixed with its path
// when the reason does not concern the root value.
func (r Reason) String() string {
	if r.Path == "" {
		return r.Message
	}

	return fmt.Sprintf("%s: %s", r.Path, r.Message)
}

// Result is the outcome of a validity check: either valid, or invalid with an
// ordered, non-empty sequence of reasons. The zero value is valid. Results
// are immutable value objects; Reasons returns a defensive copy.
type Result struct {
	reasons []Reason
}

// Compile-time assertion that Result implements compare.Comparable.
var _ compare.Comparable[Result] = Result{}

// Valid returns the valid Result.
func Valid() Result {
	return Result{}
}

// Invalid returns an invalid Result carrying the given reasons in order.
// An invalid Result must explain itself: constructing one with zero reasons
// is a programming error and panics.
func Invalid(reasons ...Reason) Result {
	assert.NotEmpty(reasons, "validity: Invalid requires at least one reason")

	owned := make([]Reason, len(reasons))
	copy(owned, reasons)

	return Result{reasons: owned}
}

// FromReasons builds a Result from an already-aggregated reason list:
// Valid when the list is empty, Invalid otherwise. This is the merge point
// used by combinators and node validators after collecting child failures.
// Ownership of the slice transfers to the Result; the caller must not
// modify it afterwards.
func FromReasons(reasons []Reason) Result {
	if len(reasons) == 0 {
		return Valid()
	}

	return Result{reasons: reasons}
}

// IsValid returns true if the check passed.
func (r Result) IsValid() bool {
	return len(r.reasons) == 0
}

// Reasons returns the ordered failure reasons. The returned slice is a copy,
// so callers cannot alter the Result. Valid results return nil.
func (r Result) Reasons() []Reason {
	if len(r.reasons) == 0 {
		return nil
	}

	out := make([]Reason, len(r.reasons))
	copy(out, r.reasons)

	return out
}

// Equals reports whether two results are both valid, or both invalid with
// equal ordered reason sequences. This implements compare.Comparable.
func (r Result) Equals(other Result) bool {
	return compare.EqualSlices(r.reasons, other.reasons, func(a, b Reason) bool {
		return a.Equals(b)
	})
}

// String returns "valid" for a valid result, or a semicolon-separated list of
// reasons for an invalid one.
func (r Result) String() string {
	if r.IsValid() {
		return "valid"
	}

	parts := make([]string, len(r.reasons))
	for i, reason := range r.reasons {
		parts[i] = reason.String()
	}

	return "invalid: " + strings.Join(parts, "; ")
}
