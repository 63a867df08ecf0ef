package validity

// Validator is the single contract every constraint in this library
// implements: leaf predicates, combinators, collection adapters, and node
// validators alike. A Validator maps a candidate value to a Result and
// nothing else.
//
// Implementations must be referentially transparent: no side effects, no
// mutation of the candidate, and identical Results for identical inputs.
// Combinators rely on this, some invoke a child validator's result more than
// once when deciding aggregate validity.
type Validator[T any] interface {
	// CheckValid tests the candidate and reports the outcome. It never fails
	// to produce a Result: data-dependent violations come back as an invalid
	// Result, while misuse of the validator tree itself (a mapper applied
	// outside its domain) panics.
	CheckValid(candidate T) Result
}

// Func adapts an ordinary function to the Validator interface. This is the
// idiomatic way to define a leaf validator inline:
//
//	positive := validity.Func[int](func(n int) validity.Result {
//	    if n > 0 {
//	        return validity.Valid()
//	    }
//	    return validity.Invalid(validity.NewReason("must be positive"))
//	})
type Func[T any] func(candidate T) Result

// Compile-time assertion that Func implements Validator.
var _ Validator[int] = (Func[int])(nil)

// CheckValid invokes the wrapped function. This implements Validator.
func (f Func[T]) CheckValid(candidate T) Result {
	return f(candidate)
}

// Of builds a leaf validator from a boolean predicate. When the predicate
// rejects a candidate the resulting Result carries a single reason with the
// given message and constraint identifier (constraint may be empty).
//
//nolint:ireturn
func Of[T any](predicate func(T) bool, message string, constraint string) Validator[T] {
	return Func[T](func(candidate T) Result {
		if predicate(candidate) {
			return Valid()
		}

		return Invalid(NewReason(message).WithConstraint(constraint))
	})
}
