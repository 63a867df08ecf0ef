// Package combine provides combinators that build larger validators out of
// smaller ones with boolean-logic semantics (AND, OR, NOT, XOR) and
// nil-awareness. Combinators know nothing about paths or object structure;
// they operate purely in terms of the validity.Validator contract.
//
// The empty-list conventions mirror universal and existential quantification:
// AllValid with no children accepts everything ("all of nothing" holds), while
// AnyValid and OnlyOneValid with no children reject everything ("any of
// nothing" cannot hold). The collection adapters in package elements reuse
// these conventions, so changing them silently breaks collection semantics.
package combine
