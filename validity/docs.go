// Package validity defines the core contract of the validation library: the
// Validator interface, the Result type that every check produces, and the
// Reason records that explain failures.
//
// A Validator is a pure function-object: calling CheckValid twice with the
// same input yields the same Result, and a check never mutates its candidate
// or performs I/O. Validator trees are immutable once assembled, so a single
// tree can be shared and invoked concurrently against different candidates
// without synchronization.
//
// A Result is either valid (no reasons) or invalid with an ordered, non-empty
// sequence of Reasons. Each Reason carries a human-readable message, an
// optional machine-stable constraint identifier, and the path of the offending
// sub-value relative to the originally validated root ("" for the root
// itself, ".email" for a field, "[3]" for an element, ".orders[2].total" for
// nested structures).
//
// Validation failures are always returned as data, never raised: a Validator
// cannot fail to produce a Result. Programming errors (an Invalid constructed
// with zero reasons, a mapper applied outside its domain) panic instead, since
// they indicate a broken validator tree rather than bad input.
//
// Validating cyclic object graphs is undefined behavior: checks recurse
// structurally with no visited-set guard, so a self-referential candidate
// will not terminate.
package validity
