package is

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/amp-labs/amp-validation/assert"
	"github.com/amp-labs/amp-validation/validity"
)

// NotBlank accepts strings containing at least one non-whitespace rune.
//
//nolint:ireturn
func NotBlank() validity.Validator[string] {
	return validity.Of(func(candidate string) bool {
		return strings.TrimSpace(candidate) != ""
	}, "must not be blank", "not_blank")
}

// Blank accepts strings that are empty or whitespace-only.
//
//nolint:ireturn
func Blank() validity.Validator[string] {
	return validity.Of(func(candidate string) bool {
		return strings.TrimSpace(candidate) == ""
	}, "must be blank", "blank")
}

// Match accepts strings matched by the given compiled pattern. Compile the
// pattern once at tree-assembly time; a nil pattern panics.
//
//nolint:ireturn
func Match(pattern *regexp.Regexp) validity.Validator[string] {
	assert.True(pattern != nil, "is: Match requires a compiled pattern")

	return validity.Of(
		pattern.MatchString,
		fmt.Sprintf("must match %q", pattern.String()), "match")
}

// UUID accepts strings that parse as a UUID in any of the formats accepted by
// github.com/google/uuid, e.g. "6ba7b810-9dad-11d1-80b4-00c04fd430c8".
//
//nolint:ireturn
func UUID() validity.Validator[string] {
	return validity.Of(func(candidate string) bool {
		_, err := uuid.Parse(candidate)

		return err == nil
	}, "must be a well-formed UUID", "uuid")
}

// Normalized accepts strings already in the given Unicode normal form.
// User-supplied identifiers are commonly required to be NFC so that visually
// identical strings compare equal:
//
//	is.Normalized(norm.NFC)
//
//nolint:ireturn
func Normalized(form norm.Form) validity.Validator[string] {
	return validity.Of(
		form.IsNormalString,
		"must be in Unicode normal form", "normalized")
}
