// Package bounds computes and validates mode-dependent (skip, take) windows
// over length-known sequences.
//
// A caller supplies a sequence length, an optional skip/take request, and a
// Mode; Validate returns the effective window together with every violation
// found. Skip and take are checked independently — a skip violation never
// suppresses the take check — and all violations for a call are collected
// before any error is surfaced.
package bounds

import (
	"fmt"
	"strings"
)

// Request carries the caller-supplied skip/take pair. A nil field means the
// value is absent and the mode-dependent default applies; absence is distinct
// from zero, so no sentinel values are needed.
type Request struct {
	// Skip is the start offset of the window. Defaults to 0 when nil.
	Skip *int

	// Take is the element count of the window. Defaults to the sequence
	// length when nil.
	Take *int
}

// ValidationError describes a single violation found during validation.
type ValidationError struct {
	// Field names the offending parameter, "skip" or "take".
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result holds the outcome of a single validation call. It is constructed
// once per call and never mutated afterwards.
type Result struct {
	// Source names the sequence being validated, for error messages.
	Source string

	// Skip is the effective start offset after defaulting.
	Skip int

	// Take is the effective element count after defaulting.
	Take int

	// Errors lists every violation found. Empty when the request is valid.
	Errors []ValidationError
}

// OK reports whether the request validated cleanly.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns an aggregated *Error describing every violation, or nil when
// the request is valid. Callers can use errors.As to recover the individual
// violations.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Source: r.Source, Problems: r.Errors}
}

// Error is the aggregated validation failure for one call. All violations
// for the call are collected before it is raised; there are no partial
// results.
type Error struct {
	// Source names the sequence whose range was invalid.
	Source string

	// Problems lists the individual violations.
	Problems []ValidationError
}

// Error returns a human-readable summary of all violations.
func (e *Error) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("invalid range for %s: %s", e.Source, strings.Join(parts, "; "))
}

// Validate computes the effective (skip, take) window for a sequence of the
// given length under the given mode.
//
// Defaulting: an absent skip becomes 0; an absent take becomes length (which
// is 0 for an empty sequence). Defaults apply in every mode, including
// PassThrough.
//
// Array mode requires the window to lie entirely inside the sequence.
// List mode (and its Ninja alias) rejects only negative values; windows past
// the end are left for the consuming operation to clamp. PassThrough never
// reports an error and returns the caller's values unchanged. A negative
// length is treated as 0, so a nil sequence validates like an empty one.
func Validate(source string, length int, req Request, mode Mode) Result {
	if length < 0 {
		length = 0
	}

	skip := 0
	if req.Skip != nil {
		skip = *req.Skip
	}
	take := length
	if req.Take != nil {
		take = *req.Take
	}

	r := Result{Source: source, Skip: skip, Take: take}

	if mode == PassThrough {
		return r
	}

	if length == 0 {
		if mode == Array {
			if skip != 0 {
				r.Errors = append(r.Errors, ValidationError{
					Field:   "skip",
					Message: "skip parameter must be 0 for an empty sequence",
				})
			}
			if take != 0 {
				r.Errors = append(r.Errors, ValidationError{
					Field:   "take",
					Message: "take parameter must be 0 for an empty sequence",
				})
			}
			return r
		}
		// List: any non-negative values are valid against an empty
		// sequence; the window simply selects nothing.
		if skip < 0 {
			r.Errors = append(r.Errors, ValidationError{
				Field:   "skip",
				Message: "skip parameter holds a negative value",
			})
		}
		if take < 0 {
			r.Errors = append(r.Errors, ValidationError{
				Field:   "take",
				Message: "take parameter holds a negative value",
			})
		}
		return r
	}

	if skip < 0 {
		r.Errors = append(r.Errors, ValidationError{
			Field:   "skip",
			Message: "skip parameter holds a negative value",
		})
	} else if mode == Array && skip > length {
		r.Errors = append(r.Errors, ValidationError{
			Field:   "skip",
			Message: "skip parameter holds a value out of bounds",
		})
	}

	if take < 0 {
		r.Errors = append(r.Errors, ValidationError{
			Field:   "take",
			Message: "take parameter holds a negative value",
		})
	} else if mode == Array && int64(skip)+int64(take) > int64(length) {
		// int64 arithmetic so that extreme skip/take pairs cannot wrap
		// around and slip past the check.
		r.Errors = append(r.Errors, ValidationError{
			Field:   "take",
			Message: "take parameter holds a value out of bounds",
		})
	}

	return r
}
