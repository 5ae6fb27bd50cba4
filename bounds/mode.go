package bounds

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how strictly a sequence's skip/take pair is interpreted.
//
// Array models a fixed buffer: reading outside the bounds is always a caller
// bug and every overflow is an error. List models a growable collection:
// skipping or taking past the end is a legitimate "nothing left" outcome, so
// only negative values are errors. PassThrough performs no checking at all
// and exists for callers that have already validated bounds externally.
type Mode int

const (
	// List is the permissive default: negative values are errors, but
	// skipping or taking past the end of the sequence is not.
	List Mode = iota

	// Array is strict: skip and take must describe a window that lies
	// entirely inside the sequence.
	Array

	// PassThrough disables validation. Absent values still receive the
	// standard defaults, but nothing is ever reported as an error.
	PassThrough
)

// Ninja is the historical name for List and behaves identically.
const Ninja = List

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown range mode")

// String returns the canonical lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case List:
		return "list"
	case Array:
		return "array"
	case PassThrough:
		return "passthrough"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode. Matching is case-insensitive
// and accepts the historical "ninja" spelling as an alias for "list".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "list", "ninja":
		return List, nil
	case "array":
		return Array, nil
	case "passthrough", "pass-through":
		return PassThrough, nil
	default:
		return List, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}
