package sequence

import (
	"github.com/RyanMauldin/NinjaCore/bounds"
	"github.com/RyanMauldin/NinjaCore/wipe"
)

// SecureClearRange zeroes the validated window of seq in place. It returns
// true when the window was cleared or there was nothing to clear, and false
// when seq is read-only — an expected refusal for some callers, reported by
// value rather than as an error.
//
// A validation failure under the resolved mode returns the aggregated error.
// In List and PassThrough modes the window is clamped to the sequence before
// clearing, so a window past the end (or, under PassThrough, with negative
// skip) degrades to a safe, possibly empty, clear. Clearing is idempotent:
// clearing the same window twice leaves the same all-zero state.
func SecureClearRange[E any](seq Sequence[E], opts ...Option) (bool, error) {
	c, eff := newCall(opts)

	res := bounds.Validate(source(c, seq), length(seq), c.req, eff.Mode)
	if err := res.Err(); err != nil {
		return false, err
	}

	if length(seq) == 0 {
		return true, nil
	}
	if !seq.Mutable() {
		return false, nil
	}

	wipe.ZeroRange(seq.View(), res.Skip, res.Take)
	return true, nil
}

// SecureClear zeroes the whole sequence. It is SecureClearRange with the
// window pinned to [0, Len), overriding any skip/take options.
func SecureClear[E any](seq Sequence[E], opts ...Option) (bool, error) {
	opts = append(opts, WithSkip(0), WithTake(length(seq)))
	return SecureClearRange(seq, opts...)
}
