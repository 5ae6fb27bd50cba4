// Package wipe provides best-effort zeroing of sensitive buffers and a
// deferred cleanup scope that applies erase-after-use and erase-on-error
// policy uniformly across operations.
//
// The primary concern is minimizing the time that sensitive data (passwords,
// keys, plaintext) remains in process memory. Go's garbage collector makes it
// impossible to guarantee complete erasure — the runtime may have copied a
// slice's backing array before it is zeroed — but overwriting the current
// backing array immediately after use significantly reduces the exposure
// window. This is the same best-effort approach taken by x/crypto.
package wipe

import "runtime"

// Zero overwrites every element of s with the zero value of its element
// type. A nil or empty slice is a no-op, and zeroing an already-zeroed slice
// is harmless, so Zero is idempotent.
//
//go:noinline
func Zero[E any](s []E) {
	if len(s) == 0 {
		return
	}
	var zero E
	for i := range s {
		s[i] = zero
	}
	// Keep s live until after the loop so the writes cannot be eliminated
	// as dead stores.
	runtime.KeepAlive(&s)
}

// ZeroRange zeroes the intersection of [skip, skip+take) with [0, len(s)).
// Negative or oversized inputs clamp to a safe, possibly empty, window; the
// clamp may select zero elements, which is a no-op, never an error.
func ZeroRange[E any](s []E, skip, take int) {
	start, end := Clamp(len(s), skip, take)
	Zero(s[start:end])
}

// Clamp intersects the window [skip, skip+take) with [0, length) and returns
// the resulting start and end offsets. The result always satisfies
// 0 <= start <= end <= length.
func Clamp(length, skip, take int) (start, end int) {
	if skip < 0 {
		skip = 0
	}
	if skip > length {
		skip = length
	}
	if take <= 0 {
		return skip, skip
	}
	end = skip + take
	if end > length || end < skip {
		end = length
	}
	return skip, end
}
