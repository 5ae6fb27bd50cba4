// Package sequence exposes the public transform operations over indexable
// sequences: validate a (skip, take) window, securely clear a window, and
// extract a window as bytes or characters.
//
// Every operation follows the same pipeline: resolve the effective settings,
// validate the requested window under the resolved mode, fail fast on an
// aggregated validation error, perform the read or mutation, and finally run
// the wipe scope so that sensitive buffers are zeroed on every exit path the
// resolved policy covers. Operations hold no state across calls; buffers
// passed in remain exclusively owned by the caller.
package sequence

// Sequence is an eagerly materialized, length-known sequence of elements.
// The two concrete kinds are Buffer (fixed) and List (growable); Freeze
// wraps either in a read-only view.
type Sequence[E any] interface {
	// Len returns the number of elements.
	Len() int

	// View returns the backing elements. Operations treat the view as
	// read-only unless Mutable reports true.
	View() []E

	// Mutable reports whether the sequence may be written in place.
	// Clearing a non-mutable sequence is refused, not an error.
	Mutable() bool

	// Kind names the sequence kind for validation error messages.
	Kind() string
}

// Buffer is a fixed-size buffer backed directly by a slice. It is the
// natural pairing for Array mode, where the window must lie entirely inside
// the buffer.
type Buffer[E any] []E

// Len returns the number of elements in the buffer.
func (b Buffer[E]) Len() int { return len(b) }

// View returns the buffer's backing slice.
func (b Buffer[E]) View() []E { return b }

// Mutable always reports true for a Buffer.
func (b Buffer[E]) Mutable() bool { return true }

// Kind returns "buffer".
func (b Buffer[E]) Kind() string { return "buffer" }

// Bytes wraps a byte slice as a Buffer without copying.
func Bytes(b []byte) Buffer[byte] { return b }

// Chars wraps a rune slice as a Buffer without copying.
func Chars(r []rune) Buffer[rune] { return r }

// List is a growable sequence that owns its storage. It pairs naturally
// with List mode, where windows past the end select nothing instead of
// failing.
type List[E any] struct {
	items []E
}

// NewList returns a List seeded with copies of the given items.
func NewList[E any](items ...E) *List[E] {
	l := &List[E]{}
	if len(items) > 0 {
		l.items = make([]E, len(items))
		copy(l.items, items)
	}
	return l
}

// Len returns the number of elements. A nil list is empty.
func (l *List[E]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Append adds items to the end of the list.
func (l *List[E]) Append(items ...E) {
	l.items = append(l.items, items...)
}

// At returns the element at index i. It panics when i is out of range, the
// same as indexing a slice.
func (l *List[E]) At(i int) E {
	return l.items[i]
}

// View returns the list's backing slice.
func (l *List[E]) View() []E {
	if l == nil {
		return nil
	}
	return l.items
}

// Mutable always reports true for a List.
func (l *List[E]) Mutable() bool { return true }

// Kind returns "list".
func (l *List[E]) Kind() string { return "list" }

// Frozen is a read-only view over another sequence. Extraction works
// normally; clearing is refused and erase-after-use skips it silently.
type Frozen[E any] struct {
	inner Sequence[E]
}

// Freeze wraps s in a read-only view.
func Freeze[E any](s Sequence[E]) Frozen[E] {
	return Frozen[E]{inner: s}
}

// Len returns the inner sequence's length.
func (f Frozen[E]) Len() int {
	if f.inner == nil {
		return 0
	}
	return f.inner.Len()
}

// View returns the inner backing slice. Callers must not write through it;
// operations consult Mutable before mutating.
func (f Frozen[E]) View() []E {
	if f.inner == nil {
		return nil
	}
	return f.inner.View()
}

// Mutable always reports false for a Frozen sequence.
func (f Frozen[E]) Mutable() bool { return false }

// Kind returns "read-only " prefixed to the inner kind.
func (f Frozen[E]) Kind() string {
	if f.inner == nil {
		return "read-only sequence"
	}
	return "read-only " + f.inner.Kind()
}
