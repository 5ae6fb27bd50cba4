package wipe

// Scope collects the buffers touched by one operation and zeroes them on the
// way out according to policy. It is the structural replacement for
// hand-written cleanup blocks: an operation creates a Scope, defers Close,
// tracks every sensitive buffer it reads or allocates, and the policy is
// applied exactly once on every exit path.
//
// AfterUse controls zeroing on successful completion; OnError controls
// zeroing when the operation returns an error. The two are independent:
// lower-level primitives may want erasure only on failure, while
// caller-facing operations typically set both from a single resolved flag.
//
// A Scope is not safe for concurrent use; it is meant to live for exactly
// one call, like the operation it guards.
type Scope struct {
	afterUse bool
	onError  bool
	cleanups []func()
	closed   bool
}

// NewScope returns a Scope with the given zeroing policy.
func NewScope(afterUse, onError bool) *Scope {
	return &Scope{afterUse: afterUse, onError: onError}
}

// Track registers buf to be zeroed when the scope closes, if policy calls
// for it. Tracking a nil scope or a nil buffer is a no-op.
func Track[E any](sc *Scope, buf []E) {
	if sc == nil || len(buf) == 0 {
		return
	}
	sc.Defer(func() { Zero(buf) })
}

// Defer registers an arbitrary cleanup to run under the same policy as
// tracked buffers. Cleanups run in registration order.
func (sc *Scope) Defer(fn func()) {
	if sc == nil || fn == nil {
		return
	}
	sc.cleanups = append(sc.cleanups, fn)
}

// Close applies the zeroing policy. It is intended to run deferred, with
// errp pointing at the operation's named error return:
//
//	func op() (err error) {
//		sc := wipe.NewScope(eff.EraseAfterUse, eff.EraseAfterUse)
//		defer sc.Close(&err)
//		...
//	}
//
// When *errp is nil the operation succeeded and cleanups run iff AfterUse
// was set; otherwise cleanups run iff OnError was set. Close never modifies
// the error — cleanup is supplementary and the original failure propagates
// unchanged. Closing more than once is a no-op, and a nil errp is treated
// as success.
func (sc *Scope) Close(errp *error) {
	if sc == nil || sc.closed {
		return
	}
	sc.closed = true

	failed := errp != nil && *errp != nil
	if (failed && !sc.onError) || (!failed && !sc.afterUse) {
		return
	}
	for _, fn := range sc.cleanups {
		fn()
	}
	sc.cleanups = nil
}
