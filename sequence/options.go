package sequence

import (
	"golang.org/x/text/encoding"

	"github.com/RyanMauldin/NinjaCore/bounds"
	"github.com/RyanMauldin/NinjaCore/settings"
)

// Option supplies a per-call override to an operation. Options occupy the
// highest precedence tier; anything not given by an option falls through to
// instance settings, then the defaults store, then the built-in fallback.
type Option func(*call)

// call collects the per-call inputs before resolution. A fresh one is built
// for every operation and discarded when the call returns.
type call struct {
	name     string
	req      bounds.Request
	explicit settings.Settings
	instance *settings.Settings
	store    *settings.Store
}

// WithSkip sets the window's start offset.
func WithSkip(n int) Option {
	return func(c *call) { c.req.Skip = &n }
}

// WithTake sets the window's element count.
func WithTake(n int) Option {
	return func(c *call) { c.req.Take = &n }
}

// WithMode sets the range mode for this call only.
func WithMode(m bounds.Mode) Option {
	return func(c *call) { c.explicit.Mode = &m }
}

// WithErase sets the erase-after-use flag for this call only.
func WithErase(v bool) Option {
	return func(c *call) { c.explicit.EraseAfterUse = &v }
}

// WithEncoding sets the text encoding for this call only.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *call) { c.explicit.Encoding = enc }
}

// WithSettings supplies instance-level settings, the second precedence tier.
func WithSettings(s *settings.Settings) Option {
	return func(c *call) { c.instance = s }
}

// WithStore overrides the defaults store consulted as the third precedence
// tier. Without it, operations consult settings.Defaults.
func WithStore(st *settings.Store) Option {
	return func(c *call) { c.store = st }
}

// WithName overrides the source name used in validation error messages.
// Without it, the sequence's Kind is used.
func WithName(name string) Option {
	return func(c *call) { c.name = name }
}

// newCall applies the options and resolves the effective settings.
func newCall(opts []Option) (*call, settings.Effective) {
	c := &call{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	store := c.store
	if store == nil {
		store = settings.Defaults
	}
	return c, settings.Resolve(c.explicit, c.instance, store)
}

// source returns the name to report in validation errors for seq.
func source[E any](c *call, seq Sequence[E]) string {
	if c.name != "" {
		return c.name
	}
	if seq == nil {
		return "sequence"
	}
	return seq.Kind()
}

// length returns seq's length, treating a nil sequence as empty.
func length[E any](seq Sequence[E]) int {
	if seq == nil {
		return 0
	}
	return seq.Len()
}
