package sequence

import "github.com/RyanMauldin/NinjaCore/bounds"

// ValidateRange resolves the effective settings for this call and validates
// the requested window against seq under the resolved mode. It never raises:
// the Result carries the effective skip/take and every violation found, and
// Result.Err() converts them to an aggregated error when the caller wants
// one.
func ValidateRange[E any](seq Sequence[E], opts ...Option) bounds.Result {
	c, eff := newCall(opts)
	return bounds.Validate(source(c, seq), length(seq), c.req, eff.Mode)
}
