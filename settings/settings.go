// Package settings resolves the three tunables every sequence operation
// depends on — range mode, erase-after-use, and text encoding — through a
// four-tier precedence chain: explicit per-call argument, instance settings,
// process-wide defaults, built-in fallback.
//
// Absence is modeled with nil pointers (or a nil Encoding), never with
// sentinel values, so each tier is consulted only when the higher tier
// genuinely has nothing to say.
package settings

import (
	"golang.org/x/text/encoding"

	"github.com/RyanMauldin/NinjaCore/bounds"
)

// Settings holds optional overrides for one tier of the precedence chain.
// A nil field means "no opinion" and defers to the next tier.
type Settings struct {
	// Mode overrides the range-interpretation mode.
	Mode *bounds.Mode

	// EraseAfterUse overrides whether buffers are zeroed after a
	// successful operation.
	EraseAfterUse *bool

	// Encoding overrides the text encoding used by extract operations.
	// A nil Encoding means absent.
	Encoding encoding.Encoding
}

// Clone returns an independent copy. Mutating the clone's fields never
// affects the original.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := &Settings{Encoding: s.Encoding}
	if s.Mode != nil {
		m := *s.Mode
		out.Mode = &m
	}
	if s.EraseAfterUse != nil {
		b := *s.EraseAfterUse
		out.EraseAfterUse = &b
	}
	return out
}

// Effective is a fully resolved, non-optional settings triple. One is built
// fresh at the start of every operation and lives for exactly that call.
type Effective struct {
	Mode          bounds.Mode
	EraseAfterUse bool
	Encoding      encoding.Encoding
}

// Store holds the process-wide default tier. It is ordinary mutable shared
// state with no internal synchronization: it is meant to be configured once
// at startup, not toggled at runtime, and concurrent writers racing with
// readers are a caller-level hazard.
//
// Defaults is the conventional process-wide instance; tests that need
// isolation create their own Store and inject it.
type Store struct {
	s Settings
}

// Defaults is the process-wide default store consulted by operations that
// are not given an explicit one.
var Defaults = NewStore()

// NewStore returns an empty Store: every tunable absent, deferring to the
// built-in fallback.
func NewStore() *Store {
	return &Store{}
}

// SetMode installs a default range mode.
func (st *Store) SetMode(m bounds.Mode) {
	st.s.Mode = &m
}

// ClearMode removes the default range mode.
func (st *Store) ClearMode() {
	st.s.Mode = nil
}

// SetEraseAfterUse installs a default erase-after-use flag.
func (st *Store) SetEraseAfterUse(v bool) {
	st.s.EraseAfterUse = &v
}

// ClearEraseAfterUse removes the default erase-after-use flag.
func (st *Store) ClearEraseAfterUse() {
	st.s.EraseAfterUse = nil
}

// SetEncoding installs a default text encoding.
func (st *Store) SetEncoding(enc encoding.Encoding) {
	st.s.Encoding = enc
}

// ClearEncoding removes the default text encoding.
func (st *Store) ClearEncoding() {
	st.s.Encoding = nil
}

// Reset clears every default, returning the store to its initial state.
func (st *Store) Reset() {
	st.s = Settings{}
}

// Snapshot returns an independent copy of the store's current contents.
// Resolve snapshots at call time, so later mutations of the store never
// retroactively change an operation already in flight.
func (st *Store) Snapshot() Settings {
	if st == nil {
		return Settings{}
	}
	return *st.s.Clone()
}

// Resolve folds the precedence chain left to right, first present wins:
// explicit call arguments, then instance settings, then the store, then the
// built-in fallback (List mode, no erasure, UTF-8). It is a pure function of
// its inputs and the store's contents at call time; nil instance and nil
// store simply skip their tiers.
func Resolve(explicit Settings, instance *Settings, store *Store) Effective {
	tiers := make([]Settings, 0, 3)
	tiers = append(tiers, explicit)
	if instance != nil {
		tiers = append(tiers, *instance)
	}
	if store != nil {
		tiers = append(tiers, store.Snapshot())
	}

	eff := Effective{
		Mode:          bounds.List,
		EraseAfterUse: false,
		Encoding:      DefaultEncoding,
	}
	for i := len(tiers) - 1; i >= 0; i-- {
		t := tiers[i]
		if t.Mode != nil {
			eff.Mode = *t.Mode
		}
		if t.EraseAfterUse != nil {
			eff.EraseAfterUse = *t.EraseAfterUse
		}
		if t.Encoding != nil {
			eff.Encoding = t.Encoding
		}
	}
	return eff
}
