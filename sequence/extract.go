package sequence

import (
	"fmt"
	"unicode/utf8"

	"github.com/RyanMauldin/NinjaCore/bounds"
	"github.com/RyanMauldin/NinjaCore/wipe"
)

// ExtractRange copies the validated window of seq into a fresh slice. It is
// the generic extraction used for any element type; the encoded variants
// below add a text codec on top of the same lifecycle.
//
// When the resolved erase-after-use flag is set, the mutable source is zeroed
// after the copy has been captured — the caller receives the extracted
// elements while the storage it no longer needs is wiped. Read-only sources
// are skipped silently. A validated empty window returns nil.
func ExtractRange[E any](seq Sequence[E], opts ...Option) (out []E, err error) {
	c, eff := newCall(opts)

	sc := wipe.NewScope(eff.EraseAfterUse, eff.EraseAfterUse)
	defer sc.Close(&err)
	trackSource(sc, seq)

	res := bounds.Validate(source(c, seq), length(seq), c.req, eff.Mode)
	if err = res.Err(); err != nil {
		return nil, err
	}

	view := viewOf(seq)
	start, end := wipe.Clamp(len(view), res.Skip, res.Take)
	if start == end {
		return nil, nil
	}
	out = make([]E, end-start)
	copy(out, view[start:end])
	return out, nil
}

// ExtractEncodedBytes encodes the validated character window of seq using
// the resolved encoding and returns the encoded bytes.
//
// The intermediate UTF-8 buffer built from the window is tracked in the wipe
// scope alongside the source, so erase-after-use (and erasure on any failure
// path, when the flag is set) covers every buffer the operation touched. The
// returned bytes belong to the caller and are never zeroed here. A validated
// empty window returns nil.
func ExtractEncodedBytes(seq Sequence[rune], opts ...Option) (out []byte, err error) {
	c, eff := newCall(opts)

	sc := wipe.NewScope(eff.EraseAfterUse, eff.EraseAfterUse)
	defer sc.Close(&err)
	trackSource(sc, seq)

	res := bounds.Validate(source(c, seq), length(seq), c.req, eff.Mode)
	if err = res.Err(); err != nil {
		return nil, err
	}

	view := viewOf(seq)
	start, end := wipe.Clamp(len(view), res.Skip, res.Take)
	if start == end {
		return nil, nil
	}

	// Build the UTF-8 form rune by rune instead of via string conversion:
	// strings are immutable and could not be wiped afterwards.
	window := view[start:end]
	utf8buf := make([]byte, 0, len(window)*utf8.UTFMax)
	for _, r := range window {
		utf8buf = utf8.AppendRune(utf8buf, r)
	}
	wipe.Track(sc, utf8buf)

	out, err = eff.Encoding.NewEncoder().Bytes(utf8buf)
	if err != nil {
		return nil, fmt.Errorf("encoding characters: %w", err)
	}
	return out, nil
}

// ExtractCharacters decodes the validated byte window of seq using the
// resolved encoding and returns the decoded characters.
//
// The intermediate UTF-8 buffer produced by the decoder is tracked in the
// wipe scope alongside the source; the returned runes belong to the caller.
// A validated empty window returns nil.
func ExtractCharacters(seq Sequence[byte], opts ...Option) (out []rune, err error) {
	c, eff := newCall(opts)

	sc := wipe.NewScope(eff.EraseAfterUse, eff.EraseAfterUse)
	defer sc.Close(&err)
	trackSource(sc, seq)

	res := bounds.Validate(source(c, seq), length(seq), c.req, eff.Mode)
	if err = res.Err(); err != nil {
		return nil, err
	}

	view := viewOf(seq)
	start, end := wipe.Clamp(len(view), res.Skip, res.Take)
	if start == end {
		return nil, nil
	}

	utf8buf, err := eff.Encoding.NewDecoder().Bytes(view[start:end])
	if err != nil {
		return nil, fmt.Errorf("decoding bytes: %w", err)
	}
	wipe.Track(sc, utf8buf)

	out = make([]rune, 0, utf8.RuneCount(utf8buf))
	for i := 0; i < len(utf8buf); {
		r, size := utf8.DecodeRune(utf8buf[i:])
		out = append(out, r)
		i += size
	}
	return out, nil
}

// trackSource registers seq's backing storage with the scope when seq is
// mutable; read-only sequences are skipped silently.
func trackSource[E any](sc *wipe.Scope, seq Sequence[E]) {
	if seq == nil || !seq.Mutable() {
		return
	}
	wipe.Track(sc, seq.View())
}

// viewOf returns seq's backing slice, treating a nil sequence as empty.
func viewOf[E any](seq Sequence[E]) []E {
	if seq == nil {
		return nil
	}
	return seq.View()
}
