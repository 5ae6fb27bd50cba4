package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/RyanMauldin/NinjaCore/bounds"
	"github.com/RyanMauldin/NinjaCore/settings"
)

func TestExtractRange(t *testing.T) {
	t.Run("copies the window", func(t *testing.T) {
		buf := tenBytes()
		out, err := ExtractRange[byte](Bytes(buf), WithSkip(6), WithTake(2), WithMode(bounds.Array))
		require.NoError(t, err)
		assert.Equal(t, []byte{7, 8}, out)
		assert.Equal(t, tenBytes(), buf, "source untouched without erase")
	})

	t.Run("copy does not alias the source", func(t *testing.T) {
		buf := tenBytes()
		out, err := ExtractRange[byte](Bytes(buf), WithSkip(0), WithTake(3))
		require.NoError(t, err)
		out[0] = 99
		assert.Equal(t, byte(1), buf[0])
	})

	t.Run("erase after use zeroes the source", func(t *testing.T) {
		buf := tenBytes()
		out, err := ExtractRange[byte](Bytes(buf), WithSkip(6), WithTake(2), WithErase(true))
		require.NoError(t, err)
		assert.Equal(t, []byte{7, 8}, out, "result captured before erasure")
		assert.Equal(t, make([]byte, 10), buf, "entire source erased")
	})

	t.Run("erase on validation failure", func(t *testing.T) {
		buf := tenBytes()
		_, err := ExtractRange[byte](Bytes(buf), WithSkip(0), WithTake(11),
			WithMode(bounds.Array), WithErase(true))
		require.Error(t, err)
		assert.Equal(t, make([]byte, 10), buf, "erase policy covers failure paths")
	})

	t.Run("validation failure without erase leaves source", func(t *testing.T) {
		buf := tenBytes()
		_, err := ExtractRange[byte](Bytes(buf), WithSkip(0), WithTake(11), WithMode(bounds.Array))
		require.Error(t, err)
		assert.Equal(t, tenBytes(), buf)
	})

	t.Run("read-only source is extracted but never erased", func(t *testing.T) {
		buf := tenBytes()
		out, err := ExtractRange[byte](Freeze[byte](Bytes(buf)), WithSkip(1), WithTake(2), WithErase(true))
		require.NoError(t, err)
		assert.Equal(t, []byte{2, 3}, out)
		assert.Equal(t, tenBytes(), buf)
	})

	t.Run("list window past end clamps", func(t *testing.T) {
		l := NewList[byte](1, 2, 3)
		out, err := ExtractRange[byte](l, WithSkip(2), WithTake(10))
		require.NoError(t, err)
		assert.Equal(t, []byte{3}, out)
	})

	t.Run("empty window returns nil", func(t *testing.T) {
		out, err := ExtractRange[byte](Bytes(tenBytes()), WithSkip(10), WithTake(10))
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("nil sequence returns nil", func(t *testing.T) {
		out, err := ExtractRange[byte](nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	})
}

func TestExtractEncodedBytes(t *testing.T) {
	t.Run("utf-8 by default", func(t *testing.T) {
		out, err := ExtractEncodedBytes(Chars([]rune("héllo")), WithMode(bounds.Array))
		require.NoError(t, err)
		assert.Equal(t, []byte("héllo"), out)
	})

	t.Run("window selects characters not bytes", func(t *testing.T) {
		out, err := ExtractEncodedBytes(Chars([]rune("héllo")), WithSkip(1), WithTake(2))
		require.NoError(t, err)
		assert.Equal(t, []byte("él"), out)
	})

	t.Run("iso-8859-1 single byte per character", func(t *testing.T) {
		out, err := ExtractEncodedBytes(Chars([]rune("héllo")),
			WithEncoding(charmap.ISO8859_1), WithMode(bounds.Array))
		require.NoError(t, err)
		assert.Equal(t, []byte{'h', 0xE9, 'l', 'l', 'o'}, out)
	})

	t.Run("utf-16le two bytes per character", func(t *testing.T) {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		out, err := ExtractEncodedBytes(Chars([]rune("hi")), WithEncoding(enc))
		require.NoError(t, err)
		assert.Equal(t, []byte{'h', 0, 'i', 0}, out)
	})

	t.Run("erase after use zeroes the character source", func(t *testing.T) {
		chars := []rune("secret")
		out, err := ExtractEncodedBytes(Chars(chars), WithErase(true))
		require.NoError(t, err)
		assert.Equal(t, []byte("secret"), out, "result survives erasure")
		assert.Equal(t, make([]rune, 6), chars)
	})

	t.Run("encoding from instance settings", func(t *testing.T) {
		inst := &settings.Settings{Encoding: charmap.ISO8859_1}
		out, err := ExtractEncodedBytes(Chars([]rune("é")), WithSettings(inst))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xE9}, out)
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := ExtractEncodedBytes(Chars([]rune("hi")), WithSkip(0), WithTake(3), WithMode(bounds.Array))
		require.Error(t, err)
	})

	t.Run("empty window returns nil", func(t *testing.T) {
		out, err := ExtractEncodedBytes(Chars([]rune("hi")), WithTake(0))
		require.NoError(t, err)
		assert.Nil(t, out)
	})
}

func TestExtractCharacters(t *testing.T) {
	t.Run("utf-8 by default", func(t *testing.T) {
		out, err := ExtractCharacters(Bytes([]byte("héllo")), WithMode(bounds.Array))
		require.NoError(t, err)
		assert.Equal(t, []rune("héllo"), out)
	})

	t.Run("iso-8859-1 decodes high bytes", func(t *testing.T) {
		out, err := ExtractCharacters(Bytes([]byte{'h', 0xE9}),
			WithEncoding(charmap.ISO8859_1), WithMode(bounds.Array))
		require.NoError(t, err)
		assert.Equal(t, []rune("hé"), out)
	})

	t.Run("erase after use zeroes the byte source", func(t *testing.T) {
		buf := []byte("secret")
		out, err := ExtractCharacters(Bytes(buf), WithErase(true))
		require.NoError(t, err)
		assert.Equal(t, []rune("secret"), out)
		assert.Equal(t, make([]byte, 6), buf)
	})

	t.Run("empty window returns nil", func(t *testing.T) {
		out, err := ExtractCharacters(Bytes([]byte("hi")), WithSkip(5), WithTake(1))
		require.NoError(t, err)
		assert.Nil(t, out)
	})
}

// Round-trip: extracting the full window of a byte buffer and decoding it
// back through the same encoding reproduces the original content when erase
// is off.
func TestExtract_RoundTrip(t *testing.T) {
	original := []byte("héllo wörld")
	buf := append([]byte(nil), original...)

	extracted, err := ExtractRange[byte](Bytes(buf), WithSkip(0), WithTake(len(buf)), WithMode(bounds.Array))
	require.NoError(t, err)

	chars, err := ExtractCharacters(Bytes(extracted), WithMode(bounds.Array))
	require.NoError(t, err)

	reencoded, err := ExtractEncodedBytes(Chars(chars), WithMode(bounds.Array))
	require.NoError(t, err)

	assert.Equal(t, original, reencoded)
	assert.Equal(t, original, buf, "source untouched with erase off")
}
