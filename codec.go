// Package streamcodec implements the streaming core of a small family of
// text encodings: CESU-8, UTF-32LE/BE (and an auto-detecting UTF-32
// variant), and a trivial pass-through family (UTF-8, binary, hex, and a
// streaming base64 adapter).
//
// Every encoding is exposed as a factory that produces encoder and decoder
// session objects. A session processes exactly one logical stream: it
// receives zero or more chunks via Write, is terminated by exactly one call
// to End, and reports whether it is holding any not-yet-interpretable
// partial input via HasState. Sessions are not safe for concurrent use;
// two sessions built from the same Host are independent.
//
// Malformed input is never reported as an error. It is resolved locally by
// substituting the Host's configured replacement character (U+FFFD by
// default), whatever bytes decoders are fed. A surrogate code point that
// the input itself encodes (a lone surrogate in CESU-8 or UTF-32) is not
// malformed: it is passed through as a lone UTF-16 code unit.
package streamcodec

import "unicode/utf16"

// Fragment is a chunk of decoded text, represented as UTF-16 code units so
// that lone surrogates survive a round trip even though Go's native string
// type cannot hold them directly.
type Fragment []uint16

// String renders the fragment as a Go string. Any lone surrogate is
// replaced by U+FFFD, since native Go strings must be valid UTF-8; use the
// raw Fragment if you need to preserve lone surrogates (e.g. to re-encode
// them with Encoder.Write).
func (f Fragment) String() string {
	if len(f) == 0 {
		return ""
	}
	return string(utf16.Decode(f))
}

// EncodeToUnits converts a Go string into the UTF-16 code units an Encoder
// expects. It is a convenience for callers driving a session from ordinary
// strings; it cannot produce lone surrogates, since a valid Go string
// cannot contain one.
func EncodeToUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Encoder turns UTF-16 text chunks into byte chunks. Write and End never
// fail: encoders tolerate arbitrary input, including lone surrogates.
type Encoder interface {
	// ByteLength estimates the number of bytes Write would produce for
	// units, sufficient for pre-sizing an output buffer. It need not be
	// exact (see base64.go for a deliberately approximate case) but must
	// never mutate session state.
	ByteLength(units []uint16) int

	// Write consumes units and returns the bytes that could be produced
	// so far. Any trailing partial state (e.g. a lone high surrogate
	// awaiting its pair) is retained for the next Write or End.
	Write(units []uint16) []byte

	// End flushes any retained state and leaves the session empty. It
	// may return additional output, or nil.
	End() []byte

	// HasState reports whether the session is currently retaining
	// unconsumed partial input.
	HasState() bool
}

// Decoder turns byte chunks into UTF-16 text chunks. Write and End never
// fail; malformed input is resolved by emitting the Host's replacement
// character. Encoded lone surrogates are passed through as lone code units.
type Decoder interface {
	// Write consumes p and returns the text fragment decoded so far.
	Write(p []byte) Fragment

	// End flushes any retained state and leaves the session empty.
	End() Fragment

	// HasState reports whether the session is currently retaining
	// unconsumed partial input.
	HasState() bool
}

// Host is the set of capabilities a codec needs from its surrounding
// framework: the configured replacement character used by decoders, and
// the ability to look up a sub-codec by name. The UTF-32 auto decoder in
// this package does not use that lookup: once it has chosen an endianness
// it constructs its concrete LE/BE decoder directly. A
// full encoding-name registry, BOM handling policy, and top-level
// encode/decode entry points belong to the embedding framework;
// DefaultHost and the helpers in names.go and bom.go are a minimal,
// concrete stand-in so the package is independently usable and testable.
type Host interface {
	// ReplacementChar returns the single Unicode scalar substituted for
	// malformed input. Defaults to U+FFFD.
	ReplacementChar() rune

	// GetEncoder looks up an encoder session factory by name and
	// constructs a new session.
	GetEncoder(name string, opts EncoderOptions) (Encoder, error)

	// GetDecoder looks up a decoder session factory by name and
	// constructs a new session.
	GetDecoder(name string, opts DecoderOptions) (Decoder, error)
}

// EncoderOptions configures an encoder session at construction time. Only
// the UTF-32 auto encoder currently reads any of these fields; other
// codecs accept and ignore them, so callers can pass a zero value freely.
type EncoderOptions struct {
	// AddBOM controls whether the UTF-32 auto encoder's surrounding BOM
	// wrapper should prepend a byte order mark. Defaults to true (a nil
	// pointer means "use the default"); set to a pointer to false to
	// suppress it.
	AddBOM *bool

	// DefaultEncoding picks the endianness the UTF-32 auto encoder uses,
	// either "utf-32le" (default) or "utf-32be".
	DefaultEncoding string
}

// DecoderOptions configures a decoder session at construction time. Only
// the UTF-32 auto decoder currently reads DefaultEncoding.
type DecoderOptions struct {
	// DefaultEncoding is returned by the UTF-32 auto decoder's
	// endianness heuristic on a tie. Defaults to "utf-32le".
	DefaultEncoding string
}

// Descriptor is the immutable, registry-level configuration for a family of
// encoder/decoder sessions: the encoding's canonical registered name and
// whether it is BOM-aware (consumed by the external BOM wrapper, see
// bom.go). Per-session state (such as a UTF-32 variant's endianness) lives
// on the concrete encoder/decoder value returned by the registry, not here.
type Descriptor struct {
	Name     string
	BOMAware bool
}
