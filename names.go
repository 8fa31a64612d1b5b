package streamcodec

import "strings"

// Byte order marks for the BOM-aware encodings, consumed by
// StripBOM/StripBOMNamed/PrependBOM (see bom.go).
var (
	UTF8BOMBytes    = []byte{0xEF, 0xBB, 0xBF}
	UTF32LEBOMBytes = []byte{0xFF, 0xFE, 0x00, 0x00}
	UTF32BEBOMBytes = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// bomBytesFor returns the byte order mark a decoder for the canonical
// encoding name should strip, or nil for encodings with no fixed mark. The
// auto-detecting utf32 deliberately maps to nil: its detector consumes a
// leading BOM itself while choosing an endianness, so StripBOMNamed strips
// its mark from the decoded text instead (see bom.go).
func bomBytesFor(canonical string) []byte {
	switch canonical {
	case "utf8", "cesu8":
		return UTF8BOMBytes
	case "utf32le":
		return UTF32LEBOMBytes
	case "utf32be":
		return UTF32BEBOMBytes
	default:
		return nil
	}
}

// registryEntry ties a canonical encoding name to its descriptor and the
// constructors for its encoder and decoder sessions.
type registryEntry struct {
	descriptor Descriptor
	newEncoder func(host Host, opts EncoderOptions) Encoder
	newDecoder func(host Host, opts DecoderOptions) Decoder
}

// aliases maps alternative spellings to a canonical registry name:
// unicode11utf8 is an alias of utf8, and ucs4/ucs4le/ucs4be alias the
// UTF-32 family.
var aliases = map[string]string{
	"unicode11utf8": "utf8",
	"ucs4":          "utf32",
	"ucs4le":        "utf32le",
	"ucs4be":        "utf32be",
}

var registry = map[string]registryEntry{
	"utf8": {
		descriptor: Descriptor{Name: "utf8", BOMAware: true},
		newEncoder: func(Host, EncoderOptions) Encoder { return newUTF8Encoder() },
		newDecoder: func(Host, DecoderOptions) Decoder { return newUTF8Decoder() },
	},
	"binary": {
		descriptor: Descriptor{Name: "binary", BOMAware: false},
		newEncoder: func(Host, EncoderOptions) Encoder { return newBinaryEncoder() },
		newDecoder: func(Host, DecoderOptions) Decoder { return newBinaryDecoder() },
	},
	"hex": {
		descriptor: Descriptor{Name: "hex", BOMAware: false},
		newEncoder: func(Host, EncoderOptions) Encoder { return newHexEncoder() },
		newDecoder: func(Host, DecoderOptions) Decoder { return newHexDecoder() },
	},
	"base64": {
		descriptor: Descriptor{Name: "base64", BOMAware: false},
		newEncoder: func(Host, EncoderOptions) Encoder { return newBase64Encoder() },
		newDecoder: func(Host, DecoderOptions) Decoder { return newBase64Decoder() },
	},
	// cesu8: some runtimes' native UTF-8 decoders happen to tolerate
	// CESU-8 surrogate-pair sequences and would only need the custom
	// state machine as a fallback (probe: decode ED A0 BD ED B2 A9 and
	// check for 💩). Go's unicode/utf8 rejects surrogate sequences, so
	// the custom decoder is always installed.
	"cesu8": {
		descriptor: Descriptor{Name: "cesu8", BOMAware: true},
		newEncoder: func(Host, EncoderOptions) Encoder { return newCESU8Encoder() },
		newDecoder: func(host Host, _ DecoderOptions) Decoder { return newCESU8Decoder(host) },
	},
	"utf32le": {
		descriptor: Descriptor{Name: "utf32le", BOMAware: true},
		newEncoder: func(Host, EncoderOptions) Encoder { return newUTF32Encoder(leOrder) },
		newDecoder: func(host Host, _ DecoderOptions) Decoder { return newUTF32Decoder(host, leOrder) },
	},
	"utf32be": {
		descriptor: Descriptor{Name: "utf32be", BOMAware: true},
		newEncoder: func(Host, EncoderOptions) Encoder { return newUTF32Encoder(beOrder) },
		newDecoder: func(host Host, _ DecoderOptions) Decoder { return newUTF32Decoder(host, beOrder) },
	},
	"utf32": {
		descriptor: Descriptor{Name: "utf32", BOMAware: true},
		newEncoder: func(_ Host, opts EncoderOptions) Encoder { return newUTF32AutoEncoder(opts) },
		newDecoder: func(host Host, opts DecoderOptions) Decoder { return newUTF32AutoDecoder(host, opts) },
	},
}

// resolve follows at most one alias hop and reports whether name (or its
// canonical alias) is registered.
func resolve(name string) (registryEntry, bool) {
	name = strings.ToLower(name)
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	entry, ok := registry[name]
	return entry, ok
}
