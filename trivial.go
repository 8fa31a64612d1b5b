package streamcodec

import (
	"encoding/base64"
	"encoding/hex"
	"unicode/utf16"
)

// Trivial stateless adapters over the host's byte/string primitives: UTF-8,
// binary (ISO-8859-1 low byte), and hex. None of these retain any state
// between writes, so HasState is always false and End is always a no-op.

type utf8Encoder struct{}

func newUTF8Encoder() utf8Encoder { return utf8Encoder{} }

func (utf8Encoder) HasState() bool { return false }
func (utf8Encoder) End() []byte    { return nil }

func (utf8Encoder) ByteLength(units []uint16) int {
	return len(string(utf16.Decode(units)))
}

func (utf8Encoder) Write(units []uint16) []byte {
	return []byte(string(utf16.Decode(units)))
}

type utf8Decoder struct{}

func newUTF8Decoder() utf8Decoder { return utf8Decoder{} }

func (utf8Decoder) HasState() bool { return false }
func (utf8Decoder) End() Fragment  { return nil }

func (utf8Decoder) Write(p []byte) Fragment {
	return utf16.Encode([]rune(string(p)))
}

// binaryEncoder/binaryDecoder map each code unit/byte to the ISO-8859-1
// scalar of the same value, truncating code units to their low byte on
// encode.
type binaryEncoder struct{}

func newBinaryEncoder() binaryEncoder { return binaryEncoder{} }

func (binaryEncoder) HasState() bool                { return false }
func (binaryEncoder) End() []byte                   { return nil }
func (binaryEncoder) ByteLength(units []uint16) int { return len(units) }

func (binaryEncoder) Write(units []uint16) []byte {
	out := make([]byte, len(units))
	for i, c := range units {
		out[i] = byte(c)
	}
	return out
}

type binaryDecoder struct{}

func newBinaryDecoder() binaryDecoder { return binaryDecoder{} }

func (binaryDecoder) HasState() bool { return false }
func (binaryDecoder) End() Fragment  { return nil }

func (binaryDecoder) Write(p []byte) Fragment {
	out := make([]uint16, len(p))
	for i, b := range p {
		out[i] = uint16(b)
	}
	return out
}

// hexEncoder/hexDecoder follow the same text-in/bytes-out convention as
// base64Encoder: the "text" is a hex digit string, so the encoder hex-
// decodes it into bytes, and the decoder hex-encodes bytes into text.
type hexEncoder struct{}

func newHexEncoder() hexEncoder { return hexEncoder{} }

func (hexEncoder) HasState() bool                { return false }
func (hexEncoder) End() []byte                   { return nil }
func (hexEncoder) ByteLength(units []uint16) int { return len(units) / 2 }

func (hexEncoder) Write(units []uint16) []byte {
	s := string(utf16.Decode(units))
	out, _ := hex.DecodeString(s)
	return out
}

type hexDecoder struct{}

func newHexDecoder() hexDecoder { return hexDecoder{} }

func (hexDecoder) HasState() bool { return false }
func (hexDecoder) End() Fragment  { return nil }

func (hexDecoder) Write(p []byte) Fragment {
	return utf16.Encode([]rune(hex.EncodeToString(p)))
}

// base64Decoder is the stateless half of the base64 family: bytes in,
// base64 text out. The streaming text-to-bytes direction, which has to
// buffer partial quads, lives in base64.go.
type base64Decoder struct{}

func newBase64Decoder() base64Decoder { return base64Decoder{} }

func (base64Decoder) HasState() bool { return false }
func (base64Decoder) End() Fragment  { return nil }

func (base64Decoder) Write(p []byte) Fragment {
	return utf16.Encode([]rune(base64.StdEncoding.EncodeToString(p)))
}
