package streamcodec

import (
	"encoding/base64"
	"strings"
	"unicode/utf16"
)

// base64Encoder accepts base64-encoded text and produces raw bytes: in
// this package's terminology it is an encoder (text in, bytes out), since
// the "text" being encoded is a base64 string and the "bytes" are what it
// represents. Input arrives in arbitrary chunks, so a partial quad is
// buffered between writes and decoded once completed.
type base64Encoder struct {
	prefix string // pending base64 text, length 0..3, between writes
}

func newBase64Encoder() *base64Encoder { return &base64Encoder{} }

func (e *base64Encoder) HasState() bool { return len(e.prefix) > 0 }

func (e *base64Encoder) Write(units []uint16) []byte {
	s := string(utf16.Decode(units))
	combined := e.prefix + s
	n := (len(combined) / 4) * 4
	head, tail := combined[:n], combined[n:]
	e.prefix = tail
	if head == "" {
		return nil
	}
	return lenientBase64Decode(head)
}

func (e *base64Encoder) End() []byte {
	s := e.prefix
	e.prefix = ""
	if s == "" {
		return nil
	}
	return lenientBase64Decode(s)
}

// ByteLength is a fast *upper-bound* estimate, not an exact count: it
// counts the non-'=' characters n of the accumulated prefix and the
// current input together and returns floor(n*3/4). Write only decodes
// complete quads and holds back the rest, so this can overcount by a few
// bytes at the boundary. Callers must treat it as an upper bound, not an
// exact length.
func (e *base64Encoder) ByteLength(units []uint16) int {
	s := string(utf16.Decode(units))
	return (countBase64Chars(e.prefix) + countBase64Chars(s)) * 3 / 4
}

func countBase64Chars(s string) int {
	n := 0
	for _, r := range s {
		if r != '=' {
			n++
		}
	}
	return n
}

// lenientBase64Decode decodes s as base64, tolerating a short, unpadded
// tail and ignoring embedded newlines. Any genuinely corrupt character
// simply stops decoding at that point; no error or replacement character
// is produced, matching the best-effort nature of the pass-through codec
// family (base64 has no replacement-character mechanism, unlike CESU-8
// and UTF-32).
func lenientBase64Decode(s string) []byte {
	s = strings.NewReplacer("\n", "", "\r", "").Replace(s)
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	n, _ := base64.StdEncoding.Decode(dst, []byte(s))
	return dst[:n]
}
