package streamcodec

import "golang.org/x/text/transform"

// CESU-8 encodes each UTF-16 code unit independently as 1-3 bytes, which is
// its defining difference from UTF-8: a supplementary-plane character is
// therefore emitted as two three-byte sequences, one per surrogate half.

type cesu8Encoder struct{}

func newCESU8Encoder() *cesu8Encoder { return &cesu8Encoder{} }

func (e *cesu8Encoder) HasState() bool { return false }

func (e *cesu8Encoder) End() []byte { return nil }

func (e *cesu8Encoder) ByteLength(units []uint16) int {
	n := 0
	for _, c := range units {
		switch {
		case c < 0x80:
			n++
		case c < 0x800:
			n += 2
		default:
			n += 3
		}
	}
	return n
}

func (e *cesu8Encoder) Write(units []uint16) []byte {
	out := make([]byte, 0, len(units)*3)
	for _, c := range units {
		out = appendCESU8(out, c)
	}
	return out
}

func appendCESU8(out []byte, c uint16) []byte {
	switch {
	case c < 0x80:
		return append(out, byte(c))
	case c < 0x800:
		return append(out, 0xC0|byte(c>>6), 0x80|byte(c&0x3F))
	default:
		return append(out, 0xE0|byte(c>>12), 0x80|byte((c>>6)&0x3F), 0x80|byte(c&0x3F))
	}
}

// cesu8Decoder is a byte-at-a-time state machine. contBytes == 0 is the
// IDLE state; contBytes > 0 is EXPECTING, mid multi-byte sequence.
type cesu8Decoder struct {
	host Host

	acc       int32 // accumulated value of the sequence in progress
	contBytes int   // continuation bytes still expected, 0..2
	accBytes  int   // total bytes accumulated in the current sequence, 1..3
}

func newCESU8Decoder(host Host) *cesu8Decoder {
	return &cesu8Decoder{host: host}
}

func (d *cesu8Decoder) HasState() bool { return d.contBytes > 0 }

func (d *cesu8Decoder) Write(p []byte) Fragment {
	out := make([]uint16, 0, len(p))
	repl := uint16(d.host.ReplacementChar())
	for _, b := range p {
		out = d.step(b, out, repl)
	}
	return out
}

func (d *cesu8Decoder) End() Fragment {
	if d.contBytes == 0 {
		return nil
	}
	d.contBytes = 0
	d.acc = 0
	d.accBytes = 0
	return Fragment{uint16(d.host.ReplacementChar())}
}

func (d *cesu8Decoder) step(b byte, out []uint16, repl uint16) []uint16 {
	if b&0xC0 != 0x80 {
		// Leading (non-continuation) byte.
		if d.contBytes > 0 {
			// The previous sequence was truncated by this new leader.
			out = append(out, repl)
			d.contBytes = 0
		}
		switch {
		case b < 0x80:
			out = append(out, uint16(b))
		case b >= 0xC0 && b < 0xE0:
			d.acc = int32(b & 0x1F)
			d.contBytes = 1
			d.accBytes = 1
		case b >= 0xE0 && b < 0xF0:
			d.acc = int32(b & 0x0F)
			d.contBytes = 2
			d.accBytes = 1
		default:
			// 0xF0..0xFF: four-byte UTF-8 leaders are invalid in CESU-8.
			// Emit one replacement and do not consume anything further;
			// any following continuation bytes are reprocessed as fresh
			// (invalid) leaders and will themselves be replaced.
			out = append(out, repl)
		}
		return out
	}

	// Continuation byte (0x80..0xBF).
	if d.contBytes == 0 {
		// Stray continuation byte while IDLE.
		out = append(out, repl)
		return out
	}

	d.acc = (d.acc << 6) | int32(b&0x3F)
	d.contBytes--
	d.accBytes++
	if d.contBytes == 0 {
		switch {
		case d.accBytes == 2 && d.acc > 0 && d.acc < 0x80:
			// Overlong two-byte form, except the Modified-UTF-8
			// encoding of NUL (C0 80, acc == 0), which is accepted.
			out = append(out, repl)
		case d.accBytes == 3 && d.acc < 0x800:
			// Overlong three-byte form.
			out = append(out, repl)
		default:
			out = append(out, uint16(d.acc))
		}
	}
	return out
}

// CESU8Transformer adapts the CESU-8 decoder to the golang.org/x/text
// transform.Transformer interface, so it composes with the wider x/text
// pipeline (e.g. transform.NewReader) the way the package's own
// unicode.UTF8/unicode.UTF16 decoders do. The session interface above
// (Write/End/HasState) remains the primary API; this is an additive
// convenience for callers already working in x/text terms.
type CESU8Transformer struct {
	host    Host
	dec     *cesu8Decoder
	pending []byte
}

// NewCESU8Transformer returns a transform.Transformer that decodes CESU-8
// bytes into UTF-8 bytes.
func NewCESU8Transformer(host Host) *CESU8Transformer {
	return &CESU8Transformer{host: host, dec: newCESU8Decoder(host)}
}

func (t *CESU8Transformer) Reset() {
	t.dec = newCESU8Decoder(t.host)
	t.pending = nil
}

func (t *CESU8Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(t.pending) == 0 {
		frag := t.dec.Write(src)
		nSrc = len(src)
		t.pending = append(t.pending, []byte(frag.String())...)
		if atEOF {
			tail := t.dec.End()
			t.pending = append(t.pending, []byte(tail.String())...)
		}
	}
	n := copy(dst, t.pending)
	nDst = n
	t.pending = t.pending[n:]
	if len(t.pending) > 0 {
		err = transform.ErrShortDst
	}
	return nDst, nSrc, err
}

var _ transform.Transformer = (*CESU8Transformer)(nil)
