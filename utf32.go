package streamcodec

import "encoding/binary"

// UTF-32 encode/decode, parameterized on byte order via
// encoding/binary.ByteOrder so the LE and BE variants share one
// implementation.

var (
	leOrder = binary.ByteOrder(binary.LittleEndian)
	beOrder = binary.ByteOrder(binary.BigEndian)
)

func isHighSurrogate(c uint16) bool { return c >= 0xD800 && c < 0xDC00 }
func isLowSurrogate(c uint16) bool  { return c >= 0xDC00 && c < 0xE000 }

type utf32Encoder struct {
	order         binary.ByteOrder
	highSurrogate uint16 // 0 means none pending
}

func newUTF32Encoder(order binary.ByteOrder) *utf32Encoder {
	return &utf32Encoder{order: order}
}

func (e *utf32Encoder) HasState() bool { return e.highSurrogate != 0 }

// forEach walks units, combining surrogate pairs into scalars and emitting
// each resulting code point via emit. It mutates e.highSurrogate to the
// trailing pending high surrogate, if any.
func (e *utf32Encoder) forEach(units []uint16, emit func(cp rune)) {
	pending := e.highSurrogate
	for _, c := range units {
		if pending != 0 {
			if !isHighSurrogate(c) && isLowSurrogate(c) {
				cp := ((rune(pending-0xD800) << 10) | rune(c-0xDC00)) + 0x10000
				emit(cp)
				pending = 0
				continue
			}
			// Another high surrogate, or not a low surrogate at all:
			// the pending one is lone. Preserve it verbatim, then fall
			// through to process c.
			emit(rune(pending))
			pending = 0
		}
		if isHighSurrogate(c) {
			pending = c
			continue
		}
		emit(rune(c))
	}
	e.highSurrogate = pending
}

func (e *utf32Encoder) Write(units []uint16) []byte {
	out := make([]byte, 0, len(units)*4)
	e.forEach(units, func(cp rune) {
		var buf [4]byte
		e.order.PutUint32(buf[:], uint32(cp))
		out = append(out, buf[:]...)
	})
	return out
}

func (e *utf32Encoder) End() []byte {
	if e.highSurrogate == 0 {
		return nil
	}
	var buf [4]byte
	e.order.PutUint32(buf[:], uint32(e.highSurrogate))
	e.highSurrogate = 0
	return buf[:]
}

// ByteLength counts only, without mutating e's retained state: every
// consumed code unit contributes 4 bytes except the leading unit of a
// consumed surrogate pair (which contributes 0, its partner contributing 4
// for the whole pair); a trailing pending surrogate left over at the end
// of units also contributes 4.
func (e *utf32Encoder) ByteLength(units []uint16) int {
	tmp := &utf32Encoder{order: e.order, highSurrogate: e.highSurrogate}
	n := 0
	tmp.forEach(units, func(rune) { n += 4 })
	if tmp.highSurrogate != 0 {
		n += 4
	}
	return n
}

// utf32Decoder maintains an overflow buffer of 0..3 leftover input bytes
// between writes.
type utf32Decoder struct {
	host     Host
	order    binary.ByteOrder
	overflow []byte
}

func newUTF32Decoder(host Host, order binary.ByteOrder) *utf32Decoder {
	return &utf32Decoder{host: host, order: order}
}

func (d *utf32Decoder) HasState() bool { return len(d.overflow) > 0 }

func (d *utf32Decoder) Write(p []byte) Fragment {
	buf := p
	if len(d.overflow) > 0 {
		buf = append(append([]byte(nil), d.overflow...), p...)
		d.overflow = nil
	}

	out := make([]uint16, 0, len(buf)/4*2+2)
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		out = d.decodeOne(buf[i:i+4], out)
	}
	if i < len(buf) {
		d.overflow = append([]byte(nil), buf[i:]...)
	}
	return out
}

func (d *utf32Decoder) decodeOne(b []byte, out []uint16) []uint16 {
	raw := d.order.Uint32(b)
	// Read as signed 32-bit: any byte arrangement whose top bit lands
	// in the code point's high byte goes negative and is rejected by
	// the single range check below.
	cp := int64(int32(raw))
	if cp < 0 || cp > 0x10FFFF {
		cp = int64(d.host.ReplacementChar())
	}
	if cp >= 0x10000 {
		v := cp - 0x10000
		out = append(out, uint16(0xD800|(v>>10)), uint16(0xDC00|(v&0x3FF)))
	} else {
		out = append(out, uint16(cp))
	}
	return out
}

// End discards any buffered overflow bytes silently rather than emitting a
// replacement character, unlike the CESU-8 decoder's trailing replacement.
func (d *utf32Decoder) End() Fragment {
	d.overflow = nil
	return nil
}
