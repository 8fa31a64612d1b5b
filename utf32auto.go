package streamcodec

import "encoding/binary"

// UTF-32 auto encoder/decoder: a thin delegator that chooses LE or BE
// either from options, from a byte-order-mark, or from a statistical
// heuristic over the first bytes of the stream.
//
// The BOM constants checked here (FF FE 00 00 / 00 00 FE FF) are the
// UTF-32 forms of the same byte-order-mark scalar (U+FEFF) that
// golang.org/x/text/encoding/unicode sniffs for UTF-16.

type utf32AutoEncoder struct {
	inner    *utf32Encoder
	addBOM   bool
	bomOrder binary.ByteOrder
	bomSent  bool
}

func newUTF32AutoEncoder(opts EncoderOptions) *utf32AutoEncoder {
	def := opts.DefaultEncoding
	if def == "" {
		def = "utf-32le"
	}
	order := binary.ByteOrder(binary.LittleEndian)
	if def == "utf-32be" {
		order = binary.BigEndian
	}
	addBOM := true
	if opts.AddBOM != nil {
		addBOM = *opts.AddBOM
	}
	return &utf32AutoEncoder{inner: newUTF32Encoder(order), addBOM: addBOM, bomOrder: order}
}

func (e *utf32AutoEncoder) HasState() bool                { return e.inner.HasState() }
func (e *utf32AutoEncoder) ByteLength(units []uint16) int { return e.inner.ByteLength(units) }
func (e *utf32AutoEncoder) Write(units []uint16) []byte   { return e.inner.Write(units) }
func (e *utf32AutoEncoder) End() []byte                   { return e.inner.End() }

// BOMBytes returns the byte-order-mark the surrounding BOM wrapper (see
// bom.go) should prepend for this session's chosen endianness. It returns
// nil if AddBOM was set to false, and nil on every call after the first.
// The core encoder never prepends this itself.
func (e *utf32AutoEncoder) BOMBytes() []byte {
	if !e.addBOM || e.bomSent {
		return nil
	}
	e.bomSent = true
	b := make([]byte, 4)
	e.bomOrder.PutUint32(b, 0x0000FEFF)
	return b
}

// utf32AutoDecoder buffers initial chunks until it has enough bytes (or
// sees End) to choose an endianness, then delegates everything to a
// concrete utf32Decoder.
type utf32AutoDecoder struct {
	host            Host
	defaultEncoding string

	initial [][]byte
	total   int

	delegate *utf32Decoder
}

func newUTF32AutoDecoder(host Host, opts DecoderOptions) *utf32AutoDecoder {
	def := opts.DefaultEncoding
	if def == "" {
		def = "utf-32le"
	}
	return &utf32AutoDecoder{host: host, defaultEncoding: def}
}

func (d *utf32AutoDecoder) HasState() bool {
	if d.delegate != nil {
		return d.delegate.HasState()
	}
	return d.total > 0
}

func (d *utf32AutoDecoder) Write(p []byte) Fragment {
	if d.delegate != nil {
		return d.delegate.Write(p)
	}
	d.initial = append(d.initial, append([]byte(nil), p...))
	d.total += len(p)
	if d.total < 32 {
		return nil
	}
	return d.chooseAndReplay()
}

func (d *utf32AutoDecoder) End() Fragment {
	if d.delegate == nil {
		frag := d.chooseAndReplay()
		tail := d.delegate.End()
		return append(frag, tail...)
	}
	return d.delegate.End()
}

func (d *utf32AutoDecoder) chooseAndReplay() Fragment {
	all := make([]byte, 0, d.total)
	for _, chunk := range d.initial {
		all = append(all, chunk...)
	}
	d.initial = nil
	d.total = 0

	name := detectUTF32Endianness(all, d.defaultEncoding)
	order := binary.ByteOrder(binary.LittleEndian)
	if name == "utf-32be" {
		order = binary.BigEndian
	}
	d.delegate = newUTF32Decoder(d.host, order)
	return d.delegate.Write(all)
}

// detectUTF32Endianness scores the first up-to-100 4-byte groups of buf and
// returns "utf-32le" or "utf-32be". A leading BOM group is decisive; absent
// that, the encoding whose interpretation yields more plausible BMP
// scalars and fewer out-of-range code points wins. Ties fall back to
// defaultEncoding, or "utf-32le" if that is empty.
func detectUTF32Endianness(buf []byte, defaultEncoding string) string {
	if len(buf) >= 4 {
		switch {
		case buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00:
			return "utf-32le"
		case buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF:
			return "utf-32be"
		}
	}

	groups := len(buf) / 4
	if groups > 100 {
		groups = 100
	}

	var invalidBE, invalidLE, bmpCharsBE, bmpCharsLE int
	for i := 0; i < groups; i++ {
		b0, b1, b2, b3 := buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3]

		if b0 != 0 || b1 > 0x10 {
			invalidBE++
		}
		if b3 != 0 || b2 > 0x10 {
			invalidLE++
		}
		if b0 == 0 && b1 == 0 && (b2|b3) != 0 {
			bmpCharsBE++
		}
		if (b0|b1) != 0 && b2 == 0 && b3 == 0 {
			bmpCharsLE++
		}
	}

	scoreLE := bmpCharsLE - invalidLE
	scoreBE := bmpCharsBE - invalidBE

	switch {
	case scoreLE > scoreBE:
		return "utf-32le"
	case scoreBE > scoreLE:
		return "utf-32be"
	default:
		if defaultEncoding != "" {
			return defaultEncoding
		}
		return "utf-32le"
	}
}
