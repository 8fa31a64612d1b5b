package streamcodec

// A byte order mark is data, not part of any single codec's own wire
// format, so prepending and stripping it is kept as a separate wrapper
// layer around an Encoder/Decoder rather than built into the UTF-32 codecs
// themselves. Only a session whose encoding is BOM-aware should ever be
// wrapped this way; PrependBOMNamed and StripBOMNamed enforce that by
// consulting the encoding's registered Descriptor.

// BOMProvider is implemented by encoders that know their own byte order
// mark, such as the UTF-32 auto encoder.
type BOMProvider interface {
	BOMBytes() []byte
}

// PrependBOM wraps e so that the output of its first Write or End call
// (even if that call produces no data of its own) is prefixed with its
// byte order mark, if e implements
// BOMProvider and that BOM is non-empty. Encodings that don't provide a
// BOM (everything except the UTF-32 auto encoder) pass through unchanged.
func PrependBOM(e Encoder) Encoder {
	return &bomEncoder{Encoder: e}
}

// PrependBOMNamed wraps e with PrependBOM, but only if name is a registered
// encoding whose Descriptor advertises BOM awareness. It returns
// ErrNotBOMAware otherwise, so a caller driven by a user-supplied encoding
// name can't accidentally attach a byte order mark to a codec that doesn't
// use one.
func PrependBOMNamed(name string, e Encoder) (Encoder, error) {
	d, ok := LookupDescriptor(name)
	if !ok || !d.BOMAware {
		return nil, ErrNotBOMAware
	}
	return PrependBOM(e), nil
}

type bomEncoder struct {
	Encoder
	wrote bool
}

func (w *bomEncoder) Write(units []uint16) []byte {
	out := w.maybeBOM()
	return append(out, w.Encoder.Write(units)...)
}

func (w *bomEncoder) End() []byte {
	out := w.maybeBOM()
	return append(out, w.Encoder.End()...)
}

func (w *bomEncoder) maybeBOM() []byte {
	if w.wrote {
		return nil
	}
	w.wrote = true
	if bp, ok := w.Encoder.(BOMProvider); ok {
		return bp.BOMBytes()
	}
	return nil
}

// StripBOMNamed wraps d with StripBOM using the byte order mark registered
// for name, but only if name resolves to a BOM-aware encoding. It returns
// ErrNotBOMAware otherwise. The auto-detecting utf32 is handled at the
// text level instead: its detector needs the raw BOM bytes to choose an
// endianness, so the mark is removed from the decoded output (a leading
// U+FEFF) rather than from the byte stream.
func StripBOMNamed(name string, d Decoder) (Decoder, error) {
	desc, ok := LookupDescriptor(name)
	if !ok || !desc.BOMAware {
		return nil, ErrNotBOMAware
	}
	if desc.Name == "utf32" {
		return &bomCharStripper{Decoder: d}, nil
	}
	return StripBOM(d, bomBytesFor(desc.Name)), nil
}

// StripBOM wraps d so that a leading occurrence of bom in the very first
// bytes written is consumed and discarded instead of being decoded as
// data. If bom is empty, d is returned unwrapped.
func StripBOM(d Decoder, bom []byte) Decoder {
	if len(bom) == 0 {
		return d
	}
	return &bomDecoder{Decoder: d, bom: bom}
}

type bomDecoder struct {
	Decoder
	bom      []byte
	pending  []byte
	resolved bool
}

func (w *bomDecoder) Write(p []byte) Fragment {
	if w.resolved {
		return w.Decoder.Write(p)
	}
	w.pending = append(w.pending, p...)
	if len(w.pending) < len(w.bom) {
		return nil
	}
	w.resolved = true
	rest := w.pending
	if hasPrefix(rest, w.bom) {
		rest = rest[len(w.bom):]
	}
	w.pending = nil
	return w.Decoder.Write(rest)
}

func (w *bomDecoder) End() Fragment {
	if !w.resolved && len(w.pending) > 0 {
		w.resolved = true
		rest := w.pending
		w.pending = nil
		frag := w.Decoder.Write(rest)
		return append(frag, w.Decoder.End()...)
	}
	return w.Decoder.End()
}

func (w *bomDecoder) HasState() bool {
	if !w.resolved && len(w.pending) > 0 {
		return true
	}
	return w.Decoder.HasState()
}

// bomCharStripper removes a single leading U+FEFF from the first non-empty
// fragment a decoder produces. Used for decoders that consume the BOM bytes
// themselves (the auto-detecting utf32) but still surface the mark as a
// decoded character.
type bomCharStripper struct {
	Decoder
	checked bool
}

func (w *bomCharStripper) Write(p []byte) Fragment {
	return w.strip(w.Decoder.Write(p))
}

func (w *bomCharStripper) End() Fragment {
	return w.strip(w.Decoder.End())
}

func (w *bomCharStripper) strip(frag Fragment) Fragment {
	if w.checked || len(frag) == 0 {
		return frag
	}
	w.checked = true
	if frag[0] == 0xFEFF {
		return frag[1:]
	}
	return frag
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}
