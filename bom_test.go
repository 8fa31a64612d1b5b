package streamcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF32LEBOMStrippedRoundTrip(t *testing.T) {
	// Encode "AB" with a BOM, then decode it back down to "AB" with the
	// BOM stripped, by composing the core codec with the external BOM
	// wrapper the way a host application is expected to.
	enc := PrependBOM(newUTF32AutoEncoder(EncoderOptions{}))
	encoded := append(enc.Write(EncodeToUnits("AB")), enc.End()...)
	require.Equal(t, append(append([]byte{}, UTF32LEBOMBytes...), 'A', 0, 0, 0, 'B', 0, 0, 0), encoded)

	dec := StripBOM(newUTF32Decoder(NewDefaultHost(), leOrder), UTF32LEBOMBytes)
	got := append(dec.Write(encoded), dec.End()...)
	require.Equal(t, "AB", got.String())
}

func TestStripBOM_AbsentBOMPassesThrough(t *testing.T) {
	dec := StripBOM(newUTF32Decoder(NewDefaultHost(), leOrder), UTF32LEBOMBytes)
	input := []byte{'A', 0, 0, 0, 'B', 0, 0, 0}
	got := append(dec.Write(input), dec.End()...)
	require.Equal(t, "AB", got.String())
}

func TestStripBOM_EmptyBOMReturnsUnwrapped(t *testing.T) {
	inner := newUTF32Decoder(NewDefaultHost(), leOrder)
	wrapped := StripBOM(inner, nil)
	require.Same(t, inner, wrapped)
}

func TestStripBOM_SplitAcrossWrites(t *testing.T) {
	dec := StripBOM(newUTF32Decoder(NewDefaultHost(), leOrder), UTF32LEBOMBytes)
	full := append(append([]byte{}, UTF32LEBOMBytes...), 'A', 0, 0, 0)

	var got Fragment
	for _, b := range full {
		got = append(got, dec.Write([]byte{b})...)
	}
	got = append(got, dec.End()...)
	require.Equal(t, "A", got.String())
}

func TestStripBOMNamed(t *testing.T) {
	dec, err := StripBOMNamed("utf32be", newUTF32Decoder(NewDefaultHost(), beOrder))
	require.NoError(t, err)
	input := append(append([]byte{}, UTF32BEBOMBytes...), 0, 0, 0, 'A')
	got := append(dec.Write(input), dec.End()...)
	require.Equal(t, "A", got.String())

	_, err = StripBOMNamed("hex", newHexDecoder())
	require.ErrorIs(t, err, ErrNotBOMAware)

	_, err = StripBOMNamed("nope", newHexDecoder())
	require.ErrorIs(t, err, ErrNotBOMAware)
}

func TestStripBOMNamed_AutoRoundTrip(t *testing.T) {
	// The auto decoder's detector consumes the raw BOM bytes itself, so
	// the named wrapper strips the decoded U+FEFF instead. A default
	// auto encode (BOM prepended) followed by an auto decode must come
	// back to the original text.
	enc := PrependBOM(newUTF32AutoEncoder(EncoderOptions{}))
	encoded := append(enc.Write(EncodeToUnits("AB")), enc.End()...)

	dec, err := StripBOMNamed("utf32", newUTF32AutoDecoder(NewDefaultHost(), DecoderOptions{}))
	require.NoError(t, err)
	got := append(dec.Write(encoded), dec.End()...)
	require.Equal(t, "AB", got.String())
}

func TestPrependBOM_OnlyPrependsOnce(t *testing.T) {
	enc := PrependBOM(newUTF32AutoEncoder(EncoderOptions{}))
	first := enc.Write(EncodeToUnits("A"))
	second := enc.Write(EncodeToUnits("B"))
	require.Equal(t, append(append([]byte{}, UTF32LEBOMBytes...), 'A', 0, 0, 0), first)
	require.Equal(t, []byte{'B', 0, 0, 0}, second)
}

func TestPrependBOM_PassthroughForNonBOMProvider(t *testing.T) {
	enc := PrependBOM(newUTF8Encoder())
	out := enc.Write(EncodeToUnits("hi"))
	require.Equal(t, []byte("hi"), out)
}
