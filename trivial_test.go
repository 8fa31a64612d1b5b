package streamcodec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF8Codec_RoundTrip(t *testing.T) {
	enc := newUTF8Encoder()
	dec := newUTF8Decoder()
	s := "Hello, 世界 💩"
	units := EncodeToUnits(s)

	bytes := enc.Write(units)
	require.Equal(t, []byte(s), bytes)
	require.Equal(t, len(bytes), enc.ByteLength(units))

	got := dec.Write(bytes)
	require.Equal(t, s, got.String())
}

func TestBinaryCodec_RoundTrip(t *testing.T) {
	enc := newBinaryEncoder()
	dec := newBinaryDecoder()
	units := []uint16{0x00, 0x41, 0xFF, 0x80}

	bytes := enc.Write(units)
	require.Equal(t, []byte{0x00, 0x41, 0xFF, 0x80}, bytes)
	require.Equal(t, len(units), enc.ByteLength(units))

	got := dec.Write(bytes)
	require.Equal(t, Fragment(units), got)
}

func TestBinaryEncoder_TruncatesToLowByte(t *testing.T) {
	enc := newBinaryEncoder()
	got := enc.Write([]uint16{0x1FF, 0x200})
	require.Equal(t, []byte{0xFF, 0x00}, got)
}

func TestHexCodec_RoundTrip(t *testing.T) {
	enc := newHexEncoder()
	dec := newHexDecoder()
	data := []byte("hello")

	text := dec.Write(data)
	got := enc.Write(text)
	require.Equal(t, data, got)
	require.Equal(t, len(got), enc.ByteLength(text))
}

func TestBase64Decoder_RoundTripsThroughEncoder(t *testing.T) {
	data := []byte("any + old & data")
	dec := newBase64Decoder()
	text := dec.Write(data)
	require.Equal(t, base64.StdEncoding.EncodeToString(data), text.String())
	require.False(t, dec.HasState())

	enc := newBase64Encoder()
	got := append(enc.Write(text), enc.End()...)
	require.Equal(t, data, got)
}

func TestTrivialCodecsHaveNoState(t *testing.T) {
	require.False(t, newUTF8Encoder().HasState())
	require.False(t, newUTF8Decoder().HasState())
	require.False(t, newBinaryEncoder().HasState())
	require.False(t, newBinaryDecoder().HasState())
	require.False(t, newHexEncoder().HasState())
	require.False(t, newHexDecoder().HasState())
	require.False(t, newBase64Decoder().HasState())

	require.Nil(t, newUTF8Encoder().End())
	require.Nil(t, newUTF8Decoder().End())
}
