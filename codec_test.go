package streamcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeToUnits_SurrogatePairs(t *testing.T) {
	units := EncodeToUnits("💩")
	require.Equal(t, []uint16{0xD83D, 0xDCA9}, units)
}

func TestFragment_String_ReplacesLoneSurrogate(t *testing.T) {
	f := Fragment{'A', 0xD800, 'B'}
	require.Equal(t, "A�B", f.String())
}

func TestFragment_String_Empty(t *testing.T) {
	var f Fragment
	require.Equal(t, "", f.String())
}
