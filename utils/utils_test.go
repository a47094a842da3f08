package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []int{1, 2, 4, 1024, 8192} {
		require.True(t, IsPowerOfTwo(x), x)
	}
	for _, x := range []int{-8, 0, 3, 6, 1023, 8193} {
		require.False(t, IsPowerOfTwo(x), x)
	}
	require.True(t, IsPowerOfTwo(uint64(1)<<63))
}

func TestLog2(t *testing.T) {
	require.Equal(t, 0, Log2(uint(1)))
	require.Equal(t, 13, Log2(uint(8192)))
	require.Equal(t, 13, Log2(uint64(8193)))
}
