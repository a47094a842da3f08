package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt64SliceRoundTrip(t *testing.T) {

	want := []int64{0, 1, -1, 1 << 39, -(1 << 39), 1<<63 - 1, -1 << 63}

	t.Run("Buffer", func(t *testing.T) {
		b := NewBufferSize(len(want) << 3)

		n, err := WriteInt64Slice(b, want)
		require.NoError(t, err)
		require.Equal(t, int64(len(want)<<3), n)

		have := make([]int64, len(want))
		n, err = ReadInt64Slice(b, have)
		require.NoError(t, err)
		require.Equal(t, int64(len(want)<<3), n)
		require.Equal(t, want, have)
	})

	t.Run("Bufio/SmallBuffer", func(t *testing.T) {

		// 16 bytes of internal buffer forces several flushes and refills.
		out := new(bytes.Buffer)
		w := bufio.NewWriterSize(out, 16)

		_, err := WriteInt64Slice(w, want)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, len(want)<<3, out.Len())

		r := bufio.NewReaderSize(bytes.NewReader(out.Bytes()), 16)
		have := make([]int64, len(want))
		_, err = ReadInt64Slice(r, have)
		require.NoError(t, err)
		require.Equal(t, want, have)
	})

	t.Run("LittleEndian", func(t *testing.T) {
		b := NewBufferSize(16)
		_, err := WriteInt64Slice(b, []int64{1, -1})
		require.NoError(t, err)
		require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, b.Bytes())
	})
}

func TestUint64SliceRoundTrip(t *testing.T) {
	want := []uint64{0, 1, 1<<40 - 1, 1<<64 - 1}
	b := NewBufferSize(len(want) << 3)
	_, err := WriteUint64Slice(b, want)
	require.NoError(t, err)

	have := make([]uint64, len(want))
	_, err = ReadUint64Slice(b, have)
	require.NoError(t, err)
	require.Equal(t, want, have)
}

func TestErrors(t *testing.T) {

	t.Run("Write/TooSmall", func(t *testing.T) {
		b := NewBufferSize(8)
		_, err := WriteInt64Slice(b, []int64{1, 2})
		require.Error(t, err)
	})

	t.Run("Read/Truncated", func(t *testing.T) {
		b := NewBuffer([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0})
		have := make([]int64, 2)
		_, err := ReadInt64Slice(b, have)
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}
