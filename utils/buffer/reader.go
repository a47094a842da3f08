package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint64Slice reads len(c) uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {
	return readSlice(r, len(c), func(i int, b []byte) {
		c[i] = binary.LittleEndian.Uint64(b)
	})
}

// ReadInt64Slice reads len(c) two's complement int64 from r into c.
func ReadInt64Slice(r Reader, c []int64) (n int64, err error) {
	return readSlice(r, len(c), func(i int, b []byte) {
		c[i] = int64(binary.LittleEndian.Uint64(b))
	})
}

func readSlice(r Reader, N int, decode func(i int, b []byte)) (n int64, err error) {

	var i int

	for i < N {

		// Bounds the peek to the remaining values to avoid a spurious EOF.
		size := min(r.Size(), (N-i)<<3)

		// An exhausted Buffer reports a zero Size.
		if size < 8 {
			size = 8
		}

		var slice []byte
		if slice, err = r.Peek(size); err != nil && len(slice) < 8 {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return n, fmt.Errorf("cannot read value %d/%d: %w", i, N, err)
		}

		buffered := len(slice) >> 3

		for j := 0; j < buffered; j, i = j+1, i+1 {
			decode(i, slice[j<<3:])
		}

		var inc int
		inc, err = r.Discard(buffered << 3)
		n += int64(inc)

		if err != nil {
			return
		}
	}

	return
}
