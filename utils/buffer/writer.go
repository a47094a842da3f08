package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint64Slice writes a slice of uint64 into w.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteUint64Slice: available buffer/8 is zero even after flush")
			}
		}

		chunk := min(available, len(c))

		buf := w.AvailableBuffer()[:chunk<<3]
		for i := 0; i < chunk; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)

		if err != nil {
			return
		}

		c = c[chunk:]
	}

	return
}

// WriteInt64Slice writes a slice of int64 into w, using the two's complement encoding.
func WriteInt64Slice(w Writer, c []int64) (n int64, err error) {

	for len(c) > 0 {

		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteInt64Slice: available buffer/8 is zero even after flush")
			}
		}

		chunk := min(available, len(c))

		buf := w.AvailableBuffer()[:chunk<<3]
		for i := 0; i < chunk; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], uint64(c[i]))
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)

		if err != nil {
			return
		}

		c = c[chunk:]
	}

	return
}
