package utils

import (
	"golang.org/x/exp/constraints"
)

// MinSlice returns the minimum value in the slice.
// Returns the zero value of T if the slice is empty.
func MinSlice[T constraints.Ordered](slice []T) (m T) {
	if len(slice) == 0 {
		return
	}
	m = slice[0]
	for _, c := range slice[1:] {
		m = min(m, c)
	}
	return
}

// BitReverseInPlaceSlice applies an in-place bit-reverse permutation on the first N elements of the input slice.
// N must be a power of two.
func BitReverseInPlaceSlice[V any](slice []V, N int) {

	var bit, j int

	for i := 1; i < N; i++ {

		bit = N >> 1

		for j >= bit {
			j -= bit
			bit >>= 1
		}

		j += bit

		if i < j {
			slice[i], slice[j] = slice[j], slice[i]
		}
	}
}
