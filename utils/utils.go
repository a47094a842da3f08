// Package utils implements various helper functions.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo returns true if x is a strictly positive power of two.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns the base 2 logarithm of x rounded down.
// x must be strictly positive.
func Log2[T constraints.Unsigned](x T) int {
	return bits.Len64(uint64(x)) - 1
}
