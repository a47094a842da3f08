package ring

// ModQ returns the representative of x modulo Q in [0, Q).
// Q divides 2^64, so the low bits of the two's complement encoding
// of x are exactly x mod Q, also for negative x.
func ModQ(x int64) uint64 {
	return uint64(x) & qMask
}

// Reduce returns the representative of x modulo Q in [0, Q).
func Reduce(x uint64) uint64 {
	return x & qMask
}

// Center returns the representative of x modulo Q in (-Q/2, Q/2].
func Center(x uint64) int64 {
	x &= qMask
	if x > QHalf {
		return int64(x) - int64(Q)
	}
	return int64(x)
}
