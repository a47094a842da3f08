// Package ring implements arithmetic over the cyclic polynomial ring Z_Q[X]/(X^N - 1)
// with the fixed power-of-two coefficient modulus Q = 2^40, as well as samplers for
// the ternary, small-error and uniform distributions used by the encryption scheme.
package ring

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/utils"
)

const (
	// LogQ is the bit-size of the coefficient modulus.
	LogQ = 40

	// Q is the coefficient modulus.
	Q uint64 = 1 << LogQ

	// QHalf is Q/2, the largest value of the centered representation (-Q/2, Q/2].
	QHalf = Q >> 1

	qMask = Q - 1
)

// Ring is the cyclic polynomial ring Z_Q[X]/(X^N - 1) for N a power of two.
// It is a read-only structure and can be shared between goroutines.
type Ring struct {
	n    int
	logN int
}

// NewRing creates a new Ring of degree N.
// N must be a power of two greater or equal to 2.
func NewRing(N int) (*Ring, error) {
	if N < 2 || !utils.IsPowerOfTwo(N) {
		return nil, fmt.Errorf("cannot NewRing: invalid ring degree %d (must be a power of two >= 2)", N)
	}
	return &Ring{n: N, logN: utils.Log2(uint(N))}, nil
}

// N returns the ring degree.
func (r Ring) N() int {
	return r.n
}

// LogN returns the base two logarithm of the ring degree.
func (r Ring) LogN() int {
	return r.logN
}

// Modulus returns the coefficient modulus Q.
func (r Ring) Modulus() uint64 {
	return Q
}

// NewPoly allocates a new zero polynomial of degree N.
func (r Ring) NewPoly() Poly {
	return NewPoly(r.n)
}
