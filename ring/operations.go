package ring

import (
	"fmt"
)

// Add evaluates p3 = p1 + p2 (mod Q).
func (r Ring) Add(p1, p2, p3 Poly) {
	a, b, c := p1.Coeffs[:r.n], p2.Coeffs[:r.n], p3.Coeffs[:r.n]
	for i := range c {
		c[i] = (a[i] + b[i]) & qMask
	}
}

// Sub evaluates p3 = p1 - p2 (mod Q).
func (r Ring) Sub(p1, p2, p3 Poly) {
	a, b, c := p1.Coeffs[:r.n], p2.Coeffs[:r.n], p3.Coeffs[:r.n]
	for i := range c {
		c[i] = (a[i] - b[i]) & qMask
	}
}

// Neg evaluates p2 = -p1 (mod Q).
func (r Ring) Neg(p1, p2 Poly) {
	a, b := p1.Coeffs[:r.n], p2.Coeffs[:r.n]
	for i := range b {
		b[i] = -a[i] & qMask
	}
}

// Reduce evaluates p2 = p1 mod Q, mapping every coefficient in [0, Q).
func (r Ring) Reduce(p1, p2 Poly) {
	a, b := p1.Coeffs[:r.n], p2.Coeffs[:r.n]
	for i := range b {
		b[i] = a[i] & qMask
	}
}

// MulPoly evaluates p3 = p1 * p2 in Z_Q[X]/(X^N - 1), i.e. the cyclic convolution
//
//	p3[(i+j) mod N] = sum p1[i] * p2[j] (mod Q).
//
// The multiplication is the schoolbook O(N^2) algorithm. Q divides 2^64, hence
// wrapping uint64 products and sums are exact modulo Q and the 80-bit products of
// two reduced operands never need to be materialized.
// p3 can alias p1 or p2.
func (r Ring) MulPoly(p1, p2, p3 Poly) {
	r.mulPoly(p1, p2, p3, make([]uint64, r.n))
}

// mulPoly computes p3 = p1 * p2 accumulating on acc, which is erased on return
// since it holds the product of the secret key in key generation and decryption.
func (r Ring) mulPoly(p1, p2, p3 Poly, acc []uint64) {

	N := r.n

	a, b := p1.Coeffs[:N], p2.Coeffs[:N]

	acc = acc[:N]
	defer clear(acc)

	for i := 0; i < N; i++ {

		ai := a[i] & qMask

		if ai == 0 {
			continue
		}

		// j + i < N
		lo := acc[i:]
		for j, bj := range b[:N-i] {
			lo[j] += ai * (bj & qMask)
		}

		// j + i >= N wraps around since X^N = 1
		hi := acc[:i]
		for j, bj := range b[N-i:] {
			hi[j] += ai * (bj & qMask)
		}
	}

	c := p3.Coeffs[:N]
	for i := range c {
		c[i] = acc[i] & qMask
	}
}

// SetInt64 maps the signed values on pol, reducing each of them in [0, Q).
// len(values) must be equal to N.
func (r Ring) SetInt64(values []int64, pol Poly) {
	if len(values) != r.n {
		panic(fmt.Sprintf("invalid call of SetInt64: len(values)=%d != N=%d", len(values), r.n))
	}
	c := pol.Coeffs[:r.n]
	for i, v := range values {
		c[i] = ModQ(v)
	}
}

// CenterInt64 writes the centered representation in (-Q/2, Q/2] of the coefficients of pol on values.
// len(values) must be equal to N.
func (r Ring) CenterInt64(pol Poly, values []int64) {
	if len(values) != r.n {
		panic(fmt.Sprintf("invalid call of CenterInt64: len(values)=%d != N=%d", len(values), r.n))
	}
	for i, c := range pol.Coeffs[:r.n] {
		values[i] = Center(c)
	}
}
