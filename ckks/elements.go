package ckks

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/ring"
)

// Plaintext is an encoded message: one polynomial of degree N
// with coefficients in [0, Q).
type Plaintext struct {
	Value ring.Poly
}

// NewPlaintext allocates a new zero [Plaintext].
func NewPlaintext(params Parameters) *Plaintext {
	return &Plaintext{Value: params.RingQ().NewPoly()}
}

// N returns the ring degree of the plaintext.
func (pt Plaintext) N() int {
	return pt.Value.N()
}

// Ciphertext is a pair of polynomials (c0, c1) of degree N with coefficients in [0, Q).
// No metadata is carried: the scale is the one of the [Parameters].
type Ciphertext struct {
	Value [2]ring.Poly
}

// NewCiphertext allocates a new zero [Ciphertext].
func NewCiphertext(params Parameters) *Ciphertext {
	return &Ciphertext{Value: [2]ring.Poly{params.RingQ().NewPoly(), params.RingQ().NewPoly()}}
}

// N returns the ring degree of the ciphertext.
func (ct Ciphertext) N() int {
	return ct.Value[0].N()
}

// Int64s writes the ciphertext on dst with the layout c0 || c1, each coefficient in [0, Q).
// It returns an error wrapping [ErrInvalidArgument] and writes nothing if len(dst) < 2N.
func (ct Ciphertext) Int64s(dst []int64) (err error) {

	N := ct.N()

	if len(dst) < 2*N {
		return fmt.Errorf("cannot Int64s: len(dst)=%d < 2N=%d: %w", len(dst), 2*N, ErrInvalidArgument)
	}

	for i := range ct.Value {
		for j, c := range ct.Value[i].Coeffs {
			dst[i*N+j] = int64(c)
		}
	}

	return
}

// SetInt64s reads the layout c0 || c1 from src, reducing every value in [0, Q).
// Values after the first 2N are ignored.
// It returns an error wrapping [ErrInvalidArgument] and leaves the receiver unchanged if len(src) < 2N.
func (ct *Ciphertext) SetInt64s(src []int64) (err error) {

	N := ct.N()

	if len(src) < 2*N {
		return fmt.Errorf("cannot SetInt64s: len(src)=%d < 2N=%d: %w", len(src), 2*N, ErrInvalidArgument)
	}

	for i := range ct.Value {
		coeffs := ct.Value[i].Coeffs
		for j := range coeffs {
			coeffs[j] = ring.ModQ(src[i*N+j])
		}
	}

	return
}

// CopyNew creates a deep copy of the target ciphertext.
func (ct Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: [2]ring.Poly{ct.Value[0].CopyNew(), ct.Value[1].CopyNew()}}
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value[0].Equal(&other.Value[0]) && ct.Value[1].Equal(&other.Value[1])
}
