package ckks

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/M21121/CKKS-SDKvGramine/ring"
)

// Encoder maps vectors of complex values to plaintext polynomials and back.
//
// A message of up to N/2 complex values z is written on the first slots of a
// length-N complex vector, slot N-i holding the conjugate of slot i, so that its
// inverse FFT is real-valued. The real parts are then multiplied by the scale and
// rounded to the nearest integer. The imaginary part of slot 0 has no conjugate
// partner and is not preserved.
//
// Decoding centers the coefficients, divides them by the scale and evaluates the
// forward FFT.
//
// An Encoder holds internal buffers and cannot be used concurrently.
// See [Encoder.ShallowCopy].
type Encoder struct {
	parameters Parameters
	values     []complex128
	coeffs     []int64
}

// NewEncoder creates a new [Encoder] from the target parameters.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{
		parameters: params,
		values:     make([]complex128, params.N()),
		coeffs:     make([]int64, params.N()),
	}
}

// Parameters returns the parameters of the encoder.
func (ecd Encoder) Parameters() Parameters {
	return ecd.parameters
}

// Encode encodes the message (re[i] + i*im[i]) on pt.
// re and im must have the same length. Values after the first N/2 are ignored,
// a shorter message is zero-padded.
//
// It returns an error wrapping [ErrInvalidArgument], and leaves pt unchanged, if the
// lengths of re and im differ, if pt does not have degree N, or if a scaled coefficient
// is not finite or does not fit in (-Q/2, Q/2].
func (ecd *Encoder) Encode(re, im []float64, pt *Plaintext) (err error) {

	N := ecd.parameters.N()
	slots := ecd.parameters.Slots()

	if len(re) != len(im) {
		return fmt.Errorf("cannot Encode: len(re)=%d != len(im)=%d: %w", len(re), len(im), ErrInvalidArgument)
	}

	if pt == nil || pt.N() != N {
		return fmt.Errorf("cannot Encode: plaintext degree does not match N=%d: %w", N, ErrInvalidArgument)
	}

	l := min(len(re), slots)

	values := ecd.values
	clear(values)

	for i := 0; i < l; i++ {
		values[i] = complex(re[i], im[i])
	}

	for i := 1; i < l; i++ {
		values[N-i] = cmplx.Conj(values[i])
	}

	IFFT(values, values)

	scale := ecd.parameters.Scale()
	bound := float64(ring.QHalf)

	for i, v := range values {

		c := math.Round(real(v) * scale)

		if math.IsNaN(c) || c > bound || c <= -bound {
			return fmt.Errorf("cannot Encode: coefficient %d = %v is not in (-Q/2, Q/2]: %w", i, c, ErrInvalidArgument)
		}

		ecd.coeffs[i] = int64(c)
	}

	ecd.parameters.RingQ().SetInt64(ecd.coeffs, pt.Value)

	return
}

// EncodeNew encodes the message (re[i] + i*im[i]) on a newly allocated plaintext.
// See [Encoder.Encode].
func (ecd *Encoder) EncodeNew(re, im []float64) (pt *Plaintext, err error) {
	pt = NewPlaintext(ecd.parameters)
	if err = ecd.Encode(re, im, pt); err != nil {
		return nil, err
	}
	return
}

// Decode decodes pt and writes the N/2 recovered complex values on re and im.
// It returns an error wrapping [ErrInvalidArgument], and writes nothing, if
// len(re) or len(im) is smaller than N/2 or if pt does not have degree N.
func (ecd *Encoder) Decode(pt *Plaintext, re, im []float64) (err error) {

	N := ecd.parameters.N()
	slots := ecd.parameters.Slots()

	if pt == nil || pt.N() != N {
		return fmt.Errorf("cannot Decode: plaintext degree does not match N=%d: %w", N, ErrInvalidArgument)
	}

	if len(re) < slots || len(im) < slots {
		return fmt.Errorf("cannot Decode: len(re)=%d or len(im)=%d < slots=%d: %w", len(re), len(im), slots, ErrInvalidArgument)
	}

	ecd.parameters.RingQ().CenterInt64(pt.Value, ecd.coeffs)

	scale := ecd.parameters.Scale()

	values := ecd.values
	for i, c := range ecd.coeffs {
		values[i] = complex(float64(c)/scale, 0)
	}

	FFT(values, values)

	for i, v := range values[:slots] {
		re[i], im[i] = real(v), imag(v)
	}

	return
}

// DecodeNew decodes pt on newly allocated slices of N/2 values.
// See [Encoder.Decode].
func (ecd *Encoder) DecodeNew(pt *Plaintext) (re, im []float64, err error) {
	slots := ecd.parameters.Slots()
	re, im = make([]float64, slots), make([]float64, slots)
	if err = ecd.Decode(pt, re, im); err != nil {
		return nil, nil, err
	}
	return
}

// ShallowCopy returns a lightweight copy of the target object
// that can be used concurrently with the original object.
func (ecd Encoder) ShallowCopy() *Encoder {
	return NewEncoder(ecd.parameters)
}
