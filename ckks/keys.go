package ckks

import (
	"bufio"
	"fmt"
	"io"

	"github.com/M21121/CKKS-SDKvGramine/ring"
	"github.com/M21121/CKKS-SDKvGramine/utils/buffer"
)

// SecretKey is a ternary polynomial s with coefficients in {-1, 0, 1}, stored in [0, Q).
//
// Its binary representation is the array of its N centered coefficients,
// each encoded as a little-endian int64.
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey allocates a new zero [SecretKey].
func NewSecretKey(params Parameters) *SecretKey {
	return &SecretKey{Value: params.RingQ().NewPoly()}
}

// N returns the ring degree of the key.
func (sk SecretKey) N() int {
	return sk.Value.N()
}

// Zero erases the key material.
func (sk *SecretKey) Zero() {
	sk.Value.Zero()
}

// CopyNew creates a deep copy of the key.
func (sk SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: sk.Value.CopyNew()}
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return sk.Value.Equal(&other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (sk SecretKey) BinarySize() int {
	return sk.N() << 3
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the [buffer.Writer] interface, it will be wrapped into a [bufio.Writer].
func (sk SecretKey) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		values := make([]int64, sk.N())
		defer clear(values)

		for i, c := range sk.Value.Coeffs {
			values[i] = ring.Center(c)
		}

		if n, err = buffer.WriteInt64Slice(w, values); err != nil {
			return n, fmt.Errorf("cannot write SecretKey: %w", err)
		}

		return n, w.Flush()

	default:
		return sk.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Reader]. It implements the
// [io.ReaderFrom] interface. The key must have been allocated with [NewSecretKey]:
// exactly BinarySize() bytes are read and every value is reduced in [0, Q).
// The values are not checked to be ternary.
//
// Unless r implements the [buffer.Reader] interface, it will be wrapped into a [bufio.Reader].
func (sk *SecretKey) ReadFrom(r io.Reader) (n int64, err error) {

	if sk == nil || sk.N() == 0 {
		return 0, fmt.Errorf("cannot ReadFrom: target object is nil or unallocated")
	}

	switch r := r.(type) {
	case buffer.Reader:

		values := make([]int64, sk.N())
		defer clear(values)

		if n, err = buffer.ReadInt64Slice(r, values); err != nil {
			return n, fmt.Errorf("cannot read SecretKey: %w", err)
		}

		for i, v := range values {
			sk.Value.Coeffs[i] = ring.ModQ(v)
		}

		return

	default:
		return sk.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (sk SecretKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(sk.BinarySize())
	_, err = sk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by [SecretKey.MarshalBinary]
// or [SecretKey.WriteTo] on the object. len(p) must be exactly BinarySize(),
// else an error wrapping [ErrInvalidArgument] is returned and the key is left unchanged.
func (sk *SecretKey) UnmarshalBinary(p []byte) (err error) {
	if len(p) != sk.BinarySize() {
		return fmt.Errorf("cannot UnmarshalBinary: len(p)=%d != %d: %w", len(p), sk.BinarySize(), ErrInvalidArgument)
	}
	_, err = sk.ReadFrom(buffer.NewBuffer(p))
	return
}

// PublicKey is the pair (b, a) = (-(a*s + e), a) for a uniform polynomial a,
// a secret key s and a small error e.
//
// Its binary representation is the array b || a of 2N coefficients in [0, Q),
// each encoded as a little-endian int64.
type PublicKey struct {
	Value [2]ring.Poly
}

// NewPublicKey allocates a new zero [PublicKey].
func NewPublicKey(params Parameters) *PublicKey {
	return &PublicKey{Value: [2]ring.Poly{params.RingQ().NewPoly(), params.RingQ().NewPoly()}}
}

// N returns the ring degree of the key.
func (pk PublicKey) N() int {
	return pk.Value[0].N()
}

// Zero erases the key material.
func (pk *PublicKey) Zero() {
	pk.Value[0].Zero()
	pk.Value[1].Zero()
}

// CopyNew creates a deep copy of the key.
func (pk PublicKey) CopyNew() *PublicKey {
	return &PublicKey{Value: [2]ring.Poly{pk.Value[0].CopyNew(), pk.Value[1].CopyNew()}}
}

// Equal performs a deep equal.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return pk.Value[0].Equal(&other.Value[0]) && pk.Value[1].Equal(&other.Value[1])
}

// BinarySize returns the serialized size of the object in bytes.
func (pk PublicKey) BinarySize() int {
	return pk.N() << 4
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the [buffer.Writer] interface, it will be wrapped into a [bufio.Writer].
func (pk PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		for i := range pk.Value {
			if inc, err = buffer.WriteUint64Slice(w, pk.Value[i].Coeffs); err != nil {
				return n + inc, fmt.Errorf("cannot write PublicKey: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return pk.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Reader]. It implements the
// [io.ReaderFrom] interface. The key must have been allocated with [NewPublicKey]:
// exactly BinarySize() bytes are read and every value is reduced in [0, Q).
//
// Unless r implements the [buffer.Reader] interface, it will be wrapped into a [bufio.Reader].
func (pk *PublicKey) ReadFrom(r io.Reader) (n int64, err error) {

	if pk == nil || pk.N() == 0 {
		return 0, fmt.Errorf("cannot ReadFrom: target object is nil or unallocated")
	}

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		for i := range pk.Value {

			if inc, err = buffer.ReadUint64Slice(r, pk.Value[i].Coeffs); err != nil {
				return n + inc, fmt.Errorf("cannot read PublicKey: %w", err)
			}

			n += inc

			for j, c := range pk.Value[i].Coeffs {
				pk.Value[i].Coeffs[j] = ring.Reduce(c)
			}
		}

		return

	default:
		return pk.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (pk PublicKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(pk.BinarySize())
	_, err = pk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by [PublicKey.MarshalBinary]
// or [PublicKey.WriteTo] on the object. len(p) must be exactly BinarySize(),
// else an error wrapping [ErrInvalidArgument] is returned and the key is left unchanged.
func (pk *PublicKey) UnmarshalBinary(p []byte) (err error) {
	if len(p) != pk.BinarySize() {
		return fmt.Errorf("cannot UnmarshalBinary: len(p)=%d != %d: %w", len(p), pk.BinarySize(), ErrInvalidArgument)
	}
	_, err = pk.ReadFrom(buffer.NewBuffer(p))
	return
}
