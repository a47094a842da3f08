// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrRandomSource is returned, wrapped, whenever a source of random bytes
// fails or returns fewer bytes than requested.
var ErrRandomSource = errors.New("random source failure")

// ReadFull fills buf with bytes read from prng.
// Any failure of the source, including a short read, is reported as an
// error wrapping [ErrRandomSource].
func ReadFull(prng PRNG, buf []byte) (err error) {
	if prng == nil {
		return fmt.Errorf("%w: nil source", ErrRandomSource)
	}
	if _, err = io.ReadFull(prng, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return
}

// RandUint64 return a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max.
func RandFloat64(min, max float64) float64 {
	f := float64(RandUint64()) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandComplex128 returns a random complex with the real and imaginary part between min and max.
func RandComplex128(min, max float64) complex128 {
	return complex(RandFloat64(min, max), RandFloat64(min, max))
}
