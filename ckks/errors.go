package ckks

import (
	"errors"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

var (
	// ErrInvalidArgument is returned when a buffer is undersized, two lengths
	// do not match, a parameter is out of its domain or an encoded value
	// does not fit in the coefficient modulus.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUninitialized is returned when an operation is invoked on an
	// [Engine] that does not hold the key it requires.
	ErrUninitialized = errors.New("uninitialized state")

	// ErrRandomSource is returned when the source of randomness fails.
	ErrRandomSource = sampling.ErrRandomSource
)
