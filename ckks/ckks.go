// Package ckks implements a simplified CKKS-style approximate homomorphic encryption scheme
// over the cyclic ring Z_Q[X]/(X^N - 1) with Q = 2^40. It provides the encoding of complex
// vectors through an iterative FFT, key generation, public-key encryption and decryption,
// as well as an [Engine] that owns the key material and exposes a flat int64/float64 API.
//
// The construction is demonstration-grade: it supports no homomorphic operations and its
// parameters are not chosen against a security target.
package ckks
