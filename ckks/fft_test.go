package ckks

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

func naiveDFT(in []complex128, inverse bool) (out []complex128) {
	N := len(in)
	out = make([]complex128, N)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := range out {
		for j, v := range in {
			out[k] += v * cmplx.Rect(1, sign*2*math.Pi*float64(j*k)/float64(N))
		}
		if inverse {
			out[k] /= complex(float64(N), 0)
		}
	}
	return
}

func requireComplexInDelta(t *testing.T, want, have []complex128, delta float64) {
	require.Equal(t, len(want), len(have))
	for i := range want {
		require.InDelta(t, real(want[i]), real(have[i]), delta, "index %d", i)
		require.InDelta(t, imag(want[i]), imag(have[i]), delta, "index %d", i)
	}
}

func TestFFT(t *testing.T) {

	for _, logN := range []int{0, 1, 2, 5, 8, 11} {

		N := 1 << logN

		in := make([]complex128, N)
		for i := range in {
			in[i] = sampling.RandComplex128(-1, 1)
		}

		t.Run(fmt.Sprintf("FFT/N=%d", N), func(t *testing.T) {
			out := make([]complex128, N)
			FFT(in, out)
			requireComplexInDelta(t, naiveDFT(in, false), out, 1e-9*float64(N))
		})

		t.Run(fmt.Sprintf("IFFT/N=%d", N), func(t *testing.T) {
			out := make([]complex128, N)
			IFFT(in, out)
			requireComplexInDelta(t, naiveDFT(in, true), out, 1e-9)
		})

		t.Run(fmt.Sprintf("RoundTrip/InPlace/N=%d", N), func(t *testing.T) {
			values := make([]complex128, N)
			copy(values, in)
			FFT(values, values)
			IFFT(values, values)
			requireComplexInDelta(t, in, values, 1e-12*float64(N))
		})
	}

	t.Run("Impulse", func(t *testing.T) {
		in := make([]complex128, 8)
		in[0] = 1
		out := make([]complex128, 8)
		FFT(in, out)
		for _, v := range out {
			require.InDelta(t, 1, real(v), 1e-15)
			require.InDelta(t, 0, imag(v), 1e-15)
		}
	})

	t.Run("InvalidCall", func(t *testing.T) {
		require.Panics(t, func() { FFT(make([]complex128, 6), make([]complex128, 6)) })
		require.Panics(t, func() { IFFT(make([]complex128, 8), make([]complex128, 4)) })
		require.Panics(t, func() { FFT(nil, nil) })
	})
}
