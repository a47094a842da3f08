package ckks

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/M21121/CKKS-SDKvGramine/utils"
)

// FFT evaluates the forward discrete Fourier transform
//
//	out[k] = sum_j in[j] * exp(-2*pi*i*j*k/N)
//
// with an iterative radix-2 Cooley-Tukey algorithm, where N = len(in).
// N must be a power of two and len(out) must be equal to N.
// out can alias in.
func FFT(in, out []complex128) {
	transform(in, out, false)
}

// IFFT evaluates the inverse discrete Fourier transform
//
//	out[j] = 1/N * sum_k in[k] * exp(2*pi*i*j*k/N)
//
// with an iterative radix-2 Cooley-Tukey algorithm, where N = len(in).
// N must be a power of two and len(out) must be equal to N.
// out can alias in.
func IFFT(in, out []complex128) {
	transform(in, out, true)
}

func transform(in, out []complex128, inverse bool) {

	N := len(in)

	if !utils.IsPowerOfTwo(N) {
		panic(fmt.Sprintf("invalid call of FFT: len(in)=%d is not a power of two", N))
	}

	if len(out) != N {
		panic(fmt.Sprintf("invalid call of FFT: len(out)=%d != len(in)=%d", len(out), N))
	}

	copy(out, in)

	utils.BitReverseInPlaceSlice(out, N)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for step := 2; step <= N; step <<= 1 {

		half := step >> 1

		wm := cmplx.Rect(1, sign*2*math.Pi/float64(step))

		for i := 0; i < N; i += step {

			w := complex(1, 0)

			for k := 0; k < half; k++ {
				u := out[i+k]
				v := w * out[i+k+half]
				out[i+k], out[i+k+half] = u+v, u-v
				w *= wm
			}
		}
	}

	if inverse {
		nInv := complex(1/float64(N), 0)
		for i := range out {
			out[i] *= nInv
		}
	}
}
