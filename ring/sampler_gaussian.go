package ring

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// ErrorBound is the largest magnitude returned by the error distribution.
const ErrorBound = 5

// errorCDF is the cumulative distribution of the magnitude of the error:
// P(0) = 0.383, P(|e|=1) = 0.300, P(|e|=2) = 0.183, P(|e|=3) = 0.088,
// P(|e|=4) = 0.033 and P(|e|=5) = 0.013.
var errorCDF = [ErrorBound]float64{0.383, 0.683, 0.866, 0.954, 0.987}

// GaussianSampler samples polynomials with small coefficients in [-ErrorBound, ErrorBound]
// following a table-based approximation of a discrete Gaussian.
//
// Each coefficient is derived from two uniform bytes (b0, b1): the 16-bit value
// b0 | b1<<8 is mapped to u in [0, 1) which selects the magnitude through errorCDF,
// and the sign is given by the low bit of b0.
type GaussianSampler struct {
	*baseSampler
}

// NewGaussianSampler creates a new instance of GaussianSampler from a PRNG and the ring definition.
func NewGaussianSampler(prng sampling.PRNG, baseRing *Ring) *GaussianSampler {
	return &GaussianSampler{baseSampler: newBaseSampler(prng, baseRing, 2)}
}

// Read samples an error polynomial into pol.
// Coefficients are stored in [0, Q).
func (gs *GaussianSampler) Read(pol Poly) (err error) {

	if err = gs.fill(); err != nil {
		return fmt.Errorf("cannot sample error polynomial: %w", err)
	}

	defer gs.wipe()

	coeffs := pol.Coeffs[:gs.baseRing.N()]
	for i := range coeffs {
		coeffs[i] = ModQ(errorFromBytes(gs.buff[2*i], gs.buff[2*i+1]))
	}

	return
}

// ReadNew allocates and samples a new error polynomial.
func (gs *GaussianSampler) ReadNew() (pol Poly, err error) {
	return gs.readNew(gs.Read)
}

// SampleError draws two bytes from prng and maps them to a small signed error.
func SampleError(prng sampling.PRNG) (int64, error) {
	var b [2]byte
	if err := sampling.ReadFull(prng, b[:]); err != nil {
		return 0, fmt.Errorf("cannot SampleError: %w", err)
	}
	return errorFromBytes(b[0], b[1]), nil
}

func errorFromBytes(b0, b1 byte) int64 {

	u := float64(uint16(b0)|uint16(b1)<<8) / 65536.0

	magnitude := int64(ErrorBound)
	for k, c := range errorCDF {
		if u < c {
			magnitude = int64(k)
			break
		}
	}

	if b0&1 == 1 {
		return magnitude
	}

	return -magnitude
}
