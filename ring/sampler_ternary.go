package ring

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// TernarySampler samples polynomials with coefficients in {-1, 0, 1}.
//
// Each coefficient is derived from one uniform byte b as
// b mod 3 = {0, 1, 2} -> {-1, 1, 0}. Since 256 is not a multiple of 3
// the distribution is slightly biased: P(-1) = 86/256, P(1) = P(0) = 85/256.
type TernarySampler struct {
	*baseSampler
}

// NewTernarySampler creates a new instance of TernarySampler from a PRNG and the ring definition.
func NewTernarySampler(prng sampling.PRNG, baseRing *Ring) *TernarySampler {
	return &TernarySampler{baseSampler: newBaseSampler(prng, baseRing, 1)}
}

// Read samples a ternary polynomial into pol.
// Coefficients are stored in [0, Q), i.e. -1 is stored as Q-1.
func (ts *TernarySampler) Read(pol Poly) (err error) {

	if err = ts.fill(); err != nil {
		return fmt.Errorf("cannot sample ternary polynomial: %w", err)
	}

	defer ts.wipe()

	coeffs := pol.Coeffs[:ts.baseRing.N()]
	for i, b := range ts.buff {
		coeffs[i] = ModQ(ternaryFromByte(b))
	}

	return
}

// ReadNew allocates and samples a new ternary polynomial.
func (ts *TernarySampler) ReadNew() (pol Poly, err error) {
	return ts.readNew(ts.Read)
}

// SampleTernary draws one byte from prng and maps it to {-1, 0, 1}.
func SampleTernary(prng sampling.PRNG) (int64, error) {
	var b [1]byte
	if err := sampling.ReadFull(prng, b[:]); err != nil {
		return 0, fmt.Errorf("cannot SampleTernary: %w", err)
	}
	return ternaryFromByte(b[0]), nil
}

func ternaryFromByte(b byte) int64 {
	switch b % 3 {
	case 0:
		return -1
	case 1:
		return 1
	default:
		return 0
	}
}
