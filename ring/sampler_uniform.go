package ring

import (
	"encoding/binary"
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// UniformSampler samples polynomials with coefficients uniformly distributed in [0, Q).
// Each coefficient is a little-endian 64-bit random word reduced modulo Q.
type UniformSampler struct {
	*baseSampler
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and the ring definition.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) *UniformSampler {
	return &UniformSampler{baseSampler: newBaseSampler(prng, baseRing, 8)}
}

// Read samples a uniform polynomial into pol.
func (us *UniformSampler) Read(pol Poly) (err error) {

	if err = us.fill(); err != nil {
		return fmt.Errorf("cannot sample uniform polynomial: %w", err)
	}

	defer us.wipe()

	coeffs := pol.Coeffs[:us.baseRing.N()]
	for i := range coeffs {
		coeffs[i] = binary.LittleEndian.Uint64(us.buff[i<<3:]) & qMask
	}

	return
}

// ReadNew allocates and samples a new uniform polynomial.
func (us *UniformSampler) ReadNew() (pol Poly, err error) {
	return us.readNew(us.Read)
}
