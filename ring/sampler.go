package ring

import (
	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// Sampler is an interface for random polynomial samplers.
// Read populates the given polynomial according to the Sampler's distribution
// and returns an error wrapping [sampling.ErrRandomSource] if the underlying
// source of randomness fails, in which case the polynomial must be discarded.
//
// Samplers keep an internal buffer and cannot be used concurrently.
type Sampler interface {
	Read(pol Poly) (err error)
	ReadNew() (pol Poly, err error)
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
	buff     []byte
}

func newBaseSampler(prng sampling.PRNG, baseRing *Ring, bytesPerCoeff int) *baseSampler {
	return &baseSampler{
		prng:     prng,
		baseRing: baseRing,
		buff:     make([]byte, baseRing.N()*bytesPerCoeff),
	}
}

// fill draws all the bytes needed for one polynomial in a single read.
func (s *baseSampler) fill() error {
	return sampling.ReadFull(s.prng, s.buff)
}

// wipe erases the random bytes once they have been mapped, as they
// determine the sampled polynomial.
func (s *baseSampler) wipe() {
	clear(s.buff)
}

func (s *baseSampler) readNew(read func(pol Poly) error) (pol Poly, err error) {
	pol = s.baseRing.NewPoly()
	if err = read(pol); err != nil {
		return Poly{}, err
	}
	return
}
