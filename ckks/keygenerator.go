package ckks

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/ring"
	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create new keys.
// It cannot be used concurrently.
type KeyGenerator struct {
	params          Parameters
	ternarySampler  ring.Sampler
	gaussianSampler ring.Sampler
	uniformSampler  ring.Sampler
}

// NewKeyGenerator creates a new [KeyGenerator] drawing its randomness from prng.
// If prng is nil, a [sampling.ThreadSafePRNG] is used.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {

	if prng == nil {
		var err error
		if prng, err = sampling.NewPRNG(); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
	}

	return &KeyGenerator{
		params:          params,
		ternarySampler:  ring.NewTernarySampler(prng, params.RingQ()),
		gaussianSampler: ring.NewGaussianSampler(prng, params.RingQ()),
		uniformSampler:  ring.NewUniformSampler(prng, params.RingQ()),
	}
}

// GenSecretKeyNew generates a new [SecretKey] with ternary coefficients.
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey, err error) {
	sk = NewSecretKey(kgen.params)
	if err = kgen.ternarySampler.Read(sk.Value); err != nil {
		sk.Zero()
		return nil, fmt.Errorf("cannot GenSecretKeyNew: %w", err)
	}
	return
}

// GenPublicKeyNew generates a new [PublicKey] (b, a) = (-(a*s + e), a) from the provided [SecretKey].
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey, err error) {

	if sk == nil || sk.N() != kgen.params.N() {
		return nil, fmt.Errorf("cannot GenPublicKeyNew: secret key ring degree does not match N=%d: %w", kgen.params.N(), ErrInvalidArgument)
	}

	pk = NewPublicKey(kgen.params)

	r := kgen.params.RingQ()

	e := r.NewPoly()
	defer e.Zero()

	if err = kgen.uniformSampler.Read(pk.Value[1]); err != nil {
		pk.Zero()
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	if err = kgen.gaussianSampler.Read(e); err != nil {
		pk.Zero()
		return nil, fmt.Errorf("cannot GenPublicKeyNew: %w", err)
	}

	// b = -(a*s + e)
	r.MulPoly(pk.Value[1], sk.Value, pk.Value[0])
	r.Add(pk.Value[0], e, pk.Value[0])
	r.Neg(pk.Value[0], pk.Value[0])

	return
}

// GenKeyPairNew generates a new [SecretKey] and its associated [PublicKey].
// On failure, no key material is returned.
func (kgen KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey, err error) {

	if sk, err = kgen.GenSecretKeyNew(); err != nil {
		return nil, nil, err
	}

	if pk, err = kgen.GenPublicKeyNew(sk); err != nil {
		sk.Zero()
		return nil, nil, err
	}

	return
}
