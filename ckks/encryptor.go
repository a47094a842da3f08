package ckks

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/ring"
	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// Encryptor encrypts plaintexts under a [PublicKey].
// It holds internal buffers and cannot be used concurrently. See [Encryptor.ShallowCopy].
type Encryptor struct {
	params          Parameters
	pk              *PublicKey
	prng            sampling.PRNG
	ternarySampler  ring.Sampler
	gaussianSampler ring.Sampler
	buffU           ring.Poly
	buffE           [2]ring.Poly
}

// NewEncryptor creates a new [Encryptor] from a public key, drawing its randomness from prng.
// If prng is nil, a [sampling.ThreadSafePRNG] is used.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {

	if pk == nil || pk.N() != params.N() {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewEncryptor: public key ring degree does not match parameters ring degree"))
	}

	if prng == nil {
		var err error
		if prng, err = sampling.NewPRNG(); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
	}

	r := params.RingQ()

	return &Encryptor{
		params:          params,
		pk:              pk,
		prng:            prng,
		ternarySampler:  ring.NewTernarySampler(prng, r),
		gaussianSampler: ring.NewGaussianSampler(prng, r),
		buffU:           r.NewPoly(),
		buffE:           [2]ring.Poly{r.NewPoly(), r.NewPoly()},
	}
}

// Encrypt encrypts pt on ct:
//
//	c0 = b*u + e1 + m
//	c1 = a*u + e2
//
// with u a fresh ternary polynomial and e1, e2 fresh small errors.
// All the randomness is drawn before ct is written, so that ct is left
// unchanged if the source of randomness fails.
func (enc Encryptor) Encrypt(pt *Plaintext, ct *Ciphertext) (err error) {

	N := enc.params.N()

	if pt == nil || pt.N() != N {
		return fmt.Errorf("cannot Encrypt: plaintext degree does not match N=%d: %w", N, ErrInvalidArgument)
	}

	if ct == nil || ct.N() != N {
		return fmt.Errorf("cannot Encrypt: ciphertext degree does not match N=%d: %w", N, ErrInvalidArgument)
	}

	defer enc.wipe()

	if err = enc.ternarySampler.Read(enc.buffU); err != nil {
		return fmt.Errorf("cannot Encrypt: %w", err)
	}

	for i := range enc.buffE {
		if err = enc.gaussianSampler.Read(enc.buffE[i]); err != nil {
			return fmt.Errorf("cannot Encrypt: %w", err)
		}
	}

	r := enc.params.RingQ()

	// c1 = a*u + e2
	r.MulPoly(enc.pk.Value[1], enc.buffU, ct.Value[1])
	r.Add(ct.Value[1], enc.buffE[1], ct.Value[1])

	// c0 = b*u + e1 + m, e1 absorbs m first in case pt aliases c0
	r.Add(enc.buffE[0], pt.Value, enc.buffE[0])
	r.MulPoly(enc.pk.Value[0], enc.buffU, ct.Value[0])
	r.Add(ct.Value[0], enc.buffE[0], ct.Value[0])

	return
}

// EncryptNew encrypts pt on a newly allocated ciphertext.
func (enc Encryptor) EncryptNew(pt *Plaintext) (ct *Ciphertext, err error) {
	ct = NewCiphertext(enc.params)
	if err = enc.Encrypt(pt, ct); err != nil {
		return nil, err
	}
	return
}

// ShallowCopy returns a lightweight copy of the target object
// that can be used concurrently with the original object.
// The copy shares the PRNG of the original, which must then be thread-safe.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.pk, enc.prng)
}

// wipe erases the ephemeral randomness of the last encryption.
func (enc Encryptor) wipe() {
	enc.buffU.Zero()
	enc.buffE[0].Zero()
	enc.buffE[1].Zero()
}
