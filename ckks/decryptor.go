package ckks

import (
	"fmt"
)

// Decryptor is a structure used to decrypt [Ciphertext]. It stores the secret-key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if sk == nil || sk.N() != params.N() {
		panic(fmt.Errorf("cannot NewDecryptor: secret_key ring degree does not match parameters ring degree"))
	}

	return &Decryptor{
		params: params,
		sk:     sk,
	}
}

// Decrypt decrypts ct and writes m = c0 + c1*s on pt.
// The coefficients of pt are in [0, Q), see [Encoder.Decode] for their interpretation.
func (d Decryptor) Decrypt(ct *Ciphertext, pt *Plaintext) (err error) {

	N := d.params.N()

	if ct == nil || ct.N() != N {
		return fmt.Errorf("cannot Decrypt: ciphertext degree does not match N=%d: %w", N, ErrInvalidArgument)
	}

	if pt == nil || pt.N() != N {
		return fmt.Errorf("cannot Decrypt: plaintext degree does not match N=%d: %w", N, ErrInvalidArgument)
	}

	r := d.params.RingQ()

	r.MulPoly(ct.Value[1], d.sk.Value, pt.Value)
	r.Add(pt.Value, ct.Value[0], pt.Value)

	return
}

// DecryptNew decrypts ct and returns the result in a new [Plaintext].
func (d Decryptor) DecryptNew(ct *Ciphertext) (pt *Plaintext, err error) {
	pt = NewPlaintext(d.params)
	if err = d.Decrypt(ct, pt); err != nil {
		return nil, err
	}
	return
}
