package ckks

import (
	"fmt"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

// State is the lifecycle state of an [Engine].
type State int

const (
	// Uninitialized is the state of an Engine that was not created with [NewEngine].
	Uninitialized = State(iota)
	// KeysAbsent is the state of an Engine that holds neither a secret nor a public key.
	KeysAbsent
	// KeysPartial is the state of an Engine that holds only one of the two keys.
	KeysPartial
	// KeysReady is the state of an Engine that holds both keys.
	KeysReady
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case KeysAbsent:
		return "KeysAbsent"
	case KeysPartial:
		return "KeysPartial"
	case KeysReady:
		return "KeysReady"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine owns a key pair and encrypts and decrypts messages laid out as
// flat slices: a message is a pair of real/imaginary []float64 and a
// ciphertext is the []int64 c0 || c1 of 2N values in [0, Q).
//
// Encryption and decryption require both keys: an Engine holding only one
// of them is in the KeysPartial state and can only import or export keys.
//
// An Engine holds mutable buffers and cannot be used concurrently.
// Callers must use independent instances instead.
// [Engine.Close] erases all the key material.
type Engine struct {
	params Parameters
	prng   sampling.PRNG

	kgen    *KeyGenerator
	encoder *Encoder

	sk *SecretKey
	pk *PublicKey

	encryptor *Encryptor
	decryptor *Decryptor

	pt *Plaintext
	ct *Ciphertext
}

// NewEngine creates a new [Engine] in the KeysAbsent state. All the buffers are
// allocated once, from the ring degree of params. The randomness of key generation
// and encryption is read from prng. If prng is nil, a [sampling.ThreadSafePRNG] is used.
func NewEngine(params Parameters, prng sampling.PRNG) (e *Engine, err error) {

	if params.RingQ() == nil {
		return nil, fmt.Errorf("cannot NewEngine: parameters are not initialized: %w", ErrInvalidArgument)
	}

	if prng == nil {
		if prng, err = sampling.NewPRNG(); err != nil {
			return nil, fmt.Errorf("cannot NewEngine: %w", err)
		}
	}

	return &Engine{
		params:  params,
		prng:    prng,
		kgen:    NewKeyGenerator(params, prng),
		encoder: NewEncoder(params),
		pt:      NewPlaintext(params),
		ct:      NewCiphertext(params),
	}, nil
}

// Parameters returns the parameters of the engine.
func (e *Engine) Parameters() Parameters {
	return e.params
}

// State returns the lifecycle state of the engine.
func (e *Engine) State() State {
	switch {
	case e == nil || e.params.RingQ() == nil:
		return Uninitialized
	case e.sk != nil && e.pk != nil:
		return KeysReady
	case e.sk != nil || e.pk != nil:
		return KeysPartial
	default:
		return KeysAbsent
	}
}

// HasSecretKey returns true if the engine holds a secret key.
func (e *Engine) HasSecretKey() bool {
	return e != nil && e.sk != nil
}

// HasPublicKey returns true if the engine holds a public key.
func (e *Engine) HasPublicKey() bool {
	return e != nil && e.pk != nil
}

// GenerateKeys samples a fresh key pair. The previous keys, if any, are erased
// once the new pair is installed. On failure the previous keys are left untouched.
func (e *Engine) GenerateKeys() (err error) {

	if e.State() == Uninitialized {
		return fmt.Errorf("cannot GenerateKeys: %w", ErrUninitialized)
	}

	sk, pk, err := e.kgen.GenKeyPairNew()
	if err != nil {
		return fmt.Errorf("cannot GenerateKeys: %w", err)
	}

	e.setSecretKey(sk)
	e.setPublicKey(pk)

	return
}

// ExportSecretKey returns the secret key as N little-endian int64 values in {-1, 0, 1}.
// The caller owns the returned slice and should erase it after use.
func (e *Engine) ExportSecretKey() (p []byte, err error) {
	if !e.HasSecretKey() {
		return nil, fmt.Errorf("cannot ExportSecretKey: no secret key: %w", ErrUninitialized)
	}
	return e.sk.MarshalBinary()
}

// ExportPublicKey returns the public key b || a as 2N little-endian int64 values in [0, Q).
func (e *Engine) ExportPublicKey() (p []byte, err error) {
	if !e.HasPublicKey() {
		return nil, fmt.Errorf("cannot ExportPublicKey: no public key: %w", ErrUninitialized)
	}
	return e.pk.MarshalBinary()
}

// ImportSecretKey installs a secret key produced by [Engine.ExportSecretKey].
// len(p) must be exactly 8N, else an error wrapping [ErrInvalidArgument] is returned.
// The values are reduced modulo Q but are not checked to be ternary.
func (e *Engine) ImportSecretKey(p []byte) (err error) {

	if e.State() == Uninitialized {
		return fmt.Errorf("cannot ImportSecretKey: %w", ErrUninitialized)
	}

	sk := NewSecretKey(e.params)
	if err = sk.UnmarshalBinary(p); err != nil {
		sk.Zero()
		return fmt.Errorf("cannot ImportSecretKey: %w", err)
	}

	e.setSecretKey(sk)

	return
}

// ImportPublicKey installs a public key produced by [Engine.ExportPublicKey].
// len(p) must be exactly 16N, else an error wrapping [ErrInvalidArgument] is returned.
func (e *Engine) ImportPublicKey(p []byte) (err error) {

	if e.State() == Uninitialized {
		return fmt.Errorf("cannot ImportPublicKey: %w", ErrUninitialized)
	}

	pk := NewPublicKey(e.params)
	if err = pk.UnmarshalBinary(p); err != nil {
		return fmt.Errorf("cannot ImportPublicKey: %w", err)
	}

	e.setPublicKey(pk)

	return
}

// Encrypt encodes and encrypts the message (re[i] + i*im[i]) and writes the
// ciphertext c0 || c1 on the first 2N values of ct. Messages longer than N/2
// are truncated, shorter ones are zero-padded.
//
// It returns an error wrapping [ErrUninitialized] if the engine is not in the
// KeysReady state, and an error wrapping [ErrInvalidArgument] if len(ct) < 2N, len(re) != len(im)
// or the message does not fit at the current scale. ct is written only on success.
func (e *Engine) Encrypt(re, im []float64, ct []int64) (err error) {

	if s := e.State(); s != KeysReady {
		return fmt.Errorf("cannot Encrypt: engine state is %s: %w", s, ErrUninitialized)
	}

	if len(ct) < e.params.CiphertextSize() {
		return fmt.Errorf("cannot Encrypt: len(ct)=%d < 2N=%d: %w", len(ct), e.params.CiphertextSize(), ErrInvalidArgument)
	}

	defer e.pt.Value.Zero()

	if err = e.encoder.Encode(re, im, e.pt); err != nil {
		return fmt.Errorf("cannot Encrypt: %w", err)
	}

	if err = e.encryptor.Encrypt(e.pt, e.ct); err != nil {
		return fmt.Errorf("cannot Encrypt: %w", err)
	}

	return e.ct.Int64s(ct)
}

// EncryptNew encrypts the message (re[i] + i*im[i]) on a newly allocated slice of 2N values.
// See [Engine.Encrypt].
func (e *Engine) EncryptNew(re, im []float64) (ct []int64, err error) {

	if s := e.State(); s != KeysReady {
		return nil, fmt.Errorf("cannot EncryptNew: engine state is %s: %w", s, ErrUninitialized)
	}

	ct = make([]int64, e.params.CiphertextSize())
	if err = e.Encrypt(re, im, ct); err != nil {
		return nil, err
	}

	return
}

// Decrypt decrypts the ciphertext c0 || c1 read from the first 2N values of ct and
// writes the N/2 recovered slots on re and im. Values of ct are reduced modulo Q.
//
// It returns an error wrapping [ErrUninitialized] if the engine is not in the
// KeysReady state, and an error wrapping [ErrInvalidArgument] if len(ct) < 2N or len(re), len(im) < N/2.
// re and im are written only on success.
func (e *Engine) Decrypt(ct []int64, re, im []float64) (err error) {

	if s := e.State(); s != KeysReady {
		return fmt.Errorf("cannot Decrypt: engine state is %s: %w", s, ErrUninitialized)
	}

	if len(ct) < e.params.CiphertextSize() {
		return fmt.Errorf("cannot Decrypt: len(ct)=%d < 2N=%d: %w", len(ct), e.params.CiphertextSize(), ErrInvalidArgument)
	}

	if slots := e.params.Slots(); len(re) < slots || len(im) < slots {
		return fmt.Errorf("cannot Decrypt: len(re)=%d or len(im)=%d < slots=%d: %w", len(re), len(im), slots, ErrInvalidArgument)
	}

	defer e.pt.Value.Zero()

	if err = e.ct.SetInt64s(ct); err != nil {
		return fmt.Errorf("cannot Decrypt: %w", err)
	}

	if err = e.decryptor.Decrypt(e.ct, e.pt); err != nil {
		return fmt.Errorf("cannot Decrypt: %w", err)
	}

	if err = e.encoder.Decode(e.pt, re, im); err != nil {
		return fmt.Errorf("cannot Decrypt: %w", err)
	}

	return
}

// DecryptNew decrypts ct on newly allocated slices of N/2 values.
// See [Engine.Decrypt].
func (e *Engine) DecryptNew(ct []int64) (re, im []float64, err error) {

	if s := e.State(); s != KeysReady {
		return nil, nil, fmt.Errorf("cannot DecryptNew: engine state is %s: %w", s, ErrUninitialized)
	}

	slots := e.params.Slots()
	re, im = make([]float64, slots), make([]float64, slots)
	if err = e.Decrypt(ct, re, im); err != nil {
		return nil, nil, err
	}

	return
}

// Close erases the key material and the internal buffers. The engine returns to
// the KeysAbsent state: encryption and decryption fail with [ErrUninitialized]
// until keys are generated or imported again.
func (e *Engine) Close() {

	if e == nil {
		return
	}

	e.setSecretKey(nil)
	e.setPublicKey(nil)

	if e.pt != nil {
		e.pt.Value.Zero()
	}

	if e.ct != nil {
		e.ct.Value[0].Zero()
		e.ct.Value[1].Zero()
	}
}

func (e *Engine) setSecretKey(sk *SecretKey) {

	if e.sk != nil {
		e.sk.Zero()
	}

	e.sk = sk

	if sk != nil {
		e.decryptor = NewDecryptor(e.params, sk)
	} else {
		e.decryptor = nil
	}
}

func (e *Engine) setPublicKey(pk *PublicKey) {

	if e.pk != nil {
		e.pk.Zero()
	}

	e.pk = pk

	if pk != nil {
		e.encryptor = NewEncryptor(e.params, pk, e.prng)
	} else {
		e.encryptor = nil
	}
}
