package ckks

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/M21121/CKKS-SDKvGramine/ring"
	"github.com/M21121/CKKS-SDKvGramine/utils"
)

const (
	// MaxLogN is the log2 of the largest supported ring degree.
	MaxLogN = 13

	// MaxPolyDegree is the largest supported ring degree. Larger
	// degrees are clamped to this value.
	MaxPolyDegree = 1 << MaxLogN

	// DefaultPolyDegree is the ring degree substituted for a zero PolyDegree.
	DefaultPolyDegree = MaxPolyDegree

	// DefaultLogScale is the log2 of DefaultScale.
	DefaultLogScale = 30

	// DefaultScale is the scaling factor substituted for a zero Scale.
	DefaultScale = float64(1 << DefaultLogScale)
)

// ParametersLiteral is a literal representation of CKKS parameters. It has public
// fields and is used to express unchecked user-defined parameters literally into
// Go programs. The [NewParametersFromLiteral] function is used to generate the actual
// checked parameters from the literal representation.
//
// If left unset, PolyDegree defaults to [DefaultPolyDegree] and Scale to [DefaultScale].
type ParametersLiteral struct {
	PolyDegree int
	Scale      float64 `json:",omitempty"`
}

// Parameters represents a parameter set for the CKKS cryptosystem. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	ringQ *ring.Ring
	scale float64
}

// NewParameters instantiates a set of CKKS parameters from the ring degree and the scaling factor.
// See [NewParametersFromLiteral] for the substitution and clamping rules.
func NewParameters(polyDegree int, scale float64) (params Parameters, err error) {
	return NewParametersFromLiteral(ParametersLiteral{PolyDegree: polyDegree, Scale: scale})
}

// NewParametersFromLiteral instantiates a set of CKKS parameters from a [ParametersLiteral].
//
// A zero PolyDegree or Scale is substituted by its default value. A PolyDegree larger than
// [MaxPolyDegree] is silently clamped to [MaxPolyDegree]. It returns an error wrapping
// [ErrInvalidArgument] if PolyDegree is not a power of two greater or equal to 2, or if
// Scale is negative, NaN or infinite.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	N := pl.PolyDegree

	switch {
	case N == 0:
		N = DefaultPolyDegree
	case N > MaxPolyDegree:
		N = MaxPolyDegree
	}

	if N < 2 || !utils.IsPowerOfTwo(N) {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: PolyDegree=%d must be a power of two >= 2: %w", pl.PolyDegree, ErrInvalidArgument)
	}

	scale := pl.Scale

	if scale == 0 {
		scale = DefaultScale
	}

	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Scale=%v must be positive and finite: %w", pl.Scale, ErrInvalidArgument)
	}

	if params.ringQ, err = ring.NewRing(N); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	params.scale = scale

	return
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		PolyDegree: p.N(),
		Scale:      p.scale,
	}
}

// RingQ returns a pointer to the underlying ring.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// N returns the ring degree.
func (p Parameters) N() int {
	if p.ringQ == nil {
		return 0
	}
	return p.ringQ.N()
}

// LogN returns the log2 of the ring degree.
func (p Parameters) LogN() int {
	if p.ringQ == nil {
		return 0
	}
	return p.ringQ.LogN()
}

// Slots returns the number of complex slots, N/2.
func (p Parameters) Slots() int {
	return p.N() >> 1
}

// LogSlots returns the log2 of the number of complex slots.
func (p Parameters) LogSlots() int {
	return p.LogN() - 1
}

// Scale returns the scaling factor applied at encoding.
func (p Parameters) Scale() float64 {
	return p.scale
}

// LogScale returns log2 of the scaling factor.
func (p Parameters) LogScale() float64 {
	return math.Log2(p.scale)
}

// Q returns the coefficient modulus.
func (p Parameters) Q() uint64 {
	return ring.Q
}

// CiphertextSize returns the number of int64 values of a flattened ciphertext, 2N.
func (p Parameters) CiphertextSize() int {
	return 2 * p.N()
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the one returned by MarshalJSON.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
