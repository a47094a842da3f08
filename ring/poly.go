package ring

import (
	"slices"
)

// Poly is the structure that contains the coefficients of a polynomial.
// Coefficients at rest are always in [0, Q).
type Poly struct {
	Coeffs []uint64
}

// NewPoly creates a new zero polynomial with N coefficients.
func NewPoly(N int) Poly {
	return Poly{Coeffs: make([]uint64, N)}
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs)
}

// Zero sets all coefficients of the target polynomial to 0.
// It is used to erase secret material.
func (pol Poly) Zero() {
	clear(pol.Coeffs)
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() Poly {
	return Poly{Coeffs: slices.Clone(pol.Coeffs)}
}

// Copy copies the coefficients of p1 on the target polynomial.
// Only the first min(pol.N(), p1.N()) coefficients are copied.
func (pol *Poly) Copy(p1 Poly) {
	copy(pol.Coeffs, p1.Coeffs)
}

// Equal returns true if the receiver Poly is equal to the provided other Poly.
func (pol Poly) Equal(other *Poly) bool {
	return slices.Equal(pol.Coeffs, other.Coeffs)
}
