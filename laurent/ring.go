// SPDX-License-Identifier: MIT

package laurent

import "github.com/katalvlaran/dedekind/field"

// DefaultVariable is the variable name used when none is given.
const DefaultVariable = "z"

// Ring is F[z, z^-1] for a coefficient field F and a variable name.
type Ring struct {
	f field.Field
	v string
}

// NewRing returns the Laurent polynomial ring over f in the given variable.
// An empty variable name selects DefaultVariable.
func NewRing(f field.Field, variable string) *Ring {
	if variable == "" {
		variable = DefaultVariable
	}

	return &Ring{f: f, v: variable}
}

// Field returns the coefficient field.
func (r *Ring) Field() field.Field { return r.f }

// Variable returns the variable name.
func (r *Ring) Variable() string { return r.v }

// Equal reports whether r and o describe the same ring.
func (r *Ring) Equal(o *Ring) bool {
	return r == o || (o != nil && r.f == o.f && r.v == o.v)
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() *Poly { return &Poly{ring: r} }

// One returns the constant 1.
func (r *Ring) One() *Poly { return r.Const(r.f.One()) }

// Const returns the constant polynomial c.
func (r *Ring) Const(c field.Element) *Poly { return r.Monomial(c, 0) }

// Int returns the constant polynomial n.
func (r *Ring) Int(n int64) *Poly { return r.Const(r.f.FromInt(n)) }

// Gen returns the variable itself, z.
func (r *Ring) Gen() *Poly { return r.Monomial(r.f.One(), 1) }

// Monomial returns c*z^k.
func (r *Ring) Monomial(c field.Element, k int) *Poly {
	return newPoly(r, k, []field.Element{c})
}

// FromCoeffs returns sum coeffs[i]*z^(low+i).
func (r *Ring) FromCoeffs(low int, coeffs ...field.Element) *Poly {
	c := make([]field.Element, len(coeffs))
	copy(c, coeffs)

	return newPoly(r, low, c)
}
