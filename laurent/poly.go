// SPDX-License-Identifier: MIT

package laurent

import "github.com/katalvlaran/dedekind/field"

// MaxExponent bounds |k| for every term z^k that Parse and Pow produce.
// Coefficients are stored densely from Order to Degree, so the bound also
// caps the memory of a single polynomial.
const MaxExponent = 1 << 14

// Poly is an immutable Laurent polynomial.
//   - c[k] is the coefficient of z^(low+k).
//   - c[0] and c[len(c)-1] are non-zero; the zero polynomial has len(c) == 0.
type Poly struct {
	ring *Ring
	low  int
	c    []field.Element
}

// newPoly takes ownership of c and trims zero coefficients on both ends.
func newPoly(r *Ring, low int, c []field.Element) *Poly {
	hi := len(c)
	for hi > 0 && c[hi-1].IsZero() {
		hi--
	}
	lo := 0
	for lo < hi && c[lo].IsZero() {
		lo++
	}
	if lo == hi {
		return &Poly{ring: r}
	}

	return &Poly{ring: r, low: low + lo, c: c[lo:hi]}
}

// Ring returns the ring p belongs to.
func (p *Poly) Ring() *Ring { return p.ring }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.c) == 0 }

// IsOne reports whether p is the constant 1.
func (p *Poly) IsOne() bool { return len(p.c) == 1 && p.low == 0 && p.c[0].IsOne() }

// IsMonomial reports whether p is a single non-zero term c*z^k.
func (p *Poly) IsMonomial() bool { return len(p.c) == 1 }

// IsPolynomial reports whether p has no negative exponents (p is in F[z]).
func (p *Poly) IsPolynomial() bool { return p.IsZero() || p.low >= 0 }

// Degree returns the highest exponent of p; 0 for the zero polynomial.
func (p *Poly) Degree() int {
	if p.IsZero() {
		return 0
	}

	return p.low + len(p.c) - 1
}

// Order returns the lowest exponent of p; 0 for the zero polynomial.
func (p *Poly) Order() int {
	if p.IsZero() {
		return 0
	}

	return p.low
}

// Bounded reports whether every exponent of p lies in
// [-MaxExponent, MaxExponent].
func (p *Poly) Bounded() bool {
	return p.IsZero() || (p.low >= -MaxExponent && p.Degree() <= MaxExponent)
}

// InverseDegree returns the degree of p as a polynomial in 1/z, i.e. -Order.
// z^-3 + z has inverse degree 3; z^2 has inverse degree -2.
func (p *Poly) InverseDegree() int { return -p.Order() }

// Coeff returns the coefficient of z^k.
func (p *Poly) Coeff(k int) field.Element {
	i := k - p.low
	if i < 0 || i >= len(p.c) {
		return p.ring.f.Zero()
	}

	return p.c[i]
}

// LeadingCoeff returns the coefficient of the highest term; zero for 0.
func (p *Poly) LeadingCoeff() field.Element {
	if p.IsZero() {
		return p.ring.f.Zero()
	}

	return p.c[len(p.c)-1]
}

// LeadingTerm returns the highest-degree term with its coefficient.
func (p *Poly) LeadingTerm() *Poly {
	if p.IsZero() {
		return p
	}

	return p.ring.Monomial(p.LeadingCoeff(), p.Degree())
}

// Len returns the number of stored coefficients (Degree-Order+1, 0 for zero).
func (p *Poly) Len() int { return len(p.c) }

// Equal reports structural equality; storage is canonical so this is
// equality of polynomials.
func (p *Poly) Equal(q *Poly) bool {
	if p.low != q.low || len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if !p.c[i].Equal(q.c[i]) {
			return false
		}
	}

	return true
}

// Split separates p into the terms of exponent < k and those >= k,
// so that p == below + above.
func (p *Poly) Split(k int) (below, above *Poly) {
	if p.IsZero() {
		return p, p
	}
	cut := k - p.low
	switch {
	case cut <= 0:
		return p.ring.Zero(), p
	case cut >= len(p.c):
		return p, p.ring.Zero()
	}
	lo := make([]field.Element, cut)
	copy(lo, p.c[:cut])
	hi := make([]field.Element, len(p.c)-cut)
	copy(hi, p.c[cut:])

	return newPoly(p.ring, p.low, lo), newPoly(p.ring, k, hi)
}
