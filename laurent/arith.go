// SPDX-License-Identifier: MIT

package laurent

import "github.com/katalvlaran/dedekind/field"

const (
	// panicRingMismatch is raised when operands come from rings with different fields.
	panicRingMismatch = "laurent: operands belong to different coefficient fields"
	// panicExponentOverflow is raised when an exponent sum does not fit in int.
	panicExponentOverflow = "laurent: exponent overflows int"
)

// addExp returns a + b, panicking when the sum wraps.
func addExp(a, b int) int {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(panicExponentOverflow)
	}

	return s
}

func (p *Poly) mustShareField(q *Poly) {
	if p.ring.f != q.ring.f {
		panic(panicRingMismatch)
	}
}

// zeros returns n zero coefficients of p's field.
func (p *Poly) zeros(n int) []field.Element {
	z := p.ring.f.Zero()
	out := make([]field.Element, n)
	for i := range out {
		out[i] = z
	}

	return out
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	p.mustShareField(q)
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	low := min(p.low, q.low)
	high := max(p.Degree(), q.Degree())
	out := p.zeros(high - low + 1)
	for i, c := range p.c {
		out[p.low-low+i] = c
	}
	for i, c := range q.c {
		k := q.low - low + i
		out[k] = out[k].Add(c)
	}

	return newPoly(p.ring, low, out)
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	out := make([]field.Element, len(p.c))
	for i, c := range p.c {
		out[i] = c.Neg()
	}

	return newPoly(p.ring, p.low, out)
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly { return p.Add(q.Neg()) }

// Mul returns p * q (schoolbook convolution).
// It panics when an exponent of the product does not fit in int.
func (p *Poly) Mul(q *Poly) *Poly {
	p.mustShareField(q)
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	addExp(p.Degree(), q.Degree())
	low := addExp(p.low, q.low)
	out := p.zeros(len(p.c) + len(q.c) - 1)
	for i, a := range p.c {
		for j, b := range q.c {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}

	return newPoly(p.ring, low, out)
}

// Scale returns c * p.
func (p *Poly) Scale(c field.Element) *Poly {
	if c.IsZero() || p.IsZero() {
		return p.ring.Zero()
	}
	out := make([]field.Element, len(p.c))
	for i, a := range p.c {
		out[i] = a.Mul(c)
	}

	return newPoly(p.ring, p.low, out)
}

// Shift returns z^k * p. It panics when an exponent of the result does not
// fit in int.
func (p *Poly) Shift(k int) *Poly {
	if p.IsZero() || k == 0 {
		return p
	}
	addExp(p.Degree(), k)

	return &Poly{ring: p.ring, low: addExp(p.low, k), c: p.c}
}

// Pow returns p^n. Negative powers exist only for monomials, the units of
// F[z, z^-1]; any other base yields ErrInexact. A result with an exponent
// beyond MaxExponent yields ErrTooLarge before anything is multiplied.
func (p *Poly) Pow(n int) (*Poly, error) {
	if !powBounded(p, n) {
		return nil, polyErrorf("Pow", ErrTooLarge)
	}
	if n < 0 {
		if !p.IsMonomial() {
			return nil, polyErrorf("Pow", ErrInexact)
		}
		c := p.c[0].Inv()
		inv := p.ring.Monomial(c, -p.low)

		return inv.Pow(-n)
	}
	result := p.ring.One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// powBounded reports whether every exponent of p^n stays within MaxExponent.
// Besides 0 and 1 no base may be raised beyond MaxExponent, which also keeps
// constant coefficients from growing without limit.
func powBounded(p *Poly, n int) bool {
	if p.IsZero() || p.IsOne() {
		return true
	}
	if n < -MaxExponent || n > MaxExponent || !p.Bounded() {
		return false
	}
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return true
	}
	limit := MaxExponent / n

	return -p.Order() <= limit && p.Degree() <= limit
}
