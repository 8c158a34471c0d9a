// SPDX-License-Identifier: MIT

package laurent

import "github.com/katalvlaran/dedekind/field"

// Monic returns p divided by its leading coefficient, and that coefficient.
// The zero polynomial is returned unchanged with a zero coefficient.
func (p *Poly) Monic() (*Poly, field.Element) {
	lc := p.LeadingCoeff()
	if p.IsZero() || lc.IsOne() {
		return p, lc
	}

	return p.Scale(lc.Inv()), lc
}

// DivMod divides a by b in F[z]: a == q*b + r with deg r < deg b.
//
// Errors:
//   - ErrDivisionByZero when b is zero.
//   - ErrNotPolynomial when a or b has negative exponents.
func DivMod(a, b *Poly) (q, r *Poly, err error) {
	if b.IsZero() {
		return nil, nil, polyErrorf("DivMod", ErrDivisionByZero)
	}
	if !a.IsPolynomial() || !b.IsPolynomial() {
		return nil, nil, polyErrorf("DivMod", ErrNotPolynomial)
	}
	a.mustShareField(b)

	ring := a.ring
	inv := b.LeadingCoeff().Inv()
	db := b.Degree()
	q, r = ring.Zero(), a
	// Each step cancels the leading term of r, so deg r strictly decreases.
	for !r.IsZero() && r.Degree() >= db {
		t := ring.Monomial(r.LeadingCoeff().Mul(inv), r.Degree()-db)
		q = q.Add(t)
		r = r.Sub(t.Mul(b))
	}

	return q, r, nil
}

// Quo returns a / b in F[z, z^-1], failing with ErrInexact when b does not
// divide a. Monomial factors are units here, so z divides 1.
func Quo(a, b *Poly) (*Poly, error) {
	if b.IsZero() {
		return nil, polyErrorf("Quo", ErrDivisionByZero)
	}
	if a.IsZero() {
		return a, nil
	}
	an := a.Shift(-a.Order())
	bn := b.Shift(-b.Order())
	q, r, err := DivMod(an, bn)
	if err != nil {
		return nil, polyErrorf("Quo", err)
	}
	if !r.IsZero() {
		return nil, polyErrorf("Quo", ErrInexact)
	}

	return q.Shift(a.Order() - b.Order()), nil
}

// ExtGCD runs the extended Euclidean algorithm in F[z] and returns s, t, g
// with s*a + t*b == g, g the monic gcd of a and b.
//
// Degenerate operands:
//   - a == 0: s = 0, t = 1/lc(b), g = monic(b).
//   - b == 0: symmetric.
//   - both zero: s = 1, t = 0, g = 0.
//
// Errors:
//   - ErrNotPolynomial when a or b has negative exponents.
func ExtGCD(a, b *Poly) (s, t, g *Poly, err error) {
	if !a.IsPolynomial() || !b.IsPolynomial() {
		return nil, nil, nil, polyErrorf("ExtGCD", ErrNotPolynomial)
	}
	a.mustShareField(b)
	ring := a.ring
	switch {
	case a.IsZero() && b.IsZero():
		return ring.One(), ring.Zero(), ring.Zero(), nil
	case a.IsZero():
		gb, lc := b.Monic()
		return ring.Zero(), ring.Const(lc.Inv()), gb, nil
	case b.IsZero():
		ga, lc := a.Monic()
		return ring.Const(lc.Inv()), ring.Zero(), ga, nil
	}

	// r_k = s_k*a + t_k*b holds for both rows throughout.
	rPrev, rNext := a, b
	sPrev, sNext := ring.One(), ring.Zero()
	tPrev, tNext := ring.Zero(), ring.One()
	for !rNext.IsZero() {
		q, r, err := DivMod(rPrev, rNext)
		if err != nil {
			return nil, nil, nil, polyErrorf("ExtGCD", err)
		}
		rPrev, rNext = rNext, r
		sPrev, sNext = sNext, sPrev.Sub(q.Mul(sNext))
		tPrev, tNext = tNext, tPrev.Sub(q.Mul(tNext))
	}

	inv := rPrev.LeadingCoeff().Inv()

	return sPrev.Scale(inv), tPrev.Scale(inv), rPrev.Scale(inv), nil
}

// Divides reports whether d divides p in F[z].
func Divides(d, p *Poly) (bool, error) {
	if d.IsZero() {
		return p.IsZero(), nil
	}
	_, r, err := DivMod(p, d)
	if err != nil {
		return false, err
	}

	return r.IsZero(), nil
}
