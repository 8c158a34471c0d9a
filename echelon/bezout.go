// SPDX-License-Identifier: MIT

package echelon

import (
	"github.com/katalvlaran/dedekind/laurent"
)

type stepKind int

const (
	// stepGCD: both operands non-zero, extended Euclid was run.
	stepGCD stepKind = iota
	// stepSkip: the new entry is zero; weight 1, generator unchanged.
	stepSkip
	// stepAdopt: the running generator is zero; weight 1, the entry becomes
	// the generator.
	stepAdopt
)

// foldStep is one pairwise reduction of the running generator against the
// next row entry. For stepGCD, s*gPrev + t*b = g.
type foldStep struct {
	kind    stepKind
	s, t, g *laurent.Poly
}

// nextStep combines the running generator with entry b. Both must lie in
// F[z]. Zero operands never reach the extended Euclidean algorithm.
func nextStep(gPrev, b *laurent.Poly) (foldStep, error) {
	switch {
	case b.IsZero():
		return foldStep{kind: stepSkip, g: gPrev}, nil
	case gPrev.IsZero():
		return foldStep{kind: stepAdopt, g: b}, nil
	}
	s, t, g, err := laurent.ExtGCD(gPrev, b)
	if err != nil {
		return foldStep{}, err
	}

	return foldStep{kind: stepGCD, s: s, t: t, g: g}, nil
}

// Bezout returns coefficients c and a generator g with sum(c[i]*row[i]) == g,
// where g divides every entry of row.
//
// The row is folded left to right:
//   - a single entry gives c = [1], g = row[0];
//   - a zero entry appends weight 1 and keeps the running generator;
//   - a zero running generator appends weight 1 and adopts the entry;
//   - otherwise extended Euclid on (g, entry) gives (s, t, g'), every previous
//     weight is scaled by s and t is appended.
//
// In particular two entries with one of them zero give c = [1, 1] and the
// non-zero entry as generator. Rows with negative exponents are first
// multiplied by z^k to clear them; the weights absorb that factor, so the
// generator is the one of the shifted row.
func Bezout(row []*laurent.Poly) (coeffs []*laurent.Poly, gen *laurent.Poly, err error) {
	if len(row) == 0 {
		return nil, nil, echelonErrorf("Bezout", ErrEmptyRow)
	}
	ring := row[0].Ring()

	k := 0
	for _, p := range row {
		if !p.IsZero() && -p.Order() > k {
			k = -p.Order()
		}
	}

	one := ring.One()
	coeffs = append(make([]*laurent.Poly, 0, len(row)), one)
	gen = row[0].Shift(k)
	for j := 1; j < len(row); j++ {
		st, err := nextStep(gen, row[j].Shift(k))
		if err != nil {
			return nil, nil, echelonErrorf("Bezout", err)
		}
		switch st.kind {
		case stepSkip, stepAdopt:
			coeffs = append(coeffs, one)
		case stepGCD:
			for i := range coeffs {
				coeffs[i] = coeffs[i].Mul(st.s)
			}
			coeffs = append(coeffs, st.t)
		}
		gen = st.g
	}

	if k != 0 {
		for i := range coeffs {
			coeffs[i] = coeffs[i].Shift(k)
		}
	}

	return coeffs, gen, nil
}
