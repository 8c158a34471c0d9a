// SPDX-License-Identifier: MIT

package laurent

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/dedekind/field"
)

// String renders p as a sum of monomials from the highest exponent down,
// e.g. "z^3 + 1", "-2*z^-1", "(1+2*i)*z". The output parses back to p.
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		c := p.c[i]
		if c.IsZero() {
			continue
		}
		term := formatTerm(c, p.low+i, p.ring.v)
		switch {
		case first:
			b.WriteString(term)
		case strings.HasPrefix(term, "-"):
			b.WriteString(" - ")
			b.WriteString(term[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(term)
		}
		first = false
	}

	return b.String()
}

// formatTerm renders c*v^k.
func formatTerm(c field.Element, k int, v string) string {
	mono := formatMonomial(k, v)
	cs := c.String()
	if compound(cs) {
		cs = "(" + cs + ")"
	}
	switch {
	case mono == "":
		return cs
	case cs == "1":
		return mono
	case cs == "-1":
		return "-" + mono
	}

	return cs + "*" + mono
}

// formatMonomial renders v^k without coefficient; "" for k == 0.
func formatMonomial(k int, v string) string {
	switch k {
	case 0:
		return ""
	case 1:
		return v
	}

	return v + "^" + strconv.Itoa(k)
}

// compound reports whether a coefficient string has an inner sign,
// like "1+2*i", and needs parentheses inside a product.
func compound(s string) bool {
	return strings.ContainsAny(strings.TrimPrefix(s, "-"), "+-")
}
