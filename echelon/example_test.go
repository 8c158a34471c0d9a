// SPDX-License-Identifier: MIT

package echelon_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dedekind/echelon"
	"github.com/katalvlaran/dedekind/field"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
)

// ExampleDiagonalize reduces a 2×2 Laurent polynomial matrix.
func ExampleDiagonalize() {
	ring := laurent.NewRing(field.Rationals(), laurent.DefaultVariable)
	m, err := matrix.ParseDense(ring, "[[z, z^2], [z^-1, z^3 + 1]]")
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := echelon.Diagonalize(context.Background(), m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res)
	fmt.Println("shift:", res.Shift, "exponents:", res.Exponents)
	// Output:
	// The Dedeking-Weber form is diag(z^-1,z^5)
	// shift: -1 exponents: [-1 5]
}

// ExampleBezout shows the weights combining a row into its gcd.
func ExampleBezout() {
	ring := laurent.NewRing(field.Rationals(), "z")
	row := []*laurent.Poly{ring.MustParse("z"), ring.MustParse("z^2 + 1")}

	coeffs, gen, _ := echelon.Bezout(row)
	fmt.Println(coeffs[0], "|", coeffs[1], "|", gen)
	// Output: -z | 1 | 1
}

// ExampleIsInvertible rejects a matrix whose determinant has two terms.
func ExampleIsInvertible() {
	ring := laurent.NewRing(field.Rationals(), "z")
	m, _ := matrix.ParseDense(ring, "[[z, 1], [-1, z]]")

	ok, _ := echelon.IsInvertible(m)
	fmt.Println(ok)

	_, err := echelon.Diagonalize(context.Background(), m)
	fmt.Println(err)
	// Output:
	// false
	// echelon: invalid matrix, must be invertible
}
