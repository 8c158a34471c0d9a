// SPDX-License-Identifier: MIT

package laurent

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("laurent: division by zero polynomial")

	// ErrNotPolynomial is returned by F[z] operations (DivMod, ExtGCD) when an
	// operand carries negative exponents.
	ErrNotPolynomial = errors.New("laurent: negative exponent in polynomial operation")

	// ErrInexact is returned when an exact division leaves a remainder, or a
	// negative power is requested for a non-unit.
	ErrInexact = errors.New("laurent: inexact division")

	// ErrSyntax is returned by Ring.Parse for malformed input.
	ErrSyntax = errors.New("laurent: syntax error")

	// ErrTooLarge is returned when an exponent falls outside
	// [-MaxExponent, MaxExponent].
	ErrTooLarge = errors.New("laurent: exponent out of range")
)

// polyErrorf wraps err with the operation name.
func polyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
