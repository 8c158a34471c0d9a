// SPDX-License-Identifier: MIT

package field

import "math/big"

// Element represents an immutable element of a coefficient field.
type Element interface {
	// Add returns e + b.
	Add(b Element) Element

	// Sub returns e - b.
	Sub(b Element) Element

	// Mul returns e * b.
	Mul(b Element) Element

	// Neg returns -e.
	Neg() Element

	// Inv returns 1/e. It panics on the zero element; use Div for a checked form.
	Inv() Element

	// IsZero reports whether e is the additive identity.
	IsZero() bool

	// IsOne reports whether e is the multiplicative identity.
	IsOne() bool

	// Equal reports whether e and b are the same element of the same field.
	Equal(b Element) bool

	// Field returns the field e belongs to.
	Field() Field

	// String renders e in the syntax accepted by the laurent parser.
	String() string
}

// Field represents a coefficient field.
type Field interface {
	// Zero returns the additive identity.
	Zero() Element

	// One returns the multiplicative identity.
	One() Element

	// FromInt embeds an integer.
	FromInt(n int64) Element

	// FromRat embeds a rational number.
	FromRat(r *big.Rat) Element

	// ImaginaryUnit returns i when the field contains a square root of -1.
	ImaginaryUnit() (Element, bool)

	// Name returns a short identifier (QQ, QQ_I).
	Name() string
}

// Div returns a / b, or ErrDivisionByZero when b is zero.
func Div(a, b Element) (Element, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}

	return a.Mul(b.Inv()), nil
}

// ByName resolves a field from its command-line spelling.
// Accepted names: "rational", "QQ", "gaussian", "QQ_I".
func ByName(name string) (Field, bool) {
	switch name {
	case "rational", "rationals", nameRational:
		return Rationals(), true
	case "gaussian", "complex", nameGaussian:
		return GaussianRationals(), true
	}

	return nil, false
}
