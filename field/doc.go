// Package field provides the exact coefficient fields used by the Laurent
// polynomial ring: the rationals Q and the Gaussian rationals Q(i).
//
// Both fields are exposed through the same pair of interfaces:
//
//	Field   — a factory for constants (Zero, One, FromInt, FromRat, ImaginaryUnit)
//	Element — an immutable scalar (Add, Sub, Mul, Neg, Inv, IsZero, Equal)
//
// Arithmetic is exact (math/big) and every operation returns a fresh value,
// so elements can be shared freely between polynomials and matrices.
//
// Mixing elements of two different fields is a programmer error and panics,
// the same way an out-of-field operand would in a finite-field library.
//
//	q := field.Rationals()
//	half := q.FromRat(big.NewRat(1, 2))
//	fmt.Println(half.Add(q.One())) // 3/2
//
//	g := field.GaussianRationals()
//	i, _ := g.ImaginaryUnit()
//	fmt.Println(i.Mul(i)) // -1
package field
