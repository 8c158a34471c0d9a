// Package laurent implements univariate Laurent polynomials over an exact
// coefficient field (see package field).
//
// What & Why:
//
//	A Laurent polynomial allows negative exponents: 3*z^2 + 1 - z^-1.
//	The Dedekind–Weber reduction needs a small, exact computer-algebra
//	layer: ring arithmetic, degree and order (lowest exponent), division
//	with remainder in F[z], extended Euclid with Bézout coefficients,
//	leading-term extraction and a canonical printed form. This package is
//	that layer; nothing here is symbolic beyond one variable.
//
// Representation:
//
//	Poly stores a dense coefficient slice c and the exponent of c[0] (low),
//	trimmed on both ends so that equal polynomials have equal storage. The
//	zero polynomial has no coefficients. Values are immutable: every
//	operation returns a new *Poly.
//
// Euclidean operations (DivMod, ExtGCD) are defined on the polynomial
// subring F[z] and reject inputs with negative exponents (ErrNotPolynomial);
// callers regularize first. Quo performs exact division in F[z, z^-1].
//
// Complexity:
//
//	Add/Sub O(n), Mul O(n·m), DivMod O(n·m), ExtGCD O(n²) field operations.
package laurent
