// Package dedekind computes the Dedekind–Weber (Smith normal) form of
// invertible square matrices of Laurent polynomials in one variable.
//
// 🚀 What is in the box?
//
//	An exact, single-threaded toolkit that brings together:
//		• Coefficient fields: rationals Q and Gaussian rationals Q(i)
//		• Laurent polynomials: arithmetic, division, extended GCD, parsing
//		• Polynomial matrices: elementary operations, Bareiss determinant
//		• The echelon engine: Bézout row reduction, recursion and degree repair
//
// ✨ Why exact?
//
//   - Every coefficient is a math/big rational, so the diagonal is the true
//     normal form, not a floating-point approximation.
//   - Invertibility is checked up front: the determinant must be a single
//     monomial c·z^k.
//
// Under the hood, everything is organized in four packages:
//
//	field/    — coefficient fields behind one Field/Element interface
//	laurent/  — Laurent polynomial ring F[z, z^-1]
//	matrix/   — dense polynomial matrices and their elementary operations
//	echelon/  — Diagonalize, Bezout, IsInvertible, FormatDiagonal
//
// and one command:
//
//	cmd/dedekindweber — prints "The Dedeking-Weber form is diag(...)"
//
// Quick example:
//
//	[[z,    z^2    ],
//	 [z^-1, z^3 + 1]]   →   diag(z^-1, z^5)
//
//	go run github.com/katalvlaran/dedekind/cmd/dedekindweber -matrix '[[z, z^2], [z^-1, z^3 + 1]]'
package dedekind
