// Package echelon computes the Dedekind–Weber (Smith normal) form of an
// invertible square matrix over the Laurent polynomial ring F[z, z^-1], with
// F the rationals or the Gaussian rationals.
//
// For such a matrix the determinant is a unit of the ring, c·z^k, and the
// normal form is a diagonal of monomials z^e0, z^e1, ... with e0 <= e1 <= ...,
// reached by unimodular row and column operations.
//
// The pipeline is:
//
//   - Valuation: MinimalDegree finds how negative the lowest exponent is.
//
//   - Regularization: Regularize multiplies by z^k so every entry lies in F[z].
//
//   - Invertibility: IsInvertible requires det to be a single monomial.
//
//   - Bézout row reduction: Bezout folds pairwise extended-Euclid steps over a
//     row to produce combining coefficients and their gcd.
//
//   - Recursive echelon: the first row of every trailing block is collapsed
//     onto its gcd by 2×2 unimodular column folds, the engine recurses into
//     the next block and then repairs the pivot column and the degree order
//     between adjacent pivots.
//
//   - Formatting: FormatDiagonal renders diag(z^e0,z^e1,...).
//
// # API
//
//	res, err := echelon.Diagonalize(ctx, m,
//	    echelon.WithMaxRepairs(1024),  // bound on repair iterations
//	    echelon.WithMonicDiagonal(true), // scale pivots to leading coefficient 1
//	)
//	fmt.Println(res) // The Dedeking-Weber form is diag(z^-1,z^5)
//
// # Errors
//
//	ErrInvalidMatrix - determinant is zero or not a monomial.
//	ErrNotConverged  - the repair loop exceeded WithMaxRepairs.
//	ErrEmptyRow      - Bezout called with no entries.
//	context.Canceled / context.DeadlineExceeded - if ctx is canceled.
//
// Diagnostics go to the "echelon" go-log logger at debug level.
package echelon
