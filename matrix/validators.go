// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/ring checks here.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "reflect"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// pointers stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameRing ensures a and b hold entries of the same polynomial ring.
// Assumes a and b are not nil.
func ValidateSameRing(a, b Matrix) error {
	if !a.Ring().Equal(b.Ring()) {
		return validatorErrorf("ValidateSameRing", ErrRingMismatch)
	}

	return nil
}
