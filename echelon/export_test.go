// SPDX-License-Identifier: MIT

package echelon

import (
	"context"

	"github.com/katalvlaran/dedekind/matrix"
)

// ReducePivotLine exposes the pivot-line kernel to the black-box tests.
func ReducePivotLine(m *matrix.Dense, level int) error {
	return newReducer(context.Background(), m, DefaultOptions()).reducePivotLine(level)
}
