// SPDX-License-Identifier: MIT

// Package matrix: domain types.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/vector"
)

// DetFunc computes the determinant of the square matrix whose rows are a.
// Implementations must treat a as read-only and may assume len(a) >= 1 and
// len(a[i]) == len(a) for every i.
type DetFunc[T core.Number] func(a [][]T) T

// Matrix is a dense square matrix of order Size().
//   - rows holds Size() vectors of length Size(); nil after a move.
//   - limit and det are inherited by every matrix derived from this one.
type Matrix[T core.Number] struct {
	rows  []*vector.Vector[T]
	limit int
	det   DetFunc[T]
}

// Compile-time assertions.
var (
	_ fmt.Stringer = (*Matrix[int])(nil)
	_ fmt.Stringer = (*Matrix[float64])(nil)
)
