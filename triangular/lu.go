// SPDX-License-Identifier: MIT

package triangular

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
)

// Decompose performs the Doolittle factorization A = L·U of a dense matrix:
// L is unit lower-triangular and U is upper-triangular, so det(A) = U.Det().
//
// Stage 1: validate the order (n >= 2, as for any triangle).
// Stage 2: for each pivot row i, fill U's row i (columns j >= i) and then
// L's column i (rows j > i) from the already computed entries.
//
// No pivoting is performed.
// Errors:
//   - core.ErrShape and core.ErrSize for n == 1, core.ErrSize for an empty matrix.
//   - core.ErrSingular when a pivot U[i][i] (i < n-1) is exactly zero, which
//     happens when a leading principal minor of A vanishes.
//
// Complexity: O(n³) time, O(n²) memory.
func Decompose[T core.Float](a *matrix.Matrix[T], opts ...Option) (*Lower[T], *Upper[T], error) {
	n := a.Size()
	l, err := NewLower[T](n, 0, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	u, err := NewUpper[T](n, 0, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	for i := 0; i < n; i++ {
		l.Set(i, i, 1)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum T
			for k := 0; k < i; k++ {
				sum += l.Get(i, k) * u.Get(k, j)
			}
			u.Set(i, j, a.Get(i, j)-sum)
		}
		pivot := u.Get(i, i)
		if pivot == 0 && i < n-1 {
			return nil, nil, fmt.Errorf("Decompose: zero pivot at %d: %w", i, core.ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			var sum T
			for k := 0; k < i; k++ {
				sum += l.Get(j, k) * u.Get(k, i)
			}
			l.Set(j, i, (a.Get(j, i)-sum)/pivot)
		}
	}

	return l, u, nil
}
