// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
)

var _ matrix.DetFunc[float64] = LUDeterminant[float64]

// LUDeterminant computes det(a) from gonum's LU factorization with partial
// pivoting. A singular input yields exactly 0 when the factorization hits an
// exact zero pivot; otherwise results carry floating-point rounding.
// Complexity: O(n³).
func LUDeterminant[T core.Float](a [][]T) T {
	n := len(a)
	if n == 0 {
		return 1
	}
	d := mat.NewDense(n, n, nil)
	for i, r := range a {
		for j, x := range r {
			d.Set(i, j, float64(x))
		}
	}
	var lu mat.LU
	lu.Factorize(d)

	return T(lu.Det())
}
