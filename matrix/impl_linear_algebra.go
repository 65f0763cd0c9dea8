// SPDX-License-Identifier: MIT
// Package matrix - algebraic kernel: transpose, cofactors, determinant,
// inverse, products and division.
//
// Purpose:
//   - Keep the determinant behind a pure DetFunc so the O(n!) cofactor
//     expansion can be replaced without touching Minor/Inverse/Div.
//   - Preserve exact arithmetic for integer element types: the only
//     division performed by Inverse is the final scaling by 1/det.
//
// Determinism:
//   - Fixed loop orders (i→j→k); the expansion runs along column 0 with the
//     sign starting positive at row 0.

package matrix

import (
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/vector"
)

// CofactorDeterminant computes det(a) by Laplace expansion along column 0:
//
//	n == 1: a00
//	n == 2: a00*a11 - a10*a01
//	n >= 3: Σ_k (-1)^k * a[k][0] * det(cofactor(a, k, 0))
//
// Every recursion level allocates its own submatrices, so the function is
// reentrant. Cost is O(n!) time; use it for small orders only.
func CofactorDeterminant[T core.Number](a [][]T) T {
	switch len(a) {
	case 0:
		return 1 // empty product
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[1][0]*a[0][1]
	}

	var d T
	for k := range a {
		term := a[k][0] * CofactorDeterminant(cofactorRows(a, k, 0))
		if k%2 == 0 {
			d += term
		} else {
			d -= term
		}
	}

	return d
}

// cofactorRows returns a copy of a without row i and column j.
// Complexity: O(n²).
func cofactorRows[T core.Number](a [][]T, i, j int) [][]T {
	n := len(a)
	out := make([][]T, 0, n-1)
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		row := make([]T, 0, n-1)
		row = append(row, a[r][:j]...)
		row = append(row, a[r][j+1:]...)
		out = append(out, row)
	}

	return out
}

// Transpose swaps (i,j) and (j,i) for every pair, in place.
// Applying it twice restores the original matrix.
// Complexity: O(n²) time, O(1) extra space.
func (m *Matrix[T]) Transpose() {
	n := len(m.rows)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := m.rows[i].Get(j), m.rows[j].Get(i)
			m.rows[i].Set(j, b)
			m.rows[j].Set(i, a)
		}
	}
}

// Cofactor returns the (n-1)×(n-1) submatrix obtained by deleting row i and
// column j.
// Errors:
//   - core.ErrIndex when (i,j) is not a valid position (checked first).
//   - core.ErrShape when the matrix is 1×1.
//
// Complexity: O(n²).
func (m *Matrix[T]) Cofactor(i, j int) (*Matrix[T], error) {
	if err := m.checkIndex(i, j); err != nil {
		return nil, indexErrorf(ctxCofactor, i, j, err)
	}
	if len(m.rows) == 1 {
		return nil, indexErrorf(ctxCofactor, i, j, core.ErrShape)
	}

	return m.fromRaw(cofactorRows(m.raw(), i, j)), nil
}

// Det returns the determinant using the configured strategy
// (CofactorDeterminant unless WithDeterminant was given).
func (m *Matrix[T]) Det() T {
	return m.det(m.raw())
}

// Minor returns Det(Cofactor(i, j)).
// Errors: as Cofactor.
func (m *Matrix[T]) Minor(i, j int) (T, error) {
	c, err := m.Cofactor(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return c.Det(), nil
}

// Trace returns Σ a[i][i].
func (m *Matrix[T]) Trace() T {
	var s T
	for i, r := range m.rows {
		s += r.Get(i)
	}

	return s
}

// Inverse returns m⁻¹ via the adjugate:
// Stage 1: d = Det(); d == 0 (exact comparison) → core.ErrSingular.
// Stage 2: n == 1 → adj(m) = [1], so the result is [1/d]. This deliberately
// differs from the literal m/d, which is [1] for every non-singular input.
// Stage 3: C[i][j] = (-1)^(i+j) * Minor(i,j); transpose C into adj(m).
// Stage 4: return adj(m) / d.
//
// Integer element types get truncating division in Stage 4, which is exact
// whenever det = ±1.
// Complexity: O(n²) minors, each at the strategy's cost.
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	var zero T
	d := m.Det()
	if d == zero {
		return nil, matrixErrorf(ctxInverse, core.ErrSingular)
	}
	n := len(m.rows)
	cof := m.derive(n)
	if n == 1 {
		cof.rows[0].Set(0, 1)
		return cof.DivScalar(d), nil
	}

	a := m.raw()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor := m.det(cofactorRows(a, i, j))
			if (i+j)%2 == 1 {
				minor = -minor
			}
			cof.rows[i].Set(j, minor)
		}
	}
	cof.Transpose()

	return cof.DivScalar(d), nil
}

// Mul returns the matrix product m·o with the O(n³) triple loop.
// Errors: core.ErrSizeMismatch when orders differ.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	n := len(m.rows)
	if n != len(o.rows) {
		return nil, mismatchErrorf(ctxMul, n, len(o.rows), core.ErrSizeMismatch)
	}
	out := m.derive(n)
	for i := 0; i < n; i++ {
		ri, dst := m.rows[i], out.rows[i]
		for j := 0; j < n; j++ {
			var s T
			for k := 0; k < n; k++ {
				s += ri.Get(k) * o.rows[k].Get(j)
			}
			dst.Set(j, s)
		}
	}

	return out, nil
}

// MulVec returns m·v, each entry the dot product of a row with v.
// Errors: core.ErrSizeMismatch when v.Size() != Size().
// Complexity: O(n²).
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	n := len(m.rows)
	if n != v.Size() {
		return nil, mismatchErrorf(ctxMulVec, n, v.Size(), core.ErrSizeMismatch)
	}
	out, err := vector.New[T](n, vector.WithMaxSize(max(m.limit, n)))
	if err != nil {
		return nil, matrixErrorf(ctxMulVec, err)
	}
	for i, r := range m.rows {
		s, _ := r.Dot(v) // sizes already match
		out.Set(i, s)
	}

	return out, nil
}

// Div returns m·o⁻¹.
// Errors: core.ErrSizeMismatch when orders differ (checked first), then
// whatever o.Inverse returns (core.ErrSingular).
func (m *Matrix[T]) Div(o *Matrix[T]) (*Matrix[T], error) {
	if len(m.rows) != len(o.rows) {
		return nil, mismatchErrorf(ctxDiv, len(m.rows), len(o.rows), core.ErrSizeMismatch)
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, matrixErrorf(ctxDiv, err)
	}

	return m.Mul(inv)
}
