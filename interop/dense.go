// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/katalvlaran/tdyn/vector"
)

// ToDense copies m into a new n×n *mat.Dense.
// Errors: core.ErrSize for a moved-from matrix (gonum rejects empty shapes).
// Complexity: O(n²).
func ToDense[T core.Real](m *matrix.Matrix[T]) (*mat.Dense, error) {
	n := m.Size()
	if n == 0 {
		return nil, fmt.Errorf("interop.ToDense: %w", core.ErrSize)
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, float64(m.Get(i, j)))
		}
	}

	return d, nil
}

// FromDense copies a square gonum matrix into a new Matrix[T].
// Errors: core.ErrShape when a is not square; core.ErrSize as matrix.New.
// Complexity: O(n²).
func FromDense[T core.Real](a mat.Matrix, opts ...matrix.Option[T]) (*matrix.Matrix[T], error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("interop.FromDense(%dx%d): %w", r, c, core.ErrShape)
	}
	m, err := matrix.New(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("interop.FromDense: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, T(a.At(i, j)))
		}
	}

	return m, nil
}

// ToVecDense copies v into a new *mat.VecDense.
// Errors: core.ErrSize for a moved-from vector.
// Complexity: O(n).
func ToVecDense[T core.Real](v *vector.Vector[T]) (*mat.VecDense, error) {
	n := v.Size()
	if n == 0 {
		return nil, fmt.Errorf("interop.ToVecDense: %w", core.ErrSize)
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, float64(v.Get(i)))
	}

	return out, nil
}

// FromVecDense copies a gonum vector into a new Vector[T].
// Errors: core.ErrSize as vector.New.
// Complexity: O(n).
func FromVecDense[T core.Real](v mat.Vector, opts ...vector.Option) (*vector.Vector[T], error) {
	out, err := vector.New[T](v.Len(), opts...)
	if err != nil {
		return nil, fmt.Errorf("interop.FromVecDense: %w", err)
	}
	for i := 0; i < v.Len(); i++ {
		out.Set(i, T(v.AtVec(i)))
	}

	return out, nil
}
