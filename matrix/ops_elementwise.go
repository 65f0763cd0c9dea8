// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels.
//
// Every kernel allocates one result of the receiver's order and delegates
// row by row to the vector kernels; operands are never mutated.

package matrix

import (
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/vector"
)

// mapRows returns out.rows[i] = f(m.rows[i]).
func (m *Matrix[T]) mapRows(f func(*vector.Vector[T]) *vector.Vector[T]) *Matrix[T] {
	out := &Matrix[T]{rows: make([]*vector.Vector[T], len(m.rows)), limit: m.limit, det: m.det}
	for i, r := range m.rows {
		out.rows[i] = f(r)
	}

	return out
}

// zipRows applies a binary row kernel after checking orders.
func (m *Matrix[T]) zipRows(op string, o *Matrix[T],
	f func(a, b *vector.Vector[T]) (*vector.Vector[T], error)) (*Matrix[T], error) {
	if len(m.rows) != len(o.rows) {
		return nil, mismatchErrorf(op, len(m.rows), len(o.rows), core.ErrSizeMismatch)
	}
	out := &Matrix[T]{rows: make([]*vector.Vector[T], len(m.rows)), limit: m.limit, det: m.det}
	for i := range m.rows {
		r, err := f(m.rows[i], o.rows[i])
		if err != nil {
			return nil, matrixErrorf(op, err)
		}
		out.rows[i] = r
	}

	return out, nil
}

// Scale returns m[i][j] * k for every element.
// Complexity: O(n²).
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	return m.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.Scale(k) })
}

// DivScalar returns m[i][j] / k for every element.
// Complexity: O(n²).
func (m *Matrix[T]) DivScalar(k T) *Matrix[T] {
	return m.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.DivScalar(k) })
}

// Add returns m + o.
// Errors: core.ErrSizeMismatch when orders differ.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns m - o.
// Errors: core.ErrSizeMismatch when orders differ.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(ctxSub, o, (*vector.Vector[T]).Sub)
}

// Equal reports element-wise equality; orders are compared first.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool {
	return !m.Equal(o)
}
