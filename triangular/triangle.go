// SPDX-License-Identifier: MIT

// Package triangular - the compacted-row core shared by Lower and Upper.
//
// Invariants:
//   - len(rows) == n >= core.MinTriangleSize, or rows == nil after a move.
//   - rows[i].Size() == length from shape.span(n, i) for every i.
//   - Results of arithmetic inherit limit and shape from the receiver.

package triangular

import (
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/katalvlaran/tdyn/vector"
)

type triangle[T core.Number] struct {
	rows  []*vector.Vector[T]
	limit int
	shape layout
}

// newTriangle validates n and allocates every stored entry set to fill.
func newTriangle[T core.Number](shape layout, n int, fill T, opts []Option) (triangle[T], error) {
	t := triangle[T]{limit: gatherOptions(opts).maxSize, shape: shape}
	if err := checkOrder(n, t.limit); err != nil {
		return triangle[T]{}, t.errorf(ctxNew, n, err)
	}
	t.alloc(n, fill)

	return t, nil
}

// triangleFromRows copies compacted rows; row i must hold exactly the
// stored entries of row i.
func triangleFromRows[T core.Number](shape layout, rows [][]T, opts []Option) (triangle[T], error) {
	n := len(rows)
	t := triangle[T]{limit: gatherOptions(opts).maxSize, shape: shape}
	if err := checkOrder(n, t.limit); err != nil {
		return triangle[T]{}, t.errorf(ctxFromRows, n, err)
	}
	t.rows = make([]*vector.Vector[T], n)
	for i, r := range rows {
		if _, length := shape.span(n, i); len(r) != length {
			return triangle[T]{}, t.indexErrorf(ctxFromRows, i, len(r), core.ErrShape)
		}
		// 1 <= len(r) <= n <= limit was validated above.
		t.rows[i], _ = vector.FromSlice(r, vector.WithMaxSize(max(t.limit, n)))
	}

	return t, nil
}

func (t *triangle[T]) alloc(n int, fill T) {
	t.rows = make([]*vector.Vector[T], n)
	for i := range t.rows {
		_, length := t.shape.span(n, i)
		t.rows[i], _ = vector.NewFilled(length, fill, vector.WithMaxSize(max(t.limit, n)))
	}
}

// derive returns a zero triangle of the same order, shape and limit.
func (t *triangle[T]) derive(shape layout) triangle[T] {
	var zero T
	out := triangle[T]{limit: t.limit, shape: shape}
	out.alloc(len(t.rows), zero)

	return out
}

// Size returns the order n (0 for a moved-from matrix).
func (t *triangle[T]) Size() int {
	return len(t.rows)
}

// IsEmpty reports whether the matrix has been moved from.
func (t *triangle[T]) IsEmpty() bool {
	return t.rows == nil
}

// Get returns element (i,j). Columns outside the stored triangle read as
// zero; an out-of-range row panics like slice indexing.
func (t *triangle[T]) Get(i, j int) T {
	r := t.rows[i]
	first, _ := t.shape.span(len(t.rows), i)
	if k := j - first; k >= 0 && k < r.Size() {
		return r.Get(k)
	}
	var zero T

	return zero
}

// Set writes element (i,j) of the stored triangle. Off-triangle positions
// have no storage and panic like slice indexing.
func (t *triangle[T]) Set(i, j int, x T) {
	first, _ := t.shape.span(len(t.rows), i)
	t.rows[i].Set(j-first, x)
}

// At returns element (i,j) or core.ErrIndex when i is not a row or j lies
// outside the row's stored segment.
func (t *triangle[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= len(t.rows) {
		return zero, t.indexErrorf(ctxAt, i, j, core.ErrIndex)
	}
	first, _ := t.shape.span(len(t.rows), i)
	x, err := t.rows[i].At(j - first)
	if err != nil {
		return zero, t.indexErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// SetAt writes element (i,j) or returns core.ErrIndex, as At.
func (t *triangle[T]) SetAt(i, j int, x T) error {
	if i < 0 || i >= len(t.rows) {
		return t.indexErrorf(ctxSetAt, i, j, core.ErrIndex)
	}
	first, _ := t.shape.span(len(t.rows), i)
	if err := t.rows[i].SetAt(j-first, x); err != nil {
		return t.indexErrorf(ctxSetAt, i, j, err)
	}

	return nil
}

// Det returns the product of the diagonal, which is the determinant of any
// triangular matrix.
// Complexity: O(n).
func (t *triangle[T]) Det() T {
	var d T = 1
	for i := range t.rows {
		d *= t.Get(i, i)
	}

	return d
}

// MulVec returns the product with v. Row i only visits its stored columns,
// so the implicit zeros never reach the inner loop.
// Errors: core.ErrSizeMismatch when v.Size() != Size().
// Complexity: O(n²/2).
func (t *triangle[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	n := len(t.rows)
	if v.Size() != n {
		return nil, t.mismatchErrorf(ctxMulVec, n, v.Size())
	}
	out, err := vector.New[T](n, vector.WithMaxSize(max(t.limit, n)))
	if err != nil {
		return nil, t.errorf(ctxMulVec, n, err)
	}
	for i, r := range t.rows {
		first, length := t.shape.span(n, i)
		var s T
		for k := 0; k < length; k++ {
			s += r.Get(k) * v.Get(first+k)
		}
		out.Set(i, s)
	}

	return out, nil
}

// Dense expands the triangle into a dense matrix with explicit zeros.
// Errors: core.ErrSize for a moved-from matrix.
// Complexity: O(n²).
func (t *triangle[T]) Dense() (*matrix.Matrix[T], error) {
	n := len(t.rows)
	m, err := matrix.New(n, matrix.WithMaxSize[T](t.limit))
	if err != nil {
		return nil, t.errorf(ctxDense, n, err)
	}
	for i := 0; i < n; i++ {
		first, length := t.shape.span(n, i)
		for j := first; j < first+length; j++ {
			m.Set(i, j, t.Get(i, j))
		}
	}

	return m, nil
}

func (t *triangle[T]) clone() triangle[T] {
	out := triangle[T]{limit: t.limit, shape: t.shape}
	if t.rows != nil {
		out.rows = make([]*vector.Vector[T], len(t.rows))
		for i, r := range t.rows {
			out.rows[i] = r.Clone()
		}
	}

	return out
}

// take moves src's rows into t and empties src.
func (t *triangle[T]) take(src *triangle[T]) {
	t.rows, t.limit = src.rows, src.limit
	src.rows = nil
}

func (t *triangle[T]) mapRows(f func(*vector.Vector[T]) *vector.Vector[T]) triangle[T] {
	out := triangle[T]{rows: make([]*vector.Vector[T], len(t.rows)), limit: t.limit, shape: t.shape}
	for i, r := range t.rows {
		out.rows[i] = f(r)
	}

	return out
}

func (t *triangle[T]) zipRows(op string, o *triangle[T],
	f func(a, b *vector.Vector[T]) (*vector.Vector[T], error)) (triangle[T], error) {
	if len(t.rows) != len(o.rows) {
		return triangle[T]{}, t.mismatchErrorf(op, len(t.rows), len(o.rows))
	}
	out := triangle[T]{rows: make([]*vector.Vector[T], len(t.rows)), limit: t.limit, shape: t.shape}
	for i := range t.rows {
		r, err := f(t.rows[i], o.rows[i])
		if err != nil {
			return triangle[T]{}, t.errorf(op, i, err)
		}
		out.rows[i] = r
	}

	return out, nil
}

func (t *triangle[T]) neg() triangle[T] {
	return t.mapRows((*vector.Vector[T]).Neg)
}

func (t *triangle[T]) scale(k T) triangle[T] {
	return t.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.Scale(k) })
}

func (t *triangle[T]) divScalar(k T) triangle[T] {
	return t.mapRows(func(r *vector.Vector[T]) *vector.Vector[T] { return r.DivScalar(k) })
}

// mul multiplies two triangles of the same shape. Entry (i,j) only depends
// on k between min(i,j) and max(i,j): for Lower that is j..i, for Upper
// i..j. Every other term has a factor from the implicit zero triangle.
func (t *triangle[T]) mul(o *triangle[T]) (triangle[T], error) {
	n := len(t.rows)
	if n != len(o.rows) {
		return triangle[T]{}, t.mismatchErrorf(ctxMul, n, len(o.rows))
	}
	out := t.derive(t.shape)
	for i := 0; i < n; i++ {
		first, length := t.shape.span(n, i)
		for j := first; j < first+length; j++ {
			var s T
			for k := min(i, j); k <= max(i, j); k++ {
				s += t.Get(i, k) * o.Get(k, j)
			}
			out.Set(i, j, s)
		}
	}

	return out, nil
}

// transpose returns the mirrored triangle: (i,j) moves to (j,i).
func (t *triangle[T]) transpose() triangle[T] {
	n := len(t.rows)
	out := t.derive(t.shape.mirror())
	for i := 0; i < n; i++ {
		first, length := t.shape.span(n, i)
		for j := first; j < first+length; j++ {
			out.Set(j, i, t.Get(i, j))
		}
	}

	return out
}

// equal compares orders, then the compacted rows.
func (t *triangle[T]) equal(o *triangle[T]) bool {
	if len(t.rows) != len(o.rows) {
		return false
	}
	for i := range t.rows {
		if !t.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

func addRows[T core.Number](a, b *vector.Vector[T]) (*vector.Vector[T], error) { return a.Add(b) }

func subRows[T core.Number](a, b *vector.Vector[T]) (*vector.Vector[T], error) { return a.Sub(b) }
