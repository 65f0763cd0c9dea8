// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/tdyn/core"

// Lower is a lower-triangular matrix: row i stores columns 0..i.
type Lower[T core.Number] struct {
	triangle[T]
}

// NewLower creates an n×n lower triangle with every stored entry set to fill.
// Errors:
//   - core.ErrSize when n <= 0 or n exceeds the limit.
//   - core.ErrShape and core.ErrSize (both match) when n == 1.
//
// Complexity: O(n²/2).
func NewLower[T core.Number](n int, fill T, opts ...Option) (*Lower[T], error) {
	t, err := newTriangle(lower, n, fill, opts)
	if err != nil {
		return nil, err
	}

	return &Lower[T]{t}, nil
}

// LowerFromRows copies compacted rows: rows[i] must hold columns 0..i.
// Errors: as NewLower for len(rows); core.ErrShape for a wrong row length.
func LowerFromRows[T core.Number](rows [][]T, opts ...Option) (*Lower[T], error) {
	t, err := triangleFromRows(lower, rows, opts)
	if err != nil {
		return nil, err
	}

	return &Lower[T]{t}, nil
}

// Clone returns a deep copy.
func (l *Lower[T]) Clone() *Lower[T] {
	return &Lower[T]{l.clone()}
}

// Assign makes l a deep copy of src. Self-assignment is a no-op.
func (l *Lower[T]) Assign(src *Lower[T]) {
	if l == src {
		return
	}
	l.triangle = src.clone()
}

// Move returns a Lower owning l's rows and leaves l empty. O(1).
func (l *Lower[T]) Move() *Lower[T] {
	out := &Lower[T]{triangle[T]{shape: lower}}
	out.take(&l.triangle)

	return out
}

// MoveFrom transfers src's rows into l and leaves src empty. Self-move is a no-op.
func (l *Lower[T]) MoveFrom(src *Lower[T]) {
	if l == src {
		return
	}
	l.take(&src.triangle)
}

// Neg returns -l.
func (l *Lower[T]) Neg() *Lower[T] {
	return &Lower[T]{l.neg()}
}

// Scale returns l * k.
func (l *Lower[T]) Scale(k T) *Lower[T] {
	return &Lower[T]{l.scale(k)}
}

// DivScalar returns l / k.
func (l *Lower[T]) DivScalar(k T) *Lower[T] {
	return &Lower[T]{l.divScalar(k)}
}

// Add returns l + o.
// Errors: core.ErrSizeMismatch when orders differ.
func (l *Lower[T]) Add(o *Lower[T]) (*Lower[T], error) {
	t, err := l.zipRows(ctxAdd, &o.triangle, addRows[T])
	if err != nil {
		return nil, err
	}

	return &Lower[T]{t}, nil
}

// Sub returns l - o.
// Errors: core.ErrSizeMismatch when orders differ.
func (l *Lower[T]) Sub(o *Lower[T]) (*Lower[T], error) {
	t, err := l.zipRows(ctxSub, &o.triangle, subRows[T])
	if err != nil {
		return nil, err
	}

	return &Lower[T]{t}, nil
}

// Mul returns the product l·o, which is again lower-triangular:
// (l·o)[i][j] = Σ_{k=j..i} l[i][k]·o[k][j] for j <= i.
// Errors: core.ErrSizeMismatch when orders differ.
// Complexity: O(n³/6).
func (l *Lower[T]) Mul(o *Lower[T]) (*Lower[T], error) {
	t, err := l.mul(&o.triangle)
	if err != nil {
		return nil, err
	}

	return &Lower[T]{t}, nil
}

// Transpose returns lᵀ as an upper triangle.
func (l *Lower[T]) Transpose() *Upper[T] {
	return &Upper[T]{l.transpose()}
}

// Equal compares the stored triangles exactly; orders are compared first.
func (l *Lower[T]) Equal(o *Lower[T]) bool {
	return l.equal(&o.triangle)
}

// NotEqual is the negation of Equal.
func (l *Lower[T]) NotEqual(o *Lower[T]) bool {
	return !l.equal(&o.triangle)
}
