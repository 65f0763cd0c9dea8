// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/tdyn/core"

// Upper is an upper-triangular matrix: row i stores columns i..n-1.
type Upper[T core.Number] struct {
	triangle[T]
}

// NewUpper creates an n×n upper triangle with every stored entry set to fill.
// Errors:
//   - core.ErrSize when n <= 0 or n exceeds the limit.
//   - core.ErrShape and core.ErrSize (both match) when n == 1.
//
// Complexity: O(n²/2).
func NewUpper[T core.Number](n int, fill T, opts ...Option) (*Upper[T], error) {
	t, err := newTriangle(upper, n, fill, opts)
	if err != nil {
		return nil, err
	}

	return &Upper[T]{t}, nil
}

// UpperFromRows copies compacted rows: rows[i] must hold columns i..n-1.
// Errors: as NewUpper for len(rows); core.ErrShape for a wrong row length.
func UpperFromRows[T core.Number](rows [][]T, opts ...Option) (*Upper[T], error) {
	t, err := triangleFromRows(upper, rows, opts)
	if err != nil {
		return nil, err
	}

	return &Upper[T]{t}, nil
}

// Clone returns a deep copy.
func (u *Upper[T]) Clone() *Upper[T] {
	return &Upper[T]{u.clone()}
}

// Assign makes u a deep copy of src. Self-assignment is a no-op.
func (u *Upper[T]) Assign(src *Upper[T]) {
	if u == src {
		return
	}
	u.triangle = src.clone()
}

// Move returns an Upper owning u's rows and leaves u empty. O(1).
func (u *Upper[T]) Move() *Upper[T] {
	out := &Upper[T]{triangle[T]{shape: upper}}
	out.take(&u.triangle)

	return out
}

// MoveFrom transfers src's rows into u and leaves src empty. Self-move is a no-op.
func (u *Upper[T]) MoveFrom(src *Upper[T]) {
	if u == src {
		return
	}
	u.take(&src.triangle)
}

// Neg returns -u.
func (u *Upper[T]) Neg() *Upper[T] {
	return &Upper[T]{u.neg()}
}

// Scale returns u * k.
func (u *Upper[T]) Scale(k T) *Upper[T] {
	return &Upper[T]{u.scale(k)}
}

// DivScalar returns u / k.
func (u *Upper[T]) DivScalar(k T) *Upper[T] {
	return &Upper[T]{u.divScalar(k)}
}

// Add returns u + o.
// Errors: core.ErrSizeMismatch when orders differ.
func (u *Upper[T]) Add(o *Upper[T]) (*Upper[T], error) {
	t, err := u.zipRows(ctxAdd, &o.triangle, addRows[T])
	if err != nil {
		return nil, err
	}

	return &Upper[T]{t}, nil
}

// Sub returns u - o.
// Errors: core.ErrSizeMismatch when orders differ.
func (u *Upper[T]) Sub(o *Upper[T]) (*Upper[T], error) {
	t, err := u.zipRows(ctxSub, &o.triangle, subRows[T])
	if err != nil {
		return nil, err
	}

	return &Upper[T]{t}, nil
}

// Mul returns the product u·o, which is again upper-triangular:
// (u·o)[i][j] = Σ_{k=i..j} u[i][k]·o[k][j] for j >= i.
// Errors: core.ErrSizeMismatch when orders differ.
// Complexity: O(n³/6).
func (u *Upper[T]) Mul(o *Upper[T]) (*Upper[T], error) {
	t, err := u.mul(&o.triangle)
	if err != nil {
		return nil, err
	}

	return &Upper[T]{t}, nil
}

// Transpose returns uᵀ as a lower triangle.
func (u *Upper[T]) Transpose() *Lower[T] {
	return &Lower[T]{u.transpose()}
}

// Equal compares the stored triangles exactly; orders are compared first.
func (u *Upper[T]) Equal(o *Upper[T]) bool {
	return u.equal(&o.triangle)
}

// NotEqual is the negation of Equal.
func (u *Upper[T]) NotEqual(o *Upper[T]) bool {
	return !u.equal(&o.triangle)
}
