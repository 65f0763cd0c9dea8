// SPDX-License-Identifier: MIT

// Package matrix - construction, accessors and lifecycle.
//
// Purpose:
//   - Build square matrices as a sequence of owned row vectors.
//   - Keep the checked surface (At/SetAt/Row) error-returning and the
//     unchecked surface (Get/Set) as cheap as slice indexing.
//   - Make copy and move explicit: Go assignment of *Matrix only aliases.
//
// Complexity quicksheet:
//   - New/FromRows/Identity/Clone/Assign: O(n²); Move/MoveFrom: O(1);
//     Get/Set/At/SetAt: O(1); Row: O(n).

package matrix

import (
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/vector"
)

// New creates an n×n zero matrix.
// Stage 1 (Validate): 0 < n <= limit, else core.ErrSize.
// Stage 2 (Prepare): allocate n zero rows of length n.
// Complexity: O(n²) time and memory.
func New[T core.Number](n int, opts ...Option[T]) (*Matrix[T], error) {
	o := gatherOptions(opts)
	if err := core.CheckSize(n, o.maxSize); err != nil {
		return nil, sizeErrorf(ctxNew, n, err)
	}
	m := &Matrix[T]{limit: o.maxSize, det: o.det}
	m.alloc(n)

	return m, nil
}

// FromRows copies a square [][]T into a new matrix.
// Errors:
//   - core.ErrSize when len(rows) is 0 or above the limit.
//   - core.ErrShape when any row length differs from len(rows).
//
// Complexity: O(n²).
func FromRows[T core.Number](rows [][]T, opts ...Option[T]) (*Matrix[T], error) {
	m, err := New(len(rows), opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	for i, r := range rows {
		if len(r) != len(rows) {
			return nil, indexErrorf(ctxFromRows, i, len(r), core.ErrShape)
		}
		for j, x := range r {
			m.rows[i].Set(j, x)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: core.ErrSize as New.
func Identity[T core.Number](n int, opts ...Option[T]) (*Matrix[T], error) {
	m, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, 1)
	}

	return m, nil
}

// alloc replaces the rows with n zero rows of length n.
// n is pre-validated by the caller.
func (m *Matrix[T]) alloc(n int) {
	m.rows = make([]*vector.Vector[T], n)
	for i := range m.rows {
		// n <= limit was validated, so the row size is always accepted.
		m.rows[i], _ = vector.New[T](n, vector.WithMaxSize(max(m.limit, n)))
	}
}

// derive returns a zero n×n matrix with m's configuration.
func (m *Matrix[T]) derive(n int) *Matrix[T] {
	out := &Matrix[T]{limit: m.limit, det: m.det}
	out.alloc(n)

	return out
}

// fromRaw builds a matrix with m's configuration from square row data.
func (m *Matrix[T]) fromRaw(a [][]T) *Matrix[T] {
	out := m.derive(len(a))
	for i, r := range a {
		for j, x := range r {
			out.rows[i].Set(j, x)
		}
	}

	return out
}

// raw returns a [][]T copy of the elements (input for DetFunc strategies).
func (m *Matrix[T]) raw() [][]T {
	a := make([][]T, len(m.rows))
	for i, r := range m.rows {
		a[i] = r.Slice()
	}

	return a
}

// Size returns the order n (0 for a moved-from matrix).
func (m *Matrix[T]) Size() int {
	return len(m.rows)
}

// IsEmpty reports whether the matrix has been moved from.
func (m *Matrix[T]) IsEmpty() bool {
	return m.rows == nil
}

// Get returns element (i,j) without bounds checking beyond the runtime's.
func (m *Matrix[T]) Get(i, j int) T {
	return m.rows[i].Get(j)
}

// Set writes element (i,j) without bounds checking beyond the runtime's.
func (m *Matrix[T]) Set(i, j int, x T) {
	m.rows[i].Set(j, x)
}

// At returns element (i,j) or core.ErrIndex.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.checkIndex(i, j); err != nil {
		var zero T
		return zero, indexErrorf(ctxAt, i, j, err)
	}

	return m.rows[i].Get(j), nil
}

// SetAt writes element (i,j) or returns core.ErrIndex.
func (m *Matrix[T]) SetAt(i, j int, x T) error {
	if err := m.checkIndex(i, j); err != nil {
		return indexErrorf(ctxSetAt, i, j, err)
	}
	m.rows[i].Set(j, x)

	return nil
}

// Row returns a copy of row i or core.ErrIndex.
// Complexity: O(n).
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, indexErrorf(ctxRow, i, 0, core.ErrIndex)
	}

	return m.rows[i].Clone(), nil
}

func (m *Matrix[T]) checkIndex(i, j int) error {
	n := len(m.rows)
	if i < 0 || i >= n || j < 0 || j >= n {
		return core.ErrIndex
	}

	return nil
}

// Clone returns a deep copy; mutating it never affects m.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{limit: m.limit, det: m.det}
	if m.rows != nil {
		out.rows = make([]*vector.Vector[T], len(m.rows))
		for i, r := range m.rows {
			out.rows[i] = r.Clone()
		}
	}

	return out
}

// Assign makes m a deep copy of src (order may change). Self-assignment is a no-op.
// Complexity: O(n²).
func (m *Matrix[T]) Assign(src *Matrix[T]) {
	if m == src {
		return
	}
	*m = *src.Clone()
}

// Move returns a matrix owning m's rows and leaves m empty.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, limit: m.limit, det: m.det}
	m.rows = nil

	return out
}

// MoveFrom transfers src's rows into m and leaves src empty. Self-move is a no-op.
// Complexity: O(1).
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) {
	if m == src {
		return
	}
	m.rows, m.limit, m.det = src.rows, src.limit, src.det
	src.rows = nil
}
