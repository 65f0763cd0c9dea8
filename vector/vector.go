// SPDX-License-Identifier: MIT

// Package vector - storage, lifecycle and accessors.
//
// Purpose:
//   - Own one contiguous []T buffer whose length always equals Size().
//   - Provide copy (deep) and move (ownership transfer) semantics explicitly,
//     since Go assignment of a *Vector only aliases.
//   - Keep the checked surface error-returning; unchecked accessors are plain
//     slice operations.
//
// Complexity quicksheet:
//   - New/NewFilled/FromSlice/Clone/Assign: O(n); Move/MoveFrom/Swap: O(1);
//     Get/Set/At/SetAt: O(1); Equal: O(n) worst case.

package vector

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
)

// Method tags used in error wrappers.
const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSetAt     = "SetAt"
)

// vectorErrorf wraps err with a "Vector.<method>(<arg>)" context.
func vectorErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}

// Vector is a dense vector of T.
//   - data is the owned buffer; len(data) == Size(). nil means "empty"
//     (only reachable as the source of a move).
//   - limit is the size bound inherited by every vector derived from this one.
type Vector[T core.Number] struct {
	data  []T
	limit int
}

// New creates a zero-filled vector of the given size.
// Stage 1 (Validate): 0 < size <= limit, else core.ErrSize.
// Stage 2 (Prepare): allocate; make() zero-fills.
// Complexity: O(size) time and memory.
func New[T core.Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts)
	if err := core.CheckSize(size, o.maxSize); err != nil {
		return nil, vectorErrorf(ctxNew, size, err)
	}

	return &Vector[T]{data: make([]T, size), limit: o.maxSize}, nil
}

// NewFilled creates a vector of the given size with every element set to fill.
// Errors: core.ErrSize for size <= 0 or size > limit.
// Complexity: O(size).
func NewFilled[T core.Number](size int, fill T, opts ...Option) (*Vector[T], error) {
	v, err := New[T](size, opts...)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = fill
	}

	return v, nil
}

// FromSlice copies data into a new vector; the caller keeps ownership of data.
// Errors: core.ErrSize when len(data) is 0 or exceeds the limit.
// Complexity: O(len(data)).
func FromSlice[T core.Number](data []T, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts)
	if err := core.CheckSize(len(data), o.maxSize); err != nil {
		return nil, vectorErrorf(ctxFromSlice, len(data), err)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Vector[T]{data: buf, limit: o.maxSize}, nil
}

// derive allocates a zero vector of size n sharing v's limit.
// Sizes come from already-validated operands, so no check is repeated.
func (v *Vector[T]) derive(n int) *Vector[T] {
	if n == 0 {
		return &Vector[T]{limit: v.limit}
	}

	return &Vector[T]{data: make([]T, n), limit: v.limit}
}

// Size returns the number of elements (0 for an empty vector).
func (v *Vector[T]) Size() int {
	return len(v.data)
}

// IsEmpty reports whether the vector has been moved from.
func (v *Vector[T]) IsEmpty() bool {
	return v.data == nil
}

// Get returns element i without bounds checking beyond the runtime's.
func (v *Vector[T]) Get(i int) T {
	return v.data[i]
}

// Set writes element i without bounds checking beyond the runtime's.
func (v *Vector[T]) Set(i int, x T) {
	v.data[i] = x
}

// At returns element i or core.ErrIndex when i is outside [0, Size()) or the
// vector is empty.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, i, err)
	}

	return v.data[i], nil
}

// SetAt writes element i or returns core.ErrIndex.
func (v *Vector[T]) SetAt(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return vectorErrorf(ctxSetAt, i, err)
	}
	v.data[i] = x

	return nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if v.data == nil || i < 0 || i >= len(v.data) {
		return core.ErrIndex
	}

	return nil
}

// Slice returns a copy of the elements; mutating it does not affect v.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy backed by independent storage.
// Cloning an empty vector yields an empty vector.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	out := v.derive(len(v.data))
	copy(out.data, v.data)

	return out
}

// Assign makes v a deep copy of src, reallocating when sizes differ.
// Self-assignment is a no-op.
// Complexity: O(n).
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	switch {
	case src.data == nil:
		v.data = nil
	case len(v.data) != len(src.data):
		v.data = make([]T, len(src.data))
	}
	copy(v.data, src.data)
	v.limit = src.limit
}

// Move returns a new vector that owns v's buffer and leaves v empty.
// Complexity: O(1).
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data, limit: v.limit}
	v.data = nil

	return out
}

// MoveFrom transfers src's buffer into v and leaves src empty.
// v's previous buffer is released. Self-move is a no-op.
// Complexity: O(1).
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.data, v.limit = src.data, src.limit
	src.data = nil
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.limit, other.limit = other.limit, v.limit
}

// Equal reports element-wise equality. Sizes are compared first and the scan
// stops at the first differing element. Never fails.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool {
	return !v.Equal(o)
}
