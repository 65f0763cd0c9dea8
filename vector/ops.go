// SPDX-License-Identifier: MIT
// Package vector - value-semantics arithmetic.
//
// All kernels allocate exactly one result and walk indices 0..n-1 in order.
// Binary vector operations validate sizes first and fail with
// core.ErrSizeMismatch; nothing is truncated or padded.

package vector

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
)

// Operation tags for error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opDot = "Dot"
)

func mismatchErrorf(op string, a, b int) error {
	return fmt.Errorf("Vector.%s(%d vs %d): %w", op, a, b, core.ErrSizeMismatch)
}

// mapScalar returns out[i] = f(v[i]).
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	out := v.derive(len(v.data))
	for i, x := range v.data {
		out.data[i] = f(x)
	}

	return out
}

// AddScalar returns v[i] + k for every i.
func (v *Vector[T]) AddScalar(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x + k })
}

// SubScalar returns v[i] - k for every i.
func (v *Vector[T]) SubScalar(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x - k })
}

// Scale returns v[i] * k for every i.
func (v *Vector[T]) Scale(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x * k })
}

// DivScalar returns v[i] / k for every i. Integer element types truncate and
// panic on k == 0 exactly as the built-in operator does.
func (v *Vector[T]) DivScalar(k T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x / k })
}

// Neg returns -v[i] for every i.
func (v *Vector[T]) Neg() *Vector[T] {
	return v.mapScalar(func(x T) T { return -x })
}

// Add returns v + o.
// Errors: core.ErrSizeMismatch when sizes differ.
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if len(v.data) != len(o.data) {
		return nil, mismatchErrorf(opAdd, len(v.data), len(o.data))
	}
	out := v.derive(len(v.data))
	for i := range v.data {
		out.data[i] = v.data[i] + o.data[i]
	}

	return out, nil
}

// Sub returns v - o.
// Errors: core.ErrSizeMismatch when sizes differ.
// Complexity: O(n).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if len(v.data) != len(o.data) {
		return nil, mismatchErrorf(opSub, len(v.data), len(o.data))
	}
	out := v.derive(len(v.data))
	for i := range v.data {
		out.data[i] = v.data[i] - o.data[i]
	}

	return out, nil
}

// Dot returns Σ v[i]*o[i], accumulated from the zero value in index order.
// Errors: core.ErrSizeMismatch when sizes differ.
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if len(v.data) != len(o.data) {
		return sum, mismatchErrorf(opDot, len(v.data), len(o.data))
	}
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}
