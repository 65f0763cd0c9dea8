// SPDX-License-Identifier: MIT

// Package core: element constraints and size limits.
package core

// Signed covers the built-in signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the built-in unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float covers the built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex covers the built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Real is every Number that converts to float64 without loss of meaning.
type Real interface {
	Signed | Unsigned | Float
}

// Number is the element constraint of all containers: the operators
// + - * / and == must be defined, and the zero value is the additive identity.
type Number interface {
	Real | Complex
}

// Default size limits (single source of truth).
const (
	// MaxVectorSize bounds the number of elements a Vector may hold.
	MaxVectorSize = 100_000_000

	// MaxMatrixSize bounds the order of square and triangular matrices.
	MaxMatrixSize = 10_000

	// MinTriangleSize is the smallest meaningful triangle; a 1×1 triangle is degenerate.
	MinTriangleSize = 2
)

// CheckSize reports whether n is a valid container size under limit.
// It returns ErrSize (unwrapped) for n <= 0 or n > limit; callers add context.
// Complexity: O(1).
func CheckSize(n, limit int) error {
	if n <= 0 || n > limit {
		return ErrSize
	}

	return nil
}
