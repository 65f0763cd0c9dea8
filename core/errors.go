// SPDX-License-Identifier: MIT
// Package core: the error-kind enumeration shared by every container.
//
// Error policy:
//   - Only the sentinels below are exposed; callers branch with errors.Is.
//   - Implementations attach context with fmt.Errorf("Type.Method(args): %w", ErrX).
//   - KindOf maps any wrapped error back to its Kind for switch-style handling.
//   - Containers never panic on user-triggered conditions; the unchecked
//     accessors (Get/Set) follow plain slice-indexing semantics by contract.

package core

import (
	"errors"
	"fmt"
)

// Kind tags the class of a failure.
type Kind uint8

// Error kinds. KindNone is the zero value and never appears in a returned error.
const (
	KindNone Kind = iota
	KindSize
	KindIndex
	KindSizeMismatch
	KindShape
	KindSingular
)

var kindNames = [...]string{
	KindNone:         "none",
	KindSize:         "invalid size",
	KindIndex:        "index out of range",
	KindSizeMismatch: "size mismatch",
	KindShape:        "invalid shape",
	KindSingular:     "singular matrix",
}

// String returns the human-readable kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the concrete sentinel type. Values are compared by identity,
// so errors.Is(err, ErrSize) works through any number of %w wrappers.
type Error struct {
	Kind Kind
}

// Error implements the error interface with the "tdyn: <kind>" prefix.
func (e *Error) Error() string {
	return "tdyn: " + e.Kind.String()
}

// Sentinel errors, one per Kind.
var (
	// ErrSize: size is zero, exceeds the configured maximum, or is degenerate.
	ErrSize = &Error{Kind: KindSize}

	// ErrIndex: checked index access out of bounds, including on an empty container.
	ErrIndex = &Error{Kind: KindIndex}

	// ErrSizeMismatch: binary operation between containers of incompatible size.
	ErrSizeMismatch = &Error{Kind: KindSizeMismatch}

	// ErrShape: structurally invalid operation (cofactor of 1×1, non-square input).
	ErrShape = &Error{Kind: KindShape}

	// ErrSingular: inversion/division by a matrix whose determinant is exactly zero.
	ErrSingular = &Error{Kind: KindSingular}
)

// KindOf returns the Kind of the first core sentinel found in err's chain,
// or KindNone when err is nil or carries no sentinel.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindNone
}

// Errorf prefixes err with an operation tag, preserving it for errors.Is/As.
// Callers must gate on err != nil.
func Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
