// SPDX-License-Identifier: MIT

// Package matrix: functional configuration.
//
// Defaults (single source of truth):
//   - maxSize = core.MaxMatrixSize
//   - det     = CofactorDeterminant
//
// Option constructors panic only on nonsensical values (programmer error).
// Derived matrices (results of arithmetic, cofactors, inverses) inherit the
// configuration of their receiver.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
)

const (
	panicMaxSizeInvalid = "matrix: WithMaxSize: limit must be > 0, got %d"
	panicDetNil         = "matrix: WithDeterminant: strategy must not be nil"
)

// Option configures a Matrix at construction time.
type Option[T core.Number] func(*options[T])

type options[T core.Number] struct {
	maxSize int        // upper bound on Size()
	det     DetFunc[T] // determinant strategy
}

// WithMaxSize overrides the maximum order (default core.MaxMatrixSize).
// Panics if n <= 0.
func WithMaxSize[T core.Number](n int) Option[T] {
	if n <= 0 {
		panic(fmt.Sprintf(panicMaxSizeInvalid, n))
	}

	return func(o *options[T]) { o.maxSize = n }
}

// WithDeterminant replaces the determinant strategy used by Det, Minor,
// Inverse and Div. Panics if fn is nil.
func WithDeterminant[T core.Number](fn DetFunc[T]) Option[T] {
	if fn == nil {
		panic(panicDetNil)
	}

	return func(o *options[T]) { o.det = fn }
}

// gatherOptions resolves opts over the defaults; last wins, nil options are skipped.
func gatherOptions[T core.Number](opts []Option[T]) options[T] {
	o := options[T]{
		maxSize: core.MaxMatrixSize,
		det:     CofactorDeterminant[T],
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
