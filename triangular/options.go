// SPDX-License-Identifier: MIT

package triangular

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
)

const panicMaxSizeInvalid = "triangular: WithMaxSize: limit must be > 0, got %d"

// Option configures a Lower or Upper at construction time.
type Option func(*options)

type options struct {
	maxSize int // upper bound on Size(); default core.MaxMatrixSize
}

// WithMaxSize overrides the maximum order (default core.MaxMatrixSize).
// Panics if n <= 0.
func WithMaxSize(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicMaxSizeInvalid, n))
	}

	return func(o *options) { o.maxSize = n }
}

func gatherOptions(opts []Option) options {
	o := options{maxSize: core.MaxMatrixSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
