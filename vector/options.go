// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
)

const panicMaxSizeInvalid = "vector: WithMaxSize: limit must be > 0, got %d"

// Option configures a Vector at construction time.
// Option constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	maxSize int // upper bound on Size(); default core.MaxVectorSize
}

// WithMaxSize overrides the maximum number of elements (default core.MaxVectorSize).
// Panics if n <= 0.
func WithMaxSize(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf(panicMaxSizeInvalid, n))
	}

	return func(o *options) { o.maxSize = n }
}

// gatherOptions applies opts in order over the defaults; last wins.
func gatherOptions(opts []Option) options {
	o := options{maxSize: core.MaxVectorSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
