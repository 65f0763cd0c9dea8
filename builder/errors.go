// SPDX-License-Identifier: MIT
// Package: tdyn/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Builder-specific failures are the sentinels below; container failures
//     (core.ErrSize, ...) pass through unchanged inside the wrap chain.
//   - Every error carries the constructor name: "<Method>: <cause>".
//   - Callers branch with errors.Is; never on strings.

package builder

import (
	"errors"
	"fmt"
)

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes err with the constructor name, preserving it for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// requireRand reports ErrNeedRandSource when cfg carries no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource)
	}

	return nil
}
