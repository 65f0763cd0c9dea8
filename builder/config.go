// SPDX-License-Identifier: MIT
// Package: tdyn/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - rng      = nil                         (stochastic builders fail without one)
//   - valueFn  = IntRangeValueFn(-9, 9)
//   - start    = 1, step = 1                 (Sequential: 1, 2, 3, ...)
//   - maxSize  = 0                           (container package default)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/tdyn/core"
)

type builderConfig struct {
	// RNG for stochastic builders; nil means "no randomness".
	rng *rand.Rand
	// Element generator for Random*.
	valueFn ValueFn
	// Arithmetic progression for Sequential*: start + k*step.
	start float64
	step  float64
	// Size limit forwarded to the containers; 0 keeps their defaults.
	maxSize int
}

const (
	defaultStart = 1.0
	defaultStep  = 1.0
	defaultLow   = -9
	defaultHigh  = 9
)

// newBuilderConfig resolves opts over the defaults; nil options are skipped.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: IntRangeValueFn(defaultLow, defaultHigh),
		start:   defaultStart,
		step:    defaultStep,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// draw returns the next generated element.
func draw[T core.Real](cfg builderConfig) T {
	return T(cfg.valueFn(cfg.rng))
}

// nth returns the k-th element of the configured progression.
func nth[T core.Real](cfg builderConfig, k int) T {
	return T(cfg.start + float64(k)*cfg.step)
}
