// SPDX-License-Identifier: MIT
// Package: tdyn/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Builders themselves never panic; they return errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig before
// any container is allocated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValueFn overrides the element generator of the Random* builders.
// Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}

	return func(c *builderConfig) { c.valueFn = fn }
}

// WithRange draws Random* elements uniformly from the integers lo..hi.
// Panics if hi < lo.
func WithRange(lo, hi int) BuilderOption {
	return WithValueFn(IntRangeValueFn(lo, hi))
}

// WithUniformValues draws Random* elements from U[min,max).
func WithUniformValues(min, max float64) BuilderOption {
	return WithValueFn(UniformValueFn(min, max))
}

// WithNormalValues draws Random* elements from N(mean, stddev).
func WithNormalValues(mean, stddev float64) BuilderOption {
	return WithValueFn(NormalValueFn(mean, stddev))
}

// WithStart sets the first element of Sequential* builders.
func WithStart(x float64) BuilderOption {
	return func(c *builderConfig) { c.start = x }
}

// WithStep sets the increment of Sequential* builders (row-major order).
func WithStep(x float64) BuilderOption {
	return func(c *builderConfig) { c.step = x }
}

// WithMaxSize forwards a size limit to every container the builder creates.
// Panics if n <= 0.
func WithMaxSize(n int) BuilderOption {
	if n <= 0 {
		panic(fmt.Sprintf("builder: WithMaxSize(%d)", n))
	}

	return func(c *builderConfig) { c.maxSize = n }
}
