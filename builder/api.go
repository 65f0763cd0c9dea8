// SPDX-License-Identifier: MIT
// Package: tdyn/builder
//
// api.go - public fixture constructors.
//
// Design contract:
//   - Every constructor resolves opts into an immutable builderConfig, allocates
//     one container through its package constructor and fills it in row-major
//     order.
//   - Determinism: same inputs, options and seed produce identical containers.
//   - Safety: never panic; container errors (core.ErrSize, ...) and
//     ErrNeedRandSource are returned wrapped with the constructor name.
//
// Element conversion: generators work in float64 and convert with T(x), so
// integer element types truncate toward zero. Stochastic and sequential
// builders therefore accept core.Real element types only.

package builder

import (
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/katalvlaran/tdyn/triangular"
	"github.com/katalvlaran/tdyn/vector"
)

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity[T core.Number](n int, opts ...BuilderOption) (*matrix.Matrix[T], error) {
	cfg := newBuilderConfig(opts...)
	m, err := matrix.Identity(n, matrixOptions[T](cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodIdentity, err)
	}

	return m, nil
}

// Constant returns an n×n matrix with every element equal to v.
// Complexity: O(n²).
func Constant[T core.Number](n int, v T, opts ...BuilderOption) (*matrix.Matrix[T], error) {
	cfg := newBuilderConfig(opts...)
	m, err := matrix.New(n, matrixOptions[T](cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodConstant, err)
	}
	fillMatrix(m, func(int, int) T { return v })

	return m, nil
}

// Sequential returns an n×n matrix holding start, start+step, ... in
// row-major order (defaults 1, 2, ..., n²).
// Complexity: O(n²).
func Sequential[T core.Real](n int, opts ...BuilderOption) (*matrix.Matrix[T], error) {
	cfg := newBuilderConfig(opts...)
	m, err := matrix.New(n, matrixOptions[T](cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodSequential, err)
	}
	fillMatrix(m, func(i, j int) T { return nth[T](cfg, i*n+j) })

	return m, nil
}

// Random returns an n×n matrix of values drawn from the configured ValueFn.
// Errors: ErrNeedRandSource without WithSeed/WithRand; core.ErrSize for n.
// Complexity: O(n²) draws.
func Random[T core.Real](n int, opts ...BuilderOption) (*matrix.Matrix[T], error) {
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodRandom, cfg); err != nil {
		return nil, err
	}
	m, err := matrix.New(n, matrixOptions[T](cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodRandom, err)
	}
	fillMatrix(m, func(int, int) T { return draw[T](cfg) })

	return m, nil
}

// RandomLower returns an n×n lower triangle of drawn values.
// Errors: as Random, plus the triangle's order checks (n == 1).
// Complexity: O(n²/2) draws.
func RandomLower[T core.Real](n int, opts ...BuilderOption) (*triangular.Lower[T], error) {
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodRandomLower, cfg); err != nil {
		return nil, err
	}
	l, err := triangular.NewLower[T](n, 0, triangleOptions(cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodRandomLower, err)
	}
	storedCells(n, true, func(i, j int) { l.Set(i, j, draw[T](cfg)) })

	return l, nil
}

// RandomUpper returns an n×n upper triangle of drawn values.
// Errors: as RandomLower.
// Complexity: O(n²/2) draws.
func RandomUpper[T core.Real](n int, opts ...BuilderOption) (*triangular.Upper[T], error) {
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodRandomUpper, cfg); err != nil {
		return nil, err
	}
	u, err := triangular.NewUpper[T](n, 0, triangleOptions(cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodRandomUpper, err)
	}
	storedCells(n, false, func(i, j int) { u.Set(i, j, draw[T](cfg)) })

	return u, nil
}

// SequentialVector returns start, start+step, ... of length n.
// Complexity: O(n).
func SequentialVector[T core.Real](n int, opts ...BuilderOption) (*vector.Vector[T], error) {
	cfg := newBuilderConfig(opts...)
	v, err := vector.New[T](n, vectorOptions(cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodSequentialVector, err)
	}
	for i := 0; i < n; i++ {
		v.Set(i, nth[T](cfg, i))
	}

	return v, nil
}

// RandomVector returns n drawn values.
// Errors: as Random.
// Complexity: O(n) draws.
func RandomVector[T core.Real](n int, opts ...BuilderOption) (*vector.Vector[T], error) {
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodRandomVector, cfg); err != nil {
		return nil, err
	}
	v, err := vector.New[T](n, vectorOptions(cfg)...)
	if err != nil {
		return nil, builderErrorf(MethodRandomVector, err)
	}
	for i := 0; i < n; i++ {
		v.Set(i, draw[T](cfg))
	}

	return v, nil
}
