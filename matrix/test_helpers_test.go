// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/katalvlaran/tdyn/vector"
	"github.com/stretchr/testify/require"
)

// MustRows builds a matrix from literal rows or fails the test.
func MustRows[T core.Number](t testing.TB, rows [][]T, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustVector builds a vector from literal values or fails the test.
func MustVector[T core.Number](t testing.TB, vals ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(vals)
	require.NoError(t, err)

	return v
}

// Sequential returns the n×n matrix 1, 2, ..., n² in row-major order.
func Sequential(t testing.TB, n int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.New[int](n)
	require.NoError(t, err)
	k := 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, k)
			k++
		}
	}

	return m
}

// ToRows snapshots a matrix into [][]T for readable require.Equal diffs.
func ToRows[T core.Number](m *matrix.Matrix[T]) [][]T {
	out := make([][]T, m.Size())
	for i := range out {
		out[i] = make([]T, m.Size())
		for j := range out[i] {
			out[i][j] = m.Get(i, j)
		}
	}

	return out
}

// Worked examples with hand-checked results.
var (
	detFixture = [][]int{
		{1, 3, 3},
		{2, 7, 11},
		{3, 4, 2},
	}
	invFixture = [][]int{
		{2, 5, 7},
		{6, 3, 4},
		{5, -2, -3},
	}
	invFixtureInverse = [][]int{
		{1, -1, 1},
		{-38, 41, -34},
		{27, -29, 24},
	}
)
