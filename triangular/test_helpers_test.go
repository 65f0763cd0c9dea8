// SPDX-License-Identifier: MIT

package triangular_test

import (
	"testing"

	"github.com/katalvlaran/tdyn/triangular"
	"github.com/katalvlaran/tdyn/vector"
	"github.com/stretchr/testify/require"
)

// Compacted fixtures: lower rows hold columns 0..i, upper rows i..n-1.
var (
	lowerA = [][]int{{1}, {2, 4}, {3, 6, 5}}        // [[1,0,0],[2,4,0],[3,6,5]]
	lowerB = [][]int{{5}, {22, 4}, {2, 3, 6}}       // [[5,0,0],[22,4,0],[2,3,6]]
	upperA = [][]int{{1, 2, 3}, {4, 6}, {5}}        // [[1,2,3],[0,4,6],[0,0,5]]
	upperB = [][]int{{5, 22, 2}, {4, 3}, {6}}       // [[5,22,2],[0,4,3],[0,0,6]]
)

func MustLower[T int | float64](t testing.TB, rows [][]T) *triangular.Lower[T] {
	t.Helper()
	l, err := triangular.LowerFromRows(rows)
	require.NoError(t, err)

	return l
}

func MustUpper[T int | float64](t testing.TB, rows [][]T) *triangular.Upper[T] {
	t.Helper()
	u, err := triangular.UpperFromRows(rows)
	require.NoError(t, err)

	return u
}

func MustVector(t testing.TB, xs ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.FromSlice(xs)
	require.NoError(t, err)

	return v
}

// square is a view shared by Lower, Upper and the dense Matrix.
type square[T any] interface {
	Size() int
	Get(i, j int) T
}

// Full returns the n×n expansion of any square view.
func Full[T any](s square[T]) [][]T {
	n := s.Size()
	out := make([][]T, n)
	for i := range out {
		out[i] = make([]T, n)
		for j := range out[i] {
			out[i][j] = s.Get(i, j)
		}
	}

	return out
}
