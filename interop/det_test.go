// SPDX-License-Identifier: MIT

package interop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdyn/builder"
	"github.com/katalvlaran/tdyn/interop"
	"github.com/katalvlaran/tdyn/matrix"
)

func TestLUDeterminantFixtures(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 18.0, interop.LUDeterminant([][]float64{{1, 3, 3}, {2, 7, 11}, {3, 4, 2}}), tol)
	require.InDelta(t, -1.0, interop.LUDeterminant([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}}), tol)
	require.InDelta(t, 4.0, interop.LUDeterminant([][]float64{{4}}), tol)
	require.Equal(t, 1.0, interop.LUDeterminant[float64](nil))
	require.InDelta(t, float32(-2), interop.LUDeterminant([][]float32{{1, 2}, {3, 4}}), 1e-5)
}

func TestLUDeterminantMatchesCofactor(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		m, err := builder.Random[float64](n, builder.WithSeed(int64(n)))
		require.NoError(t, err)
		lu, err := matrix.FromRows(rowsOf(m), matrix.WithDeterminant[float64](interop.LUDeterminant[float64]))
		require.NoError(t, err)
		require.InDelta(t, m.Det(), lu.Det(), 1e-6*max(1, abs(m.Det())), "n=%d", n)
	}
}

func TestLUDeterminantStrategyInverse(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}},
		matrix.WithDeterminant[float64](interop.LUDeterminant[float64]))
	require.NoError(t, err)
	inv, err := m.Inverse()
	require.NoError(t, err)

	want := [][]float64{{1, -1, 1}, {-38, 41, -34}, {27, -29, 24}}
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], inv.Get(i, j), 1e-9)
		}
	}
}

func rowsOf(m *matrix.Matrix[float64]) [][]float64 {
	out := make([][]float64, m.Size())
	for i := range out {
		r, _ := m.Row(i)
		out[i] = r.Slice()
	}

	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
