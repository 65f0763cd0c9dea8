// SPDX-License-Identifier: MIT

package triangular_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tdyn/builder"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/stretchr/testify/require"
)

// TestProductClosure checks that triangle products stay triangular and agree
// with the dense product of the expanded operands.
func TestProductClosure(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 7; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			s1, s2 := builder.WithSeed(int64(n)), builder.WithSeed(int64(100+n))

			l1, err := builder.RandomLower[int](n, s1)
			require.NoError(t, err)
			l2, err := builder.RandomLower[int](n, s2)
			require.NoError(t, err)
			lp, err := l1.Mul(l2)
			require.NoError(t, err)
			requireMatchesDense(t, l1, l2, Full[int](lp))
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					require.Zero(t, lp.Get(i, j))
				}
			}

			u1, err := builder.RandomUpper[int](n, s1)
			require.NoError(t, err)
			u2, err := builder.RandomUpper[int](n, s2)
			require.NoError(t, err)
			up, err := u1.Mul(u2)
			require.NoError(t, err)
			requireMatchesDense(t, u1, u2, Full[int](up))
			for i := 0; i < n; i++ {
				for j := 0; j < i; j++ {
					require.Zero(t, up.Get(i, j))
				}
			}
		})
	}
}

// TestMulVecMatchesDense compares the triangle kernels with the dense one.
func TestMulVecMatchesDense(t *testing.T) {
	t.Parallel()
	const n = 6
	l, err := builder.RandomLower[int](n, builder.WithSeed(11))
	require.NoError(t, err)
	v, err := builder.RandomVector[int](n, builder.WithSeed(12))
	require.NoError(t, err)

	got, err := l.MulVec(v)
	require.NoError(t, err)
	d, err := l.Dense()
	require.NoError(t, err)
	want, err := d.MulVec(v)
	require.NoError(t, err)
	require.True(t, got.Equal(want))

	u := l.Transpose()
	got, err = u.MulVec(v)
	require.NoError(t, err)
	d, err = u.Dense()
	require.NoError(t, err)
	want, err = d.MulVec(v)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

// denseFn is implemented by Lower and Upper.
type denseFn interface {
	Dense() (*matrix.Matrix[int], error)
}

func requireMatchesDense(t *testing.T, a, b denseFn, got [][]int) {
	t.Helper()
	da, err := a.Dense()
	require.NoError(t, err)
	db, err := b.Dense()
	require.NoError(t, err)
	want, err := da.Mul(db)
	require.NoError(t, err)
	require.Equal(t, Full[int](want), got)
}
