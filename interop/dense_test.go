// SPDX-License-Identifier: MIT

package interop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tdyn/builder"
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/interop"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/katalvlaran/tdyn/vector"
)

const tol = 1e-9

func TestDenseRoundTrip(t *testing.T) {
	t.Parallel()
	m, err := builder.Sequential[int](4)
	require.NoError(t, err)

	d, err := interop.ToDense(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.Equal(t, 7.0, d.At(1, 2))

	back, err := interop.FromDense[int](d)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

func TestFromDenseErrors(t *testing.T) {
	t.Parallel()

	_, err := interop.FromDense[float64](mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, core.ErrShape)

	_, err = interop.FromDense(mat.NewDense(3, 3, nil), matrix.WithMaxSize[float64](2))
	require.ErrorIs(t, err, core.ErrSize)

	m, err := builder.Identity[float64](2)
	require.NoError(t, err)
	m.Move()
	_, err = interop.ToDense(m)
	require.ErrorIs(t, err, core.ErrSize)
}

func TestVecDenseRoundTrip(t *testing.T) {
	t.Parallel()
	v, err := vector.FromSlice([]float64{1.5, -2, 3})
	require.NoError(t, err)

	g, err := interop.ToVecDense(v)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	require.Equal(t, -2.0, g.AtVec(1))

	back, err := interop.FromVecDense[float64](g)
	require.NoError(t, err)
	require.True(t, back.Equal(v))

	_, err = interop.FromVecDense[float64](mat.NewVecDense(3, nil), vector.WithMaxSize(2))
	require.ErrorIs(t, err, core.ErrSize)
}

// TestKernelsAgreeWithGonum uses gonum as an oracle for the dense kernels.
func TestKernelsAgreeWithGonum(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3} {
		a, err := builder.Random[float64](5, builder.WithSeed(seed), builder.WithUniformValues(-2, 2))
		require.NoError(t, err)
		b, err := builder.Random[float64](5, builder.WithSeed(seed+10), builder.WithUniformValues(-2, 2))
		require.NoError(t, err)
		ga, err := interop.ToDense(a)
		require.NoError(t, err)
		gb, err := interop.ToDense(b)
		require.NoError(t, err)

		require.InDelta(t, mat.Det(ga), a.Det(), tol)

		p, err := a.Mul(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(ga, gb)
		got, err := interop.ToDense(p)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(&want, got, tol))

		inv, err := a.Inverse()
		require.NoError(t, err)
		var ginv mat.Dense
		require.NoError(t, ginv.Inverse(ga))
		got, err = interop.ToDense(inv)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(&ginv, got, 1e-6))

		tr := a.Clone()
		tr.Transpose()
		got, err = interop.ToDense(tr)
		require.NoError(t, err)
		require.True(t, mat.Equal(ga.T(), got))
	}
}

func TestMulVecAgreesWithGonum(t *testing.T) {
	t.Parallel()
	m, err := builder.Sequential[float64](3)
	require.NoError(t, err)
	v, err := builder.SequentialVector[float64](3)
	require.NoError(t, err)

	got, err := m.MulVec(v)
	require.NoError(t, err)

	gm, err := interop.ToDense(m)
	require.NoError(t, err)
	gv, err := interop.ToVecDense(v)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(gm, gv)

	require.Equal(t, []float64{14, 32, 50}, got.Slice())
	require.Equal(t, want.RawVector().Data, got.Slice())
}
