// SPDX-License-Identifier: MIT

package interop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tdyn/builder"
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/interop"
	"github.com/katalvlaran/tdyn/triangular"
)

func TestTriDenseRoundTrip(t *testing.T) {
	t.Parallel()

	l, err := triangular.LowerFromRows([][]float64{{1}, {2, 4}, {3, 6, 5}})
	require.NoError(t, err)
	gl, err := interop.LowerToTriDense(l)
	require.NoError(t, err)
	n, kind := gl.Triangle()
	require.Equal(t, 3, n)
	require.Equal(t, mat.Lower, kind)
	require.Equal(t, 6.0, gl.At(2, 1))
	require.Equal(t, 0.0, gl.At(0, 2))

	backL, err := interop.LowerFromTriDense[float64](gl)
	require.NoError(t, err)
	require.True(t, backL.Equal(l))

	u := l.Transpose()
	gu, err := interop.UpperToTriDense(u)
	require.NoError(t, err)
	require.True(t, mat.Equal(gl.T(), gu))

	backU, err := interop.UpperFromTriDense[float64](gu)
	require.NoError(t, err)
	require.True(t, backU.Equal(u))

	_, err = interop.LowerFromTriDense[float64](gu)
	require.ErrorIs(t, err, core.ErrShape)
	_, err = interop.UpperFromTriDense[float64](gl)
	require.ErrorIs(t, err, core.ErrShape)

	_, err = interop.LowerFromTriDense[float64](mat.NewTriDense(1, mat.Lower, nil))
	require.ErrorIs(t, err, core.ErrShape)
	require.ErrorIs(t, err, core.ErrSize)
}

// TestTriangleProductAgreesWithGonum checks closure against gonum's TriDense product.
func TestTriangleProductAgreesWithGonum(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomUpper[float64](6, builder.WithSeed(5), builder.WithUniformValues(-1, 1))
	require.NoError(t, err)
	b, err := builder.RandomUpper[float64](6, builder.WithSeed(6), builder.WithUniformValues(-1, 1))
	require.NoError(t, err)
	p, err := a.Mul(b)
	require.NoError(t, err)

	ga, err := interop.UpperToTriDense(a)
	require.NoError(t, err)
	gb, err := interop.UpperToTriDense(b)
	require.NoError(t, err)
	var want mat.TriDense
	want.MulTri(ga, gb)

	got, err := interop.UpperToTriDense(p)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(&want, got, tol))
}
