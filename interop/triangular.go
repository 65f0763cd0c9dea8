// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/triangular"
)

// tri is the read surface shared by Lower and Upper.
type tri[T core.Real] interface {
	Size() int
	Get(i, j int) T
}

// LowerToTriDense copies l into a lower *mat.TriDense.
// Errors: core.ErrSize for a moved-from triangle.
func LowerToTriDense[T core.Real](l *triangular.Lower[T]) (*mat.TriDense, error) {
	return toTriDense[T](l, mat.Lower)
}

// UpperToTriDense copies u into an upper *mat.TriDense.
// Errors: core.ErrSize for a moved-from triangle.
func UpperToTriDense[T core.Real](u *triangular.Upper[T]) (*mat.TriDense, error) {
	return toTriDense[T](u, mat.Upper)
}

func toTriDense[T core.Real](t tri[T], kind mat.TriKind) (*mat.TriDense, error) {
	n := t.Size()
	if n == 0 {
		return nil, fmt.Errorf("interop.ToTriDense: %w", core.ErrSize)
	}
	out := mat.NewTriDense(n, kind, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if stored(kind, i, j) {
				out.SetTri(i, j, float64(t.Get(i, j)))
			}
		}
	}

	return out, nil
}

// LowerFromTriDense copies a lower gonum triangle into a new Lower[T].
// Errors: core.ErrShape for an upper triangle; order errors as triangular.NewLower.
func LowerFromTriDense[T core.Real](a mat.Triangular, opts ...triangular.Option) (*triangular.Lower[T], error) {
	n, kind := a.Triangle()
	if kind != mat.Lower {
		return nil, fmt.Errorf("interop.LowerFromTriDense: upper input: %w", core.ErrShape)
	}
	l, err := triangular.NewLower[T](n, 0, opts...)
	if err != nil {
		return nil, fmt.Errorf("interop.LowerFromTriDense: %w", err)
	}
	copyTri[T](a, n, kind, l.Set)

	return l, nil
}

// UpperFromTriDense copies an upper gonum triangle into a new Upper[T].
// Errors: core.ErrShape for a lower triangle; order errors as triangular.NewUpper.
func UpperFromTriDense[T core.Real](a mat.Triangular, opts ...triangular.Option) (*triangular.Upper[T], error) {
	n, kind := a.Triangle()
	if kind != mat.Upper {
		return nil, fmt.Errorf("interop.UpperFromTriDense: lower input: %w", core.ErrShape)
	}
	u, err := triangular.NewUpper[T](n, 0, opts...)
	if err != nil {
		return nil, fmt.Errorf("interop.UpperFromTriDense: %w", err)
	}
	copyTri[T](a, n, kind, u.Set)

	return u, nil
}

func copyTri[T core.Real](a mat.Triangular, n int, kind mat.TriKind, set func(i, j int, x T)) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if stored(kind, i, j) {
				set(i, j, T(a.At(i, j)))
			}
		}
	}
}

func stored(kind mat.TriKind, i, j int) bool {
	if kind == mat.Lower {
		return j <= i
	}

	return j >= i
}
