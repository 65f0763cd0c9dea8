// SPDX-License-Identifier: MIT

package triangular

import (
	"fmt"

	"github.com/katalvlaran/tdyn/core"
)

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSetAt    = "SetAt"
	ctxAdd      = "Add"
	ctxSub      = "Sub"
	ctxMul      = "Mul"
	ctxMulVec   = "MulVec"
	ctxDense    = "Dense"
)

// errDegenerate is returned for order 1: a triangle needs an off-diagonal part.
var errDegenerate = fmt.Errorf("order below %d: %w, %w", core.MinTriangleSize, core.ErrShape, core.ErrSize)

// checkOrder validates an order against the limit and the minimum triangle size.
func checkOrder(n, limit int) error {
	if err := core.CheckSize(n, limit); err != nil {
		return err
	}
	if n < core.MinTriangleSize {
		return errDegenerate
	}

	return nil
}

func (t *triangle[T]) errorf(method string, arg int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", t.shape, method, arg, err)
}

func (t *triangle[T]) indexErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", t.shape, method, i, j, err)
}

func (t *triangle[T]) mismatchErrorf(method string, a, b int) error {
	return fmt.Errorf("%s.%s(%d vs %d): %w", t.shape, method, a, b, core.ErrSizeMismatch)
}
