// SPDX-License-Identifier: MIT
// Package matrix: error context helpers.
//
// All failures are core sentinels (core.ErrSize, core.ErrIndex, ...).
// They are wrapped once at the detection site with the method tag and the
// offending arguments; callers match with errors.Is.

package matrix

import (
	"fmt"
)

// Method tags (no magic strings).
const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSetAt    = "SetAt"
	ctxRow      = "Row"
	ctxCofactor = "Cofactor"
	ctxInverse  = "Inverse"
	ctxAdd      = "Add"
	ctxSub      = "Sub"
	ctxMul      = "Mul"
	ctxMulVec   = "MulVec"
	ctxDiv      = "Div"
)

// matrixErrorf wraps err as "Matrix.<method>: <err>".
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// sizeErrorf wraps err as "Matrix.<method>(n): <err>".
func sizeErrorf(method string, n int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, n, err)
}

// indexErrorf wraps err as "Matrix.<method>(i,j): <err>".
func indexErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// mismatchErrorf wraps err as "Matrix.<method>(n vs m): <err>".
func mismatchErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d vs %d): %w", method, a, b, err)
}
