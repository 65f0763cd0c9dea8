// Package core defines the shared vocabulary of the tdyn containers: the
// element-type constraints, the default size limits and the single error-kind
// enumeration every container reports through.
//
// Element types:
//
//   - Number: any built-in numeric kind that supports + - * / and ==
//     (signed and unsigned integers, floats, complex numbers).
//   - Real:   Number without complex kinds; required by float64 adapters.
//   - Float:  ~float32 | ~float64; required by strategies that work in
//     floating point (e.g., LU-based determinants).
//
// Limits:
//
//	MaxVectorSize = 100_000_000 elements per vector
//	MaxMatrixSize = 10_000 rows per square/triangular matrix
//
// Both limits are defaults; each container package accepts WithMaxSize(n).
//
// Error handling (sentinel errors, one per Kind):
//
//   - ErrSize:         requested size is zero, exceeds the limit, or is degenerate.
//   - ErrIndex:        checked access outside the container (or on an emptied one).
//   - ErrSizeMismatch: binary operation on containers of different sizes.
//   - ErrShape:        structurally invalid request (cofactor of 1×1, ragged rows).
//   - ErrSingular:     inversion or division by a matrix with determinant exactly 0.
//
// Every error returned by the module wraps one of these with a
// "Type.Method(args): " prefix; match with errors.Is, classify with KindOf.
package core
