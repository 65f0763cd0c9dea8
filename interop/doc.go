// Package interop bridges the tdyn containers and gonum's mat package.
//
// Conversions copy; no storage is shared between the two worlds.
//
//	ToDense / FromDense           *matrix.Matrix[T]   <-> *mat.Dense
//	ToVecDense / FromVecDense     *vector.Vector[T]   <-> *mat.VecDense
//	LowerToTriDense / LowerFromTriDense   triangular.Lower <-> *mat.TriDense (mat.Lower)
//	UpperToTriDense / UpperFromTriDense   triangular.Upper <-> *mat.TriDense (mat.Upper)
//
// gonum works in float64, so element types are restricted to core.Real and
// conversions back to integer types truncate toward zero.
//
// LUDeterminant is a matrix.DetFunc backed by gonum's LU factorization. It
// runs in O(n³) instead of the O(n!) cofactor expansion and is meant for
// floating-point element types:
//
//	m, err := matrix.FromRows(rows, matrix.WithDeterminant[float64](interop.LUDeterminant[float64]))
package interop
