// Package matrix provides Matrix[T], a dense square matrix over any
// core.Number element type, together with the classical algebraic kernel:
// transpose, cofactor submatrices, minors, determinant by cofactor
// (Laplace) expansion, adjugate-based inverse and division by inverse.
//
// Storage:
//
//	A Matrix of order n owns n row vectors (vector.Vector[T]), each of
//	length n. Rows are held by composition; no storage is shared between
//	two matrices except through explicit Clone/Assign (deep) or
//	Move/MoveFrom (ownership transfer, source left empty).
//
// Determinant strategy:
//
//	Det delegates to a DetFunc, a pure function over [][]T. The default,
//	CofactorDeterminant, expands along column 0 recursively and costs O(n!):
//	it is exact for integer element types and acceptable only for small n.
//	WithDeterminant swaps in another strategy (for example
//	interop.LUDeterminant for float64) without changing any other contract.
//	Minor and Inverse use the same strategy.
//
// Complexity quicksheet:
//
//	New/Clone/Assign/Add/Sub/Scale/DivScalar/Transpose   O(n²)
//	Mul                                                  O(n³)
//	MulVec                                               O(n²)
//	Cofactor                                             O(n²)
//	Det/Minor (default strategy)                         O(n!)
//	Inverse/Div (default strategy)                       O(n²·(n-1)!)
//
// Errors (core sentinels, wrapped with "Matrix.Method(args): "):
//
//	core.ErrSize          New/FromRows with n <= 0 or n > limit
//	core.ErrIndex         At/SetAt/Row/Cofactor/Minor outside [0,n)
//	core.ErrShape         Cofactor/Minor of a 1×1 matrix, non-square FromRows input
//	core.ErrSizeMismatch  Add/Sub/Mul/MulVec/Div on different orders
//	core.ErrSingular      Inverse/Div when the determinant is exactly zero
package matrix
