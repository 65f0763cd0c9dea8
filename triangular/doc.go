// Package triangular provides Lower[T] and Upper[T], square triangular
// matrices that store only their triangle.
//
// Storage (n = Size(), n >= 2):
//
//	Lower  row i keeps columns 0..i      (i+1 entries)
//	Upper  row i keeps columns i..n-1    (n-i entries, column j at offset j-i)
//
// The implicit zero triangle exists only as the shape of the rows; it is
// never allocated and never written. Shapes are fixed at construction and
// every operation preserves them, so Lower×Lower is Lower and Upper×Upper
// is Upper.
//
// Access:
//
//	Get(i, j)            unchecked row, off-triangle columns read as zero
//	Set(i, j, v)         unchecked; an off-triangle column panics like a slice
//	At(i, j) / SetAt     checked; core.ErrIndex outside the stored segment
//
// Arithmetic (fresh results, operands untouched):
//
//	Neg, Scale, DivScalar        O(n²/2)
//	Add, Sub                     O(n²/2), core.ErrSizeMismatch
//	Mul                          O(n³/6), core.ErrSizeMismatch
//	MulVec                       O(n²/2), core.ErrSizeMismatch
//
// Extras: Det (product of the diagonal), Transpose (Lower <-> Upper) and
// Dense (expansion into a *matrix.Matrix).
//
// Text I/O: Fprint writes the full square, padding the implicit triangle with
// literal "0" tokens; Fscan reads only the stored entries, row by row.
//
// Errors are the core sentinels wrapped with "Lower.Method(args): " or
// "Upper.Method(args): ". A requested order of 1 matches both core.ErrShape
// and core.ErrSize.
package triangular
