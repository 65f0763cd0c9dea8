// Package vector provides Vector[T], a dense, dynamically allocated vector
// over any core.Number element type, with value-semantics arithmetic.
//
// Overview:
//
//   - A Vector exclusively owns one contiguous buffer whose length is its size.
//   - Copies are deep (Clone, Assign); moves transfer the buffer in O(1) and
//     leave the source empty (Move, MoveFrom).
//   - Every arithmetic method returns a fresh Vector (or a scalar for Dot);
//     receivers and arguments are never mutated.
//
// Access:
//
//	Get(i) / Set(i, v)      unchecked, O(1); out-of-range panics like a slice
//	At(i)  / SetAt(i, v)    checked, O(1); returns core.ErrIndex
//
// Arithmetic:
//
//	AddScalar, SubScalar, Scale, DivScalar, Neg     O(n)
//	Add, Sub                                        O(n), core.ErrSizeMismatch
//	Dot                                             O(n), core.ErrSizeMismatch
//
// Text I/O:
//
//	Fprint writes every element followed by a tab (no trailing newline).
//	Fscan reads exactly Size() whitespace-separated tokens in index order.
//
// Errors are the core sentinels wrapped with "Vector.Method(args): ".
package vector
