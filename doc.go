// Package tdyn is a small family of generic, dynamically allocated
// linear-algebra containers with value-semantics arithmetic.
//
// What is inside:
//
//	core/        element constraints, size limits, the single error-kind enumeration
//	vector/      Vector[T]: dense vector, scalar and element-wise ops, dot product
//	matrix/      Matrix[T]: dense square matrix, transpose, cofactors, determinant,
//	             adjugate inverse, products and division by inverse
//	triangular/  Lower[T], Upper[T]: compact triangles, closed products, LU factors
//	builder/     deterministic fixtures (identity, sequential, seeded random)
//	interop/     copies to and from gonum's mat types; LU determinant strategy
//	render/      heat maps of any square container via gonum/plot
//	examples/    runnable demos (vector_sum, triangle_sum, inverse_heatmap)
//
// Data flows bottom-up: matrix and triangular are built on vector; nothing in
// the core depends on interop or render.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}})
//	inv, _ := m.Inverse()   // exact: det(m) = -1
//	id, _ := m.Mul(inv)     // identity
//
// Every failure is one of core.ErrSize, core.ErrIndex, core.ErrSizeMismatch,
// core.ErrShape or core.ErrSingular, wrapped with a "Type.Method(args): "
// prefix; match with errors.Is and classify with core.KindOf.
//
// The containers are single-threaded values: each owns its storage, and
// concurrent use of one instance needs external synchronization.
package tdyn
