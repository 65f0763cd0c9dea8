// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for matrix_test.
//
// Lives in a _test.go file of package matrix, so it can reach private
// symbols while staying out of production builds.

// CofactorRowsForTest exposes cofactorRows.
func CofactorRowsForTest[T int | float64](a [][]T, i, j int) [][]T {
	return cofactorRows(a, i, j)
}

// OptionsSnapshot is a read-only view of the resolved options.
type OptionsSnapshot struct {
	MaxSize    int
	HasDefault bool // det strategy is the package default
}

// GatherOptionsSnapshotForTest resolves opts the way New does.
func GatherOptionsSnapshotForTest(opts ...Option[int]) OptionsSnapshot {
	o := gatherOptions(opts)
	m := &Matrix[int]{det: o.det}
	probe := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}

	return OptionsSnapshot{
		MaxSize:    o.maxSize,
		HasDefault: m.det(probe) == CofactorDeterminant(probe),
	}
}
