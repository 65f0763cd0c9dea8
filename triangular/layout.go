// SPDX-License-Identifier: MIT

package triangular

// layout selects which triangle a matrix stores.
type layout uint8

const (
	lower layout = iota
	upper
)

func (l layout) String() string {
	if l == lower {
		return "Lower"
	}

	return "Upper"
}

// span returns the first stored column of row i in an n×n triangle and the
// number of stored entries in that row.
func (l layout) span(n, i int) (first, length int) {
	if l == lower {
		return 0, i + 1
	}

	return i, n - i
}

// mirror is the layout of the transpose.
func (l layout) mirror() layout {
	if l == lower {
		return upper
	}

	return lower
}
