// SPDX-License-Identifier: MIT

package render

import (
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/tdyn/core"
)

// Square is the read surface render needs.
type Square[T core.Real] interface {
	Size() int
	Get(i, j int) T
}

// Grid adapts a Square to plotter.GridXYZ: column c maps to X = c and
// row i is drawn at Y = n-1-i so that row 0 is on top.
type Grid[T core.Real] struct {
	sq Square[T]
}

var _ plotter.GridXYZ = Grid[float64]{}

// NewGrid wraps sq; the grid reads through to sq on every call.
func NewGrid[T core.Real](sq Square[T]) Grid[T] {
	return Grid[T]{sq: sq}
}

// Dims returns (columns, rows).
func (g Grid[T]) Dims() (c, r int) {
	n := g.sq.Size()

	return n, n
}

// Z returns the element drawn at grid cell (c, r).
func (g Grid[T]) Z(c, r int) float64 {
	return float64(g.sq.Get(g.sq.Size()-1-r, c))
}

// X returns the coordinate of column c.
func (g Grid[T]) X(c int) float64 {
	return float64(c)
}

// Y returns the coordinate of grid row r.
func (g Grid[T]) Y(r int) float64 {
	return float64(r)
}
