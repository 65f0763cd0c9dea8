// Package builder: option forwarding to the container packages.
package builder

import (
	"github.com/katalvlaran/tdyn/core"
	"github.com/katalvlaran/tdyn/matrix"
	"github.com/katalvlaran/tdyn/triangular"
	"github.com/katalvlaran/tdyn/vector"
)

func matrixOptions[T core.Number](cfg builderConfig) []matrix.Option[T] {
	if cfg.maxSize == 0 {
		return nil
	}

	return []matrix.Option[T]{matrix.WithMaxSize[T](cfg.maxSize)}
}

func triangleOptions(cfg builderConfig) []triangular.Option {
	if cfg.maxSize == 0 {
		return nil
	}

	return []triangular.Option{triangular.WithMaxSize(cfg.maxSize)}
}

func vectorOptions(cfg builderConfig) []vector.Option {
	if cfg.maxSize == 0 {
		return nil
	}

	return []vector.Option{vector.WithMaxSize(cfg.maxSize)}
}

// fillMatrix sets every element of m to gen(i, j), in row-major order.
func fillMatrix[T core.Number](m *matrix.Matrix[T], gen func(i, j int) T) {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, gen(i, j))
		}
	}
}

// storedCells calls f for every stored (i,j) of an n×n triangle, row-major.
// lower selects columns 0..i, otherwise i..n-1.
func storedCells(n int, lower bool, f func(i, j int)) {
	for i := 0; i < n; i++ {
		first, last := 0, i
		if !lower {
			first, last = i, n-1
		}
		for j := first; j <= last; j++ {
			f(i, j)
		}
	}
}
