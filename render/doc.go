// Package render draws square containers as heat maps with gonum/plot.
//
// Any value with Size() and Get(i, j) qualifies (dense matrices and both
// triangles), so the implicit zero triangle of a Lower or Upper is drawn as
// zeros. Row 0 is drawn at the top, as the matrix is printed.
//
//	p, err := render.Heatmap[float64](inv, "inverse")
//	err = render.Save[float64](inv, "inverse", "inverse.png", 10*vg.Centimeter, 10*vg.Centimeter)
//
// The output format follows the file extension (png, svg, pdf, ...); see
// plot.Plot.Save.
package render
