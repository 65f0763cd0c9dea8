// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/tdyn/core"
)

// Colors is the number of palette steps used by Heatmap.
const Colors = 16

// Heatmap builds a plot of sq with one colored cell per element.
// Errors: core.ErrSize for an empty (moved-from) container.
func Heatmap[T core.Real](sq Square[T], title string) (*plot.Plot, error) {
	if sq.Size() == 0 {
		return nil, fmt.Errorf("render.Heatmap: %w", core.ErrSize)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (reversed)"
	p.Add(plotter.NewHeatMap(NewGrid(sq), palette.Heat(Colors, 1)))

	return p, nil
}

// Save renders sq to path; the extension selects the format.
func Save[T core.Real](sq Square[T], title, path string, w, h vg.Length) error {
	p, err := Heatmap(sq, title)
	if err != nil {
		return err
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render.Save(%s): %w", path, err)
	}

	return nil
}

// Write renders sq in the given format ("png", "svg", ...) to out.
func Write[T core.Real](out io.Writer, sq Square[T], title, format string, w, h vg.Length) error {
	p, err := Heatmap(sq, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return fmt.Errorf("render.Write(%s): %w", format, err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("render.Write(%s): %w", format, err)
	}

	return nil
}
