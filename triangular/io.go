// SPDX-License-Identifier: MIT

package triangular

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tdyn/vector"
)

// placeholder is printed for every position of the implicit zero triangle.
var placeholder = "0" + string(vector.Separator)

// Fprint writes the full n×n square, one row per line. Stored entries use the
// vector layout; the implicit triangle is padded with literal "0" tokens
// (after the stored segment for Lower, before it for Upper).
// Complexity: O(n²).
func (t *triangle[T]) Fprint(w io.Writer) error {
	n := len(t.rows)
	for i, r := range t.rows {
		first, length := t.shape.span(n, i)
		if _, err := io.WriteString(w, strings.Repeat(placeholder, first)); err != nil {
			return fmt.Errorf("%s.Fprint(%d): %w", t.shape, i, err)
		}
		if err := r.Fprint(w); err != nil {
			return fmt.Errorf("%s.Fprint(%d): %w", t.shape, i, err)
		}
		tail := strings.Repeat(placeholder, n-first-length) + "\n"
		if _, err := io.WriteString(w, tail); err != nil {
			return fmt.Errorf("%s.Fprint(%d): %w", t.shape, i, err)
		}
	}

	return nil
}

// Fscan reads only the stored entries, row by row; no zero padding is
// expected on input.
func (t *triangle[T]) Fscan(r io.Reader) error {
	for i, row := range t.rows {
		if err := row.Fscan(r); err != nil {
			return fmt.Errorf("%s.Fscan(%d): %w", t.shape, i, err)
		}
	}

	return nil
}

// String implements fmt.Stringer using the Fprint layout.
func (t *triangle[T]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)

	return sb.String()
}

var (
	_ fmt.Stringer = (*Lower[int])(nil)
	_ fmt.Stringer = (*Upper[float64])(nil)
)
