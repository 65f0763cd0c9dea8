// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes one row per line using the vector layout
// (every element followed by a tab), each line ending in '\n'.
// Complexity: O(n²).
func (m *Matrix[T]) Fprint(w io.Writer) error {
	for i, r := range m.rows {
		if err := r.Fprint(w); err != nil {
			return fmt.Errorf("Matrix.Fprint(%d): %w", i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("Matrix.Fprint(%d): %w", i, err)
		}
	}

	return nil
}

// Fscan reads n rows of n whitespace-separated tokens from r.
// r is passed to every row unchanged, so nothing past the last token of the
// matrix is consumed (see vector.Vector.Fscan).
func (m *Matrix[T]) Fscan(r io.Reader) error {
	for i, row := range m.rows {
		if err := row.Fscan(r); err != nil {
			return fmt.Errorf("Matrix.Fscan(%d): %w", i, err)
		}
	}

	return nil
}

// String implements fmt.Stringer using the Fprint layout.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.Fprint(&sb)

	return sb.String()
}
