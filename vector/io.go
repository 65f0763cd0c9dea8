// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"io"
	"strings"
)

// Separator follows every element on output.
const Separator = '\t'

// Fprint writes every element followed by Separator, in index order,
// with no trailing newline.
// Complexity: O(n).
func (v *Vector[T]) Fprint(w io.Writer) error {
	for i, x := range v.data {
		if _, err := fmt.Fprintf(w, "%v%c", x, Separator); err != nil {
			return fmt.Errorf("Vector.Fprint(%d): %w", i, err)
		}
	}

	return nil
}

// Fscan reads exactly Size() whitespace-separated tokens into v in index order.
// r is used as given: on a plain io.Reader fmt.Fscan consumes only the single
// separator after each token, so consecutive reads from one stream stay
// aligned. Wrap the stream in one bufio.Reader yourself if you want buffering,
// and share it between all reads.
// Complexity: O(n).
func (v *Vector[T]) Fscan(r io.Reader) error {
	for i := range v.data {
		if _, err := fmt.Fscan(r, &v.data[i]); err != nil {
			return fmt.Errorf("Vector.Fscan(%d): %w", i, err)
		}
	}

	return nil
}

// String implements fmt.Stringer using the Fprint layout.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_ = v.Fprint(&sb) // strings.Builder never fails

	return sb.String()
}
