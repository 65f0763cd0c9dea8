package triangular_test

import (
	"fmt"

	"github.com/katalvlaran/tdyn/triangular"
	"github.com/katalvlaran/tdyn/vector"
)

// ExampleLower_Mul multiplies two lower triangles; only the stored halves
// are visited and the result is again lower-triangular.
func ExampleLower_Mul() {
	a, _ := triangular.LowerFromRows([][]int{{1}, {2, 4}, {3, 6, 5}})
	b, _ := triangular.LowerFromRows([][]int{{5}, {22, 4}, {2, 3, 6}})
	p, _ := a.Mul(b)
	for i := 0; i < p.Size(); i++ {
		fmt.Println(p.Get(i, 0), p.Get(i, 1), p.Get(i, 2))
	}

	// Output:
	// 5 0 0
	// 98 16 0
	// 157 39 30
}

// ExampleUpper_MulVec multiplies an upper triangle by a vector.
func ExampleUpper_MulVec() {
	u, _ := triangular.UpperFromRows([][]int{{1, 2, 3}, {4, 6}, {5}})
	v, _ := vector.FromSlice([]int{1, 2, 3})
	r, _ := u.MulVec(v)
	fmt.Println(r.Slice())

	// Output:
	// [14 26 15]
}
