package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/tdyn/matrix"
)

// ExampleMatrix_Det evaluates a 3×3 determinant by cofactor expansion.
func ExampleMatrix_Det() {
	m, _ := matrix.FromRows([][]int{
		{1, 3, 3},
		{2, 7, 11},
		{3, 4, 2},
	})
	fmt.Println(m.Det())

	// Output:
	// 18
}

// ExampleMatrix_Inverse inverts an integer matrix with determinant -1,
// so the adjugate division stays exact.
func ExampleMatrix_Inverse() {
	m, _ := matrix.FromRows([][]int{
		{2, 5, 7},
		{6, 3, 4},
		{5, -2, -3},
	})
	inv, err := m.Inverse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < inv.Size(); i++ {
		row, _ := inv.Row(i)
		fmt.Println(row.Slice())
	}

	// Output:
	// [1 -1 1]
	// [-38 41 -34]
	// [27 -29 24]
}

// ExampleMatrix_Div shows that dividing a matrix by itself yields the identity.
func ExampleMatrix_Div() {
	m, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
	q, _ := m.Div(m)
	e, _ := matrix.Identity[float64](2)
	fmt.Println(q.Equal(e))

	// Output:
	// true
}
