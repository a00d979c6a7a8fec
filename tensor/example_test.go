package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/dimq/tensor"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEinsum
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply two matrices through subscript notation.
//	  a = [[1, 2], [3, 4]]
//	  b = [[5, 6], [7, 8]]
//	"ij,jk->ik" contracts j: out[i,k] = Σ_j a[i,j]·b[j,k].
//
// Complexity: O(n³) time, O(n²) memory
func ExampleEinsum() {
	a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := tensor.FromRows([][]float64{{5, 6}, {7, 8}})

	out, err := tensor.Einsum("ij,jk->ik", a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [19, 22]
	// [43, 50]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGradient
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate f(x) = x² sampled at unit spacing. Central differences
//	are exact for quadratics in the interior; edges use one-sided stencils.
//
// Complexity: O(n) time, O(n) memory
func ExampleGradient() {
	f := tensor.FromVector([]float64{0, 1, 4, 9, 16})

	grads, err := tensor.Gradient(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(grads[0])
	// Output:
	// [1, 2, 4, 6, 7]
}

// ExampleArange builds a range and reshapes it into a matrix view.
func ExampleArange() {
	x, _ := tensor.Arange(0, 10, 2.5)
	fmt.Println(x)

	m, _ := tensor.Reshape(x, tensor.Shape{2, 2})
	fmt.Println(m)
	// Output:
	// [0, 2.5, 5, 7.5]
	// [0, 2.5]
	// [5, 7.5]
}

// ExampleMeshgrid expands coordinate vectors into grids (matrix indexing).
func ExampleMeshgrid() {
	x := tensor.FromVector([]float64{1, 2, 3})
	y := tensor.FromVector([]float64{10, 20})

	grids, err := tensor.Meshgrid(tensor.IndexIJ, x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(grids[0])
	fmt.Println(grids[1])
	// Output:
	// [1, 1]
	// [2, 2]
	// [3, 3]
	// [10, 20]
	// [10, 20]
	// [10, 20]
}
