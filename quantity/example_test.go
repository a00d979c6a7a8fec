package quantity_test

import (
	"fmt"

	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/quantity"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleQuantity_Div
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two positions [10, 20] metres, one elapsed time of 2 seconds.
//	Dividing combines the Dimensions: L / T = L·T⁻¹ (velocity).
//	The scalar broadcasts across the vector exactly as the engine would
//	broadcast bare buffers.
//
// Complexity: O(n) time, O(n) memory
func ExampleQuantity_Div() {
	pos := quantity.FromSlice([]float64{10, 20}, dim.Length)
	dt := quantity.FromScalar(2, dim.Time)

	v, err := pos.Div(dt)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	// Output:
	// [5, 10] L·T^-1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleQuantity_Sqrt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Areas [4, 9] m² reduced to side lengths. Sqrt halves every exponent:
//	L² → L, exactly, because exponents are rationals rather than floats.
//
// Complexity: O(n) time, O(n) memory
func ExampleQuantity_Sqrt() {
	area := quantity.FromSlice([]float64{4, 9}, dim.Length.Pow(dim.Int(2)))

	side, err := area.Sqrt()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(side)
	// Output:
	// [2, 3] L
}

// ExampleQuantity_Add shows the eager mismatch rejection: metres and seconds
// never reach the numeric kernel.
func ExampleQuantity_Add() {
	metres := quantity.FromScalar(1, dim.Length)
	seconds := quantity.FromScalar(2, dim.Time)

	_, err := metres.Add(seconds)
	fmt.Println(err)
	// Output:
	// dim: Add: dimension mismatch: L vs T
}
