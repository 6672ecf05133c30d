package surface_test

import (
	"errors"
	"fmt"

	"github.com/atomforge/atomforge/lattice"
	"github.com/atomforge/atomforge/surface"
)

// ExampleSurface builds a two-layer fcc(100) copper slab with the
// default vacuum stacked above the top layer.
func ExampleSurface() {
	opts := surface.DefaultOptions()
	opts.Size = [3]int{1, 1, 2}
	opts.LatticeConstant = 4.0

	slab, err := surface.Surface("Cu", "fcc100", &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("atoms:", slab.Len())
	fmt.Printf("height: %.2f\n", slab.Cell()[2][2])

	// Output:
	// atoms: 2
	// height: 3.00
}

// ExampleSurfaceHKL cuts a three-layer (111) slab out of an fcc bulk.
func ExampleSurfaceHKL() {
	bulk, err := lattice.Cubic("Al", lattice.FCC, 4.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	slab, err := surface.SurfaceHKL(bulk, [3]int{1, 1, 1}, 3, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("atoms:", slab.Len())

	// Output:
	// atoms: 12
}

// ExampleSurface_unknownType shows the sentinel for a type outside the
// generator vocabulary.
func ExampleSurface_unknownType() {
	_, err := surface.Surface("Cu", "fcc12345", nil)
	fmt.Println(errors.Is(err, surface.ErrUnknownSurfaceType))

	// Output:
	// true
}
