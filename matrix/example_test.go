package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rbd/matrix"
)

// ExampleCross shows that the tilde matrix turns a cross product into a
// matrix-vector product.
func ExampleCross() {
	a := matrix.Vector(1, 3, 2)
	b := matrix.Vector(4, 6, 5)

	c := matrix.Cross(a, b)
	d := matrix.MulVec(matrix.Tilde(a), b)
	fmt.Printf("a×b      = (%g, %g, %g)\n", c[0], c[1], c[2])
	fmt.Printf("tilde(a)b = (%g, %g, %g)\n", d[0], d[1], d[2])
	fmt.Printf("a·b      = %g\n", matrix.Dot(a, b))
	// Output:
	// a×b      = (3, 3, -6)
	// tilde(a)b = (3, 3, -6)
	// a·b      = 32
}

// ExampleDecompose sorts the principal moments of a diagonal inertia matrix
// and returns a right-handed set of axes.
func ExampleDecompose() {
	e, err := matrix.Decompose(matrix.Diag(3, 1, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("values: %.1f %.1f %.1f\n", e.Values[0], e.Values[1], e.Values[2])
	fmt.Printf("det(vectors): %.1f\n", e.Vectors.Det())
	// Output:
	// values: 3.0 2.0 1.0
	// det(vectors): 1.0
}

// ExampleInv inverts a diagonal matrix.
func ExampleInv() {
	inv, err := matrix.Inv(matrix.Diag(2, 4, 5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv.Diagonal()[0], inv.Diagonal()[1], inv.Diagonal()[2])
	// Output:
	// 0.5 0.25 0.2
}

// ExampleMat3_MulVec expresses a vector given in B in the N frame. Every
// row of a Mat3 is itself a Vec3.
func ExampleMat3_MulVec() {
	ncb := matrix.New(
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	)
	nr := ncb.MulVec(matrix.Vector(1, 3, 2))
	fmt.Printf("N r = (%g, %g, %g)\n", nr[0], nr[1], nr[2])
	fmt.Printf("row 1 · r = %g\n", ncb[1].Dot(matrix.Vector(1, 3, 2)))
	// Output:
	// N r = (-3, 1, 2)
	// row 1 · r = 1
}
