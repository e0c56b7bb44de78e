package rotation_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rbd/rotation"
)

// ExamplePrincipalAxis recovers axis and angle of an elementary rotation.
func ExamplePrincipalAxis() {
	c := rotation.AboutY(math.Pi / 3)

	axis, angle, err := rotation.PrincipalAxis(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("axis·y = %.3f, angle %.1f°\n", axis[1], angle*180/math.Pi)
	// Output:
	// axis·y = 1.000, angle 60.0°
}
