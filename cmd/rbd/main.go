// Command rbd is a small workbench for rigid-body-dynamics exercises:
// rotation matrices, principal rotation axes, inertia matrices and their
// principal axes.
//
//	rbd demo
//	rbd axis --sequence XZY --angles 60,45,30 --degrees
//	rbd principal --inertia 2,0,0,0,4,0,0,0,5
//	rbd principal --file body.yaml
//	rbd sweep --inertia 3,0,0,0,1,0,0,0,2 --axis z --out sweep.png
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
