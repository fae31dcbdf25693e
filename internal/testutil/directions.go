package testutil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// FibonacciSphere returns n directions distributed nearly uniformly over
// the unit sphere, using a deterministic golden-angle spiral so coverage
// and continuity property tests get reproducible sampling without
// depending on a random seed. n must be at least 2.
func FibonacciSphere(n int) []r3.Vec {
	out := make([]r3.Vec, n)
	goldenAngle := math.Pi * (3 - math.Sqrt(5))

	for i := range out {
		y := 1 - 2*float64(i)/float64(n-1)
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := goldenAngle * float64(i)

		out[i] = r3.Vec{X: math.Cos(theta) * radius, Y: y, Z: math.Sin(theta) * radius}
	}

	return out
}

// RotateZ rotates v by angleDeg degrees around the Z (up) axis, used by
// rotation-invariance property tests.
func RotateZ(v r3.Vec, angleDeg float64) r3.Vec {
	theta := angleDeg * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)

	return r3.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
}
