package geom

import (
	"github.com/golang/geo/r3"
)

// Point is a 3D point or vector. It is a transparent alias for r3.Vector;
// Add, Sub, Mul, Dot, Cross and Norm all work on it unmodified.
type Point = r3.Vector

// New returns the Point (x, y, z).
func New(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// axis selects one of the three Cartesian components of p.
func axis(p Point, i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
