// Package geom provides the shared 3D point/vector and axis-aligned
// bounding box primitives used by graph3d and occgrid.
//
// Point is a transparent alias for github.com/golang/geo/r3.Vector so that
// callers can freely mix geom code with r3 code (and use r3's Add/Sub/Mul/
// Norm/Dot directly on a geom.Point) without a conversion step.
package geom
