package geom

import "math"

// parallelEpsilon bounds how close a ray-segment direction component can be
// to zero before the slab test treats it as parallel to that axis.
const parallelEpsilon = 1e-12

// AABB is an axis-aligned bounding box, inclusive of Min and Max.
type AABB struct {
	Min, Max Point
}

// VoxelAABB returns the AABB of a cube of the given side length centred at c.
func VoxelAABB(center Point, side float64) AABB {
	half := side / 2
	offset := New(half, half, half)

	return AABB{Min: center.Sub(offset), Max: center.Add(offset)}
}

// SegmentIntersectsAABB reports whether the closed segment from origin to end
// enters box, using the slab method bounded to the segment's own parameter
// range [0, 1] (as opposed to an unbounded ray test).
func SegmentIntersectsAABB(origin, end Point, box AABB) bool {
	d := end.Sub(origin)
	tMin, tMax := 0.0, 1.0

	for i := 0; i < 3; i++ {
		o := axis(origin, i)
		dd := axis(d, i)
		lo := axis(box.Min, i)
		hi := axis(box.Max, i)

		if math.Abs(dd) < parallelEpsilon {
			// Segment is parallel to this slab; it must already lie within it.
			if o < lo || o > hi {
				return false
			}
			continue
		}

		invD := 1 / dd
		t1 := (lo - o) * invD
		t2 := (hi - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}

	return true
}
