package geom_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-spatial/geom"
)

func TestSegmentIntersectsAABB_Hit(t *testing.T) {
	box := geom.VoxelAABB(geom.New(0, 0, 0), 1) // [-0.5,0.5]^3
	origin := geom.New(-2, 0, 0)
	end := geom.New(2, 0, 0)
	if !geom.SegmentIntersectsAABB(origin, end, box) {
		t.Fatalf("expected segment through origin to hit the unit voxel at the origin")
	}
}

func TestSegmentIntersectsAABB_MissesBeyondSegment(t *testing.T) {
	box := geom.VoxelAABB(geom.New(5, 0, 0), 1)
	origin := geom.New(-2, 0, 0)
	end := geom.New(2, 0, 0)
	if geom.SegmentIntersectsAABB(origin, end, box) {
		t.Fatalf("segment ending at x=2 must not hit a box centred at x=5")
	}
}

func TestSegmentIntersectsAABB_Parallel(t *testing.T) {
	box := geom.VoxelAABB(geom.New(0, 0, 0), 1)
	origin := geom.New(-2, 0.6, 0)
	end := geom.New(2, 0.6, 0)
	if geom.SegmentIntersectsAABB(origin, end, box) {
		t.Fatalf("a segment parallel to x but offset outside the box on y must miss")
	}
}

func TestDistance(t *testing.T) {
	a := geom.New(0, 0, 0)
	b := geom.New(3, 4, 0)
	if got := geom.Distance(a, b); got != 5 {
		t.Fatalf("Distance() = %v, want 5", got)
	}
}
