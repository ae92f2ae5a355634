package occgrid

import (
	"math"

	"github.com/katalvlaran/lvlath-spatial/geom"
)

// IsOccupied reports whether the voxel containing point is known and its
// log-odds exceeds the occupied threshold. Out-of-range points are never
// occupied.
func (g *Grid) IsOccupied(point geom.Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, j, k, ok := g.pointToVoxelLocked(point)
	if !ok {
		return false
	}
	idx := indexOf(i, j, k, g.opts.Resolution)
	p := g.voxels[idx].ProbLog
	return !math.IsNaN(p) && p > g.opts.OccProbThresLog
}

// IsUnknown reports whether the voxel containing point has never been
// observed. Out-of-range points are always unknown.
func (g *Grid) IsUnknown(point geom.Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, j, k, ok := g.pointToVoxelLocked(point)
	if !ok {
		return true
	}
	idx := indexOf(i, j, k, g.opts.Resolution)
	return math.IsNaN(g.voxels[idx].ProbLog)
}

// GetVoxelIndex maps point to its linear voxel index. ok is false if point
// falls outside the grid.
func (g *Grid) GetVoxelIndex(point geom.Point) (idx int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, j, k, inRange := g.pointToVoxelLocked(point)
	if !inRange {
		return 0, false
	}
	return indexOf(i, j, k, g.opts.Resolution), true
}

// GetVoxel returns the voxel containing point, and whether point falls
// within the grid at all. It does not report whether that voxel has been
// observed; see IsUnknown for that.
func (g *Grid) GetVoxel(point geom.Point) (Voxel, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, j, k, ok := g.pointToVoxelLocked(point)
	if !ok {
		return Voxel{}, false
	}
	return g.voxels[indexOf(i, j, k, g.opts.Resolution)], true
}

// HasVoxels reports whether any voxel has been observed.
func (g *Grid) HasVoxels() bool {
	return g.CountKnown() > 0
}

// HasColors reports whether the grid carries color information. Every
// voxel always has a Color field defaulting to White, so this is always
// true; kept as a method rather than a constant to mirror the capability
// probe callers otherwise expect.
func (g *Grid) HasColors() bool {
	return true
}

func (g *Grid) isKnown(v Voxel) bool    { return !math.IsNaN(v.ProbLog) }
func (g *Grid) isFree(v Voxel) bool     { return g.isKnown(v) && v.ProbLog <= g.opts.OccProbThresLog }
func (g *Grid) isOccupied(v Voxel) bool { return g.isKnown(v) && v.ProbLog > g.opts.OccProbThresLog }

// ExtractKnownVoxels returns every voxel that has been observed, ordered by
// linear index.
func (g *Grid) ExtractKnownVoxels() []Voxel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extractLocked(g.isKnown)
}

// ExtractKnownVoxelIndices returns the linear indices of every observed
// voxel, ordered ascending.
func (g *Grid) ExtractKnownVoxelIndices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extractIndicesLocked(g.isKnown)
}

// ExtractFreeVoxels returns every known voxel at or below the occupied
// threshold.
func (g *Grid) ExtractFreeVoxels() []Voxel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extractLocked(g.isFree)
}

// ExtractFreeVoxelIndices returns the linear indices of every free voxel.
func (g *Grid) ExtractFreeVoxelIndices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extractIndicesLocked(g.isFree)
}

// ExtractOccupiedVoxels returns every known voxel above the occupied
// threshold.
func (g *Grid) ExtractOccupiedVoxels() []Voxel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extractLocked(g.isOccupied)
}

// ExtractOccupiedVoxelIndices returns the linear indices of every occupied
// voxel.
func (g *Grid) ExtractOccupiedVoxelIndices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extractIndicesLocked(g.isOccupied)
}

func (g *Grid) extractLocked(pred func(Voxel) bool) []Voxel {
	var out []Voxel
	for _, v := range g.voxels {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (g *Grid) extractIndicesLocked(pred func(Voxel) bool) []int {
	var out []int
	for idx, v := range g.voxels {
		if pred(v) {
			out = append(out, idx)
		}
	}
	return out
}

// CountKnown returns the number of observed voxels.
func (g *Grid) CountKnown() int { return g.countLocked(g.isKnown) }

// CountFree returns the number of free voxels.
func (g *Grid) CountFree() int { return g.countLocked(g.isFree) }

// CountOccupied returns the number of occupied voxels.
func (g *Grid) CountOccupied() int { return g.countLocked(g.isOccupied) }

func (g *Grid) countLocked(pred func(Voxel) bool) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, v := range g.voxels {
		if pred(v) {
			n++
		}
	}
	return n
}

// GetMinBound returns the world-space centre of the first known voxel in
// ascending linear-index order, using the standard R/2 centre shift.
// Returns the grid origin if no voxel has been observed. This is the first
// element of the sorted known-voxel list, not an independent per-axis
// minimum across all known voxels — the two diverge whenever the known set
// isn't axis-monotonic.
func (g *Grid) GetMinBound() geom.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.boundLocked(true)
}

// GetMaxBound returns the world-space centre of the last known voxel in
// ascending linear-index order. It uses an R/2-1 centre shift rather than
// GetMinBound's R/2, a one-voxel asymmetry carried from the source
// implementation; see DESIGN.md.
func (g *Grid) GetMaxBound() geom.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.boundLocked(false)
}

// boundLocked takes the known-voxel indices in their already-ascending
// linear-index extraction order and reads off the first (for the min bound)
// or last (for the max bound) entry directly — not an independent per-axis
// reduction over every known voxel. The two can diverge whenever the
// known-voxel set isn't axis-monotonic (see DESIGN.md's Open Questions).
func (g *Grid) boundLocked(isMin bool) geom.Point {
	known := g.extractIndicesLocked(g.isKnown)
	if len(known) == 0 {
		return g.opts.Origin
	}

	if isMin {
		i, j, k := g.coordOf(known[0])
		shift := float64(g.opts.Resolution) / 2
		return geom.New(
			g.voxelCenterComponent(i, shift, g.opts.Origin.X),
			g.voxelCenterComponent(j, shift, g.opts.Origin.Y),
			g.voxelCenterComponent(k, shift, g.opts.Origin.Z),
		)
	}
	i, j, k := g.coordOf(known[len(known)-1])
	shift := float64(g.opts.Resolution)/2 - 1
	return geom.New(
		g.voxelCenterComponent(i, shift, g.opts.Origin.X),
		g.voxelCenterComponent(j, shift, g.opts.Origin.Y),
		g.voxelCenterComponent(k, shift, g.opts.Origin.Z),
	)
}

// VisualizeFreeArea returns the current free-voxel set when the grid was
// configured with WithVisualizeFreeArea(true) (the default), and nil
// otherwise. It is a query-only hint for renderers, not a mutator.
func (g *Grid) VisualizeFreeArea() []Voxel {
	g.mu.RLock()
	show := g.opts.VisualizeFreeArea
	g.mu.RUnlock()
	if !show {
		return nil
	}
	return g.ExtractFreeVoxels()
}
