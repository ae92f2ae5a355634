package occgrid

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlath-spatial/geom"
)

// neighborOffsets is the compile-time 7-voxel sweep table: the sample's own
// voxel plus its six axis-aligned face neighbours. A pragmatic substitute
// for exact 3D-DDA ray traversal; see Insert.
var neighborOffsets = [7][3]int{
	{0, 0, 0},
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

type rangedPoint struct {
	p   geom.Point
	d   float64
	hit bool
}

// PointCloud is the minimal surface a caller must implement to feed
// InsertPointCloud: a flat buffer of observed points. Mirrors treating a
// point-cloud source as an external collaborator type, the same way
// graph3d.TriangleMesh does for mesh sources.
type PointCloud interface {
	// CloudPoints returns the cloud's observed points.
	CloudPoints() []geom.Point
}

// InsertPointCloud integrates cloud into the grid exactly as Insert would
// its equivalent point slice; it exists so callers holding a PointCloud
// collaborator don't need to flatten it themselves first.
func (g *Grid) InsertPointCloud(cloud PointCloud, viewpoint geom.Point, maxRange float64) (InsertStats, error) {
	return g.Insert(cloud.CloudPoints(), viewpoint, maxRange)
}

// Insert integrates a point cloud observed from viewpoint into the grid.
// maxRange < 0 means unlimited range. Points beyond maxRange are clamped
// onto the ray at maxRange and contribute a miss rather than a hit.
//
// Pipeline (§4.3): range clamping, free-voxel candidate sweep (7-voxel
// neighbour test against each sample's AABB), occupied-voxel computation,
// free-minus-occupied set difference, then a log-odds update of the
// winning voxels.
func (g *Grid) Insert(points []geom.Point, viewpoint geom.Point, maxRange float64) (InsertStats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.opts.Resolution
	vs := g.opts.VoxelSize

	ranged := make([]rangedPoint, len(points))
	maxD := 0.0
	hits, misses := 0, 0
	for i, p := range points {
		d := geom.Distance(p, viewpoint)
		if maxRange < 0 || d <= maxRange {
			ranged[i] = rangedPoint{p: p, d: d, hit: true}
			hits++
		} else {
			scale := maxRange / d
			clamped := geom.New(
				viewpoint.X+(p.X-viewpoint.X)*scale,
				viewpoint.Y+(p.Y-viewpoint.Y)*scale,
				viewpoint.Z+(p.Z-viewpoint.Z)*scale,
			)
			ranged[i] = rangedPoint{p: clamped, d: maxRange, hit: false}
			misses++
		}
		if ranged[i].d > maxD {
			maxD = ranged[i].d
		}
	}

	nDiv := int(math.Ceil(maxD / vs))

	var freeVoxels []int
	if nDiv > 0 {
		freeVoxels = g.computeFreeVoxels(ranged, viewpoint, nDiv, r, vs)
	}

	occupiedVoxels := g.computeOccupiedVoxels(ranged, r)

	freeVoxels = sortedSetDifference(freeVoxels, occupiedVoxels)

	g.addVoxelsLocked(freeVoxels, false)
	g.addVoxelsLocked(occupiedVoxels, true)

	stats := InsertStats{
		ID:                uuid.NewString(),
		NumPoints:         len(points),
		NumHits:           hits,
		NumMisses:         misses,
		NumFreeVoxels:     len(freeVoxels),
		NumOccupiedVoxels: len(occupiedVoxels),
	}
	if g.opts.OnInsert != nil {
		g.opts.OnInsert(stats)
	}
	return stats, nil
}

// computeFreeVoxels implements §4.3 step 2: for each ranged point and each
// sample step along the viewpoint-to-point segment, sweep the sample's
// voxel plus its six face neighbours, keeping those whose AABB the segment
// actually intersects.
func (g *Grid) computeFreeVoxels(ranged []rangedPoint, viewpoint geom.Point, nDiv, r int, vs float64) []int {
	shift := r / 2
	seen := make(map[int]struct{})
	var out []int

	for _, rp := range ranged {
		step := geom.New(
			(rp.p.X-viewpoint.X)/float64(nDiv),
			(rp.p.Y-viewpoint.Y)/float64(nDiv),
			(rp.p.Z-viewpoint.Z)/float64(nDiv),
		)
		for j := 0; j <= nDiv; j++ {
			sample := geom.New(
				viewpoint.X+float64(j)*step.X,
				viewpoint.Y+float64(j)*step.Y,
				viewpoint.Z+float64(j)*step.Z,
			)
			baseI, baseJ, baseK := g.rawCoord(sample)

			for _, off := range neighborOffsets {
				ni, nj, nk := baseI+off[0], baseJ+off[1], baseK+off[2]
				center := geom.New(
					(float64(ni)+0.5)*vs+g.opts.Origin.X,
					(float64(nj)+0.5)*vs+g.opts.Origin.Y,
					(float64(nk)+0.5)*vs+g.opts.Origin.Z,
				)
				box := geom.VoxelAABB(center, vs)
				if !geom.SegmentIntersectsAABB(viewpoint, rp.p, box) {
					continue
				}

				si, sj, sk := ni+shift, nj+shift, nk+shift
				if !inBounds(si, sj, sk, r) {
					continue
				}
				idx := indexOf(si, sj, sk, r)
				if _, dup := seen[idx]; dup {
					continue
				}
				seen[idx] = struct{}{}
				out = append(out, idx)
			}
		}
	}

	sort.Ints(out)
	return out
}

// computeOccupiedVoxels implements §4.3 step 3: every hit point's enclosing
// voxel, sorted and deduplicated.
func (g *Grid) computeOccupiedVoxels(ranged []rangedPoint, r int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, rp := range ranged {
		if !rp.hit {
			continue
		}
		i, j, k, ok := g.pointToVoxelLocked(rp.p)
		if !ok {
			continue
		}
		idx := indexOf(i, j, k, r)
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// sortedSetDifference returns the elements of a (sorted, deduplicated) not
// present in b (sorted, deduplicated).
func sortedSetDifference(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	out := make([]int, 0, len(a))
	bi := 0
	for _, v := range a {
		for bi < len(b) && b[bi] < v {
			bi++
		}
		if bi < len(b) && b[bi] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

// AddVoxel applies one log-odds update to the voxel at linear index idx.
func (g *Grid) AddVoxel(idx int, occupied bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx < 0 || idx >= len(g.voxels) {
		return ErrIndexOutOfRange
	}
	g.addVoxelsLocked([]int{idx}, occupied)
	return nil
}

// AddVoxels applies a log-odds update to every voxel in idxs. Each voxel
// must appear at most once across a single call (the Insert pipeline
// guarantees this via deduplication); repeats would double-count without
// the atomics the concurrency model deliberately omits.
func (g *Grid) AddVoxels(idxs []int, occupied bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, idx := range idxs {
		if idx < 0 || idx >= len(g.voxels) {
			return ErrIndexOutOfRange
		}
	}
	g.addVoxelsLocked(idxs, occupied)
	return nil
}

func (g *Grid) addVoxelsLocked(idxs []int, occupied bool) {
	delta := g.opts.ProbMissLog
	if occupied {
		delta = g.opts.ProbHitLog
	}
	for _, idx := range idxs {
		p := g.voxels[idx].ProbLog
		if math.IsNaN(p) {
			p = 0
		}
		p += delta
		if p < g.opts.ClampingMin {
			p = g.opts.ClampingMin
		}
		if p > g.opts.ClampingMax {
			p = g.opts.ClampingMax
		}
		g.voxels[idx].ProbLog = p
	}
}
