package occgrid

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvlath-spatial/geom"
)

// Grid is a dense, fixed-resolution probabilistic 3D occupancy grid. The
// zero value is not usable; construct with New.
type Grid struct {
	mu sync.RWMutex

	opts Options

	voxels []Voxel // length resolution^3, linearised via IndexOf
}

// New allocates a Grid per the given options, with every voxel initialised
// to unobserved (NaN prob_log, white color).
func New(opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	if o.Resolution <= 0 {
		return nil, ErrInvalidResolution
	}
	if o.VoxelSize <= 0 {
		return nil, ErrInvalidVoxelSize
	}

	g := &Grid{opts: *o}
	g.allocate()
	return g, nil
}

func (g *Grid) allocate() {
	r := g.opts.Resolution
	g.voxels = make([]Voxel, r*r*r)
	for i := range g.voxels {
		x, y, z := g.coordOf(i)
		g.voxels[i] = Voxel{GridIndex: [3]int{x, y, z}, ProbLog: math.NaN(), Color: White}
	}
}

// ReconstructVoxels reallocates the dense array at a new voxel size and
// resolution, resetting every voxel to unobserved. All prior observations
// are discarded.
func (g *Grid) ReconstructVoxels(newVoxelSize float64, newResolution int) error {
	if newResolution <= 0 {
		return ErrInvalidResolution
	}
	if newVoxelSize <= 0 {
		return ErrInvalidVoxelSize
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.opts.VoxelSize = newVoxelSize
	g.opts.Resolution = newResolution
	g.allocate()
	return nil
}

// Resolution returns the grid's per-axis voxel count.
func (g *Grid) Resolution() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.opts.Resolution
}

// VoxelSize returns the grid's voxel edge length.
func (g *Grid) VoxelSize() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.opts.VoxelSize
}

// IndexOf linearises a 3D grid coordinate in [0, resolution)^3 as
// i + j*R + k*R^2. Callers in this package should prefer indexOf
// to avoid an extra lock when already holding one.
func (g *Grid) IndexOf(i, j, k int) int {
	g.mu.RLock()
	r := g.opts.Resolution
	g.mu.RUnlock()
	return indexOf(i, j, k, r)
}

func indexOf(i, j, k, r int) int {
	return i + j*r + k*r*r
}

// coordOf inverts indexOf for the grid's own resolution.
func (g *Grid) coordOf(idx int) (i, j, k int) {
	r := g.opts.Resolution
	i = idx % r
	j = (idx / r) % r
	k = idx / (r * r)
	return
}

func inBounds(i, j, k, r int) bool {
	return i >= 0 && i < r && j >= 0 && j < r && k >= 0 && k < r
}

// rawCoord maps a world point to an unshifted (possibly negative) integer
// grid coordinate: floor((p-origin)/voxel_size), per axis.
func (g *Grid) rawCoord(p geom.Point) (i, j, k int) {
	vs := g.opts.VoxelSize
	o := g.opts.Origin
	i = int(math.Floor((p.X - o.X) / vs))
	j = int(math.Floor((p.Y - o.Y) / vs))
	k = int(math.Floor((p.Z - o.Z) / vs))
	return
}

// PointToVoxel maps a world point to its storage-shifted grid coordinate,
// per the invariant floor((p-origin)/voxel_size) + R/2. ok is false if the
// point falls outside [0, resolution)^3.
func (g *Grid) PointToVoxel(p geom.Point) (i, j, k int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pointToVoxelLocked(p)
}

func (g *Grid) pointToVoxelLocked(p geom.Point) (i, j, k int, ok bool) {
	r := g.opts.Resolution
	shift := r / 2
	ri, rj, rk := g.rawCoord(p)
	i, j, k = ri+shift, rj+shift, rk+shift
	ok = inBounds(i, j, k, r)
	return
}

// voxelCenterComponent reproduces the per-axis half of the voxel-centre
// formula (coord - shift + 0.5)*voxel_size + origin, parameterised on shift
// so GetMinBound/GetMaxBound can apply their documented asymmetry.
func (g *Grid) voxelCenterComponent(coord int, shift float64, originAxis float64) float64 {
	return (float64(coord)-shift+0.5)*g.opts.VoxelSize + originAxis
}

// VoxelCenter returns the world-space centre of the voxel at storage
// coordinate (i,j,k), using the standard R/2 shift.
func (g *Grid) VoxelCenter(i, j, k int) geom.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	shift := float64(g.opts.Resolution) / 2
	return geom.New(
		g.voxelCenterComponent(i, shift, g.opts.Origin.X),
		g.voxelCenterComponent(j, shift, g.opts.Origin.Y),
		g.voxelCenterComponent(k, shift, g.opts.Origin.Z),
	)
}
