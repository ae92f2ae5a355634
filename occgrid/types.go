package occgrid

import "github.com/katalvlaran/lvlath-spatial/geom"

// Default configuration values, matching the external interface contract.
const (
	DefaultVoxelSize         = 0.05
	DefaultResolution        = 512
	DefaultClampingMin       = -2.0
	DefaultClampingMax       = 3.5
	DefaultProbHitLog        = 0.85
	DefaultProbMissLog       = -0.4
	DefaultOccProbThresLog   = 0.0
	DefaultVisualizeFreeArea = true
)

// Color is an RGB triple in [0,1]^3, defaulting to white.
type Color struct {
	R, G, B float64
}

// White is the default voxel color.
var White = Color{R: 1, G: 1, B: 1}

// Voxel is one dense-array cell: its 3D grid coordinate (already shifted
// into [0, resolution)^3), its log-odds occupancy (NaN = unobserved), and
// its color.
type Voxel struct {
	GridIndex [3]int
	ProbLog   float64
	Color     Color
}

// InsertStats summarises one Insert call, reported via OnInsert.
type InsertStats struct {
	ID                string
	NumPoints         int
	NumHits           int
	NumMisses         int
	NumFreeVoxels     int
	NumOccupiedVoxels int
}

// Option configures a Grid at construction time.
type Option func(*Options)

// Options holds the resolved configuration of a Grid.
type Options struct {
	VoxelSize          float64
	Resolution         int
	Origin             geom.Point
	ClampingMin        float64
	ClampingMax        float64
	ProbHitLog         float64
	ProbMissLog        float64
	OccProbThresLog    float64
	VisualizeFreeArea  bool
	OnInsert           func(InsertStats)
}

func defaultOptions() *Options {
	return &Options{
		VoxelSize:         DefaultVoxelSize,
		Resolution:        DefaultResolution,
		Origin:            geom.New(0, 0, 0),
		ClampingMin:       DefaultClampingMin,
		ClampingMax:       DefaultClampingMax,
		ProbHitLog:        DefaultProbHitLog,
		ProbMissLog:       DefaultProbMissLog,
		OccProbThresLog:   DefaultOccProbThresLog,
		VisualizeFreeArea: DefaultVisualizeFreeArea,
	}
}

func gatherOptions(opts ...Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithVoxelSize sets the edge length of one voxel. Panics if size <= 0.
func WithVoxelSize(size float64) Option {
	if size <= 0 {
		panic("occgrid: WithVoxelSize: size must be > 0")
	}
	return func(o *Options) { o.VoxelSize = size }
}

// WithResolution sets the grid's per-axis voxel count. Panics if n <= 0.
func WithResolution(n int) Option {
	if n <= 0 {
		panic("occgrid: WithResolution: n must be > 0")
	}
	return func(o *Options) { o.Resolution = n }
}

// WithOrigin sets the world position of the grid centre.
func WithOrigin(p geom.Point) Option {
	return func(o *Options) { o.Origin = p }
}

// WithClampingBounds sets the log-odds clamp range. Panics if min >= max.
func WithClampingBounds(min, max float64) Option {
	if min >= max {
		panic("occgrid: WithClampingBounds: min must be < max")
	}
	return func(o *Options) {
		o.ClampingMin = min
		o.ClampingMax = max
	}
}

// WithProbHitLog sets the per-hit log-odds increment.
func WithProbHitLog(v float64) Option {
	return func(o *Options) { o.ProbHitLog = v }
}

// WithProbMissLog sets the per-miss log-odds increment.
func WithProbMissLog(v float64) Option {
	return func(o *Options) { o.ProbMissLog = v }
}

// WithOccProbThresLog sets the free/occupied log-odds boundary.
func WithOccProbThresLog(v float64) Option {
	return func(o *Options) { o.OccProbThresLog = v }
}

// WithVisualizeFreeArea sets the renderer hint flag consulted by
// Grid.VisualizeFreeArea.
func WithVisualizeFreeArea(v bool) Option {
	return func(o *Options) { o.VisualizeFreeArea = v }
}

// WithOnInsert installs a hook invoked synchronously at the end of every
// successful Insert call.
func WithOnInsert(fn func(InsertStats)) Option {
	return func(o *Options) { o.OnInsert = fn }
}
