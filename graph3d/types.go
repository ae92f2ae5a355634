package graph3d

import (
	"sync"

	"github.com/katalvlaran/lvlath-spatial/geom"
)

// Edge is a (source, destination) pair of vertex indices. For undirected
// graphs, every logical edge is materialised twice: (a,b) and (b,a).
type Edge struct {
	From, To int
}

// Color is an RGB triple in [0,1]^3. The zero value is black; White is the
// default used whenever a color array is materialised lazily.
type Color struct {
	R, G, B float64
}

// White is the default color assigned to edges and vertices when a color
// array is first materialised.
var White = Color{R: 1, G: 1, B: 1}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the graph's orientation flag. false (the default)
// means AddEdge/RemoveEdge/PaintEdgeColor mirror the reverse pair.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a directed or undirected weighted graph over 3D vertices,
// stored as a sorted edge list with a CSR offsets index. See ConstructGraph
// for the invariants a constructed Graph upholds.
type Graph struct {
	mu sync.RWMutex

	directed bool

	vertices []geom.Point

	lines       []Edge    // edge_index_offsets_ indexes into this, once constructed
	edgeWeights []float64 // row-aligned with lines
	edgeColors  []Color   // row-aligned with lines; nil if never painted
	nodeColors  []Color   // row-aligned with vertices; nil if never painted

	offsets []int // edge_index_offsets_, length len(vertices)+1 once constructed

	constructed bool
}

// NewGraph returns an empty Graph with no vertices and no edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGraphFromPoints returns a Graph seeded with the given vertices and no
// edges. ConstructGraph is not run; the graph is not yet "constructed".
func NewGraphFromPoints(points []geom.Point, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	g.vertices = append([]geom.Point(nil), points...)
	return g
}

// Directed reports the graph's orientation flag.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.directed
}

// Constructed reports whether ConstructGraph has successfully run since the
// last structural mutation.
func (g *Graph) Constructed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.constructed
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Vertices returns a copy of the vertex sequence.
func (g *Graph) Vertices() []geom.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]geom.Point, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Vertex returns the point at index i.
func (g *Graph) Vertex(i int) (geom.Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return geom.Point{}, ErrVertexOutOfRange
	}
	return g.vertices[i], nil
}

// Edges returns a copy of the sorted edge list (lines_).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.lines))
	copy(out, g.lines)
	return out
}

// EdgeWeights returns a copy of the row-aligned edge weight array.
func (g *Graph) EdgeWeights() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]float64, len(g.edgeWeights))
	copy(out, g.edgeWeights)
	return out
}

// GetEdgeIndexOffsets returns a copy of the CSR offsets array.
func (g *Graph) GetEdgeIndexOffsets() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.offsets))
	copy(out, g.offsets)
	return out
}

// SetEdgeIndexOffsets overwrites the CSR offsets array directly, for
// host-side callers that have computed it out-of-band. The slice must have
// length len(vertices)+1.
func (g *Graph) SetEdgeIndexOffsets(offsets []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(offsets) != len(g.vertices)+1 {
		return ErrOffsetsSizeMismatch
	}
	g.offsets = append([]int(nil), offsets...)
	return nil
}

// SetEdgeWeights overwrites the row-aligned edge weight array directly. The
// slice must have the same length as the current edge list.
func (g *Graph) SetEdgeWeights(weights []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(weights) != len(g.lines) {
		return ErrWeightsSizeMismatch
	}
	g.edgeWeights = append([]float64(nil), weights...)
	return nil
}

// EdgeListItem is a flattened, read-only view of one row of the edge list,
// for callers that would rather not reach into CSR internals directly.
type EdgeListItem struct {
	From, To geom.Point
	Weight   float64
	Color    Color
}

// EdgeList returns a flattened export of the current edge list.
func (g *Graph) EdgeList() []EdgeListItem {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeListItem, len(g.lines))
	for i, e := range g.lines {
		item := EdgeListItem{
			From:   g.vertices[e.From],
			To:     g.vertices[e.To],
			Weight: g.edgeWeights[i],
			Color:  White,
		}
		if g.edgeColors != nil {
			item.Color = g.edgeColors[i]
		}
		out[i] = item
	}
	return out
}

// CloneEmpty returns a new Graph with the same vertices and orientation but
// no edges.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{directed: g.directed}
	clone.vertices = append([]geom.Point(nil), g.vertices...)
	return clone
}

// Clone returns a deep copy of the Graph, including edges, weights and
// colors.
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.lines = append([]Edge(nil), g.lines...)
	clone.edgeWeights = append([]float64(nil), g.edgeWeights...)
	if g.edgeColors != nil {
		clone.edgeColors = append([]Color(nil), g.edgeColors...)
	}
	if g.nodeColors != nil {
		clone.nodeColors = append([]Color(nil), g.nodeColors...)
	}
	clone.offsets = append([]int(nil), g.offsets...)
	clone.constructed = g.constructed
	return clone
}
