package graph3d

import "github.com/katalvlaran/lvlath-spatial/geom"

// AddEdge appends a single (from, to) edge with the given weight and
// rebuilds the CSR index. If the graph is undirected, the mirror edge
// (to, from) is appended as well. On error (out-of-range vertex, or an
// empty graph after the append somehow fails construction) the graph is
// left unchanged.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	return g.AddEdges([]Edge{{From: from, To: to}}, []float64{weight})
}

// AddEdges appends a batch of edges with their weights in one CSR rebuild,
// which is far cheaper than calling AddEdge in a loop for bulk construction
// (e.g. CreateFromTriangleMesh). weights is optional: pass nil or an empty
// slice to default every appended edge's weight to 1.0 (mirroring the 1.0
// top-up constructLocked performs for rows of g.lines that have no weight
// yet). If non-empty, weights must have the same length as edges.
func (g *Graph) AddEdges(edges []Edge, weights []float64) error {
	if len(weights) != 0 && len(weights) != len(edges) {
		return ErrWeightsSizeMismatch
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		if e.From < 0 || e.From >= len(g.vertices) || e.To < 0 || e.To >= len(g.vertices) {
			return ErrVertexOutOfRange
		}
	}

	// Snapshot for rollback on construction failure.
	prevLines := g.lines
	prevWeights := g.edgeWeights
	prevColors := g.edgeColors

	for i, e := range edges {
		w := 1.0
		if len(weights) != 0 {
			w = weights[i]
		}
		g.lines = append(g.lines, e)
		g.edgeWeights = append(g.edgeWeights, w)
		if g.edgeColors != nil {
			g.edgeColors = append(g.edgeColors, White)
		}
		if !g.directed {
			g.lines = append(g.lines, Edge{From: e.To, To: e.From})
			g.edgeWeights = append(g.edgeWeights, w)
			if g.edgeColors != nil {
				g.edgeColors = append(g.edgeColors, White)
			}
		}
	}

	if err := g.constructLocked(); err != nil {
		g.lines = prevLines
		g.edgeWeights = prevWeights
		g.edgeColors = prevColors
		return err
	}
	return nil
}

// SetEdges overwrites the edge list directly with edges, bypassing
// AddEdges's undirected mirroring and per-edge weights — a raw
// bulk replace, mirroring the original's edges property setter, which
// swaps lines_ wholesale rather than routing through AddEdge's paired
// logic. Row-aligned weights/colors are resized to match: existing
// entries are kept up to the shorter of the two lengths, new rows default
// to weight 1.0 and color White. Rebuilds the CSR index; on error the
// graph is left unchanged.
func (g *Graph) SetEdges(edges []Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		if e.From < 0 || e.From >= len(g.vertices) || e.To < 0 || e.To >= len(g.vertices) {
			return ErrVertexOutOfRange
		}
	}

	prevLines := g.lines
	prevWeights := g.edgeWeights
	prevColors := g.edgeColors

	g.lines = append([]Edge(nil), edges...)

	weights := make([]float64, len(edges))
	for i := range weights {
		if i < len(g.edgeWeights) {
			weights[i] = g.edgeWeights[i]
		} else {
			weights[i] = 1.0
		}
	}
	g.edgeWeights = weights

	if g.edgeColors != nil {
		colors := make([]Color, len(edges))
		for i := range colors {
			if i < len(g.edgeColors) {
				colors[i] = g.edgeColors[i]
			} else {
				colors[i] = White
			}
		}
		g.edgeColors = colors
	}

	if err := g.constructLocked(); err != nil {
		newLines, newWeights, newColors := g.lines, g.edgeWeights, g.edgeColors
		g.lines = prevLines
		g.edgeWeights = prevWeights
		g.edgeColors = prevColors
		// An empty edge list is a legitimate outcome of a bulk replace, not
		// a rollback-worthy failure; only report errors other than that.
		if err == ErrEmptyGraph && len(edges) == 0 {
			g.lines = newLines
			g.edgeWeights = newWeights
			g.edgeColors = newColors
			g.offsets = nil
			g.constructed = false
			return nil
		}
		return err
	}
	return nil
}

// RemoveEdge removes every occurrence of the (from, to) edge (and its
// mirror, if undirected), then rebuilds the CSR index.
func (g *Graph) RemoveEdge(from, to int) error {
	return g.RemoveEdges([]Edge{{From: from, To: to}})
}

// RemoveEdges removes every occurrence of each listed edge (and mirrors, if
// undirected) in one CSR rebuild.
func (g *Graph) RemoveEdges(edges []Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doomed := make(map[Edge]bool, len(edges)*2)
	for _, e := range edges {
		doomed[e] = true
		if !g.directed {
			doomed[Edge{From: e.To, To: e.From}] = true
		}
	}

	prevLines := g.lines
	prevWeights := g.edgeWeights
	prevColors := g.edgeColors

	newLines := g.lines[:0:0]
	newWeights := g.edgeWeights[:0:0]
	var newColors []Color
	if g.edgeColors != nil {
		newColors = g.edgeColors[:0:0]
	}
	for i, e := range g.lines {
		if doomed[e] {
			continue
		}
		newLines = append(newLines, e)
		newWeights = append(newWeights, g.edgeWeights[i])
		if newColors != nil {
			newColors = append(newColors, g.edgeColors[i])
		}
	}
	g.lines = newLines
	g.edgeWeights = newWeights
	g.edgeColors = newColors

	if err := g.constructLocked(); err != nil {
		g.lines = prevLines
		g.edgeWeights = prevWeights
		g.edgeColors = prevColors
		// An empty graph after removal is a legitimate outcome, not a
		// rollback-worthy failure; only report errors other than that.
		if err == ErrEmptyGraph && len(newLines) == 0 {
			g.lines = newLines
			g.edgeWeights = newWeights
			g.edgeColors = newColors
			g.offsets = nil
			g.constructed = false
			return nil
		}
		return err
	}
	return nil
}

// PaintEdgeColor sets the color of every row matching (from, to), and its
// mirror if the graph is undirected. Colors are materialised lazily: the
// first paint call on a graph fills every existing row with White first.
func (g *Graph) PaintEdgeColor(from, to int, c Color) error {
	return g.PaintEdgesColor([]Edge{{From: from, To: to}}, c)
}

// PaintEdgesColor sets the color of every row matching any of edges (and
// mirrors, if undirected).
func (g *Graph) PaintEdgesColor(edges []Edge, c Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureEdgeColors()

	targets := make(map[Edge]bool, len(edges)*2)
	for _, e := range edges {
		targets[e] = true
		if !g.directed {
			targets[Edge{From: e.To, To: e.From}] = true
		}
	}

	for i, e := range g.lines {
		if targets[e] {
			g.edgeColors[i] = c
		}
	}
	return nil
}

// PaintNodeColor sets the color of a single vertex.
func (g *Graph) PaintNodeColor(v int, c Color) error {
	return g.PaintNodesColor([]int{v}, c)
}

// PaintNodesColor sets the color of exactly the listed vertex indices.
func (g *Graph) PaintNodesColor(vertices []int, c Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range vertices {
		if v < 0 || v >= len(g.vertices) {
			return ErrVertexOutOfRange
		}
	}

	g.ensureNodeColors()
	for _, v := range vertices {
		g.nodeColors[v] = c
	}
	return nil
}

func (g *Graph) ensureEdgeColors() {
	if g.edgeColors != nil {
		return
	}
	g.edgeColors = make([]Color, len(g.lines))
	for i := range g.edgeColors {
		g.edgeColors[i] = White
	}
}

func (g *Graph) ensureNodeColors() {
	if g.nodeColors != nil {
		return
	}
	g.nodeColors = make([]Color, len(g.vertices))
	for i := range g.nodeColors {
		g.nodeColors[i] = White
	}
}

// SetEdgeWeightsFromDistance overwrites every edge weight with the
// Euclidean distance between its two endpoint vertices, discarding any
// weights passed to AddEdge(s).
func (g *Graph) SetEdgeWeightsFromDistance() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, e := range g.lines {
		a := g.vertices[e.From]
		b := g.vertices[e.To]
		g.edgeWeights[i] = geom.Distance(a, b)
	}
}
