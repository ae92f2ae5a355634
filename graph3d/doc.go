// Package graph3d defines a directed/undirected weighted graph over 3D
// vertices, stored as a CSR (compressed sparse row) adjacency so that
// downstream algorithms such as sssp.DijkstraPaths can run directly on
// tight, index-friendly buffers.
//
// A Graph owns an ordered sequence of vertices (geom.Point) and an edge
// list (Edge{From, To}) with row-aligned side arrays for weight and color.
// Mutators (AddEdge, RemoveEdge, PaintEdgeColor, ...) keep those arrays in
// lock-step and leave the graph either fully "constructed" (sorted, CSR
// offsets rebuilt) or return a sentinel error with the graph unchanged.
// The one exception: a RemoveEdge(s) or SetEdges call that leaves no edges
// at all succeeds and leaves the graph unconstructed, with no offsets.
//
// See ConstructGraph for the invariants a constructed Graph upholds.
package graph3d
