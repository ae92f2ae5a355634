package graph3d

import "errors"

// Sentinel errors for graph3d operations. Callers should branch on these
// with errors.Is rather than comparing error strings.
var (
	// ErrEmptyGraph is returned by ConstructGraph when the graph has no
	// edges to build a CSR index over.
	ErrEmptyGraph = errors.New("graph3d: graph has no edges to construct")

	// ErrSizeMismatch names a weights/edges length mismatch in general. No
	// operation in this package returns it: AddEdges and SetEdgeWeights
	// report that condition as ErrWeightsSizeMismatch.
	ErrSizeMismatch = errors.New("graph3d: weights length does not match edges length")

	// ErrVertexOutOfRange is returned when a vertex index is outside [0, n).
	ErrVertexOutOfRange = errors.New("graph3d: vertex index out of range")

	// ErrOffsetsSizeMismatch is returned by SetEdgeIndexOffsets when the
	// supplied slice does not have length n+1.
	ErrOffsetsSizeMismatch = errors.New("graph3d: offsets length must be len(vertices)+1")

	// ErrWeightsSizeMismatch is returned by SetEdgeWeights when the supplied
	// slice does not have the same length as the current edge list.
	ErrWeightsSizeMismatch = errors.New("graph3d: weights length must match edge count")
)
