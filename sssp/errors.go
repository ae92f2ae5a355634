package sssp

import "errors"

var (
	// ErrNotConstructed is returned when DijkstraPaths/DijkstraPath is
	// called on a graph3d.Graph that has no CSR index built.
	ErrNotConstructed = errors.New("sssp: graph has not been constructed")

	// ErrSourceOutOfRange is returned when a source vertex index is
	// outside the graph's vertex range.
	ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

	// ErrTargetOutOfRange is returned when WithTarget names a vertex index
	// outside the graph's vertex range.
	ErrTargetOutOfRange = errors.New("sssp: target vertex out of range")

	// ErrNegativeWeight is returned when the graph carries an edge with a
	// negative weight; the wavefront relaxation only guarantees correct
	// distances for non-negative weights.
	ErrNegativeWeight = errors.New("sssp: graph has a negative edge weight")

	// ErrNoPath is returned by DijkstraPath when the target is
	// unreachable from the source.
	ErrNoPath = errors.New("sssp: no path to target")
)
