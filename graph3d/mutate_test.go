package graph3d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-spatial/geom"
	"github.com/katalvlaran/lvlath-spatial/graph3d"
)

func newTriangle(t *testing.T) *graph3d.Graph {
	t.Helper()
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(0, 1, 0)}
	g := graph3d.NewGraphFromPoints(points)
	require.NoError(t, g.AddEdges(
		[]graph3d.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}},
		[]float64{1, 1, 1},
	))
	return g
}

func TestAddEdge_RejectsOutOfRangeVertex(t *testing.T) {
	g := newTriangle(t)
	err := g.AddEdge(0, 9, 1)
	require.ErrorIs(t, err, graph3d.ErrVertexOutOfRange)
	// Graph must be unchanged.
	require.Len(t, g.Edges(), 6)
}

func TestRemoveEdge_RemovesMirrorToo(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.RemoveEdge(0, 1))

	for _, e := range g.Edges() {
		require.False(t, e.From == 0 && e.To == 1)
		require.False(t, e.From == 1 && e.To == 0)
	}
	require.Len(t, g.Edges(), 4)
}

func TestRemoveEdges_DrainingToEmptyLeavesUnconstructed(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	require.NoError(t, g.RemoveEdge(0, 1))
	require.False(t, g.Constructed())
	require.Empty(t, g.Edges())
}

func TestAddEdges_OmittedWeightsDefaultToOne(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(0, 1, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))

	require.NoError(t, g.AddEdges(
		[]graph3d.Edge{{From: 0, To: 1}, {From: 1, To: 2}},
		nil,
	))

	require.Equal(t, []float64{1, 1}, g.EdgeWeights())
}

func TestAddEdges_MismatchedNonEmptyWeightsFails(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))

	err := g.AddEdges([]graph3d.Edge{{From: 0, To: 1}}, []float64{1, 2})
	require.ErrorIs(t, err, graph3d.ErrWeightsSizeMismatch)
}

func TestSetEdges_BulkReplaceDoesNotMirror(t *testing.T) {
	g := newTriangle(t)

	require.NoError(t, g.SetEdges([]graph3d.Edge{{From: 0, To: 1}}))

	edges := g.Edges()
	require.Equal(t, []graph3d.Edge{{From: 0, To: 1}}, edges, "SetEdges must not add the (1,0) mirror")
	require.Equal(t, []float64{1}, g.EdgeWeights())
}

func TestSetEdges_RejectsOutOfRangeVertex(t *testing.T) {
	g := newTriangle(t)
	err := g.SetEdges([]graph3d.Edge{{From: 0, To: 9}})
	require.ErrorIs(t, err, graph3d.ErrVertexOutOfRange)
	require.Len(t, g.Edges(), 6, "graph must be unchanged on error")
}

func TestSetEdges_NewRowsDefaultWeightToOne(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(0, 1, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 5))

	require.NoError(t, g.SetEdges([]graph3d.Edge{{From: 0, To: 1}, {From: 1, To: 2}}))
	require.Equal(t, []float64{5, 1}, g.EdgeWeights())
}

func TestPaintEdgeColor_PaintsBothDirectionsWhenUndirected(t *testing.T) {
	g := newTriangle(t)
	red := graph3d.Color{R: 1}
	require.NoError(t, g.PaintEdgeColor(0, 1, red))

	list := g.EdgeList()
	found := 0
	for _, item := range list {
		if item.Color == red {
			found++
		}
	}
	require.Equal(t, 2, found)
}

func TestPaintNodesColor_PaintsExactlyListedIndices(t *testing.T) {
	g := newTriangle(t)
	blue := graph3d.Color{B: 1}
	require.NoError(t, g.PaintNodesColor([]int{0, 2}, blue))

	err := g.PaintNodeColor(99, blue)
	require.ErrorIs(t, err, graph3d.ErrVertexOutOfRange)
}

func TestSetEdgeWeightsFromDistance(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(3, 4, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 999))

	g.SetEdgeWeightsFromDistance()
	require.Equal(t, []float64{5}, g.EdgeWeights())
}
