package sssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-spatial/geom"
	"github.com/katalvlaran/lvlath-spatial/graph3d"
	"github.com/katalvlaran/lvlath-spatial/sssp"
)

// chain builds a 5-vertex directed path 0->1->2->3->4 with unit weights, so
// a targeted run to an intermediate vertex has unambiguously-unreached
// vertices beyond it to check the early exit against.
func chain(t *testing.T) *graph3d.Graph {
	t.Helper()
	points := []geom.Point{
		geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(2, 0, 0), geom.New(3, 0, 0), geom.New(4, 0, 0),
	}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdges(
		[]graph3d.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}},
		[]float64{1, 1, 1, 1},
	))
	return g
}

// diamond builds a 4-vertex directed graph with two equal-length paths from
// 0 to 3 (via 1 and via 2) and a longer direct edge, so tie-breaking and
// shortest-path selection both get exercised.
func diamond(t *testing.T) *graph3d.Graph {
	t.Helper()
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(0, 1, 0), geom.New(1, 1, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdges(
		[]graph3d.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}, {From: 0, To: 3}},
		[]float64{1, 1, 1, 1, 10},
	))
	return g
}

func TestDijkstraPaths_NotConstructed(t *testing.T) {
	g := graph3d.NewGraphFromPoints([]geom.Point{geom.New(0, 0, 0)})
	_, err := sssp.DijkstraPaths(g, 0)
	require.ErrorIs(t, err, sssp.ErrNotConstructed)
}

func TestDijkstraPaths_SourceOutOfRange(t *testing.T) {
	g := diamond(t)
	_, err := sssp.DijkstraPaths(g, 99)
	require.ErrorIs(t, err, sssp.ErrSourceOutOfRange)
}

func TestDijkstraPaths_NegativeWeightRejected(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, -1))

	_, err := sssp.DijkstraPaths(g, 0)
	require.ErrorIs(t, err, sssp.ErrNegativeWeight)
}

func TestDijkstraPaths_MatchesShortestDistances(t *testing.T) {
	g := diamond(t)
	result, err := sssp.DijkstraPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1, 2}, result.Dist)
}

func TestDijkstraPath_ReturnsOrderedPath(t *testing.T) {
	g := diamond(t)
	path, dist, err := sssp.DijkstraPath(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, float64(2), dist)
	require.Equal(t, 0, path[0])
	require.Equal(t, 3, path[len(path)-1])
	require.Len(t, path, 3)
}

func TestDijkstraPath_Unreachable(t *testing.T) {
	points := []geom.Point{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(2, 0, 0)}
	g := graph3d.NewGraphFromPoints(points, graph3d.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	_, _, err := sssp.DijkstraPath(g, 0, 2)
	require.ErrorIs(t, err, sssp.ErrNoPath)
}

func TestDijkstraPaths_OnRelaxHookFires(t *testing.T) {
	g := diamond(t)
	var events []sssp.RelaxEvent
	_, err := sssp.DijkstraPaths(g, 0, sssp.WithOnRelax(func(e sssp.RelaxEvent) {
		events = append(events, e)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, events)
}

func TestWithWorkers_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() {
		sssp.WithWorkers(-1)
	})
}

func TestWithTarget_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() {
		sssp.WithTarget(-1)
	})
}

func TestDijkstraPaths_TargetOutOfRange(t *testing.T) {
	g := diamond(t)
	_, err := sssp.DijkstraPaths(g, 0, sssp.WithTarget(99))
	require.ErrorIs(t, err, sssp.ErrTargetOutOfRange)
}

// TestDijkstraPaths_WithTarget_StopsEarly checks that a targeted run settles
// the target's own distance correctly but never relaxes vertices strictly
// beyond it, while an untargeted run over the same graph reaches everything.
func TestDijkstraPaths_WithTarget_StopsEarly(t *testing.T) {
	g := chain(t)

	targeted, err := sssp.DijkstraPaths(g, 0, sssp.WithTarget(2))
	require.NoError(t, err)
	require.Equal(t, float64(2), targeted.Dist[2])
	require.Equal(t, math.MaxFloat64, targeted.Dist[3])
	require.Equal(t, math.MaxFloat64, targeted.Dist[4])

	untargeted, err := sssp.DijkstraPaths(g, 0)
	require.NoError(t, err)
	require.Equal(t, float64(3), untargeted.Dist[3])
	require.Equal(t, float64(4), untargeted.Dist[4])
}

// TestDijkstraPath_UsesTargetedEarlyExit confirms DijkstraPath still finds
// the correct path and distance to target while relying on the early exit
// internally (observable only indirectly here; see the package-level
// DijkstraPaths test above for the direct exercise of dist[] truncation).
func TestDijkstraPath_UsesTargetedEarlyExit(t *testing.T) {
	g := chain(t)
	path, dist, err := sssp.DijkstraPath(g, 0, 2)
	require.NoError(t, err)
	require.Equal(t, float64(2), dist)
	require.Equal(t, []int{0, 1, 2}, path)
}
