package occgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-spatial/geom"
	"github.com/katalvlaran/lvlath-spatial/occgrid"
)

func TestGetVoxelIndex_MatchesIndexOf(t *testing.T) {
	g, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1), occgrid.WithOrigin(geom.New(0, 0, 0)))
	require.NoError(t, err)

	idx, ok := g.GetVoxelIndex(geom.New(0.5, 0.5, 0.5))
	require.True(t, ok)
	require.Equal(t, g.IndexOf(2, 2, 2), idx)
}

func TestGetVoxelIndex_OutOfRange(t *testing.T) {
	g, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1))
	require.NoError(t, err)

	_, ok := g.GetVoxelIndex(geom.New(1000, 1000, 1000))
	require.False(t, ok)
}

func TestGetVoxel_ReturnsVoxelRegardlessOfObservedState(t *testing.T) {
	g, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1))
	require.NoError(t, err)

	p := geom.New(0.5, 0.5, 0.5)
	v, ok := g.GetVoxel(p)
	require.True(t, ok)
	require.True(t, g.IsUnknown(p))

	idx, _ := g.GetVoxelIndex(p)
	require.NoError(t, g.AddVoxel(idx, true))

	v, ok = g.GetVoxel(p)
	require.True(t, ok)
	require.False(t, v.ProbLog != v.ProbLog, "ProbLog should no longer be NaN after AddVoxel")
}

func TestGetVoxel_OutOfRange(t *testing.T) {
	g, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1))
	require.NoError(t, err)

	_, ok := g.GetVoxel(geom.New(1000, 1000, 1000))
	require.False(t, ok)
}

func TestHasVoxels_FalseUntilFirstObservation(t *testing.T) {
	g, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1))
	require.NoError(t, err)
	require.False(t, g.HasVoxels())

	require.NoError(t, g.AddVoxel(0, true))
	require.True(t, g.HasVoxels())
}

func TestHasColors_AlwaysTrue(t *testing.T) {
	g, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1))
	require.NoError(t, err)
	require.True(t, g.HasColors())
}

type staticCloud struct {
	points []geom.Point
}

func (c staticCloud) CloudPoints() []geom.Point { return c.points }

func TestInsertPointCloud_MatchesEquivalentInsert(t *testing.T) {
	viewpoint := geom.New(-1.5, 0.5, 0.5)
	points := []geom.Point{geom.New(1.5, 0.5, 0.5)}

	viaInsert, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1), occgrid.WithOrigin(geom.New(0, 0, 0)))
	require.NoError(t, err)
	statsInsert, err := viaInsert.Insert(points, viewpoint, -1)
	require.NoError(t, err)

	viaCloud, err := occgrid.New(occgrid.WithResolution(4), occgrid.WithVoxelSize(1), occgrid.WithOrigin(geom.New(0, 0, 0)))
	require.NoError(t, err)
	statsCloud, err := viaCloud.InsertPointCloud(staticCloud{points: points}, viewpoint, -1)
	require.NoError(t, err)

	require.Equal(t, statsInsert.NumHits, statsCloud.NumHits)
	require.Equal(t, statsInsert.NumFreeVoxels, statsCloud.NumFreeVoxels)
	require.Equal(t, statsInsert.NumOccupiedVoxels, statsCloud.NumOccupiedVoxels)
	require.Equal(t, viaInsert.ExtractKnownVoxelIndices(), viaCloud.ExtractKnownVoxelIndices())
}
