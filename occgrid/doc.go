// Package occgrid implements a fixed-resolution, dense probabilistic 3D
// occupancy grid. Voxel occupancy is tracked as log-odds ("prob_log"); NaN
// means unobserved. Insert integrates a point cloud and a sensor viewpoint
// by sampling free-space ray segments with a 7-voxel neighbour sweep
// (centre plus six face neighbours against each sample's AABB), then
// applying log-odds increments to the dense voxel array.
//
// See Grid.Insert for the full pipeline and New for configuration.
package occgrid
