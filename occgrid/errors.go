package occgrid

import "errors"

var (
	// ErrInvalidResolution is returned by New/ReconstructVoxels when the
	// resolution is not a positive integer.
	ErrInvalidResolution = errors.New("occgrid: resolution must be > 0")

	// ErrInvalidVoxelSize is returned by New/ReconstructVoxels when the
	// voxel size is not strictly positive.
	ErrInvalidVoxelSize = errors.New("occgrid: voxel size must be > 0")

	// ErrIndexOutOfRange is returned by AddVoxel/AddVoxels when a caller
	// supplies a linear voxel index outside [0, resolution^3).
	ErrIndexOutOfRange = errors.New("occgrid: voxel index out of range")
)
