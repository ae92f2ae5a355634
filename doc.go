// Package lvlathspatial is an in-memory playground for two tightly
// coupled 3D perception primitives: a weighted graph embedded in 3D space
// with parallel single-source shortest paths, and a dense probabilistic
// occupancy grid that integrates range-sensor scans via log-odds updates.
//
// 🚀 What is lvlath-spatial?
//
//	A thread-safe library that brings together:
//		• geom: shared 3D point and AABB primitives
//		• graph3d: CSR-backed directed/undirected weighted graphs over 3D vertices
//		• sssp: a label-correcting parallel wavefront shortest-path solver
//		• occgrid: a dense log-odds occupancy grid with ray-AABB free-space sweeps
//
// ✨ Why choose lvlath-spatial?
//
//   - Thread-safe – R/W locks, in-code docs & hooks
//   - Pure Go – no cgo, no hidden deps beyond golang/geo, gonum and uuid
//   - Extensible – add custom hooks (OnRelax, OnInsert) for observability
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/    — geom.Point (an r3.Vector alias) and axis-aligned bounding boxes
//	graph3d/ — Graph, CSR construction, mutation, triangle-mesh import
//	sssp/    — DijkstraPaths / DijkstraPath wavefront relaxation
//	occgrid/ — Grid, Insert pipeline, voxel queries
//
// Quick ASCII example, a ray crossing four voxels:
//
//	v ──●──●──●──●── p
//	    free free free occupied
//
// Dive into DESIGN.md for the grounding behind every package's choices.
package lvlathspatial
