// Package sssp computes single-source shortest paths over a graph3d.Graph
// using a label-correcting wavefront relaxation, not a priority-queue
// Dijkstra: every iteration relaxes the entire current frontier in
// parallel, reduces competing updates per destination down to one winner,
// and commits before the next iteration starts. Under non-negative edge
// weights the result matches true Dijkstra distances.
//
// See DijkstraPaths for the iteration structure and tie-break rule.
package sssp
