package graph3d

import "github.com/katalvlaran/lvlath-spatial/geom"

// TriangleMesh is the minimal surface a caller must implement to feed
// CreateFromTriangleMesh: an indexed triangle list over a vertex buffer.
// Platonic-solid constructors and mesh loaders alike can satisfy this with
// a plain struct.
type TriangleMesh interface {
	// MeshVertices returns the mesh's vertex buffer.
	MeshVertices() []geom.Point
	// MeshTriangles returns vertex-index triples, one per triangle.
	MeshTriangles() [][3]int
}

// CreateFromTriangleMesh builds a Graph whose vertices are the mesh's
// vertex buffer and whose edges are the three edges of every triangle,
// each weighted by Euclidean distance. Every interior mesh edge is shared
// by two triangles and so is emitted here twice (plus again by the
// undirected mirror, when the graph isn't WithDirected(true)); ConstructGraph's
// dedup phase collapses these back down to one row per edge.
func CreateFromTriangleMesh(mesh TriangleMesh, opts ...GraphOption) (*Graph, error) {
	g := NewGraphFromPoints(mesh.MeshVertices(), opts...)

	tris := mesh.MeshTriangles()
	edges := make([]Edge, 0, len(tris)*3)
	for _, t := range tris {
		edges = append(edges,
			Edge{From: t[0], To: t[1]},
			Edge{From: t[1], To: t[2]},
			Edge{From: t[2], To: t[0]},
		)
	}

	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = geom.Distance(g.vertices[e.From], g.vertices[e.To])
	}

	if err := g.AddEdges(edges, weights); err != nil {
		return nil, err
	}
	return g, nil
}
