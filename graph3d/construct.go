package graph3d

import (
	"runtime"
	"sort"
	"sync"
)

// ConstructGraph (re)builds the CSR index over the current edge list. It
// must be invoked after any structural mutation; the AddEdge(s)/RemoveEdge(s)
// mutators in mutate.go call it automatically and leave the graph unchanged
// on error.
//
// Phases (each a data-parallel bulk operation per the package's concurrency
// model; a full barrier separates each from the next):
//  1. Sort: lines_ sorted lexicographically by (From, To); side arrays
//     (weights, colors) permuted identically via a stable sort on indices so
//     row-alignment survives ties.
//  2. Dedup: consecutive equal (From, To) rows in the now-sorted list are
//     collapsed to their first (lowest original-index) occurrence, so a
//     caller appending the same edge twice — or CreateFromTriangleMesh's
//     shared-edge triangles — never produces parallel rows.
//  3. Count: a segmented count of edges per source vertex, computed by
//     partitioning the deduplicated edge range across worker goroutines
//     that each accumulate a local per-vertex histogram, then reduced
//     (summed) across workers.
//  4. Scan: an exclusive prefix scan over the counts yields offsets, with
//     offsets[0]=0 and offsets[n]=len(lines_).
//
// Returns ErrEmptyGraph if the graph currently has no edges.
func (g *Graph) ConstructGraph() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.constructLocked()
}

func (g *Graph) constructLocked() error {
	if len(g.lines) == 0 {
		g.constructed = false
		return ErrEmptyGraph
	}

	// Side arrays must already be row-aligned with lines; top up any
	// missing weights with the default before permuting.
	for len(g.edgeWeights) < len(g.lines) {
		g.edgeWeights = append(g.edgeWeights, 1.0)
	}

	// Phase 1: sort.
	n := len(g.lines)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ea, eb := g.lines[perm[a]], g.lines[perm[b]]
		if ea.From != eb.From {
			return ea.From < eb.From
		}
		return ea.To < eb.To
	})

	sortedLines := make([]Edge, n)
	sortedWeights := make([]float64, n)
	var sortedColors []Color
	if g.edgeColors != nil {
		sortedColors = make([]Color, n)
	}
	for newIdx, oldIdx := range perm {
		sortedLines[newIdx] = g.lines[oldIdx]
		sortedWeights[newIdx] = g.edgeWeights[oldIdx]
		if sortedColors != nil {
			sortedColors[newIdx] = g.edgeColors[oldIdx]
		}
	}
	// Phase 2: dedup. Consecutive equal (From, To) rows collapse to their
	// first occurrence; row-aligned side arrays collapse identically.
	dedupedLines := sortedLines[:0:0]
	dedupedWeights := sortedWeights[:0:0]
	var dedupedColors []Color
	if sortedColors != nil {
		dedupedColors = sortedColors[:0:0]
	}
	for i, e := range sortedLines {
		if i > 0 && e == sortedLines[i-1] {
			continue
		}
		dedupedLines = append(dedupedLines, e)
		dedupedWeights = append(dedupedWeights, sortedWeights[i])
		if dedupedColors != nil {
			dedupedColors = append(dedupedColors, sortedColors[i])
		}
	}
	g.lines = dedupedLines
	g.edgeWeights = dedupedWeights
	g.edgeColors = dedupedColors

	// Phase 3: parallel segmented count, reduced across workers.
	numVerts := len(g.vertices)
	counts := parallelCountBySource(g.lines, numVerts)

	// Phase 4: exclusive scan.
	offsets := make([]int, numVerts+1)
	running := 0
	for v := 0; v < numVerts; v++ {
		offsets[v] = running
		running += counts[v]
	}
	offsets[numVerts] = running
	g.offsets = offsets

	g.constructed = true
	return nil
}

// parallelCountBySource partitions lines (assumed sorted by From) across
// worker goroutines, each accumulating a local per-source histogram, then
// reduces the per-worker histograms into one. It is the data-parallel
// reduce-by-key step of ConstructGraph's CSR build.
func parallelCountBySource(lines []Edge, numVerts int) []int {
	total := make([]int, numVerts)
	if len(lines) == 0 {
		return total
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(lines) + workers - 1) / workers
	partials := make([][]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= len(lines) {
			partials[w] = nil
			continue
		}
		if end > len(lines) {
			end = len(lines)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			local := make([]int, numVerts)
			for _, e := range lines[start:end] {
				local[e.From]++
			}
			partials[w] = local
		}(w, start, end)
	}
	wg.Wait()

	for _, local := range partials {
		for v, c := range local {
			total[v] += c
		}
	}
	return total
}
