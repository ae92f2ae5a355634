package sssp

import (
	"runtime"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlath-spatial/graph3d"
)

// candidate is one proposed distance improvement produced during the relax
// phase, before the segmented reduce-by-destination picks a winner.
type candidate struct {
	From, To int
	Dist     float64
}

// DijkstraPaths runs a label-correcting wavefront relaxation from source
// over g and returns distances and predecessors to every reachable vertex.
//
// This is not a priority-queue Dijkstra. Each iteration relaxes the entire
// current frontier (the "open" set) in parallel across worker goroutines,
// then a segmented reduce groups the resulting candidate updates by
// destination vertex and keeps only the smallest candidate per destination
// (ties broken by smallest source vertex index, i.e. the first source
// encountered within the frontier's natural CSR ordering), then a commit
// phase applies the winners and seeds the next frontier. A full barrier
// separates each phase from the next. Under non-negative edge weights this
// converges to the same distances as a classical Dijkstra.
//
// WithTarget puts the run in targeted mode: once the committed frontier can
// no longer improve on the target's distance, the wavefront stops instead
// of continuing to relax every reachable vertex. Vertices never reached by
// the time of that exit keep their initial infinite distance even though a
// longer, unexplored route to them might exist — targeted mode intentionally
// trades exhaustive reachability for an earlier stop once the target is
// settled. DijkstraPath always runs in targeted mode for this reason.
//
// Returns ErrNotConstructed if g has no CSR index, ErrSourceOutOfRange if
// source is outside [0, g.NumVertices()), ErrTargetOutOfRange if a
// WithTarget option names a vertex outside that range, and ErrNegativeWeight
// if any edge in g has a negative weight.
func DijkstraPaths(g *graph3d.Graph, source int, opts ...Option) (*Result, error) {
	if !g.Constructed() {
		return nil, ErrNotConstructed
	}
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}

	weights := g.EdgeWeights()
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
	}

	o := gatherOptions(opts...)
	if o.Target >= n {
		return nil, ErrTargetOutOfRange
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	edges := g.Edges()
	offsets := g.GetEdgeIndexOffsets()

	dist := make([]float64, n)
	prev := make([]int, n)
	for v := range dist {
		dist[v] = inf
		prev[v] = noPrev
	}
	dist[source] = 0

	open := []int{source}
	iteration := 0

	for len(open) > 0 {
		// Phase 1: relax. Partition the frontier across workers; each
		// worker walks its slice's CSR rows and emits candidates locally.
		cands := parallelRelax(open, edges, offsets, weights, dist, workers)

		// Phase 2: segmented reduce by destination, with the
		// first-source-encountered tie-break.
		winners := reduceByDestination(cands)

		// Phase 3: commit.
		var next []int
		for to, c := range winners {
			if c.Dist < dist[to] {
				dist[to] = c.Dist
				prev[to] = c.From
				next = append(next, to)
				if o.OnRelax != nil {
					o.OnRelax(RelaxEvent{From: c.From, To: to, NewDist: c.Dist, Iteration: iteration})
				}
			}
		}
		open = next
		iteration++

		// Targeted early exit: once every open vertex's own distance is
		// already at least as large as the target's, no further relaxation
		// can possibly shorten the path to it.
		if o.Target >= 0 && dist[o.Target] < inf {
			canImprove := false
			for _, v := range open {
				if dist[v] < dist[o.Target] {
					canImprove = true
					break
				}
			}
			if !canImprove {
				break
			}
		}
	}

	return &Result{Dist: dist, Prev: prev}, nil
}

// DijkstraPath returns the shortest path from source to target as an
// ordered sequence of vertex indices, along with its total distance.
// Returns ErrNoPath if target is unreachable.
func DijkstraPath(g *graph3d.Graph, source, target int, opts ...Option) ([]int, float64, error) {
	n := g.NumVertices()
	if target < 0 || target >= n {
		return nil, 0, ErrTargetOutOfRange
	}

	targeted := make([]Option, 0, len(opts)+1)
	targeted = append(targeted, opts...)
	targeted = append(targeted, WithTarget(target))

	result, err := DijkstraPaths(g, source, targeted...)
	if err != nil {
		return nil, 0, err
	}
	if result.Dist[target] == inf {
		return nil, 0, ErrNoPath
	}

	var path []int
	for v := target; v != noPrev; v = result.Prev[v] {
		path = append([]int{v}, path...)
		if v == source {
			break
		}
	}
	return path, result.Dist[target], nil
}

// parallelRelax partitions open across worker goroutines; each worker scans
// the CSR row of every vertex in its slice and emits a candidate for every
// outgoing edge whose relaxed distance would beat the vertex's current best
// guess so far this phase (dist is read-only during this phase; writes
// happen only in the commit phase).
func parallelRelax(open []int, edges []graph3d.Edge, offsets []int, weights, dist []float64, workers int) []candidate {
	if workers > len(open) {
		workers = len(open)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(open) + workers - 1) / workers
	partials := make([][]candidate, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= len(open) {
			continue
		}
		if end > len(open) {
			end = len(open)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			var local []candidate
			for _, u := range open[start:end] {
				base := dist[u]
				for ei := offsets[u]; ei < offsets[u+1]; ei++ {
					v := edges[ei].To
					nd := base + weights[ei]
					if nd < dist[v] {
						local = append(local, candidate{From: u, To: v, Dist: nd})
					}
				}
			}
			partials[w] = local
		}(w, start, end)
	}
	wg.Wait()

	var all []candidate
	for _, p := range partials {
		all = append(all, p...)
	}
	return all
}

// reduceByDestination groups candidates by destination vertex and keeps the
// smallest; ties are broken by the smallest source vertex index, modelling
// "first source encountered wins" over the frontier's ascending CSR order.
func reduceByDestination(cands []candidate) map[int]candidate {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].To != cands[j].To {
			return cands[i].To < cands[j].To
		}
		if cands[i].Dist != cands[j].Dist {
			return cands[i].Dist < cands[j].Dist
		}
		return cands[i].From < cands[j].From
	})

	winners := make(map[int]candidate)
	for _, c := range cands {
		if best, ok := winners[c.To]; !ok || c.Dist < best.Dist {
			winners[c.To] = c
		}
	}
	return winners
}
