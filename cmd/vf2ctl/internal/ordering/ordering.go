// Package ordering computes a host-graph node visiting order for vf2ctl's
// match command to pass to vf2.WithHostOrder, ahead of running the search.
//
// A connectivity-aware order lets the matcher's argmin candidate selection
// walk the host graph layer by layer (or in dependency order, for a DAG)
// instead of by raw lexical key order, which tends to surface structural
// mismatches earlier in the search. This is a pure preprocessing step: it
// never touches the pattern graph or the matcher state itself.
package ordering

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vf2/bfs"
	"github.com/katalvlaran/vf2/core"
	"github.com/katalvlaran/vf2/dfs"
)

// HostOrder returns a permutation of g's vertex keys: a topological order
// if g is directed and acyclic, a breadth-first order (rooted at each
// still-unvisited vertex in g.Vertices() order, to cover every
// weakly-connected component) if it is cyclic or undirected but unweighted,
// or g's own Vertices() order as a last resort for weighted graphs, which
// are not topologically sorted and which bfs.BFS rejects.
func HostOrder(g *core.Graph) ([]string, error) {
	if g.Directed() && !g.Weighted() {
		order, err := dfs.TopologicalSort(g)
		switch {
		case err == nil:
			return order, nil
		case !errors.Is(err, dfs.ErrCycleDetected):
			return nil, fmt.Errorf("ordering: topological sort: %w", err)
		}
	}

	order, err := breadthFirstOrder(g)
	if errors.Is(err, bfs.ErrWeightedGraph) {
		return g.Vertices(), nil
	}

	return order, err
}

// breadthFirstOrder runs bfs.BFS from every vertex not yet reached by an
// earlier root, concatenating each component's visit order. g.Vertices()
// is already sorted, so roots are chosen deterministically.
func breadthFirstOrder(g *core.Graph) ([]string, error) {
	keys := g.Vertices()
	seen := make(map[string]bool, len(keys))
	order := make([]string, 0, len(keys))

	for _, root := range keys {
		if seen[root] {
			continue
		}

		res, err := bfs.BFS(g, root)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			if !seen[id] {
				seen[id] = true
				order = append(order, id)
			}
		}
	}

	return order, nil
}
