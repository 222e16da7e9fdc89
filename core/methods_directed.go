// File: methods_directed.go
// Role: Directed-adjacency queries (Predecessors/Successors/EdgeMultiplicity) and
// vertex attribute accessors. These exist for consumers that need strict
// single-direction adjacency rather than the undirected-aware Neighbors view
// in methods_adjacent.go — notably the vf2 package's isomorphism engine,
// which only ever walks directed predecessor/successor sets.
//
// Determinism:
//   - Predecessors/Successors return vertices sorted by ID asc.
//
// Concurrency:
//   - Read queries under muEdgeAdj/muVert read locks as needed.
package core

import "sort"

// Predecessors returns the vertices with a directed edge into id, i.e. every
// v such that an edge v->id exists. Self-loops make id its own predecessor.
// Unlike Neighbors, undirected edges do not contribute: Predecessors only
// considers edges where Directed is true, or where the graph's default
// directedness is true and the edge carries no per-edge override.
//
// Complexity: O(E) in the worst case (scans the edge catalog once).
func (g *Graph) Predecessors(id string) ([]*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	var ids []string
	var e *Edge
	for _, e = range g.edges {
		if e.To != id {
			continue
		}
		if !e.Directed && e.From != e.To {
			continue
		}
		ids = append(ids, e.From)
	}
	g.muEdgeAdj.RUnlock()

	return g.resolveSortedUnique(ids), nil
}

// Successors returns the vertices with a directed edge from id, i.e. every
// v such that an edge id->v exists.
//
// Complexity: O(E) in the worst case (scans the edge catalog once).
func (g *Graph) Successors(id string) ([]*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	var ids []string
	var e *Edge
	for _, e = range g.edges {
		if e.From != id {
			continue
		}
		if !e.Directed && e.From != e.To {
			continue
		}
		ids = append(ids, e.To)
	}
	g.muEdgeAdj.RUnlock()

	return g.resolveSortedUnique(ids), nil
}

// resolveSortedUnique deduplicates ids, sorts them, and resolves each to its
// *Vertex. Must be called without holding muVert or muEdgeAdj.
func (g *Graph) resolveSortedUnique(ids []string) []*Vertex {
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]*Vertex, 0, len(ids))
	var prev string
	for i, id := range ids {
		if i > 0 && id == prev {
			continue
		}
		prev = id
		if v, ok := g.vertices[id]; ok {
			out = append(out, v)
		}
	}

	return out
}

// EdgeMultiplicity returns the number of directed edges from->to, counting
// parallel edges in multigraphs. A self-loop (from == to) is counted here
// too, so EdgeMultiplicity(id, id) gives the self-loop count used by the
// isomorphism engine's R_self test.
//
// Complexity: O(E) in the worst case.
func (g *Graph) EdgeMultiplicity(from, to string) int {
	if from == "" || to == "" {
		return 0
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var n int
	var e *Edge
	for _, e = range g.edges {
		if e.From != from || e.To != to {
			continue
		}
		if !e.Directed && e.From != e.To {
			continue
		}
		n++
	}

	return n
}

// SetAttribute assigns the optional label used by the default isomorphism
// semantic predicate. Passing a nil value clears the attribute.
//
// Complexity: O(1).
func (g *Graph) SetAttribute(id string, attribute interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attribute = attribute

	return nil
}

// Attribute returns the vertex's optional label and whether the vertex exists.
//
// Complexity: O(1).
func (g *Graph) Attribute(id string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}

	return v.Attribute, true
}
