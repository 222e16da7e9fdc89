// Package vf2 implements the VF2 algorithm for enumerating subgraph
// isomorphisms between two directed, labeled graphs.
//
// Given a pattern graph P and a host graph H, Match walks a depth-first
// search over partial injections V(P) -> V(H), extending one pair at a
// time and backtracking when a candidate pair fails a feasibility test.
// Every complete mapping discovered is reported through a caller-supplied
// sink, as an ordered slice of (pattern key, host key) pairs.
//
// Complexity:
//
//   - Matcher-state memory: O(|V(P)| + |V(H)|) above the two input graphs.
//   - Recursion depth: bounded by min(|V(P)|, |V(H)|).
//   - extend/restore: O((|V(P)|+|V(H)|)*avg-degree) worst case per level.
//   - Overall search time is exponential in the worst case; the six
//     feasibility predicates exist to prune that search in practice.
//
// Modes:
//
//   - ModeGraph: full isomorphism, |V(P)| must equal |V(H)| for any
//     mapping to be found; look-ahead counts must match exactly.
//   - ModeSubgraph: P must embed into H; look-ahead counts use >=.
//   - ModeMonomorphism: currently identical to ModeSubgraph (see the
//     ModeMonomorphism doc comment).
//
// Errors:
//
//	ErrNilGraph    - a nil pattern or host graph was supplied.
//	ErrUnknownNode - the graph implementation reported a key that is not
//	                 present in its own node set (a bug in the graph, not
//	                 in the search).
//
// Options:
//
//   - WithMode(mode): select ModeGraph / ModeSubgraph / ModeMonomorphism.
//   - WithSemanticPredicate(fn): replace the default attribute-equality
//     check with an arbitrary SemanticPredicate.
//   - WithLimit(n): stop after n mappings have been emitted (n <= 0 means
//     unlimited); this is the cancellation seam the search driver itself
//     does not provide.
//
// Thanks to the directed nature of the underlying core.Graph, Predecessors
// and Successors already return sorted, deduplicated slices, which keeps
// the candidate-pair generator and the feasibility predicates deterministic
// for a given pair of graphs.
package vf2
