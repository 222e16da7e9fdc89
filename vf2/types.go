// Package vf2 types and configuration options for subgraph isomorphism
// matching.
package vf2

import (
	"errors"

	"github.com/katalvlaran/vf2/core"
)

// Sentinel errors returned by Match.
var (
	// ErrNilGraph indicates that a nil pattern or host graph was supplied.
	ErrNilGraph = errors.New("vf2: graph is nil")

	// ErrUnknownNode indicates the graph reported a predecessor/successor
	// key that does not itself exist as a node. This is a defect in the
	// graph implementation, not a recoverable search condition.
	ErrUnknownNode = errors.New("vf2: unknown node key")
)

// Graph is the abstract capability the matcher needs from a directed graph.
// *core.Graph satisfies this interface directly; callers may substitute any
// type with the same method set (e.g. a read-only view over a different
// storage layer).
type Graph interface {
	// Vertices returns every node key, in a stable order for the lifetime
	// of the graph.
	Vertices() []string

	// VertexCount returns |V(G)|.
	VertexCount() int

	// HasVertex reports whether key names a node in the graph.
	HasVertex(key string) bool

	// Predecessors returns the direct predecessors of key.
	Predecessors(key string) ([]*core.Vertex, error)

	// Successors returns the direct successors of key.
	Successors(key string) ([]*core.Vertex, error)

	// EdgeMultiplicity returns the number of directed edges from->to,
	// including a self-loop count when from == to.
	EdgeMultiplicity(from, to string) int

	// Attribute returns the node's optional label and whether the node
	// exists at all.
	Attribute(key string) (interface{}, bool)
}

// Mode selects which relation the look-ahead predicates (R_in, R_out,
// R_new) and the self-loop predicate (R_self) use to compare pattern-side
// and host-side counts.
type Mode int

const (
	// ModeGraph requires full isomorphism: |V(P)| == |V(H)| and every
	// count comparison uses strict equality.
	ModeGraph Mode = iota

	// ModeSubgraph requires only that P embeds into H: count comparisons
	// use >= (the host may have more structure than the pattern demands).
	ModeSubgraph

	// ModeMonomorphism is currently identical to ModeSubgraph for the
	// look-ahead predicates. The source this engine is modeled on declares
	// a separate mono branch but never differentiates it from subgraph;
	// this implementation preserves that behavior rather than guessing at
	// a stricter monomorphism test. See DESIGN.md for the rationale.
	ModeMonomorphism
)

// String renders the Mode for diagnostics and test failure messages.
func (m Mode) String() string {
	switch m {
	case ModeGraph:
		return "graph"
	case ModeSubgraph:
		return "subgraph"
	case ModeMonomorphism:
		return "monomorphism"
	default:
		return "unknown"
	}
}

// SemanticPredicate decides whether a proposed pattern/host node pair is
// semantically compatible, independent of the structural R_* tests. It is
// queried once per candidate pair, before the structural tests run.
type SemanticPredicate func(p, h Graph, pKey, hKey string) bool

// DefaultSemanticPredicate implements the engine's default attribute check:
// if both nodes carry an attribute, they must be equal; if exactly one
// carries an attribute, the pair fails; if neither does, the pair passes.
func DefaultSemanticPredicate(p, h Graph, pKey, hKey string) bool {
	pAttr, pOK := p.Attribute(pKey)
	hAttr, hOK := h.Attribute(hKey)
	switch {
	case pOK && hOK:
		return pAttr == hAttr
	case pOK != hOK:
		return false
	default:
		return true
	}
}

// Options configures a Matcher.
type Options struct {
	// Mode selects graph / subgraph / monomorphism matching.
	Mode Mode

	// Semantic is consulted before the structural predicates for every
	// candidate pair. Defaults to DefaultSemanticPredicate.
	Semantic SemanticPredicate

	// Limit caps the number of mappings enumerated; zero or negative
	// means unlimited. This is the engine's only cancellation seam: the
	// search driver itself never blocks or suspends.
	Limit int

	// HostOrder, if non-empty, fixes the traversal order newState uses to
	// pick the argmin host candidate in the generator (candidates.go). It
	// must be a permutation of h.Vertices(); callers feed it a
	// connectivity-aware order (topological or breadth-first) computed
	// ahead of the search to improve early pruning. A nil or empty slice
	// falls back to h.Vertices()'s own order.
	HostOrder []string
}

// Option is a functional option for configuring a Matcher.
type Option func(*Options)

// WithMode selects the matching mode. Default is ModeGraph.
func WithMode(mode Mode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithSemanticPredicate replaces the default attribute-equality semantic
// test with an arbitrary predicate. Passing nil restores
// DefaultSemanticPredicate.
func WithSemanticPredicate(fn SemanticPredicate) Option {
	return func(o *Options) {
		if fn == nil {
			fn = DefaultSemanticPredicate
		}
		o.Semantic = fn
	}
}

// WithLimit stops enumeration after n mappings have been emitted. n <= 0
// means unlimited (the default).
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}

// WithHostOrder overrides the host node visiting order used to pick the
// argmin candidate in the generator. Passing nil restores the graph's own
// Vertices() order.
func WithHostOrder(order []string) Option {
	return func(o *Options) { o.HostOrder = order }
}

// DefaultOptions returns an Options value with ModeGraph, the default
// attribute-equality semantic predicate, and no limit.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeGraph,
		Semantic: DefaultSemanticPredicate,
		Limit:    0,
	}
}

// compare applies the mode-appropriate relation (== for ModeGraph, >= for
// ModeSubgraph and ModeMonomorphism) to a pair of look-ahead counts.
func (o Options) compare(patternCount, hostCount int) bool {
	if o.Mode == ModeGraph {
		return patternCount == hostCount
	}

	return patternCount >= hostCount
}

// Mapping is one complete, injective correspondence between V(P) and a
// subset of V(H), sorted by pattern key.
type Mapping []Pair

// Pair is a single (pattern key, host key) correspondence within a Mapping.
type Pair struct {
	PatternKey string
	HostKey    string
}
