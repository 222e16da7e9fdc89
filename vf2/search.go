// File: search.go
// Role: Search driver (spec 4.2) and the engine's public surface. Match
// constructs a Matcher, runs the depth-first backtracking search, and
// reports every complete mapping to a caller-supplied sink.
//
// Termination condition: the source this engine is modeled on compares
// |core_P| against |V(H)|, which only coincides with "the pattern is
// fully mapped" when |V(P)| == |V(H)|. This implementation uses the
// algorithmically correct |core_P| == |V(P)|, matching the engine's
// published form rather than reproducing the source's discrepancy; see
// DESIGN.md for the open-question disposition.
package vf2

// Sink receives each complete mapping as it is discovered. Returning false
// stops the search early, equivalent to WithLimit but driven by the
// caller's own logic instead of a fixed count.
type Sink func(Mapping) (keepGoing bool)

// Matcher runs VF2 subgraph isomorphism search between a pattern graph and
// a host graph. A Matcher is single-use: construct one per (P, H, options)
// combination via NewMatcher.
type Matcher struct {
	p, h Graph
	opts Options
}

// NewMatcher constructs a Matcher in the mode and with the semantic
// predicate described by opts (ModeGraph and DefaultSemanticPredicate if
// opts is the zero value or options are omitted).
//
// NewMatcher never fails given non-nil graphs: construction has no
// dependency on graph contents.
func NewMatcher(p, h Graph, options ...Option) (*Matcher, error) {
	if p == nil || h == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.Semantic == nil {
		cfg.Semantic = DefaultSemanticPredicate
	}

	return &Matcher{p: p, h: h, opts: cfg}, nil
}

// Enumerate runs the search, invoking sink once per complete mapping found.
// It returns ErrUnknownNode if the graphs' adjacency queries reference a
// key absent from their own node set; any other failure is not possible
// here since negative feasibility results are ordinary branch prunes, not
// errors.
func (m *Matcher) Enumerate(sink Sink) error {
	st := newState(m.p, m.h, m.opts)
	emitted := 0
	_, err := m.search(st, sink, &emitted)

	return err
}

// Match runs a Matcher over p and h and returns every mapping found, in
// the order Enumerate discovered them. It is a convenience wrapper over
// Enumerate for callers who want the whole result set materialized.
func Match(p, h Graph, options ...Option) ([]Mapping, error) {
	m, err := NewMatcher(p, h, options...)
	if err != nil {
		return nil, err
	}

	var out []Mapping
	collectErr := m.Enumerate(func(mp Mapping) bool {
		out = append(out, mp)

		return true
	})
	if collectErr != nil {
		return nil, collectErr
	}

	return out, nil
}

// search is the recursive driver. emitted is shared across the whole
// search tree (not copied per call) so WithLimit can be enforced across
// sibling branches, not just within one. search returns (keepGoing, err):
// keepGoing is false once the sink has asked to stop or the configured
// Limit has been reached, in which case every enclosing call unwinds
// without trying further candidates.
func (m *Matcher) search(st *state, sink Sink, emitted *int) (bool, error) {
	if st.depth() == len(st.p.Vertices()) {
		keepGoing := sink(st.snapshot())
		*emitted++
		if m.opts.Limit > 0 && *emitted >= m.opts.Limit {
			return false, nil
		}

		return keepGoing, nil
	}

	for _, cand := range st.candidatePairs() {
		if !m.opts.Semantic(m.p, m.h, cand.p, cand.h) {
			continue
		}
		ok, err := st.syntacticFeasible(cand.p, cand.h)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		d, err := st.extend(cand.p, cand.h)
		if err != nil {
			return false, err
		}

		keepGoing, err := m.search(st, sink, emitted)
		st.restore(d)
		if err != nil {
			return false, err
		}
		if !keepGoing {
			return false, nil
		}
	}

	return true, nil
}
