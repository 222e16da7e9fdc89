// File: state.go
// Role: Matcher state M — the partial mapping, the four depth-annotated
// frontier sets, and the extend/restore state-transition discipline that
// advances and undoes one level of search.
//
// Depth annotations are the mechanism that makes restore cheap: every
// frontier entry records the search depth at which it was first inserted,
// so restore(delta) only has to delete entries whose depth equals the
// depth that extend recorded, rather than diffing the whole state.
package vf2

import (
	"fmt"
	"sort"
)

// delta is the record extend returns and restore consumes: exactly enough
// information to undo one extend call.
type delta struct {
	p     string
	h     string
	depth int
}

// state is the mutable matcher state M shared across one enumerate call.
// It is never cloned; extend/restore mutate it in place on the call stack
// of the recursive search driver.
type state struct {
	p, h Graph
	opts Options

	// hOrder maps each host key to its position in the fixed traversal
	// order computed once at construction (used only to pick the
	// argmin host candidate in the generator).
	hOrder map[string]int

	// coreP/coreH hold the current partial injection and its inverse.
	coreP map[string]string
	coreH map[string]string

	// in*/out* map a node key to the depth at which it first entered the
	// corresponding frontier.
	inP  map[string]int
	outP map[string]int
	inH  map[string]int
	outH map[string]int
}

// newState constructs M with empty mapping tables and a frozen host node
// ordering. p and h must be non-nil; callers validate that upstream.
//
// The ordering itself prefers opts.HostOrder when the caller supplied one
// covering every host vertex (e.g. a topological or breadth-first order
// computed ahead of the search); otherwise it falls back to h.Vertices().
func newState(p, h Graph, opts Options) *state {
	hKeys := h.Vertices()
	if len(opts.HostOrder) == h.VertexCount() {
		hKeys = opts.HostOrder
	}

	hOrder := make(map[string]int, len(hKeys))
	for i, k := range hKeys {
		hOrder[k] = i
	}

	return &state{
		p:      p,
		h:      h,
		opts:   opts,
		hOrder: hOrder,
		coreP:  make(map[string]string),
		coreH:  make(map[string]string),
		inP:    make(map[string]int),
		outP:   make(map[string]int),
		inH:    make(map[string]int),
		outH:   make(map[string]int),
	}
}

// depth returns the cardinality of the current partial mapping.
func (st *state) depth() int {
	return len(st.coreP)
}

// extend binds pattern key p to host key h, seeds the four frontier sets
// with any newly discovered neighbors, and returns the delta needed to
// undo this call.
//
// extend never overwrites an existing frontier depth: step 3/4 of the
// spec's state-transition algorithm insert only keys that are not already
// present, so an older entry always keeps its original (shallower) depth.
func (st *state) extend(p, h string) (delta, error) {
	d := st.depth()

	st.coreP[p] = h
	st.coreH[h] = p

	if _, ok := st.inP[p]; !ok {
		st.inP[p] = d
	}
	if _, ok := st.outP[p]; !ok {
		st.outP[p] = d
	}
	if _, ok := st.inH[h]; !ok {
		st.inH[h] = d
	}
	if _, ok := st.outH[h]; !ok {
		st.outH[h] = d
	}

	if err := st.seedFrontier(st.p, st.coreP, st.inP, st.outP, d); err != nil {
		return delta{}, err
	}
	if err := st.seedFrontier(st.h, st.coreH, st.inH, st.outH, d); err != nil {
		return delta{}, err
	}

	return delta{p: p, h: h, depth: d}, nil
}

// seedFrontier scans every currently mapped key of one side (pattern or
// host, selected by which core/in/out maps are passed) and inserts its
// not-yet-mapped predecessors into in and successors into out, at depth d
// (the pre-insertion depth recorded by the caller — every entry created by
// one extend call carries the same depth, whether it is the newly mapped
// node itself or a neighbor discovered while seeding).
func (st *state) seedFrontier(g Graph, core map[string]string, in, out map[string]int, d int) error {
	for mapped := range core {
		preds, err := g.Predecessors(mapped)
		if err != nil {
			return wrapUnknown(err)
		}
		for _, pr := range preds {
			if _, inCore := core[pr.ID]; inCore {
				continue
			}
			if _, ok := in[pr.ID]; !ok {
				in[pr.ID] = d
			}
		}

		succs, err := g.Successors(mapped)
		if err != nil {
			return wrapUnknown(err)
		}
		for _, sc := range succs {
			if _, inCore := core[sc.ID]; inCore {
				continue
			}
			if _, ok := out[sc.ID]; !ok {
				out[sc.ID] = d
			}
		}
	}

	return nil
}

// restore undoes exactly the mutation that produced d: it removes the pair
// from the core mappings and deletes every frontier entry inserted at d's
// depth, from all four frontier sets.
func (st *state) restore(d delta) {
	delete(st.coreP, d.p)
	delete(st.coreH, d.h)

	purgeDepth(st.inP, d.depth)
	purgeDepth(st.outP, d.depth)
	purgeDepth(st.inH, d.depth)
	purgeDepth(st.outH, d.depth)
}

// wrapUnknown reports any Predecessors/Successors failure as ErrUnknownNode:
// per the engine's error-handling policy, an adjacency query against a
// well-formed graph never fails, so a failure here means the graph itself
// references a key it does not recognize.
func wrapUnknown(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrUnknownNode, err)
}

// purgeDepth removes every entry of m whose value equals depth.
func purgeDepth(m map[string]int, depth int) {
	for k, v := range m {
		if v == depth {
			delete(m, k)
		}
	}
}

// snapshot copies the current partial mapping into an independent Mapping,
// sorted by pattern key for deterministic output, and hands it to the
// caller's sink.
func (st *state) snapshot() Mapping {
	out := make(Mapping, 0, len(st.coreP))
	for p, h := range st.coreP {
		out = append(out, Pair{PatternKey: p, HostKey: h})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PatternKey < out[j].PatternKey })

	return out
}
