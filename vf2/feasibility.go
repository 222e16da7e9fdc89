// File: feasibility.go
// Role: Feasibility oracle (spec 4.4) — the six syntactic predicates plus
// the pluggable semantic predicate. All are pure queries over the matcher
// state and the two graphs; none mutate anything.
//
// Evaluation order is fixed: R_self, R_pred, R_succ, R_in, R_out, R_new,
// short-circuiting on the first failure. Semantic feasibility is checked
// separately by the caller, before the structural tests, as a cheap filter.
package vf2

import "github.com/katalvlaran/vf2/core"

// syntacticFeasible runs the six R_* predicates in their documented order,
// stopping at the first failure.
func (st *state) syntacticFeasible(p, h string) (bool, error) {
	ok, err := st.rSelf(p, h)
	if err != nil || !ok {
		return false, err
	}
	if ok, err = st.rPred(p, h); err != nil || !ok {
		return false, err
	}
	if ok, err = st.rSucc(p, h); err != nil || !ok {
		return false, err
	}
	if ok, err = st.rInOut(p, h, st.inP, st.inH); err != nil || !ok {
		return false, err
	}
	if ok, err = st.rInOut(p, h, st.outP, st.outH); err != nil || !ok {
		return false, err
	}

	return st.rNew(p, h)
}

// rSelf compares self-loop multiplicity. The source's mono branch uses
// strict equality here too, even though the technically correct relation
// for monomorphism would be >=; this implementation preserves that
// documented behavior rather than silently diverging (see DESIGN.md).
func (st *state) rSelf(p, h string) (bool, error) {
	return st.p.EdgeMultiplicity(p, p) == st.h.EdgeMultiplicity(h, h), nil
}

// rPred checks predecessor consistency in both directions: every already
// mapped predecessor of p must correspond to a mapped predecessor of h
// with matching edge multiplicity, and vice versa.
func (st *state) rPred(p, h string) (bool, error) {
	preds, err := st.p.Predecessors(p)
	if err != nil {
		return false, wrapUnknown(err)
	}
	for _, n := range preds {
		hp, mapped := st.coreP[n.ID]
		if !mapped {
			continue
		}
		if st.p.EdgeMultiplicity(n.ID, p) != st.h.EdgeMultiplicity(hp, h) {
			return false, nil
		}
	}

	hPreds, err := st.h.Predecessors(h)
	if err != nil {
		return false, wrapUnknown(err)
	}
	for _, m := range hPreds {
		pm, mapped := st.coreH[m.ID]
		if !mapped {
			continue
		}
		if st.p.EdgeMultiplicity(pm, p) != st.h.EdgeMultiplicity(m.ID, h) {
			return false, nil
		}
	}

	return true, nil
}

// rSucc is symmetric to rPred over successors.
func (st *state) rSucc(p, h string) (bool, error) {
	succs, err := st.p.Successors(p)
	if err != nil {
		return false, wrapUnknown(err)
	}
	for _, n := range succs {
		hp, mapped := st.coreP[n.ID]
		if !mapped {
			continue
		}
		if st.p.EdgeMultiplicity(p, n.ID) != st.h.EdgeMultiplicity(h, hp) {
			return false, nil
		}
	}

	hSuccs, err := st.h.Successors(h)
	if err != nil {
		return false, wrapUnknown(err)
	}
	for _, m := range hSuccs {
		pm, mapped := st.coreH[m.ID]
		if !mapped {
			continue
		}
		if st.h.EdgeMultiplicity(h, m.ID) != st.p.EdgeMultiplicity(p, pm) {
			return false, nil
		}
	}

	return true, nil
}

// rInOut implements both R_in and R_out: the caller selects which pair of
// frontier maps (inP/inH for R_in, outP/outH for R_out) to count against.
// It counts, among p's predecessors and successors, how many lie in the
// pattern-side terminal set T = frontier \ core, and likewise for h and
// the host-side terminal set, then compares each pair of counts with the
// mode's comparison operator.
func (st *state) rInOut(p, h string, frontP, frontH map[string]int) (bool, error) {
	preds, err := st.p.Predecessors(p)
	if err != nil {
		return false, wrapUnknown(err)
	}
	succs, err := st.p.Successors(p)
	if err != nil {
		return false, wrapUnknown(err)
	}
	hPreds, err := st.h.Predecessors(h)
	if err != nil {
		return false, wrapUnknown(err)
	}
	hSuccs, err := st.h.Successors(h)
	if err != nil {
		return false, wrapUnknown(err)
	}

	a := countIn(preds, frontP, st.coreP)
	b := countIn(hPreds, frontH, st.coreH)
	c := countIn(succs, frontP, st.coreP)
	d := countIn(hSuccs, frontH, st.coreH)

	return st.opts.compare(a, b) && st.opts.compare(c, d), nil
}

// rNew implements the 2-step look-ahead: counts neighbors lying outside
// both frontiers and the core mapping entirely.
func (st *state) rNew(p, h string) (bool, error) {
	preds, err := st.p.Predecessors(p)
	if err != nil {
		return false, wrapUnknown(err)
	}
	succs, err := st.p.Successors(p)
	if err != nil {
		return false, wrapUnknown(err)
	}
	hPreds, err := st.h.Predecessors(h)
	if err != nil {
		return false, wrapUnknown(err)
	}
	hSuccs, err := st.h.Successors(h)
	if err != nil {
		return false, wrapUnknown(err)
	}

	a := countOutsideBoth(preds, st.inP, st.outP)
	b := countOutsideBoth(hPreds, st.inH, st.outH)
	c := countOutsideBoth(succs, st.inP, st.outP)
	d := countOutsideBoth(hSuccs, st.inH, st.outH)

	return st.opts.compare(a, b) && st.opts.compare(c, d), nil
}

// countIn counts how many of vs belong to the terminal set frontier \ core,
// i.e. have an entry in frontier but are not yet bound in the core mapping.
// A vertex stays a permanent member of its own in/out map once mapped (see
// extend), so without this exclusion a mapped neighbor would keep inflating
// the count for the rest of the search. Mirrors terminalSet's exclusion.
func countIn(vs []*core.Vertex, frontier map[string]int, mapped map[string]string) int {
	var n int
	for _, v := range vs {
		if _, bound := mapped[v.ID]; bound {
			continue
		}
		if _, ok := frontier[v.ID]; ok {
			n++
		}
	}

	return n
}

// countOutsideBoth counts how many of vs appear in neither in nor out.
func countOutsideBoth(vs []*core.Vertex, in, out map[string]int) int {
	var n int
	for _, v := range vs {
		_, inIn := in[v.ID]
		_, inOut := out[v.ID]
		if !inIn && !inOut {
			n++
		}
	}

	return n
}
