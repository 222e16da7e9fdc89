// File: candidates.go
// Role: Candidate-pair generator (spec 4.3). Pairs every unmapped pattern
// node on the "active" frontier against a single, deterministically chosen
// host node, converting what would otherwise be a Cartesian blow-up into a
// linear scan while preserving completeness.
package vf2

import "sort"

// candidatePairs computes the next batch of (pattern key, host key) pairs
// to try at the current depth.
//
// Priority order:
//  1. T_out_P x {argmin T_out_H}, if both terminal sets are non-empty.
//  2. T_in_P x {argmin T_in_H}, if both are non-empty (including the case
//     where step 1 found exactly one of its two sets empty).
//  3. (V(P) \ dom(core_P)) x {argmin(V(H) \ dom(core_H))}, the fallback
//     used once neither frontier has an open pair on both sides.
func (st *state) candidatePairs() []pairCandidate {
	tOutP := terminalSet(st.outP, st.coreP)
	tOutH := terminalSet(st.outH, st.coreH)
	if len(tOutP) > 0 && len(tOutH) > 0 {
		return st.pairAgainstMin(tOutP, tOutH)
	}

	tInP := terminalSet(st.inP, st.coreP)
	tInH := terminalSet(st.inH, st.coreH)
	if len(tInP) > 0 && len(tInH) > 0 {
		return st.pairAgainstMin(tInP, tInH)
	}

	restP := remaining(st.p.Vertices(), st.coreP)
	restH := remaining(st.h.Vertices(), st.coreH)

	return st.pairAgainstMin(restP, restH)
}

// pairCandidate is one tentative (pattern key, host key) pair offered to
// the feasibility oracle.
type pairCandidate struct {
	p string
	h string
}

// pairAgainstMin pairs every key in ps against the single key in hs with
// the smallest position in the matcher's frozen host ordering.
func (st *state) pairAgainstMin(ps, hs []string) []pairCandidate {
	if len(hs) == 0 {
		return nil
	}
	hMin := hs[0]
	for _, h := range hs[1:] {
		if st.hOrder[h] < st.hOrder[hMin] {
			hMin = h
		}
	}

	out := make([]pairCandidate, 0, len(ps))
	for _, p := range ps {
		out = append(out, pairCandidate{p: p, h: hMin})
	}

	return out
}

// terminalSet returns the derived terminal set T = domain(frontier) \
// domain(core): frontier keys that have not yet been bound.
func terminalSet(frontier map[string]int, core map[string]string) []string {
	out := make([]string, 0, len(frontier))
	for k := range frontier {
		if _, bound := core[k]; !bound {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// remaining returns every key of all that is not yet a key of core. all is
// assumed already in a stable order (core.Graph.Vertices returns sorted
// keys); remaining preserves that order rather than re-sorting.
func remaining(all []string, core map[string]string) []string {
	out := make([]string, 0, len(all))
	for _, k := range all {
		if _, bound := core[k]; !bound {
			out = append(out, k)
		}
	}

	return out
}
