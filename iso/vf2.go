// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"github.com/kalvaro/graphkit"
)

// adjacency is a plain set-of-neighbors view of a graph, built once so
// the search below never calls back into the graphkit.Graph iterator
// protocol on its hot path.
type adjacency struct {
	nodes []int64
	out   map[int64]map[int64]bool
	in    map[int64]map[int64]bool
}

func buildAdjacency(g graphkit.Graph) adjacency {
	nodes := graphkit.NodesOf(g.Nodes())
	a := adjacency{
		out: make(map[int64]map[int64]bool, len(nodes)),
		in:  make(map[int64]map[int64]bool, len(nodes)),
	}
	for _, n := range nodes {
		a.nodes = append(a.nodes, n.ID())
		a.out[n.ID()] = make(map[int64]bool)
		a.in[n.ID()] = make(map[int64]bool)
	}
	for _, n := range nodes {
		it := g.From(n.ID())
		for it.Next() {
			w := it.Node().ID()
			a.out[n.ID()][w] = true
			a.in[w][n.ID()] = true
		}
	}
	return a
}

func (a adjacency) degree(u int64) int { return len(a.out[u]) + len(a.in[u]) }

// state tracks one partial vertex mapping during the VF2 search: the
// two directions of the mapping, and the terminal sets (unmapped
// vertices adjacent to some already-mapped vertex) on each side.
type state struct {
	a, b         adjacency
	mapAtoB      map[int64]int64
	mapBtoA      map[int64]int64
	termA, termB map[int64]bool
}

func newState(a, b adjacency) *state {
	return &state{
		a: a, b: b,
		mapAtoB: make(map[int64]int64),
		mapBtoA: make(map[int64]int64),
		termA:   make(map[int64]bool),
		termB:   make(map[int64]bool),
	}
}

// candidatePairs draws the next (u, v) pair to try from the terminal
// sets when non-empty, falling back to any unmapped pair of vertices
// otherwise. This is the order VF2 uses to keep the search from
// wasting time on disconnected-from-the-mapping regions until it has to.
func (s *state) candidatePairs() (us, vs []int64) {
	if len(s.termA) > 0 && len(s.termB) > 0 {
		for u := range s.termA {
			us = append(us, u)
		}
		for v := range s.termB {
			vs = append(vs, v)
		}
		return us, vs
	}
	for _, u := range s.a.nodes {
		if _, ok := s.mapAtoB[u]; !ok {
			us = append(us, u)
		}
	}
	for _, v := range s.b.nodes {
		if _, ok := s.mapBtoA[v]; !ok {
			vs = append(vs, v)
		}
	}
	return us, vs
}

// feasible reports whether mapping u (in a) to v (in b) is consistent
// with every vertex already mapped: every already-mapped neighbor of u
// must map to a neighbor of v, and vice versa, in both edge
// directions (syntactic feasibility). Degree parity is checked first
// as a cheap rejection.
func (s *state) feasible(u, v int64) bool {
	if s.a.degree(u) != s.b.degree(v) {
		return false
	}
	for w := range s.a.out[u] {
		if mapped, ok := s.mapAtoB[w]; ok {
			if !s.b.out[v][mapped] {
				return false
			}
		}
	}
	for w := range s.a.in[u] {
		if mapped, ok := s.mapAtoB[w]; ok {
			if !s.b.in[v][mapped] {
				return false
			}
		}
	}
	for w := range s.b.out[v] {
		if mapped, ok := s.mapBtoA[w]; ok {
			if !s.a.out[u][mapped] {
				return false
			}
		}
	}
	for w := range s.b.in[v] {
		if mapped, ok := s.mapBtoA[w]; ok {
			if !s.a.in[u][mapped] {
				return false
			}
		}
	}
	return true
}

// push extends the mapping with (u, v) and grows the terminal sets
// with any newly-adjacent unmapped vertex on each side.
func (s *state) push(u, v int64) {
	s.mapAtoB[u] = v
	s.mapBtoA[v] = u
	delete(s.termA, u)
	delete(s.termB, v)

	for w := range s.a.out[u] {
		if _, mapped := s.mapAtoB[w]; !mapped {
			s.termA[w] = true
		}
	}
	for w := range s.a.in[u] {
		if _, mapped := s.mapAtoB[w]; !mapped {
			s.termA[w] = true
		}
	}
	for w := range s.b.out[v] {
		if _, mapped := s.mapBtoA[w]; !mapped {
			s.termB[w] = true
		}
	}
	for w := range s.b.in[v] {
		if _, mapped := s.mapBtoA[w]; !mapped {
			s.termB[w] = true
		}
	}
}

// pop undoes push(u, v). The terminal sets are not precisely restored
// to their pre-push contents (a vertex added to termA by this push may
// also be adjacent to an earlier-mapped vertex and so should remain);
// recomputing membership from the current mapping keeps it correct.
func (s *state) pop(u, v int64) {
	delete(s.mapAtoB, u)
	delete(s.mapBtoA, v)
	s.recomputeTerminals()
}

func (s *state) recomputeTerminals() {
	for k := range s.termA {
		delete(s.termA, k)
	}
	for k := range s.termB {
		delete(s.termB, k)
	}
	for u := range s.mapAtoB {
		for w := range s.a.out[u] {
			if _, mapped := s.mapAtoB[w]; !mapped {
				s.termA[w] = true
			}
		}
		for w := range s.a.in[u] {
			if _, mapped := s.mapAtoB[w]; !mapped {
				s.termA[w] = true
			}
		}
	}
	for v := range s.mapBtoA {
		for w := range s.b.out[v] {
			if _, mapped := s.mapBtoA[w]; !mapped {
				s.termB[w] = true
			}
		}
		for w := range s.b.in[v] {
			if _, mapped := s.mapBtoA[w]; !mapped {
				s.termB[w] = true
			}
		}
	}
}

func (s *state) complete() bool { return len(s.mapAtoB) == len(s.a.nodes) }

func (s *state) search() (map[int64]int64, bool) {
	if s.complete() {
		result := make(map[int64]int64, len(s.mapAtoB))
		for k, v := range s.mapAtoB {
			result[k] = v
		}
		return result, true
	}

	us, vs := s.candidatePairs()
	for _, u := range us {
		if _, mapped := s.mapAtoB[u]; mapped {
			continue
		}
		for _, v := range vs {
			if _, mapped := s.mapBtoA[v]; mapped {
				continue
			}
			if !s.feasible(u, v) {
				continue
			}
			s.push(u, v)
			if mapping, ok := s.search(); ok {
				return mapping, true
			}
			s.pop(u, v)
		}
	}
	return nil, false
}

// VF2Isomorphic reports whether a and b are isomorphic, and if so
// returns a vertex mapping from a's vertex IDs to b's. A graph's
// vertex and edge labels are not considered: this is a structural
// isomorphism test over vertex IDs and adjacency only.
//
// There is no VF2 implementation anywhere in gonum (graph isomorphism
// is notably absent from its graph/ subpackages); this is built
// directly from the standard VF2 shape: grow a partial
// mapping one feasible pair at a time, drawn from the terminal sets of
// already-mapped vertices, backtracking on infeasibility.
func VF2Isomorphic(a, b graphkit.Graph) (mapping map[int64]int64, ok bool) {
	an, bn := graphkit.NodesOf(a.Nodes()), graphkit.NodesOf(b.Nodes())
	if len(an) != len(bn) {
		return nil, false
	}
	adjA, adjB := buildAdjacency(a), buildAdjacency(b)
	if countEdges(adjA) != countEdges(adjB) {
		return nil, false
	}
	return newState(adjA, adjB).search()
}

func countEdges(a adjacency) int {
	var n int
	for _, out := range a.out {
		n += len(out)
	}
	return n
}

// VF2SubgraphIsomorphic reports whether pattern occurs as a subgraph
// of target: a partial mapping that covers every vertex of pattern
// is sufficient, target need not be fully covered. Feasibility only
// requires pattern's edges to be present in target, not the reverse,
// so target may have extra edges between mapped vertices.
func VF2SubgraphIsomorphic(pattern, target graphkit.Graph) (mapping map[int64]int64, ok bool) {
	pn, tn := graphkit.NodesOf(pattern.Nodes()), graphkit.NodesOf(target.Nodes())
	if len(pn) > len(tn) {
		return nil, false
	}
	s := newState(buildAdjacency(pattern), buildAdjacency(target))
	return s.searchSubgraph()
}

// searchSubgraph is search with the completion condition relaxed to
// "every pattern vertex mapped" and feasibility relaxed to one-
// directional (pattern edges must exist in target; target may carry
// extras), matching the standard VF2 subgraph-isomorphism variant.
func (s *state) searchSubgraph() (map[int64]int64, bool) {
	if len(s.mapAtoB) == len(s.a.nodes) {
		result := make(map[int64]int64, len(s.mapAtoB))
		for k, v := range s.mapAtoB {
			result[k] = v
		}
		return result, true
	}

	us, vs := s.candidatePairs()
	for _, u := range us {
		if _, mapped := s.mapAtoB[u]; mapped {
			continue
		}
		for _, v := range vs {
			if _, mapped := s.mapBtoA[v]; mapped {
				continue
			}
			if !s.subgraphFeasible(u, v) {
				continue
			}
			s.push(u, v)
			if mapping, ok := s.searchSubgraph(); ok {
				return mapping, true
			}
			s.pop(u, v)
		}
	}
	return nil, false
}

func (s *state) subgraphFeasible(u, v int64) bool {
	if s.a.degree(u) > s.b.degree(v) {
		return false
	}
	for w := range s.a.out[u] {
		if mapped, ok := s.mapAtoB[w]; ok {
			if !s.b.out[v][mapped] {
				return false
			}
		}
	}
	for w := range s.a.in[u] {
		if mapped, ok := s.mapAtoB[w]; ok {
			if !s.b.in[v][mapped] {
				return false
			}
		}
	}
	return true
}
