// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mst implements the minimum-spanning-tree/forest family of
// Kruskal's, Prim's and Boruvka's algorithms. All three
// operate on an undirected, weighted graph and, on a disconnected
// graph, return a minimum spanning forest rather than failing.
package mst

import (
	"sort"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/internal/heapq"
	"github.com/kalvaro/graphkit/props"
	"github.com/kalvaro/graphkit/set"
)

// weightedEdge pairs a graph edge with its resolved weight, the unit
// Kruskal sorts and Prim/Boruvka compare.
type weightedEdge struct {
	e graphkit.Edge
	w float64
}

// collectEdges walks every node's out-neighbors and returns one
// weightedEdge per undirected pair, deduplicated by normalized
// (min,max) endpoint ID. g.From reports each undirected edge from
// both endpoints, so without this dedup every edge would be seen
// twice.
func collectEdges(g graphkit.Graph, weight props.WeightFunc) []weightedEdge {
	nodes := graphkit.NodesOf(g.Nodes())
	seen := make(map[[2]int64]bool)
	var edges []weightedEdge
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			v := to.Node()
			if u.ID() == v.ID() {
				continue
			}
			key := [2]int64{u.ID(), v.ID()}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			w, ok := weight(u.ID(), v.ID())
			if !ok {
				continue
			}
			e := g.Edge(u.ID(), v.ID())
			if e == nil {
				e = g.Edge(v.ID(), u.ID())
			}
			edges = append(edges, weightedEdge{e: e, w: w})
		}
	}
	return edges
}

// Kruskal computes a minimum spanning tree (or forest, on a
// disconnected graph) of g by sorting every edge ascending by weight
// and greedily accepting an edge whenever its endpoints are still in
// different components of a disjoint-set forest
//
// Complexity is O(E log E).
func Kruskal(g graphkit.Graph, weight props.WeightFunc) (edges []graphkit.Edge, total float64) {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	all := collectEdges(g, weight)
	sort.Slice(all, func(i, j int) bool { return all[i].w < all[j].w })

	dsu := set.NewDisjoint()
	for _, n := range graphkit.NodesOf(g.Nodes()) {
		dsu.Add(n.ID())
	}

	for _, we := range all {
		u, v := we.e.From().ID(), we.e.To().ID()
		if dsu.Union(u, v) {
			edges = append(edges, we.e)
			total += we.w
		}
	}
	return edges, total
}

// PrimFrom computes a minimum spanning tree of the component of g
// containing root, growing a single frontier: pop the cheapest
// candidate edge whose far endpoint is outside the tree, add it, and
// push that endpoint's own outgoing edges On a
// disconnected graph, PrimFrom only covers root's own component; call
// it once per component (or use Boruvka) to recover a full forest.
//
// Complexity is O((V+E) log V).
func PrimFrom(g graphkit.Graph, root graphkit.Node, weight props.WeightFunc) (edges []graphkit.Edge, total float64) {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	visited := map[int64]bool{root.ID(): true}

	type candidate struct {
		e graphkit.Edge
		w float64
	}
	var queue heapq.Queue
	queue.Init()
	byFar := make(map[int64]candidate)

	push := func(u graphkit.Node) {
		to := g.From(u.ID())
		for to.Next() {
			v := to.Node()
			if visited[v.ID()] {
				continue
			}
			w, ok := weight(u.ID(), v.ID())
			if !ok {
				continue
			}
			if cur, ok := byFar[v.ID()]; !ok || w < cur.w {
				e := g.Edge(u.ID(), v.ID())
				if e == nil {
					e = g.Edge(v.ID(), u.ID())
				}
				byFar[v.ID()] = candidate{e: e, w: w}
				queue.PushItem(v.ID(), w)
			}
		}
	}
	push(root)

	for queue.Len() > 0 {
		item := queue.PopItem()
		far := item.ID
		if visited[far] {
			continue
		}
		cand, ok := byFar[far]
		if !ok || item.Priority > cand.w {
			continue // stale heap entry
		}
		visited[far] = true
		edges = append(edges, cand.e)
		total += cand.w
		push(g.Node(far))
	}
	return edges, total
}

// Boruvka computes a minimum spanning tree (or forest) of g in
// rounds: every current component finds its own cheapest outgoing
// edge, every such edge (deduplicated across the two components it
// joins) is added and its endpoints unioned Each
// round at least halves the number of components, so this converges
// in O(log V) rounds.
//
// Complexity is O(E log V).
func Boruvka(g graphkit.Graph, weight props.WeightFunc) (edges []graphkit.Edge, total float64) {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	all := collectEdges(g, weight)
	if len(all) == 0 {
		return nil, 0
	}

	dsu := set.NewDisjoint()
	for _, n := range graphkit.NodesOf(g.Nodes()) {
		dsu.Add(n.ID())
	}
	components := len(graphkit.NodesOf(g.Nodes()))

	for components > 1 {
		cheapest := make(map[int64]weightedEdge)
		changed := false
		for _, we := range all {
			ru, rv := dsu.Find(we.e.From().ID()), dsu.Find(we.e.To().ID())
			if ru == rv {
				continue
			}
			if cur, ok := cheapest[ru]; !ok || we.w < cur.w {
				cheapest[ru] = we
			}
			if cur, ok := cheapest[rv]; !ok || we.w < cur.w {
				cheapest[rv] = we
			}
		}
		if len(cheapest) == 0 {
			break // remaining components are mutually unreachable
		}
		added := make(map[[2]int64]bool)
		for _, we := range cheapest {
			u, v := we.e.From().ID(), we.e.To().ID()
			key := [2]int64{u, v}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if added[key] {
				continue
			}
			if dsu.Union(u, v) {
				added[key] = true
				edges = append(edges, we.e)
				total += we.w
				components--
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return edges, total
}
