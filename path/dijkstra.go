// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/internal/heapq"
	"github.com/kalvaro/graphkit/props"
)

// DijkstraFrom returns a shortest-path tree for a shortest path from u
// to every node in g reachable from it, using weight to cost each
// edge. If weight is nil, props.FromWeighted(g) is used. DijkstraFrom
// panics if a reachable edge carries a negative weight, the one
// precondition violation this package panics on rather than
// reporting as a result discriminant.
//
// Complexity is O((V+E) log V).
func DijkstraFrom(g graphkit.Graph, u graphkit.Node, weight props.WeightFunc) Shortest {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	tree := newShortest(u, nodes)
	if _, ok := tree.indexOf[u.ID()]; !ok {
		return tree
	}
	dijkstra(g, u, weight, &tree, nil)
	return tree
}

// DijkstraFromTo returns a shortest path from u to t in g, terminating
// as soon as t is popped off the frontier: the relaxation engine's
// until predicate, specialized to a single target.
func DijkstraFromTo(g graphkit.Graph, u, t graphkit.Node, weight props.WeightFunc) (edges []graphkit.Edge, cost float64, ok bool) {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	tree := newShortest(u, nodes)
	if _, ok := tree.indexOf[u.ID()]; !ok {
		return nil, 0, false
	}
	dijkstra(g, u, weight, &tree, t)
	return tree.To(t.ID())
}

// dijkstra runs the shared relaxation engine: a distance table, a
// predecessor table, a min-heap frontier
// keyed by tentative distance, and a closed set realized as "skip a
// popped entry whose priority no longer matches the authoritative
// distance." If until is non-nil, the search stops as soon as it is
// popped off the frontier.
func dijkstra(g graphkit.Graph, u graphkit.Node, weight props.WeightFunc, tree *Shortest, until graphkit.Node) {
	var q heapq.Queue
	q.Init()
	q.PushItem(u.ID(), 0)

	for q.Len() > 0 {
		item := q.PopItem()
		k := tree.indexOf[item.ID]
		if item.Priority > tree.dist[k] {
			continue // stale heap entry
		}
		if until != nil && item.ID == until.ID() {
			return
		}
		cur := tree.nodes[k]

		to := g.From(item.ID)
		for to.Next() {
			v := to.Node()
			j, ok := tree.indexOf[v.ID()]
			if !ok {
				continue
			}
			w, ok := weight(item.ID, v.ID())
			if !ok {
				continue
			}
			if w < 0 {
				panic("path: negative edge weight under Dijkstra")
			}
			alt := tree.dist[k] + w
			if alt < tree.dist[j] {
				tree.dist[j] = alt
				tree.pred[j] = edgeBetween(g, cur, v)
				tree.has[j] = true
				q.PushItem(v.ID(), alt)
			}
		}
	}
}

// edgeBetween recovers the graphkit.Edge for a relaxed hop, preferring
// the graph's own Edge accessor and falling back to a synthetic edge
// for graphs that only expose weights, not edge objects.
func edgeBetween(g graphkit.Graph, u, v graphkit.Node) graphkit.Edge {
	if e := g.Edge(u.ID(), v.ID()); e != nil {
		return e
	}
	return syntheticEdge{f: u, t: v}
}

type syntheticEdge struct{ f, t graphkit.Node }

func (e syntheticEdge) From() graphkit.Node         { return e.f }
func (e syntheticEdge) To() graphkit.Node           { return e.t }
func (e syntheticEdge) ReversedEdge() graphkit.Edge { return syntheticEdge{e.t, e.f} }

// DijkstraAllPaths returns an all-pairs shortest-path table for g,
// built from |V| independent single-source Dijkstra runs sharing one
// AllShortest result. It panics under the same negative-weight
// precondition as DijkstraFrom.
//
// Complexity is O(V.E + V^2 log V).
func DijkstraAllPaths(g graphkit.Graph, weight props.WeightFunc) AllShortest {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	paths := newAllShortest(nodes)

	var q heapq.Queue
	for i, u := range nodes {
		q = q[:0]
		q.Init()
		q.PushItem(u.ID(), 0)
		for q.Len() > 0 {
			item := q.PopItem()
			k := paths.indexOf[item.ID]
			cur := paths.dist.At(i, k)
			if item.Priority > cur {
				continue
			}
			to := g.From(item.ID)
			for to.Next() {
				v := to.Node()
				j := paths.indexOf[v.ID()]
				w, ok := weight(item.ID, v.ID())
				if !ok {
					continue
				}
				if w < 0 {
					panic("path: negative edge weight under Dijkstra")
				}
				alt := cur + w
				if alt <= paths.dist.At(i, j) {
					paths.relax(i, k, j, alt)
					q.PushItem(v.ID(), alt)
				}
			}
		}
	}
	return paths
}
