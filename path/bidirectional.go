// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/internal/heapq"
	"github.com/kalvaro/graphkit/props"
)

// reverseOf returns a view of g with edge direction flipped: From
// reports in-neighbors and Edge(uid, vid) returns the real graph edge
// vid->uid (not a synthesized reversed edge), so that a search over
// this view still records genuine, correctly-oriented graph edges in
// its predecessor table. Bidirectional Dijkstra's backward frontier
// runs over this view. For a g that does not implement
// graphkit.Directed (i.e. is already undirected), forward and
// backward neighborhoods coincide and reverseOf is the identity.
func reverseOf(g graphkit.Graph) graphkit.Graph {
	if d, ok := g.(graphkit.Directed); ok {
		return &reversedGraph{g: g, d: d}
	}
	return g
}

type reversedGraph struct {
	g graphkit.Graph
	d graphkit.Directed
}

func (r *reversedGraph) Node(id int64) graphkit.Node  { return r.g.Node(id) }
func (r *reversedGraph) Nodes() graphkit.Nodes        { return r.g.Nodes() }
func (r *reversedGraph) From(id int64) graphkit.Nodes { return r.d.To(id) }
func (r *reversedGraph) HasEdgeBetween(xid, yid int64) bool {
	return r.g.HasEdgeBetween(xid, yid)
}
func (r *reversedGraph) Edge(uid, vid int64) graphkit.Edge { return r.g.Edge(vid, uid) }

// BidirectionalDijkstra runs two Dijkstra frontiers toward each other,
// forward from source and backward from target over reversed in-edges,
// stopping as soon as the sum of the two frontiers'
// minimum tentative distances reaches the best joined distance μ found
// so far. This explores fewer vertices than a single Dijkstra search
// when source and target are far apart in a large graph, at the cost
// of maintaining two frontiers.
func BidirectionalDijkstra(g graphkit.Graph, source, target graphkit.Node, weight props.WeightFunc) (edges []graphkit.Edge, cost float64, ok bool) {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	nodes := graphkit.NodesOf(g.Nodes())
	fwd := newShortest(source, nodes)
	back := newShortest(target, nodes)
	if _, ok := fwd.indexOf[source.ID()]; !ok {
		return nil, 0, false
	}
	if _, ok := back.indexOf[target.ID()]; !ok {
		return nil, 0, false
	}
	if source.ID() == target.ID() {
		return nil, 0, true
	}

	backG := reverseOf(g)
	backWeight := props.WeightFunc(func(uid, vid int64) (float64, bool) { return weight(vid, uid) })

	var fq, bq heapq.Queue
	fq.Init()
	bq.Init()
	fq.PushItem(source.ID(), 0)
	bq.PushItem(target.ID(), 0)

	mu := math.Inf(1)
	meeting := int64(-1)

	for fq.Len() > 0 && bq.Len() > 0 {
		if fq[0].Priority+bq[0].Priority >= mu {
			break
		}
		if fq[0].Priority <= bq[0].Priority {
			biStep(g, weight, &fwd, &fq, &back, &mu, &meeting)
		} else {
			biStep(backG, backWeight, &back, &bq, &fwd, &mu, &meeting)
		}
	}

	if meeting < 0 {
		return nil, math.Inf(1), false
	}

	forwardHalf, _, ok := fwd.To(meeting)
	if !ok && meeting != source.ID() {
		return nil, math.Inf(1), false
	}
	backwardHalf := backPathTo(back, meeting)
	result := make([]graphkit.Edge, 0, len(forwardHalf)+len(backwardHalf))
	result = append(result, forwardHalf...)
	result = append(result, backwardHalf...)
	return result, mu, true
}

// biStep pops one vertex off q's frontier and relaxes its out-edges
// against view/weight, updating tree. Whenever a relaxed neighbor is
// already known to the other frontier (other), it tries to tighten mu
// and record meeting's "whenever a relaxation
// discovers v already seen on the other side" rule.
func biStep(view graphkit.Graph, weight props.WeightFunc, tree *Shortest, q *heapq.Queue, other *Shortest, mu *float64, meeting *int64) {
	if q.Len() == 0 {
		return
	}
	item := q.PopItem()
	k := tree.indexOf[item.ID]
	if item.Priority > tree.dist[k] {
		return
	}
	cur := tree.nodes[k]

	to := view.From(item.ID)
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
		alt := tree.dist[k] + w
		if alt < tree.dist[j] {
			tree.dist[j] = alt
			tree.pred[j] = edgeBetween(view, cur, v)
			tree.has[j] = true
			q.PushItem(v.ID(), alt)
		}
		if oj, ok := other.indexOf[v.ID()]; ok && !math.IsInf(other.dist[oj], 1) {
			if combined := tree.dist[j] + other.dist[oj]; combined < *mu {
				*mu = combined
				*meeting = v.ID()
			}
		}
	}
}

// backPathTo reconstructs the path from vid to tree's root by walking
// the predecessor table via each edge's destination rather than its
// source. On a directed graph tree.pred[i] holds the genuine graph edge
// (node-at-i -> predecessor) discovered while searching in-edges from
// the root, so stepping via the edge's destination (not its source,
// which names the node at i itself) is what advances toward the root.
// On an undirected graph the stored edge may be oriented either way,
// so the step takes whichever endpoint is not the node at i.
func backPathTo(tree Shortest, vid int64) []graphkit.Edge {
	i, ok := tree.indexOf[vid]
	if !ok {
		return nil
	}
	var edges []graphkit.Edge
	for tree.has[i] {
		e := tree.pred[i]
		edges = append(edges, e)
		next := e.To().ID()
		if next == tree.nodes[i].ID() {
			next = e.From().ID()
		}
		i = tree.indexOf[next]
	}
	return edges
}
