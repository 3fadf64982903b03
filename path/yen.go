// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/internal/heapq"
	"github.com/kalvaro/graphkit/iterator"
	"github.com/kalvaro/graphkit/props"
)

// edgeKey identifies a directed edge by its endpoint IDs, used to mark
// edges excluded from a spur search.
type edgeKey struct{ u, v int64 }

// maskedGraph is a read-only view of a graphkit.Graph with a subset of
// nodes and edges hidden, used by Yen's algorithm to search for a spur
// path without mutating the underlying graph.
type maskedGraph struct {
	g           graphkit.Graph
	removedNode map[int64]bool
	removedEdge map[edgeKey]bool
}

func (m *maskedGraph) Node(id int64) graphkit.Node {
	if m.removedNode[id] {
		return nil
	}
	return m.g.Node(id)
}

func (m *maskedGraph) Nodes() graphkit.Nodes {
	all := graphkit.NodesOf(m.g.Nodes())
	out := make([]graphkit.Node, 0, len(all))
	for _, n := range all {
		if !m.removedNode[n.ID()] {
			out = append(out, n)
		}
	}
	return iterator.NewOrderedNodes(out)
}

func (m *maskedGraph) From(id int64) graphkit.Nodes {
	if m.removedNode[id] {
		return graphkit.Empty
	}
	all := graphkit.NodesOf(m.g.From(id))
	out := make([]graphkit.Node, 0, len(all))
	for _, n := range all {
		if m.removedNode[n.ID()] || m.removedEdge[edgeKey{id, n.ID()}] {
			continue
		}
		out = append(out, n)
	}
	return iterator.NewOrderedNodes(out)
}

func (m *maskedGraph) HasEdgeBetween(xid, yid int64) bool {
	return m.Edge(xid, yid) != nil || m.Edge(yid, xid) != nil
}

func (m *maskedGraph) Edge(uid, vid int64) graphkit.Edge {
	if m.removedNode[uid] || m.removedNode[vid] || m.removedEdge[edgeKey{uid, vid}] {
		return nil
	}
	return m.g.Edge(uid, vid)
}

// candidatePath is one entry in Yen's candidate heap.
type candidatePath struct {
	edges []graphkit.Edge
	cost  float64
}

func pathKey(edges []graphkit.Edge) string {
	key := make([]byte, 0, len(edges)*16)
	for _, e := range edges {
		key = appendInt64(key, e.From().ID())
		key = append(key, '-')
		key = appendInt64(key, e.To().ID())
		key = append(key, ',')
	}
	return string(key)
}

func appendInt64(b []byte, v int64) []byte {
	if v == 0 {
		return append(b, '0')
	}
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[i:]...)
}

func pathCost(edges []graphkit.Edge, weight props.WeightFunc) float64 {
	var total float64
	for _, e := range edges {
		w, _ := weight(e.From().ID(), e.To().ID())
		total += w
	}
	return total
}

// YenKShortestPaths returns up to k loopless shortest paths from
// source to target, in increasing order of cost's
// Yen's algorithm: start from the Dijkstra-optimal path; for each
// subsequent path, branch off ("spur") from every vertex along the
// previous best path, searching a temporary graph that removes edges
// shared with previously-found paths over the same root prefix and
// removes the root-path vertices other than the spur itself, to keep
// every candidate loopless. Candidates are pushed to a min-heap keyed
// by cost and deduplicated by edge sequence; the next k-th path is the
// cheapest candidate popped. The search stops early if the candidate
// heap empties before k paths are found.
func YenKShortestPaths(g graphkit.Graph, k int, source, target graphkit.Node, weight props.WeightFunc) [][]graphkit.Edge {
	if weight == nil {
		weight = props.FromWeighted(g)
	}
	first, _, ok := DijkstraFromTo(g, source, target, weight)
	if !ok {
		return nil
	}
	found := [][]graphkit.Edge{first}
	seen := map[string]bool{pathKey(first): true}
	pushed := map[string]bool{}

	var queue heapq.Queue
	queue.Init()
	var candidates []candidatePath

	for len(found) < k {
		prev := found[len(found)-1]
		for i := range prev {
			spur := prev[i].From()
			root := prev[:i]
			rootKey := pathKey(root)

			removedEdge := make(map[edgeKey]bool)
			for _, p := range found {
				if len(p) <= i {
					continue
				}
				if pathKey(p[:i]) == rootKey {
					removedEdge[edgeKey{p[i].From().ID(), p[i].To().ID()}] = true
				}
			}
			removedNode := make(map[int64]bool)
			for _, e := range root {
				if e.From().ID() != spur.ID() {
					removedNode[e.From().ID()] = true
				}
			}

			view := &maskedGraph{g: g, removedNode: removedNode, removedEdge: removedEdge}
			spurPath, spurCost, ok := DijkstraFromTo(view, spur, target, weight)
			if !ok {
				continue
			}

			candidate := make([]graphkit.Edge, 0, len(root)+len(spurPath))
			candidate = append(candidate, root...)
			candidate = append(candidate, spurPath...)
			key := pathKey(candidate)
			if seen[key] || pushed[key] {
				continue
			}
			pushed[key] = true

			total := pathCost(root, weight) + spurCost
			idx := len(candidates)
			candidates = append(candidates, candidatePath{edges: candidate, cost: total})
			queue.PushItem(int64(idx), total)
		}

		if queue.Len() == 0 {
			break
		}
		item := queue.PopItem()
		best := candidates[item.ID]
		key := pathKey(best.edges)
		delete(pushed, key)
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, best.edges)
	}

	return found
}
