// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/internal/heapq"
)

// WeightedGraph is the capability a cost-driven search needs beyond
// Graph: a finite non-negative weight for each traversable edge.
type WeightedGraph interface {
	Graph
	Weight(uid, vid int64) (float64, bool)
}

// Heuristic estimates the remaining cost from a node to a goal. A nil
// Heuristic is equivalent to the zero estimate everywhere, which turns
// A* into uniform-cost search and best-first into an arbitrary-order
// frontier.
type Heuristic func(id int64) float64

// priorityFunc combines the cost accumulated so far (g) with the
// heuristic estimate of what remains (h) into a single frontier
// priority. Uniform-cost search, greedy best-first search and A* are
// the same frontier-ordered engine with three different combiners.
type priorityFunc func(g, h float64) float64

// PrioritySearch is a lazy, restartable frontier-ordered search over a
// WeightedGraph: a binary heap of open nodes, expanded lowest-priority
// first, closing each node exactly once. Next pulls one expansion at a
// time, mirroring the BFS/DFS sequences in this package. It assumes
// edge weights are non-negative; path.Dijkstra shares this exact
// shape with the all-pairs bookkeeping the path package needs on top.
type PrioritySearch struct {
	g         WeightedGraph
	visitor   Visitor
	heuristic Heuristic
	priority  priorityFunc

	queue  heapq.Queue
	nodes  map[int64]graphkit.Node
	gscore map[int64]float64
	pred   map[int64]graphkit.Edge
	has    map[int64]bool
	depth  map[int64]int
	closed map[int64]bool
}

func newPrioritySearch(g WeightedGraph, from graphkit.Node, h Heuristic, pf priorityFunc, visitor Visitor) *PrioritySearch {
	if h == nil {
		h = func(int64) float64 { return 0 }
	}
	s := &PrioritySearch{
		g:         g,
		visitor:   visitor,
		heuristic: h,
		priority:  pf,
		nodes:     map[int64]graphkit.Node{from.ID(): from},
		gscore:    map[int64]float64{from.ID(): 0},
		pred:      make(map[int64]graphkit.Edge),
		has:       make(map[int64]bool),
		depth:     map[int64]int{from.ID(): 0},
		closed:    make(map[int64]bool),
	}
	s.visitor.discover(from)
	s.queue.Init()
	s.queue.PushItem(from.ID(), pf(0, h(from.ID())))
	return s
}

// NewUniformCost returns a search that expands the open node with the
// lowest accumulated cost first, Dijkstra's single-source relaxation
// without the all-pairs distance table.
func NewUniformCost(g WeightedGraph, from graphkit.Node, visitor Visitor) *PrioritySearch {
	return newPrioritySearch(g, from, nil, func(gc, hc float64) float64 { return gc }, visitor)
}

// NewBestFirst returns a search that expands the open node the
// heuristic estimates is closest to a goal, ignoring the cost already
// spent to reach it.
func NewBestFirst(g WeightedGraph, from graphkit.Node, h Heuristic, visitor Visitor) *PrioritySearch {
	return newPrioritySearch(g, from, h, func(gc, hc float64) float64 { return hc }, visitor)
}

// NewAStar returns a search that expands the open node with the
// lowest g+h, the accumulated cost plus the heuristic estimate of what
// remains. With an admissible, consistent heuristic this finds a
// shortest path while expanding no more nodes than uniform cost would.
func NewAStar(g WeightedGraph, from graphkit.Node, h Heuristic, visitor Visitor) *PrioritySearch {
	return newPrioritySearch(g, from, h, func(gc, hc float64) float64 { return gc + hc }, visitor)
}

// Next expands the next open node and relaxes its out-edges, returning
// its State. It returns false once the frontier is empty.
func (s *PrioritySearch) Next() (State, bool) {
	for s.queue.Len() > 0 {
		item := s.queue.PopItem()
		id := item.ID
		if s.closed[id] {
			continue
		}
		s.closed[id] = true
		cur := s.nodes[id]
		s.visitor.examine(cur)

		to := s.g.From(id)
		for to.Next() {
			v := to.Node()
			if s.closed[v.ID()] {
				continue
			}
			w, ok := s.g.Weight(id, v.ID())
			if !ok {
				continue
			}
			e := edgeBetween(s.g, cur, v)
			s.visitor.examineEdge(e)

			newCost := s.gscore[id] + w
			old, seen := s.gscore[v.ID()]
			if !seen || newCost < old {
				if !seen {
					s.visitor.discover(v)
				}
				s.nodes[v.ID()] = v
				s.gscore[v.ID()] = newCost
				s.pred[v.ID()] = e
				s.has[v.ID()] = true
				s.depth[v.ID()] = s.depth[id] + 1
				s.visitor.tree(e)
				s.queue.PushItem(v.ID(), s.priority(newCost, s.heuristic(v.ID())))
			}
		}

		return State{Node: cur, Depth: s.depth[id], Cost: s.gscore[id], Pred: s.pred[id], HasPred: s.has[id]}, true
	}
	return State{}, false
}

// Visited reports whether the node with the given ID has entered the
// frontier (discovered, whether or not it has been expanded yet).
func (s *PrioritySearch) Visited(id int64) bool {
	_, ok := s.gscore[id]
	return ok
}

// Cost returns the best cost found so far for the node with the given
// ID, and whether it has been discovered.
func (s *PrioritySearch) Cost(id int64) (float64, bool) {
	c, ok := s.gscore[id]
	return c, ok
}

// To reconstructs the path from the search root to the node with the
// given ID via the predecessor map. It returns ok=false if the node
// was never discovered.
func (s *PrioritySearch) To(id int64) (edges []graphkit.Edge, ok bool) {
	if _, seen := s.gscore[id]; !seen {
		return nil, false
	}
	for {
		e, has := s.pred[id]
		if !has {
			break
		}
		edges = append(edges, e)
		id = e.From().ID()
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges, true
}

// All drains the sequence in expansion order.
func (s *PrioritySearch) All() []State {
	var out []State
	for {
		st, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, st)
	}
}
