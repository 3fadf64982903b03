// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/kalvaro/graphkit"

// articulationFrame is one level of the articulation-points DFS,
// reified as an explicit stack frame rather than a recursive call,
// the same iterative-DFS discipline as tarjanFrame and traverse.DFS,
// here additionally tracking the parent vertex (to skip walking back
// over the tree edge just arrived on). The root's child count is kept
// outside the frames, in articulationAndBridges.
type articulationFrame struct {
	v             graphkit.Node
	it            graphkit.Nodes
	parent        int64
	hasParent     bool
	skippedParent bool
}

type syntheticEdge struct{ f, t graphkit.Node }

func (e syntheticEdge) From() graphkit.Node         { return e.f }
func (e syntheticEdge) To() graphkit.Node           { return e.t }
func (e syntheticEdge) ReversedEdge() graphkit.Edge { return syntheticEdge{e.t, e.f} }

func edgeBetween(g graphkit.Graph, u, v graphkit.Node) graphkit.Edge {
	if e := g.Edge(u.ID(), v.ID()); e != nil {
		return e
	}
	if e := g.Edge(v.ID(), u.ID()); e != nil {
		return e
	}
	return syntheticEdge{f: u, t: v}
}

// articulationAndBridges runs a single DFS over the undirected graph g
// tracking disc[v] and low[v]: v is an articulation
// point if it is the DFS root with >=2 children, or a non-root vertex
// with a child c such that low[c] >= disc[v]; edge (v,c) is a bridge
// iff low[c] > disc[v].
func articulationAndBridges(g graphkit.Graph) (points []graphkit.Node, bridges []graphkit.Edge) {
	nodes := sortedNodes(g)
	disc := make(map[int64]int, len(nodes))
	low := make(map[int64]int, len(nodes))
	isArticulation := make(map[int64]bool, len(nodes))
	clock := 0

	for _, root := range nodes {
		if _, seen := disc[root.ID()]; seen {
			continue
		}
		rootChildren := 0

		clock++
		disc[root.ID()] = clock
		low[root.ID()] = clock
		frames := []*articulationFrame{{v: root}}

		for len(frames) > 0 {
			top := frames[len(frames)-1]
			if top.it == nil {
				top.it = g.From(top.v.ID())
			}
			if top.it.Next() {
				w := top.it.Node()
				if top.hasParent && w.ID() == top.parent && !top.skippedParent {
					top.skippedParent = true
					continue
				}
				if _, seen := disc[w.ID()]; !seen {
					clock++
					disc[w.ID()] = clock
					low[w.ID()] = clock
					if len(frames) == 1 {
						rootChildren++
					}
					frames = append(frames, &articulationFrame{v: w, parent: top.v.ID(), hasParent: true})
				} else if disc[w.ID()] < low[top.v.ID()] {
					low[top.v.ID()] = disc[w.ID()]
				}
				continue
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1]
				if low[top.v.ID()] < low[parent.v.ID()] {
					low[parent.v.ID()] = low[top.v.ID()]
				}
				if low[top.v.ID()] >= disc[parent.v.ID()] {
					isArticulation[parent.v.ID()] = true
				}
				if low[top.v.ID()] > disc[parent.v.ID()] {
					bridges = append(bridges, edgeBetween(g, parent.v, top.v))
				}
			}
		}
		// The low[c]>=disc[parent] check above runs uniformly for every
		// parent including the root, which would flag the root on its
		// very first child (disc[root] is the smallest value in the
		// tree). The root's actual rule is child-count-based, so it
		// overrides whatever that generic check left behind.
		if rootChildren >= 2 {
			isArticulation[root.ID()] = true
		} else {
			delete(isArticulation, root.ID())
		}
	}

	for _, n := range nodes {
		if isArticulation[n.ID()] {
			points = append(points, n)
		}
	}
	return points, bridges
}

// ArticulationPoints returns the cut vertices of the undirected graph
// g: vertices whose removal increases the number of connected
// components Complexity is O(V+E).
func ArticulationPoints(g graphkit.Graph) []graphkit.Node {
	points, _ := articulationAndBridges(g)
	return points
}

// Bridges returns the cut edges of the undirected graph g: edges whose
// removal increases the number of connected components.
// Complexity is O(V+E).
func Bridges(g graphkit.Graph) []graphkit.Edge {
	_, bridges := articulationAndBridges(g)
	return bridges
}
