// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/traverse"
)

// tarjanFrame is one level of Tarjan's strongconnect recursion,
// reified as an explicit stack frame, for the same reason the
// disjoint-set's Find avoids recursion: it keeps stack growth flat on
// in a systems language; the same reasoning applies to Tarjan's own
// recursive strongconnect, so this reimplements it as an explicit
// frame stack rather than a recursive method, in the same style
// traverse.DFS already uses for plain depth-first search.
type tarjanFrame struct {
	v  graphkit.Node
	it graphkit.Nodes
}

// TarjanSCC returns the strongly connected components of the directed
// graph g via a single DFS maintaining an index, a lowlink, an
// explicit stack and an on-stack set Complexity is
// O(V+E).
func TarjanSCC(g graphkit.Directed) [][]graphkit.Node {
	nodes := sortedNodes(g)
	index := make(map[int64]int, len(nodes))
	lowlink := make(map[int64]int, len(nodes))
	onStack := make(map[int64]bool, len(nodes))
	var tstack []graphkit.Node
	var sccs [][]graphkit.Node
	clock := 0

	for _, start := range nodes {
		if _, seen := index[start.ID()]; seen {
			continue
		}

		clock++
		index[start.ID()] = clock
		lowlink[start.ID()] = clock
		tstack = append(tstack, start)
		onStack[start.ID()] = true
		frames := []*tarjanFrame{{v: start}}

		for len(frames) > 0 {
			top := frames[len(frames)-1]
			if top.it == nil {
				top.it = g.From(top.v.ID())
			}
			if top.it.Next() {
				w := top.it.Node()
				if _, seen := index[w.ID()]; !seen {
					clock++
					index[w.ID()] = clock
					lowlink[w.ID()] = clock
					tstack = append(tstack, w)
					onStack[w.ID()] = true
					frames = append(frames, &tarjanFrame{v: w})
				} else if onStack[w.ID()] && index[w.ID()] < lowlink[top.v.ID()] {
					lowlink[top.v.ID()] = index[w.ID()]
				}
				continue
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1]
				if lowlink[top.v.ID()] < lowlink[parent.v.ID()] {
					lowlink[parent.v.ID()] = lowlink[top.v.ID()]
				}
			}
			if lowlink[top.v.ID()] == index[top.v.ID()] {
				var scc []graphkit.Node
				for {
					n := len(tstack) - 1
					w := tstack[n]
					tstack = tstack[:n]
					onStack[w.ID()] = false
					scc = append(scc, w)
					if w.ID() == top.v.ID() {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}
	return sccs
}

type transposedGraph struct{ d graphkit.Directed }

func (t transposedGraph) From(id int64) graphkit.Nodes { return t.d.To(id) }

// KosarajuSCC returns the strongly connected components of the
// directed graph g by running a DFS over g recording finish order,
// then a DFS over the transpose graph visiting roots in reverse finish
// order; each resulting DFS tree is one SCC
// Complexity is O(V+E).
func KosarajuSCC(g graphkit.Directed) [][]graphkit.Node {
	nodes := sortedNodes(g)
	visited := make(map[int64]bool, len(nodes))
	var finishOrder []graphkit.Node
	for _, root := range nodes {
		if visited[root.ID()] {
			continue
		}
		visitor := traverse.Visitor{
			DiscoverVertex: func(v graphkit.Node) { visited[v.ID()] = true },
			FinishVertex:   func(v graphkit.Node) { finishOrder = append(finishOrder, v) },
		}
		traverse.NewDFS(g, root, traverse.PostOrder, visitor).All()
	}
	reverseNodes(finishOrder)

	trans := transposedGraph{g}
	seen := make(map[int64]bool, len(nodes))
	var sccs [][]graphkit.Node
	for _, root := range finishOrder {
		if seen[root.ID()] {
			continue
		}
		var members []graphkit.Node
		visitor := traverse.Visitor{DiscoverVertex: func(v graphkit.Node) {
			seen[v.ID()] = true
			members = append(members, v)
		}}
		traverse.NewDFS(trans, root, traverse.PreOrder, visitor).All()
		sccs = append(sccs, members)
	}
	return sccs
}

func reverseNodes(nodes []graphkit.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
