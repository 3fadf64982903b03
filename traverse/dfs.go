// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import "github.com/kalvaro/graphkit"

// Order selects when a DFS sequence emits a vertex's State: at
// discovery (PreOrder), once every descendant has finished
// (PostOrder), or, on a graph implementing graphkit.BinaryIncidence,
// after its left subtree and before its right (InOrder).
type Order int

const (
	PreOrder Order = iota
	PostOrder
	InOrder
)

// Vertex colors. White is the zero value so every undiscovered node is
// implicitly white without an explicit initialization pass.
const (
	white = iota
	gray
	black
)

type dfsFrame struct {
	node graphkit.Node
	it   graphkit.Nodes // nil until the frame is first examined
}

// binFrame is one node on the current left spine of an InOrder walk,
// waiting to be emitted once its left subtree is exhausted.
type binFrame struct {
	node  graphkit.Node
	depth int
}

// DFS is a depth-first search sequence implemented as an explicit
// frame stack rather than recursion, so that Next can pull the search
// forward one micro-step at a time: examine a vertex, follow one more
// of its out-edges, or finish it and pop. This gives exactly the
// classification a recursive DFS would (tree/back/forward/cross, via
// discovery/finish timestamps), without the stack growth recursion
// risks on degenerate inputs.
type DFS struct {
	g        Graph
	visitor  Visitor
	order    Order
	maxDepth int // < 0 means unlimited

	clock int
	color map[int64]int
	disc  map[int64]int
	fin   map[int64]int
	depth map[int64]int
	pred  map[int64]graphkit.Edge

	stack []*dfsFrame

	bin      graphkit.BinaryIncidence // set only when order == InOrder
	binStack []binFrame
}

// NewDFS returns an unbounded DFS sequence rooted at from, emitting
// states in the given order.
func NewDFS(g Graph, from graphkit.Node, order Order, visitor Visitor) *DFS {
	return newDFS(g, from, order, -1, visitor)
}

// NewDepthLimitedDFS returns a DFS sequence that never descends past
// maxDepth edges from the root.
func NewDepthLimitedDFS(g Graph, from graphkit.Node, order Order, maxDepth int, visitor Visitor) *DFS {
	return newDFS(g, from, order, maxDepth, visitor)
}

func newDFS(g Graph, from graphkit.Node, order Order, maxDepth int, visitor Visitor) *DFS {
	d := &DFS{
		g:        g,
		visitor:  visitor,
		order:    order,
		maxDepth: maxDepth,
		color:    make(map[int64]int),
		disc:     make(map[int64]int),
		fin:      make(map[int64]int),
		depth:    make(map[int64]int),
		pred:     make(map[int64]graphkit.Edge),
	}

	if order == InOrder {
		bin, ok := g.(graphkit.BinaryIncidence)
		if !ok {
			panic("traverse: InOrder DFS requires a graph implementing graphkit.BinaryIncidence")
		}
		d.bin = bin
		d.pushLeftSpine(from, 0, nil)
		return d
	}

	d.color[from.ID()] = gray
	d.clock++
	d.disc[from.ID()] = d.clock
	d.depth[from.ID()] = 0
	d.visitor.discover(from)
	d.stack = []*dfsFrame{{node: from}}
	return d
}

// pushLeftSpine walks left from n, pushing every node onto binStack,
// until a node has no left child or maxDepth is reached. via is the
// edge that led to n (nil for the search root).
func (d *DFS) pushLeftSpine(n graphkit.Node, depth int, via graphkit.Edge) {
	for n != nil {
		d.color[n.ID()] = gray
		d.clock++
		d.disc[n.ID()] = d.clock
		d.depth[n.ID()] = depth
		if via != nil {
			d.pred[n.ID()] = via
			d.visitor.tree(via)
		}
		d.visitor.discover(n)
		d.binStack = append(d.binStack, binFrame{node: n, depth: depth})

		if d.maxDepth >= 0 && depth >= d.maxDepth {
			return
		}
		left := d.bin.LeftChild(n.ID())
		if left == nil {
			return
		}
		via = d.bin.LeftEdge(n.ID())
		depth++
		n = left
	}
}

// Next advances the search by micro-steps until an event matching the
// sequence's Order is ready, or the search is exhausted.
func (d *DFS) Next() (State, bool) {
	if d.order == InOrder {
		return d.nextInOrder()
	}
	for len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]

		if top.it == nil {
			d.visitor.examine(top.node)
			if d.maxDepth >= 0 && d.depth[top.node.ID()] >= d.maxDepth {
				top.it = graphkit.Empty
			} else {
				top.it = d.g.From(top.node.ID())
			}
			if d.order == PreOrder {
				return d.stateFor(top.node), true
			}
			continue
		}

		if top.it.Next() {
			v := top.it.Node()
			e := edgeBetween(d.g, top.node, v)
			d.visitor.examineEdge(e)
			switch d.color[v.ID()] {
			case white:
				d.visitor.tree(e)
				d.color[v.ID()] = gray
				d.clock++
				d.disc[v.ID()] = d.clock
				d.depth[v.ID()] = d.depth[top.node.ID()] + 1
				d.pred[v.ID()] = e
				d.visitor.discover(v)
				d.stack = append(d.stack, &dfsFrame{node: v})
			case gray:
				d.visitor.back(e)
			case black:
				if d.disc[v.ID()] > d.disc[top.node.ID()] {
					d.visitor.forward(e)
				} else {
					d.visitor.cross(e)
				}
			}
			continue
		}

		d.stack = d.stack[:len(d.stack)-1]
		d.color[top.node.ID()] = black
		d.clock++
		d.fin[top.node.ID()] = d.clock
		d.visitor.finish(top.node)
		if d.order == PostOrder {
			return d.stateFor(top.node), true
		}
	}
	return State{}, false
}

// nextInOrder pops the deepest remaining node on the left spine, emits
// it, then descends the left spine of its right child (if any) so the
// next call resumes with whatever comes between it and its ancestors.
func (d *DFS) nextInOrder() (State, bool) {
	if len(d.binStack) == 0 {
		return State{}, false
	}
	top := d.binStack[len(d.binStack)-1]
	d.binStack = d.binStack[:len(d.binStack)-1]

	d.visitor.examine(top.node)
	d.color[top.node.ID()] = black
	d.clock++
	d.fin[top.node.ID()] = d.clock
	d.visitor.finish(top.node)
	state := d.stateFor(top.node)

	if right := d.bin.RightChild(top.node.ID()); right != nil {
		d.pushLeftSpine(right, top.depth+1, d.bin.RightEdge(top.node.ID()))
	}
	return state, true
}

func (d *DFS) stateFor(n graphkit.Node) State {
	e, has := d.pred[n.ID()]
	return State{Node: n, Depth: d.depth[n.ID()], Cost: float64(d.depth[n.ID()]), Pred: e, HasPred: has}
}

// Visited reports whether the node with the given ID has been
// discovered (colored gray or black).
func (d *DFS) Visited(id int64) bool { return d.color[id] != white }

// To reconstructs the path from the DFS root to the node with the
// given ID via the predecessor map. It returns ok=false if the node
// was never discovered.
func (d *DFS) To(id int64) (edges []graphkit.Edge, ok bool) {
	if d.color[id] == white {
		return nil, false
	}
	for {
		e, has := d.pred[id]
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

// All drains the sequence in examination order.
func (d *DFS) All() []State {
	var out []State
	for {
		s, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// IterativeDeepening runs depth-limited DFS for d = 0, 1, 2, ...,
// maxDepth, calling until for every vertex examined at each depth and
// stopping at the first vertex it accepts. Vertices may be revisited
// across iterations; that is expected, not a bug. It returns nil if until never accepts a vertex
// within maxDepth.
func IterativeDeepening(g Graph, from graphkit.Node, maxDepth int, until func(State) bool) graphkit.Node {
	for depth := 0; depth <= maxDepth; depth++ {
		dfs := NewDepthLimitedDFS(g, from, PreOrder, depth, Visitor{})
		for {
			s, ok := dfs.Next()
			if !ok {
				break
			}
			if until(s) {
				return s.Node
			}
		}
	}
	return nil
}
