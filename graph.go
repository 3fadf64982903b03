// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphkit

// Node is the minimum contract a graph vertex must satisfy: an opaque,
// comparable handle. ID is expected to be dense-ish and stable for the
// lifetime of the node; once a node is removed from a graph its ID must
// not be reused for an unrelated node (callers that need reuse should
// mint a fresh generation rather than resurrect an old ID).
type Node interface {
	ID() int64
}

// Edge is the minimum contract a graph edge must satisfy: it names its
// two endpoints. From/To naming carries no directionality by itself;
// that is asserted by whichever of Directed/Undirected the owning graph
// also implements.
type Edge interface {
	From() Node
	To() Node

	// ReversedEdge returns the edge with From and To swapped. The
	// undirected graphs in package simple use this to store the
	// reciprocal of each added edge.
	ReversedEdge() Edge
}

// WeightedEdge is an Edge with an intrinsic weight. Most weighted
// algorithms never require this directly: they go through a Weighted
// graph's Weight method or a WeightFunc from package props. But a
// graph with an edge type materializing weight is how most of this
// module's test fixtures are built.
type WeightedEdge interface {
	Edge
	Weight() float64
}

// Graph is the capability every algorithm in this module can assume as
// a floor: enumerate all nodes, report whether a node exists, and
// enumerate the nodes reachable by one hop from a node. Nothing here
// assumes directionality; on a directed graph, From reports
// out-neighbors.
type Graph interface {
	// Node returns the node with the given ID if it exists in the
	// graph, and nil otherwise.
	Node(id int64) Node

	// Nodes returns all the nodes in the graph.
	Nodes() Nodes

	// From returns all nodes reachable by a single hop from the node
	// with the given ID.
	From(id int64) Nodes

	// HasEdgeBetween returns whether an edge exists between nodes
	// with the given IDs, without considering direction.
	HasEdgeBetween(xid, yid int64) bool

	// Edge returns the edge from u to v, with From() and To()
	// returning u and v respectively, if such an edge exists, and nil
	// otherwise.
	Edge(uid, vid int64) Edge
}

// Directed is a Graph with separable out- and in-edges.
type Directed interface {
	Graph

	// HasEdgeFromTo returns whether an edge exists in the directed
	// sense from u to v.
	HasEdgeFromTo(uid, vid int64) bool

	// To returns all nodes that can reach the node with the given ID
	// directly.
	To(id int64) Nodes
}

// Undirected is a Graph whose edges carry no direction; this is a
// marker interface distinguishing "I was built without direction" from
// "I happen not to implement Directed."
type Undirected interface {
	Graph

	// EdgeBetween returns the edge between nodes x and y, returning
	// nil if no such edge exists. For an undirected graph this is
	// equivalent to Edge, except that the returned edge's From/To
	// order is unspecified.
	EdgeBetween(xid, yid int64) Edge
}

// Weighted is a graph that can report a finite edge weight directly,
// bypassing the WeightFunc indirection in package props. Algorithms
// accept either: most take a props.WeightFunc so callers can supply a
// constant, a closure, or a property lookup: only the ones ported
// directly from gonum's own API additionally special-case a
// Weighted graph (falling back to uniform cost of 1 when absent).
type Weighted interface {
	Graph

	// Weight returns the weight of the edge between x and y if such
	// an edge exists, the weight of a self-loop if x equals y, and
	// ok=false otherwise.
	Weight(xid, yid int64) (w float64, ok bool)
}

// WeightedEdger returns the weighted edge between two nodes, needed by
// algorithms that must recover the edge itself (not just its weight)
// from a weighted graph, such as MST reconstruction.
type WeightedEdger interface {
	WeightedEdge(xid, yid int64) WeightedEdge
}

// NodeAdder is implemented by graphs that can allocate new nodes.
type NodeAdder interface {
	// NewNode returns a new node with a unique ID.
	NewNode() Node

	// AddNode adds a node to the graph. AddNode panics if the added
	// node ID matches an existing node ID.
	AddNode(Node)
}

// NodeRemover is implemented by graphs that can discard nodes. Removing
// a node must remove all edges incident on it first.
type NodeRemover interface {
	// RemoveNode removes the node with the given ID from the graph,
	// as well as any edges attached to it. If the node does not
	// exist, this is a no-op.
	RemoveNode(id int64)
}

// EdgeAdder is implemented by graphs that can accept new edges.
type EdgeAdder interface {
	// NewEdge returns a new edge from the source to the destination
	// node.
	NewEdge(from, to Node) Edge

	// SetEdge adds an edge from one node to another. Both nodes must
	// already be in the graph; SetEdge never creates a node, and the
	// reference implementations in package simple panic with
	// ErrInvalidEndpoint's message otherwise. SetEdge must not add a
	// reciprocal edge on a directed graph, and must add one on an
	// undirected graph. The reference implementations do not check
	// for self-loops.
	SetEdge(e Edge)
}

// WeightedEdgeAdder is implemented by graphs that can accept new
// weighted edges.
type WeightedEdgeAdder interface {
	NewWeightedEdge(from, to Node, weight float64) WeightedEdge
	SetWeightedEdge(e WeightedEdge)
}

// EdgeRemover is implemented by graphs that can discard edges.
type EdgeRemover interface {
	// RemoveEdge removes the edge between nodes with the given IDs.
	// If no such edge exists, this is a no-op.
	RemoveEdge(fid, tid int64)
}

// Builder is a graph that can have nodes and edges added.
type Builder interface {
	NodeAdder
	EdgeAdder
}

// WeightedBuilder is a graph that can have nodes and weighted edges
// added.
type WeightedBuilder interface {
	NodeAdder
	WeightedEdgeAdder
}

// DirectedBuilder is a Directed graph that can have nodes and edges
// added.
type DirectedBuilder interface {
	Directed
	Builder
}

// UndirectedBuilder is an Undirected graph that can have nodes and
// edges added.
type UndirectedBuilder interface {
	Undirected
	Builder
}

// WeightedDirectedBuilder is a Directed Weighted graph that can have
// nodes and weighted edges added.
type WeightedDirectedBuilder interface {
	Directed
	Weighted
	WeightedBuilder
}

// WeightedUndirectedBuilder is an Undirected Weighted graph that can
// have nodes and weighted edges added.
type WeightedUndirectedBuilder interface {
	Undirected
	Weighted
	WeightedBuilder
}

// Mutable is the full read/write surface: a graph that can have nodes
// and edges both added and removed.
type Mutable interface {
	Builder
	NodeRemover
	EdgeRemover
}

// AdjacencyMatrix is satisfied by graphs dense enough to answer
// edge-between-two-IDs in O(1) without walking an adjacency list; most
// algorithms never require this, but algorithms that probe many
// unrelated pairs (e.g. planarity's Euler-formula filter is O(V+E)
// regardless, but a VF2 feasibility check benefits) may opt into it.
type AdjacencyMatrix interface {
	Graph

	// EdgeBetween reports the edge between x and y in O(1), or nil.
	EdgeBetween(xid, yid int64) Edge
}

// BinaryIncidence is satisfied by graphs where every node has at most
// two positional children, left and right, exposed directly rather
// than through From's unordered neighbor set. Inorder DFS is defined
// only on a graph implementing this: without a left/right distinction
// "emit left-subtree, self, right-subtree" has no meaning.
type BinaryIncidence interface {
	Graph

	// LeftChild returns the left child of the node with the given ID,
	// or nil if it has none.
	LeftChild(id int64) Node

	// RightChild returns the right child of the node with the given
	// ID, or nil if it has none.
	RightChild(id int64) Node

	// LeftEdge returns the edge to the left child of the node with the
	// given ID, or nil if it has none.
	LeftEdge(id int64) Edge

	// RightEdge returns the edge to the right child of the node with
	// the given ID, or nil if it has none.
	RightEdge(id int64) Edge
}
