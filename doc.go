// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphkit defines the capability contracts that every graph
// algorithm in this module is written against.
//
// A graph is never a single concrete type here. Instead, small
// orthogonal interfaces describe what a graph can do: enumerate its
// nodes, enumerate the edges leaving a node, report a weight, accept a
// new node. Each algorithm states the minimum set of interfaces it
// needs as its parameter type. A caller is free to implement as
// many or as few of these interfaces as its storage allows; an
// algorithm that asks for more than a graph provides is a compile-time
// type error, not a runtime surprise.
//
// Subpackages layer on top of these contracts:
//
//	props/       property bags and the weight-function abstraction
//	set/         disjoint-set union-find
//	iterator/    concrete Nodes/Edges iterators
//	simple/      minimal concrete graphs, for tests only
//	traverse/    BFS, DFS and friends as restartable lazy sequences
//	path/        shortest-path algorithms
//	mst/         minimum spanning tree algorithms
//	topo/        topological sort and connectivity
//	flow/        network flow and min-cut
//	match/       bipartite matching
//	coloring/    graph coloring
//	order/       vertex ordering heuristics
//	centrality/  centrality measures
//	community/   community detection
//	iso/         graph isomorphism
//	gen/         random graph generation
//	graphprop/   structural predicates (cyclic, bipartite, Eulerian, ...)
package graphkit // import "github.com/kalvaro/graphkit"
