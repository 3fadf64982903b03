// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphprop

import (
	"testing"

	"github.com/kalvaro/graphkit/simple"
)

func cycle(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < int64(n); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(0); i < int64(n); i++ {
		g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node((i + 1) % int64(n))})
	}
	return g
}

func star(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < int64(n); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(1); i < int64(n); i++ {
		g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(i)})
	}
	return g
}

func TestIsConnectedOnCycleAndDisjointPair(t *testing.T) {
	if !IsConnected(cycle(5)) {
		t.Fatal("a 5-cycle should be connected")
	}
	g := simple.NewUndirectedGraph()
	g.AddNode(simple.Node(0))
	g.AddNode(simple.Node(1))
	if IsConnected(g) {
		t.Fatal("two isolated vertices should not be connected")
	}
}

func TestIsTreeOnStarAndCycle(t *testing.T) {
	if !IsTree(star(5)) {
		t.Fatal("a star is a tree")
	}
	if IsTree(cycle(4)) {
		t.Fatal("a cycle is not a tree (it has a cycle)")
	}
}

func TestIsCyclicOnUndirectedCycleAndTree(t *testing.T) {
	if !IsCyclic(cycle(4)) {
		t.Fatal("a 4-cycle is cyclic")
	}
	if IsCyclic(star(4)) {
		t.Fatal("a star is acyclic")
	}
}

func TestIsCyclicOnDirectedGraph(t *testing.T) {
	g := simple.NewDirectedGraph()
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	if IsCyclic(g) {
		t.Fatal("a directed chain is acyclic")
	}
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})
	if !IsCyclic(g) {
		t.Fatal("closing the chain into a cycle should be detected")
	}
}

func TestBipartiteOnEvenCycleAndTriangle(t *testing.T) {
	if _, ok := Bipartite(cycle(4)); !ok {
		t.Fatal("a 4-cycle is bipartite")
	}
	if _, ok := Bipartite(cycle(3)); ok {
		t.Fatal("a triangle is not bipartite")
	}
}

func TestPlanarByEulerFormulaFlagsDenseGraph(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 5; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(0); i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	if !PlanarByEulerFormula(g) {
		t.Fatal("K5 should be witnessed non-planar by the Euler formula filter")
	}
	if PlanarByEulerFormula(cycle(5)) {
		t.Fatal("a 5-cycle should not trip the non-planarity filter")
	}
}

func TestEulerianCycleOnPlainCycle(t *testing.T) {
	g := cycle(5)
	walk, ok := EulerianCycle(g)
	if !ok {
		t.Fatal("a cycle graph has an Eulerian cycle")
	}
	if len(walk) != 6 {
		t.Fatalf("got walk of length %d, want 6 (5 edges + return to start)", len(walk))
	}
	if walk[0].ID() != walk[len(walk)-1].ID() {
		t.Fatal("an Eulerian cycle must return to its start")
	}
}

func TestEulerianCycleRejectsOddDegreeVertex(t *testing.T) {
	if _, ok := EulerianCycle(star(4)); ok {
		t.Fatal("a star has odd-degree leaves, no Eulerian cycle should exist")
	}
}

func TestEulerianPathOnGraphWithTwoOddVertices(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	// Path 0-1-2-3 has exactly two odd-degree vertices: the endpoints.
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(3)})

	walk, ok := EulerianPath(g)
	if !ok {
		t.Fatal("expected an Eulerian path covering all 3 edges")
	}
	if len(walk) != 4 {
		t.Fatalf("got walk of length %d, want 4", len(walk))
	}
}

func TestHamiltonianCycleOnCompleteGraph(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 5; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(0); i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	walk, ok := HamiltonianCycle(g)
	if !ok {
		t.Fatal("a complete graph on 5 vertices has a Hamiltonian cycle")
	}
	if len(walk) != 5 {
		t.Fatalf("got walk of length %d, want 5", len(walk))
	}
}

func TestHamiltonianCycleFailsOnStar(t *testing.T) {
	if _, ok := HamiltonianCycle(star(5)); ok {
		t.Fatal("a star graph has no Hamiltonian cycle")
	}
}

func TestHamiltonianPathOnPlainPath(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(3)})

	walk, ok := HamiltonianPath(g)
	if !ok || len(walk) != 4 {
		t.Fatalf("expected a 4-vertex Hamiltonian path, got %v ok=%v", walk, ok)
	}
}

func TestHamiltonianPathWarnsdorffCoversCompleteGraph(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 6; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(0); i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	walk, ok := HamiltonianPathWarnsdorff(g)
	if !ok || len(walk) != 6 {
		t.Fatalf("expected a 6-vertex Hamiltonian path on K6, got %v ok=%v", walk, ok)
	}
}
