// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"testing"

	"github.com/kalvaro/graphkit/simple"
)

// square is a 4-cycle 0-1-2-3-0.
func square() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	edges := [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

// relabeledSquare is the same 4-cycle with vertex IDs permuted, so it
// is isomorphic to square but not identical.
func relabeledSquare() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(10); i < 14; i++ {
		g.AddNode(simple.Node(i))
	}
	edges := [][2]int64{{10, 12}, {12, 11}, {11, 13}, {13, 10}}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

// star4 is a star with center 0 and 3 leaves: same vertex and edge
// count as square but a different degree sequence, so not isomorphic.
func star4() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := int64(1); i < 4; i++ {
		g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(i)})
	}
	return g
}

func TestVF2IsomorphicOnRelabeledCycle(t *testing.T) {
	mapping, ok := VF2Isomorphic(square(), relabeledSquare())
	if !ok {
		t.Fatal("expected the relabeled 4-cycle to be isomorphic to the original")
	}
	if len(mapping) != 4 {
		t.Fatalf("got mapping of size %d, want 4", len(mapping))
	}
}

func TestVF2NotIsomorphicOnDifferentDegreeSequence(t *testing.T) {
	if _, ok := VF2Isomorphic(square(), star4()); ok {
		t.Fatal("a 4-cycle and a star should not be reported isomorphic")
	}
}

func TestVF2SubgraphIsomorphicFindsTriangleInSquarePlusDiagonal(t *testing.T) {
	target := square()
	target.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(2)})

	pattern := simple.NewUndirectedGraph()
	for i := int64(0); i < 3; i++ {
		pattern.AddNode(simple.Node(i))
	}
	pattern.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	pattern.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	pattern.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})

	if _, ok := VF2SubgraphIsomorphic(pattern, target); !ok {
		t.Fatal("expected a triangle pattern to be found in the square-plus-diagonal target")
	}
}

func TestVF2SubgraphIsomorphicRejectsTriangleInPlainCycle(t *testing.T) {
	pattern := simple.NewUndirectedGraph()
	for i := int64(0); i < 3; i++ {
		pattern.AddNode(simple.Node(i))
	}
	pattern.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	pattern.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	pattern.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})

	if _, ok := VF2SubgraphIsomorphic(pattern, square()); ok {
		t.Fatal("a triangle-free 4-cycle should not contain a triangle pattern")
	}
}

func TestWeisfeilerLehmanMayBeIsomorphicOnRelabeledCycle(t *testing.T) {
	if !WeisfeilerLehmanMayBeIsomorphic(square(), relabeledSquare()) {
		t.Fatal("WL label multisets of a cycle and its relabeling should match")
	}
}

func TestWeisfeilerLehmanMayBeIsomorphicRejectsDifferentDegreeSequence(t *testing.T) {
	if WeisfeilerLehmanMayBeIsomorphic(square(), star4()) {
		t.Fatal("WL label multisets of a 4-cycle and a star should differ")
	}
}
