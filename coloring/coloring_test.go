// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coloring

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/simple"
)

// triangle is K3: every pair of vertices needs a distinct color.
func triangle() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})
	return g
}

func assertProper(t *testing.T, g *simple.UndirectedGraph, colors Coloring) {
	t.Helper()
	for id, c := range colors {
		it := g.From(id)
		for it.Next() {
			if oc, ok := colors[it.Node().ID()]; ok && oc == c {
				t.Fatalf("improper coloring: %d and %d both have color %d", id, it.Node().ID(), c)
			}
		}
	}
}

func TestGreedyOnTriangleUsesThreeColors(t *testing.T) {
	g := triangle()
	order := graphkit.NodesOf(g.Nodes())
	colors := Greedy(g, order)
	assertProper(t, g, colors)
	if colors.Count() != 3 {
		t.Fatalf("got %d colors, want 3", colors.Count())
	}
}

func TestDSaturOnTriangleUsesThreeColors(t *testing.T) {
	g := triangle()
	colors := DSatur(g)
	assertProper(t, g, colors)
	if colors.Count() != 3 {
		t.Fatalf("got %d colors, want 3", colors.Count())
	}
}

func TestWelshPowellOnTriangleUsesThreeColors(t *testing.T) {
	g := triangle()
	colors := WelshPowell(g)
	assertProper(t, g, colors)
	if colors.Count() != 3 {
		t.Fatalf("got %d colors, want 3", colors.Count())
	}
}

// bipartiteSquare is a 4-cycle: 2-colorable.
func bipartiteSquare() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(3)})
	g.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(0)})
	return g
}

func TestDSaturOnFourCycleUsesTwoColors(t *testing.T) {
	g := bipartiteSquare()
	colors := DSatur(g)
	assertProper(t, g, colors)
	if colors.Count() != 2 {
		t.Fatalf("got %d colors, want 2", colors.Count())
	}
}

func TestRandomizedOnTriangleIsProper(t *testing.T) {
	g := triangle()
	colors := Randomized(g, rand.NewSource(1))
	assertProper(t, g, colors)
	if colors.Count() != 3 {
		t.Fatalf("got %d colors, want 3", colors.Count())
	}
}

func TestRandomizedWithNilSourceStillProper(t *testing.T) {
	g := bipartiteSquare()
	colors := Randomized(g, nil)
	assertProper(t, g, colors)
}
