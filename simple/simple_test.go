// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"errors"
	"math"
	"testing"

	"github.com/kalvaro/graphkit"
)

func TestUndirectedGraphBasics(t *testing.T) {
	g := NewUndirectedGraph()
	a, b, c := Node(0), Node(1), Node(2)
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)

	if err := g.TryAddEdge(Edge{F: a, T: b}); err != nil {
		t.Fatalf("unexpected error adding edge: %v", err)
	}
	if !g.HasEdgeBetween(a.ID(), b.ID()) || !g.HasEdgeBetween(b.ID(), a.ID()) {
		t.Fatalf("expected edge to be symmetric")
	}
	if g.HasEdgeBetween(a.ID(), c.ID()) {
		t.Fatalf("did not expect an edge between a and c")
	}

	if err := g.TryAddEdge(Edge{F: a, T: Node(99)}); !errors.Is(err, graphkit.ErrInvalidEndpoint) {
		t.Fatalf("expected ErrInvalidEndpoint, got %v", err)
	}
	if g.HasEdgeBetween(a.ID(), 99) {
		t.Fatalf("invalid edge must not have been added")
	}

	g.RemoveNode(b.ID())
	if g.HasEdgeBetween(a.ID(), b.ID()) {
		t.Fatalf("removing a node should remove its incident edges")
	}
	if g.Node(b.ID()) != nil {
		t.Fatalf("removed node should no longer be present")
	}
}

func TestWeightedDirectedGraphWeight(t *testing.T) {
	g := NewWeightedDirectedGraph(0, math.Inf(1))
	a, b := Node(0), Node(1)
	g.AddNode(a)
	g.AddNode(b)
	g.SetWeightedEdge(WeightedEdge{F: a, T: b, W: 2.5})

	w, ok := g.Weight(a.ID(), b.ID())
	if !ok || w != 2.5 {
		t.Fatalf("got (%v, %v), want (2.5, true)", w, ok)
	}
	if _, ok := g.Weight(b.ID(), a.ID()); ok {
		t.Fatalf("directed graph should not report a reverse edge")
	}
	if w, ok := g.Weight(a.ID(), a.ID()); !ok || w != 0 {
		t.Fatalf("self weight should be the configured self value")
	}
}
