// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/kalvaro/graphkit"
	"github.com/kalvaro/graphkit/simple"
)

func countEdges(g graphkit.Undirected) int {
	seen := make(map[[2]int64]bool)
	it := g.Nodes()
	for it.Next() {
		u := it.Node().ID()
		w := g.From(u)
		for w.Next() {
			v := w.Node().ID()
			key := [2]int64{u, v}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			seen[key] = true
		}
	}
	return len(seen)
}

func TestErdosRenyiGnpProducesNoEdgesAtZeroProbability(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(1))
	if err := ErdosRenyiGnp(g, 10, 0, r); err != nil {
		t.Fatalf("ErdosRenyiGnp: %v", err)
	}
	if countEdges(g) != 0 {
		t.Fatalf("p=0 should produce no edges")
	}
	if n := len(graphkit.NodesOf(g.Nodes())); n != 10 {
		t.Fatalf("got %d nodes, want 10", n)
	}
}

func TestErdosRenyiGnpProducesCompleteGraphAtProbabilityOne(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(1))
	if err := ErdosRenyiGnp(g, 6, 1, r); err != nil {
		t.Fatalf("ErdosRenyiGnp: %v", err)
	}
	want := 6 * 5 / 2
	if got := countEdges(g); got != want {
		t.Fatalf("got %d edges, want %d (complete graph)", got, want)
	}
}

func TestErdosRenyiGnmProducesExactEdgeCount(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(2))
	if err := ErdosRenyiGnm(g, 8, 10, r); err != nil {
		t.Fatalf("ErdosRenyiGnm: %v", err)
	}
	if got := countEdges(g); got != 10 {
		t.Fatalf("got %d edges, want 10", got)
	}
}

func TestErdosRenyiGnmRejectsTooManyEdges(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(3))
	if err := ErdosRenyiGnm(g, 4, 100, r); err == nil {
		t.Fatal("expected an error requesting more edges than a 4-vertex simple graph can hold")
	}
}

func TestBarabasiAlbertReachesRequestedOrder(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(4))
	if err := BarabasiAlbert(g, 20, 2, r); err != nil {
		t.Fatalf("BarabasiAlbert: %v", err)
	}
	if n := len(graphkit.NodesOf(g.Nodes())); n != 20 {
		t.Fatalf("got %d vertices, want 20", n)
	}
	// Each of the 18 grown vertices attaches m=2 edges.
	if got, want := countEdges(g), 18*2; got != want {
		t.Fatalf("got %d edges, want %d", got, want)
	}
}

func TestBarabasiAlbertRejectsSeedNotSmallerThanOrder(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(5))
	if err := BarabasiAlbert(g, 3, 3, r); err == nil {
		t.Fatal("expected an error when n <= m")
	}
}

func TestWattsStrogatzRingHasExpectedDegreeBeforeRewiring(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(6))
	if err := WattsStrogatz(g, 10, 4, 0, r); err != nil {
		t.Fatalf("WattsStrogatz: %v", err)
	}
	if got, want := countEdges(g), 10*4/2; got != want {
		t.Fatalf("got %d edges, want %d", got, want)
	}
}

func TestWattsStrogatzRewiringPreservesEdgeCount(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(7))
	if err := WattsStrogatz(g, 12, 4, 0.5, r); err != nil {
		t.Fatalf("WattsStrogatz: %v", err)
	}
	if got, want := countEdges(g), 12*4/2; got != want {
		t.Fatalf("rewiring should preserve edge count, got %d want %d", got, want)
	}
}

func TestWattsStrogatzRejectsOddDegree(t *testing.T) {
	g := simple.NewUndirectedGraph()
	r := rand.New(rand.NewSource(8))
	if err := WattsStrogatz(g, 10, 3, 0.1, r); err == nil {
		t.Fatal("expected an error for an odd ring degree")
	}
}
