// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simple provides minimal, concrete graph types that satisfy
// the graphkit capability contracts. Concrete storage backends are an
// external collaborator of this module: an adjacency
// list with swappable stores, an adjacency matrix, a grid, and so on
// are all out of scope as deliverables. Package simple exists only so
// that every algorithm package below has something concrete to run
// its own tests against, the same narrow role gonum's own
// graph/simple package plays for the rest of its graph tree.
package simple

import "github.com/kalvaro/graphkit"

// Node is a graphkit.Node whose ID is the Node value itself.
type Node int64

// ID implements graphkit.Node.
func (n Node) ID() int64 { return int64(n) }

// Edge is an unweighted, directed-or-undirected edge between two
// graphkit.Nodes. Its own directionality is asserted by whichever
// graph holds it, not by the edge value itself.
type Edge struct {
	F, T graphkit.Node
}

// From implements graphkit.Edge.
func (e Edge) From() graphkit.Node { return e.F }

// To implements graphkit.Edge.
func (e Edge) To() graphkit.Node { return e.T }

// ReversedEdge implements graphkit.Edge.
func (e Edge) ReversedEdge() graphkit.Edge { return Edge{F: e.T, T: e.F} }

// WeightedEdge is an Edge carrying a weight.
type WeightedEdge struct {
	F, T graphkit.Node
	W    float64
}

// From implements graphkit.Edge.
func (e WeightedEdge) From() graphkit.Node { return e.F }

// To implements graphkit.Edge.
func (e WeightedEdge) To() graphkit.Node { return e.T }

// Weight implements graphkit.WeightedEdge.
func (e WeightedEdge) Weight() float64 { return e.W }

// ReversedEdge implements graphkit.Edge.
func (e WeightedEdge) ReversedEdge() graphkit.Edge {
	return WeightedEdge{F: e.T, T: e.F, W: e.W}
}
