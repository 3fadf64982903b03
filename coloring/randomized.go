// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coloring

import (
	"golang.org/x/exp/rand"

	"github.com/kalvaro/graphkit"
)

// Randomized colors g by applying Greedy to a uniformly shuffled
// vertex order, using src as the shuffle's random source (shuffling
// with the package-level generator if src is nil). Running this
// several times and keeping the best result is a cheap way to probe
// for a lower chromatic number than a single fixed-order Greedy pass
// finds, at the cost of determinism.
func Randomized(g graphkit.Graph, src rand.Source) Coloring {
	nodes := sortedNodes(g)

	var shuffle func(n int, swap func(i, j int))
	if src == nil {
		shuffle = rand.Shuffle
	} else {
		shuffle = rand.New(src).Shuffle
	}
	shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })

	return Greedy(g, nodes)
}
