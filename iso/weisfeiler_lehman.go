// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso checks graphs for isomorphism: a fast Weisfeiler-Lehman
// label-multiset pre-filter, and exact backtracking search via VF2.
package iso

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/kalvaro/graphkit"
)

// WeisfeilerLehmanLabels iteratively relabels every vertex of g by
// hashing (current label, sorted multiset of neighbor labels),
// repeating for rounds iterations (rounds<=0 uses a number of rounds
// equal to the vertex count, enough to stabilize any graph). The
// result maps vertex ID to its final label. Two vertices can only be
// mapped to each other by an isomorphism if their final labels match;
// the converse does not hold, so this is a filter, not a proof.
func WeisfeilerLehmanLabels(g graphkit.Graph, rounds int) map[int64]uint64 {
	nodes := graphkit.NodesOf(g.Nodes())
	if rounds <= 0 {
		rounds = len(nodes)
	}

	label := make(map[int64]uint64, len(nodes))
	for _, n := range nodes {
		label[n.ID()] = 1 // uniform initial label: every vertex starts indistinguishable
	}

	for r := 0; r < rounds; r++ {
		next := make(map[int64]uint64, len(nodes))
		for _, n := range nodes {
			var neighborLabels []uint64
			it := g.From(n.ID())
			for it.Next() {
				neighborLabels = append(neighborLabels, label[it.Node().ID()])
			}
			sort.Slice(neighborLabels, func(i, j int) bool { return neighborLabels[i] < neighborLabels[j] })
			next[n.ID()] = hashLabel(label[n.ID()], neighborLabels)
		}
		label = next
	}
	return label
}

func hashLabel(self uint64, neighbors []uint64) uint64 {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(self, 36))
	for _, n := range neighbors {
		b.WriteByte(',')
		b.WriteString(strconv.FormatUint(n, 36))
	}
	h := fnv.New64a()
	h.Write([]byte(b.String()))
	return h.Sum64()
}

// WeisfeilerLehmanMayBeIsomorphic reports whether the multisets of
// stabilized Weisfeiler-Lehman labels of a and b are equal. Equal
// multisets are necessary but not sufficient for isomorphism: this is
// a fast pre-filter, not a proof. A false result is conclusive; a true
// result should be followed by an exact check (VF2Isomorphic) if
// certainty is required.
func WeisfeilerLehmanMayBeIsomorphic(a, b graphkit.Graph) bool {
	an, bn := graphkit.NodesOf(a.Nodes()), graphkit.NodesOf(b.Nodes())
	if len(an) != len(bn) {
		return false
	}

	la := WeisfeilerLehmanLabels(a, 0)
	lb := WeisfeilerLehmanLabels(b, 0)

	counts := func(labels map[int64]uint64) map[uint64]int {
		c := make(map[uint64]int, len(labels))
		for _, l := range labels {
			c[l]++
		}
		return c
	}
	ca, cb := counts(la), counts(lb)
	if len(ca) != len(cb) {
		return false
	}
	for l, n := range ca {
		if cb[l] != n {
			return false
		}
	}
	return true
}
