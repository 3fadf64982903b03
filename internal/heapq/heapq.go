// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heapq is the one shared primitive behind every priority-
// queue-driven algorithm in this module: Dijkstra, A*, bidirectional
// Dijkstra, uniform-cost/best-first search, and Prim's MST all pop the
// globally-cheapest frontier entry on every step. Rather than have
// each package hand-roll its own container/heap.Interface, this module
// factors that pair out once.
package heapq

import "container/heap"

// Item is one entry in a Queue: a node ID paired with the priority it
// was pushed at. A stale Item (one superseded by a later, smaller
// priority for the same ID) is left in the heap rather than removed:
// every algorithm using Queue already tracks the authoritative
// distance/priority per ID separately and skips an Item whose priority
// no longer matches on pop ("if already in closed set, skip stale
// heap entry").
type Item struct {
	ID       int64
	Priority float64
}

// Queue is a no-decrease-key binary min-heap of Items, ordered by
// Priority ascending.
type Queue []Item

// Len, Less and Swap satisfy sort.Interface for container/heap.
func (q Queue) Len() int            { return len(q) }
func (q Queue) Less(i, j int) bool  { return q[i].Priority < q[j].Priority }
func (q Queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *Queue) Push(x interface{}) { *q = append(*q, x.(Item)) }
func (q *Queue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// PushItem pushes an Item onto the queue, maintaining the heap invariant.
func (q *Queue) PushItem(id int64, priority float64) {
	heap.Push(q, Item{ID: id, Priority: priority})
}

// PopItem removes and returns the Item with the smallest Priority.
func (q *Queue) PopItem() Item {
	return heap.Pop(q).(Item)
}

// Init establishes the heap invariant over an already-populated Queue,
// for callers that build the initial frontier as a plain slice first.
func (q *Queue) Init() {
	heap.Init(q)
}
