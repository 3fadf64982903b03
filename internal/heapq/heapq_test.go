// Copyright ©2024 The GraphKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heapq

import "testing"

func TestQueueOrdersByPriority(t *testing.T) {
	var q Queue
	q.Init()
	q.PushItem(1, 5)
	q.PushItem(2, 1)
	q.PushItem(3, 3)

	want := []int64{2, 3, 1}
	for _, id := range want {
		got := q.PopItem()
		if got.ID != id {
			t.Fatalf("got ID %d, want %d", got.ID, id)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected queue to be drained, got %d remaining", q.Len())
	}
}
