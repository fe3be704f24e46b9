// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks a's block list and asserts the five structural
// invariants spec.md §8 requires to hold after every public operation.
func checkInvariants(t *testing.T, a *Allocator) {
	t.Helper()

	require.Nil(t, a.list.head.prevOrNil())
	if a.list.tail != nil {
		require.Nil(t, a.list.tail.next)
	}

	seen := map[*header]bool{}
	regionTotals := map[int64]int64{}

	var prev *header
	for b := a.list.head; b != nil; b = b.next {
		require.False(t, seen[b], "cycle detected in block list")
		seen[b] = true

		require.GreaterOrEqual(t, b.size, minBlockSize)
		require.Zero(t, b.size%align)

		if prev != nil && prev.regionID == b.regionID {
			require.Equal(t, unsafe.Pointer(b), prev.end(), "adjacency invariant violated")
			require.False(t, prev.free && b.free, "two adjacent free blocks in region %d", b.regionID)
		}

		regionTotals[b.regionID] += b.size
		prev = b
	}

	for id, total := range regionTotals {
		require.Zero(t, total%osPageSize, "region %d blocks sum to %d bytes, not a whole number of pages", id, total)
	}

	require.Same(t, a.list.tail, prev)
}

func (h *header) prevOrNil() *header {
	if h == nil {
		return nil
	}
	return h.prev
}
