// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import (
	"fmt"
	"io"
	"unsafe"
)

// Dump walks the block list from head and writes the current memory
// state to w: one region line whenever region_id changes, followed by one
// line per block giving its address range, region, label, size, and
// free/used state. It writes directly to w without calling any other
// Allocator method, so logging through it can never recurse into the
// engine it is describing.
func (a *Allocator) Dump(w io.Writer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := io.WriteString(w, "-- Current Memory State --\n"); err != nil {
		return err
	}

	var currentRegion int64
	first := true

	for b := a.list.head; b != nil; b = b.next {
		if first || b.regionID != currentRegion {
			if _, err := fmt.Fprintf(w, "[REGION %d] %p\n", b.regionID, unsafe.Pointer(b)); err != nil {
				return err
			}
			currentRegion = b.regionID
			first = false
		}

		state := "USED"
		if b.free {
			state = "FREE"
		}

		if _, err := fmt.Fprintf(w, "    [BLOCK] %p-%p in region %d '%s' %d [%s] -> %p\n",
			unsafe.Pointer(b), b.end(), b.regionID, b.labelString(), b.size, state, unsafe.Pointer(b.next),
		); err != nil {
			return err
		}
	}

	return nil
}
