// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import "unsafe"

// split carves a free block into a headSize-byte prefix and a free
// leftover suffix, stitching the leftover into l right after b. It
// returns nil and mutates nothing if b isn't free, if headSize is below
// the minimum legal block, or if the remainder would be.
func split(l *blockList, b *header, headSize int64) *header {
	if !b.free || headSize < minBlockSize || b.size-headSize < minBlockSize {
		return nil
	}

	leftover := (*header)(unsafe.Add(unsafe.Pointer(b), headSize))
	leftover.size = b.size - headSize
	leftover.free = true
	leftover.regionID = b.regionID
	leftover.name = [maxLabel + 1]byte{}
	leftover.prev = nil
	leftover.next = nil

	b.size = headSize

	l.insertAfter(b, leftover)

	return leftover
}
