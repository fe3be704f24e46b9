// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

// blockList is the process-wide doubly linked list threading through every
// block in every region, in ascending address order within a region. It
// carries no allocation logic of its own — placement, splitting, and
// coalescing all operate on the list via insertAfter/unlink/traversal.
type blockList struct {
	head *header
	tail *header
}

// insertAfter splices b in between existing and existing.next, updating
// tail when existing was the tail. A nil existing, or b already sitting
// right after existing, is a no-op.
func (l *blockList) insertAfter(existing, b *header) {
	if existing == nil || b == existing.next {
		return
	}

	next := existing.next
	existing.next = b
	b.prev = existing
	b.next = next

	if next != nil {
		next.prev = b
	} else {
		l.tail = b
	}
}

// append adds b as the new tail, becoming head too if the list was empty.
func (l *blockList) append(b *header) {
	b.prev = nil
	b.next = nil
	if l.head == nil {
		l.head = b
		l.tail = b
		return
	}
	l.insertAfter(l.tail, b)
}

// unlink removes b from the list. Safe to call on the sole remaining
// block, updating head/tail as needed.
func (l *blockList) unlink(b *header) {
	prev, next := b.prev, b.next

	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
	if b == l.tail {
		l.tail = prev
	}
	if b == l.head {
		l.head = next
	}

	b.prev = nil
	b.next = nil
}
