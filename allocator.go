// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import (
	"strconv"
	"sync"
)

// scribbleByte is the poison value written across a freshly issued
// payload when ALLOCATOR_SCRIBBLE=1, chosen to stand out in a hex dump
// and make uninitialized reads obvious.
const scribbleByte = 0xAA

// Allocator is the free-space management engine. Its zero value is ready
// for use: no constructor is required, matching the rest of this engine's
// process-lifetime, lazily-initialized state.
type Allocator struct {
	mu sync.Mutex

	list blockList
	cfg  config

	allocCounter int64
	regionCount  int64
}

// Acquire returns a freshly usable buffer of size bytes, reusing an
// existing free block when the selected placement policy finds one large
// enough, mapping a new region otherwise. It returns an error when size is
// negative or when the OS refuses a new mapping; a 0-byte request is valid.
func (a *Allocator) Acquire(size int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.acquireLabeled(size, "")
}

// LabeledAcquire is Acquire with a caller-supplied diagnostic label (up to
// 31 bytes) recorded in the block header and surfaced by Dump.
func (a *Allocator) LabeledAcquire(size int, label string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.acquireLabeled(size, label)
}

// acquireLabeled is the unlocked core of Acquire/LabeledAcquire/Resize.
// Callers must hold a.mu.
func (a *Allocator) acquireLabeled(size int, label string) ([]byte, error) {
	if size < 0 {
		return nil, errNegativeSize
	}

	a.cfg.resolve()

	real := roundup(int64(size)+headerSize, align)

	b := find(&a.list, a.cfg.policy, real)
	if b == nil {
		fresh, err := mapRegion(real)
		if err != nil {
			return nil, err
		}
		fresh.regionID = a.regionCount
		a.regionCount++
		a.list.append(fresh)
		b = fresh
	}

	split(&a.list, b, real)

	b.free = false
	a.allocCounter++
	if label != "" {
		b.setName(label)
	} else {
		b.setName(defaultLabel(a.allocCounter))
	}

	out := b.payload(size)
	if a.cfg.scribble {
		for i := range out {
			out[i] = scribbleByte
		}
	}
	return out, nil
}

// Release returns a payload previously obtained from this Allocator back
// to the free pool, coalescing it with adjacent free neighbors and
// returning the containing region to the OS if that merge leaves it as
// the region's sole, free block. Releasing nil is a no-op.
func (a *Allocator) Release(b []byte) error {
	if b == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return a.release(b)
}

func (a *Allocator) release(b []byte) error {
	h := headerFromPayload(b)
	h.free = true

	rep := coalesce(&a.list, h)

	if isAloneInRegion(rep) {
		a.list.unlink(rep)
		return unmapRegion(rep)
	}
	return nil
}

// isAloneInRegion reports whether b is both free and the only surviving
// block in its region — no list neighbor shares its region id.
func isAloneInRegion(b *header) bool {
	if !b.free {
		return false
	}
	if b.prev != nil && b.prev.regionID == b.regionID {
		return false
	}
	if b.next != nil && b.next.regionID == b.regionID {
		return false
	}
	return true
}

// ZeroAcquire is Acquire(count*elemSize) with the returned buffer's bytes
// set to zero. Overflow of count*elemSize is not defended against, matching
// the C ABI calloc contract this stands in for.
func (a *Allocator) ZeroAcquire(count, elemSize int) ([]byte, error) {
	b, err := a.Acquire(count * elemSize)
	if err != nil {
		return nil, err
	}
	for i := range b {
		b[i] = 0
	}
	return b, nil
}

// Resize changes the size of the buffer b refers to, growing it in place
// when the next list block is free, shares its region, and is large
// enough to absorb; otherwise it acquires a new buffer, copies the lesser
// of the old and new sizes, and releases b. A nil b behaves like Acquire;
// a 0 newSize behaves like Release, returning nil.
func (a *Allocator) Resize(b []byte, newSize int) ([]byte, error) {
	if b == nil {
		return a.Acquire(newSize)
	}
	if newSize == 0 {
		return nil, a.Release(b)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	h := headerFromPayload(b)
	need := roundup(int64(newSize)+headerSize, align)

	if n := h.next; n != nil && n.free && n.regionID == h.regionID && h.size+n.size >= need {
		h.size += n.size
		a.list.unlink(n)
		return h.payload(newSize), nil
	}

	grown, err := a.acquireLabeled(newSize, h.labelString())
	if err != nil {
		return nil, err
	}

	oldPayloadLen := int(h.size - headerSize)
	n := oldPayloadLen
	if newSize < n {
		n = newSize
	}
	copy(grown, h.payload(n))

	if err := a.release(b); err != nil {
		return nil, err
	}
	return grown, nil
}

// defaultLabel produces the diagnostic name an unlabeled acquire gets,
// following the original C allocator's "Allocation N" convention.
func defaultLabel(n int64) string {
	return "Allocation " + strconv.FormatInt(n, 10)
}
