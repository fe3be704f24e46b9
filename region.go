// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

// errUnknownMapping is returned by the Windows osMunmap path if it is
// asked to unmap an address it never handed out.
var errUnknownMapping = errors.New("vma: unknown mapping address")

// errBlockTooLarge is returned when a single requested block cannot fit in
// any region this manager is willing to map (overflow guard only; there is
// no upper bound on region size otherwise).
var errBlockTooLarge = errors.New("vma: requested block exceeds region size")

// errNegativeSize is returned for a negative Acquire/LabeledAcquire size,
// which has no meaning in the C ABI this engine stands in for.
var errNegativeSize = errors.New("vma: negative size")

var osPageSize = int64(os.Getpagesize())

// regionPageRound rounds totalBytes up to a whole number of system pages.
func regionPageRound(totalBytes int64) int64 {
	return roundup(totalBytes, osPageSize)
}

// mapRegion requests a fresh anonymous mapping large enough to hold a
// single block of at least totalBytes (header included), rounded up to a
// whole number of system pages, and returns that mapping as one large free
// block spanning it entirely.
func mapRegion(totalBytes int64) (*header, error) {
	if totalBytes <= 0 {
		return nil, errBlockTooLarge
	}

	regionSize := regionPageRound(totalBytes)

	addr, err := osMmap(regionSize)
	if err != nil {
		return nil, fmt.Errorf("vma: map region of %d bytes: %w", regionSize, err)
	}

	b := (*header)(addr)
	b.size = regionSize
	b.free = true
	b.prev = nil
	b.next = nil
	return b, nil
}

// unmapRegion returns the region identified by b back to the OS. Legal
// only when b is free and the sole block occupying its region; callers
// are responsible for that check (see Allocator.Release and isAloneInRegion).
func unmapRegion(b *header) error {
	if err := osMunmap(unsafe.Pointer(b), b.size); err != nil {
		return fmt.Errorf("vma: unmap region %d: %w", b.regionID, err)
	}
	return nil
}
