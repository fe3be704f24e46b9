// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import (
	"math"
	"testing"

	"github.com/cznic/mathutil"
)

// soakQuota bounds the total bytes requested across a soak run. Small
// enough to keep the suite fast, large enough to force many region
// mappings, splits, and coalesces.
const soakQuota = 4 << 20

var (
	soakMaxSmall = int(osPageSize) / 4
	soakMaxBig   = int(osPageSize) * 3
)

// soakAllocateThenVerify mirrors the teacher's test1: allocate against a
// byte quota while writing a deterministic pattern into each buffer, then
// replay the same RNG sequence to confirm every byte is exactly what was
// written, then shuffle and release everything.
func soakAllocateThenVerify(t *testing.T, max int) {
	var a Allocator
	rem := soakQuota
	var bufs [][]byte

	rng, err := mathutil.NewFC32(0, math.MaxInt32, true)
	if err != nil {
		t.Fatal(err)
	}
	rng.Seed(42)
	pos := rng.Pos()

	for rem > 0 {
		size := rng.Next()%max + 1
		rem -= size

		b, err := a.Acquire(size)
		if err != nil {
			t.Fatal(err)
		}
		bufs = append(bufs, b)
		for i := range b {
			b[i] = byte(rng.Next())
		}
	}

	checkInvariants(t, &a)

	rng.Seek(pos)
	for i, b := range bufs {
		if g, e := len(b), rng.Next()%max+1; g != e {
			t.Fatalf("buffer %d: len %d, want %d", i, g, e)
		}
		for j := range b {
			if e := byte(rng.Next()); b[j] != e {
				t.Fatalf("buffer %d byte %d: got %#02x, want %#02x", i, j, b[j], e)
			}
		}
	}

	for i := range bufs {
		j := rng.Next() % len(bufs)
		bufs[i], bufs[j] = bufs[j], bufs[i]
	}

	for _, b := range bufs {
		if err := a.Release(b); err != nil {
			t.Fatal(err)
		}
	}

	if a.list.head != nil || a.list.tail != nil {
		t.Fatalf("list not empty after releasing every buffer: head=%v tail=%v", a.list.head, a.list.tail)
	}
	if a.regionCount == 0 {
		t.Fatal("expected at least one region to have been mapped")
	}
}

func TestSoakAllocateThenVerifySmall(t *testing.T) { soakAllocateThenVerify(t, soakMaxSmall) }
func TestSoakAllocateThenVerifyBig(t *testing.T)   { soakAllocateThenVerify(t, soakMaxBig) }

// soakInterleavedAcquireRelease mirrors the teacher's test3: acquire and
// release are interleaved at random against a live set; every acquired
// buffer must have the requested length and is filled with 0xEE, and each
// buffer is checked to still hold that fill when it is released.
func soakInterleavedAcquireRelease(t *testing.T, max int) {
	var a Allocator
	rem := soakQuota
	live := map[*[]byte]int{}

	rng, err := mathutil.NewFC32(1, max, true)
	if err != nil {
		t.Fatal(err)
	}
	rng.Seed(7)

	for rem > 0 || len(live) > 0 {
		op := rng.Next() % 3
		if rem <= 0 {
			op = 2
		}

		switch op {
		case 0, 1: // acquire
			size := rng.Next()
			rem -= size

			b, err := a.Acquire(size)
			if err != nil {
				t.Fatal(err)
			}
			if len(b) != size {
				t.Fatalf("Acquire(%d): got len %d", size, len(b))
			}
			for i := range b {
				b[i] = 0xEE
			}
			live[&b] = size

		case 2: // release one at random, if any are live
			if len(live) == 0 {
				continue
			}
			n := rng.Next() % len(live)
			var target *[]byte
			for k := range live {
				if n == 0 {
					target = k
					break
				}
				n--
			}
			for _, v := range *target {
				if v != 0xEE {
					t.Fatalf("corrupted live buffer before release: %#02x", v)
				}
			}
			if err := a.Release(*target); err != nil {
				t.Fatal(err)
			}
			delete(live, target)
		}

		checkInvariants(t, &a)
	}

	for b := range live {
		if err := a.Release(*b); err != nil {
			t.Fatal(err)
		}
	}
	if a.list.head != nil {
		t.Fatal("expected an empty list once every live buffer drains")
	}
}

func TestSoakInterleavedAcquireReleaseSmall(t *testing.T) {
	soakInterleavedAcquireRelease(t, soakMaxSmall)
}
func TestSoakInterleavedAcquireReleaseBig(t *testing.T) {
	soakInterleavedAcquireRelease(t, soakMaxBig)
}
