// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vma implements a drop-in free-space management engine for a
// process-level dynamic memory allocator.
//
// It services sized-buffer acquire, release, zero-initialized acquire, and
// resize requests directly out of regions obtained from the operating
// system's anonymous virtual-memory mapping facility (mmap on Unix,
// CreateFileMapping/MapViewOfFile on Windows). It is meant to sit behind a
// thin cgo/preload shim that maps the C ABI's malloc/free/calloc/realloc
// onto Acquire/Release/ZeroAcquire/Resize; that shim, any thread-local
// caching layer, and the preload mechanics themselves are not part of this
// package.
//
// The engine maintains a single process-wide doubly linked list of block
// headers threaded through every OS-mapped region, selects free blocks
// using one of three placement policies (first fit, best fit, worst fit),
// splits and coalesces blocks as they are reused and released, and returns
// a region to the OS once every block in it has merged back into one free
// block.
//
// All public operations on *Allocator are safe for concurrent use: a
// single mutex serializes the whole engine, matching the single-threaded
// semantics the underlying block list and counters assume.
package vma
