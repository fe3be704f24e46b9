// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

// Default is the process-wide Allocator a preload shim would dispatch the
// C ABI's malloc/free/calloc/realloc onto. Its zero value is ready for
// use, same as any other *Allocator; it exists only so callers that want
// a single shared engine (matching spec's head/tail/counters-are-process-
// singletons design note) don't need to thread one through themselves.
var Default Allocator

// Acquire delegates to Default.Acquire.
func Acquire(size int) ([]byte, error) { return Default.Acquire(size) }

// Release delegates to Default.Release.
func Release(b []byte) error { return Default.Release(b) }

// ZeroAcquire delegates to Default.ZeroAcquire.
func ZeroAcquire(count, elemSize int) ([]byte, error) { return Default.ZeroAcquire(count, elemSize) }

// Resize delegates to Default.Resize.
func Resize(b []byte, newSize int) ([]byte, error) { return Default.Resize(b, newSize) }

// LabeledAcquire delegates to Default.LabeledAcquire.
func LabeledAcquire(size int, label string) ([]byte, error) {
	return Default.LabeledAcquire(size, label)
}
