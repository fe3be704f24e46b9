// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Adapted from the Unix mmap wrapper in github.com/cznic/memory, itself
// derived from Evan Shaw's mmap-go (BSD-style license).

//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package vma

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// osMmap asks the kernel for a fresh anonymous, private, read/write
// mapping of size bytes and returns its start address.
func osMmap(size int64) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&b[0]), nil
}

// osMunmap returns the mapping starting at addr and spanning size bytes
// back to the kernel.
func osMunmap(addr unsafe.Pointer, size int64) error {
	b := unsafe.Slice((*byte)(addr), int(size))
	return unix.Munmap(b)
}
