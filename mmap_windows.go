// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Adapted from the Windows mmap wrapper in github.com/cznic/memory, itself
// derived from Evan Shaw's mmap-go (BSD-style license).

package vma

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmap on Windows is a two-step process: CreateFileMapping gets a handle
// backed by the system paging file, then MapViewOfFile gets an actual
// pointer into memory. We keep a side table so osMunmap can recover the
// handle from the address it was handed.
var (
	handleMu  sync.Mutex
	handleMap = map[uintptr]windows.Handle{}
)

func osMmap(size int64) (unsafe.Pointer, error) {
	sizeHigh := uint32(uint64(size) >> 32)
	sizeLow := uint32(uint64(size) & 0xffffffff)

	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, sizeHigh, sizeLow, nil)
	if err != nil {
		return nil, err
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, err
	}

	handleMu.Lock()
	handleMap[addr] = h
	handleMu.Unlock()

	return unsafe.Pointer(addr), nil
}

func osMunmap(addrPtr unsafe.Pointer, _ int64) error {
	addr := uintptr(addrPtr)

	if err := windows.UnmapViewOfFile(addr); err != nil {
		return err
	}

	handleMu.Lock()
	h, ok := handleMap[addr]
	delete(handleMap, addr)
	handleMu.Unlock()

	if !ok {
		return errUnknownMapping
	}
	return windows.CloseHandle(h)
}
