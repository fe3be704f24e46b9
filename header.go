// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import "unsafe"

// align is the universal allocation quantum. Every block size and every
// payload address is a multiple of align bytes.
const align = 8

// maxLabel is the usable length of a block's name, one byte short of its
// storage so the label always carries a NUL terminator.
const maxLabel = 31

// header is the intrusive record embedded at the start of every block,
// used or free. It lives inside the OS-mapped region it describes and is
// never relocated by anything other than split/coalesce/unmap.
type header struct {
	size     int64
	free     bool
	regionID int64
	name     [maxLabel + 1]byte
	prev     *header
	next     *header
}

// headerSize is the header's footprint rounded up to align, the minimum
// prefix every block pays regardless of payload size.
var headerSize = roundup(int64(unsafe.Sizeof(header{})), align)

// minBlockSize is the smallest legal block: a header plus one quantum of
// payload. split refuses to create anything smaller.
var minBlockSize = headerSize + align

// roundup returns the smallest multiple of m that is >= n. m must be a
// power of two.
func roundup(n, m int64) int64 {
	return (n + m - 1) &^ (m - 1)
}

// payload returns the byte slice a caller should see for h, with len set
// to usableLen and cap set to the block's full usable capacity. Invariant
// 1 (every block is at least headerSize+align) guarantees cap is always
// >= align, so a 0-byte request still yields a non-degenerate slice.
func (h *header) payload(usableLen int) []byte {
	usableCap := int(h.size - headerSize)
	base := unsafe.Add(unsafe.Pointer(h), headerSize)
	return unsafe.Slice((*byte)(base), usableCap)[:usableLen]
}

// headerFromPayload recovers the header that precedes a payload slice.
// This is the one place pointer arithmetic reaches back across the
// header/payload boundary; every other helper goes the other way. It
// reslices to cap first so a zero-length acquire (len 0, cap >= align)
// still resolves to a real address.
func headerFromPayload(b []byte) *header {
	b = b[:cap(b)]
	base := unsafe.Pointer(&b[:1][0])
	return (*header)(unsafe.Add(base, -headerSize))
}

// end returns the address one byte past h's block.
func (h *header) end() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(h), h.size)
}

// setName copies label into h's fixed-capacity name buffer, truncating to
// maxLabel bytes and always NUL-terminating.
func (h *header) setName(label string) {
	h.name = [maxLabel + 1]byte{}
	n := copy(h.name[:maxLabel], label)
	h.name[n] = 0
}

// labelString returns h's name as a Go string, trimmed at the first NUL.
func (h *header) labelString() string {
	n := 0
	for n < len(h.name) && h.name[n] != 0 {
		n++
	}
	return string(h.name[:n])
}
