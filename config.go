// Copyright 2024 The VMA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vma

import (
	"os"
	"sync"
)

// Environment variable names recognized by the engine. Named here, not
// read anywhere but config.go, so an embedding preload shim can document
// them against a single source of truth.
const (
	envAlgorithm = "ALLOCATOR_ALGORITHM"
	envScribble  = "ALLOCATOR_SCRIBBLE"
)

// config caches the environment-driven policy and scribble settings for an
// Allocator. Both are resolved once, on first use, rather than re-reading
// the environment on every Acquire: the spec leaves this open, and every
// one-time-setup path in the retrieval pack (pool/config construction
// rather than per-call lookups) favors resolving configuration once.
type config struct {
	once     sync.Once
	policy   Policy
	scribble bool
}

func (c *config) resolve() {
	c.once.Do(func() {
		c.policy = parsePolicy(os.Getenv(envAlgorithm))
		c.scribble = os.Getenv(envScribble) == "1"
	})
}
