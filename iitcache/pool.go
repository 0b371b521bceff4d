// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitcache

import (
	"git.lukeshu.com/go/typedsync"
)

// HitBufferPool hands out reusable []int scratch slices for
// iitree.Index.QueryOverlapPositions, which appends the matching sorted
// positions from a Walk rather than allocating a fresh []Hit[K] the way
// QueryOverlap does; a hot query loop can reuse one buffer per worker
// instead of allocating on every call. The positions are plain ints
// regardless of the index's key type K, so one pool type serves every
// instantiation of Index. Wraps typedsync.Pool directly, without a
// size-aware bucketing Get(size int) variant, since callers always append
// into a zero-length buffer rather than asking for a specific length up
// front.
type HitBufferPool struct {
	pool typedsync.Pool[[]int]
}

// Get returns a buffer with length 0 and unspecified capacity.
func (p *HitBufferPool) Get() []int {
	buf, ok := p.pool.Get()
	if !ok {
		return nil
	}
	return buf[:0]
}

// Put returns buf to the pool for reuse. Callers must not read or write buf
// after calling Put.
func (p *HitBufferPool) Put(buf []int) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
