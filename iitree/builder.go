// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import (
	"math"
	"sort"
)

// maxIntervals bounds a Builder so that sorted positions fit in an int32,
// which is what the forest descriptor and permutation arrays are stored as.
const maxIntervals = math.MaxInt32

// Builder accumulates raw (beg, end) pairs in insertion order and, on
// Build, freezes them into an immutable *Index.
//
// A Builder is single-owner: callers must serialize calls to Add and Build
// themselves, same as any other unsynchronized Go value.
type Builder[K Key] struct {
	begBuf, endBuf []K
	sorted         bool
	hasPrev        bool
	prevBeg        K
	prevEnd        K
}

// NewBuilder returns an empty Builder.
func NewBuilder[K Key]() *Builder[K] {
	b := &Builder[K]{}
	b.reset()
	return b
}

func (b *Builder[K]) reset() {
	b.begBuf = make([]K, 0, 8)
	b.endBuf = make([]K, 0, 8)
	b.sorted = true
	b.hasPrev = false
}

// Len returns the number of intervals accumulated so far.
func (b *Builder[K]) Len() int {
	return len(b.begBuf)
}

// Add appends an interval, returning its insertion ID (stable across Build).
// It fails with *InvalidIntervalError if beg > end, or *CapacityError if the
// builder is already at its maximum size.
func (b *Builder[K]) Add(beg, end K) (int, error) {
	if beg > end {
		return -1, &InvalidIntervalError{Beg: beg, End: end}
	}
	if len(b.begBuf) >= maxIntervals {
		return -1, &CapacityError{Max: maxIntervals}
	}
	if b.hasPrev && !lessOrEqualPair(b.prevBeg, b.prevEnd, beg, end) {
		b.sorted = false
	}
	b.prevBeg, b.prevEnd = beg, end
	b.hasPrev = true

	id := len(b.begBuf)
	b.begBuf = append(b.begBuf, beg)
	b.endBuf = append(b.endBuf, end)
	return id, nil
}

func lessOrEqualPair[K Key](aBeg, aEnd, bBeg, bEnd K) bool {
	if aBeg != bBeg {
		return aBeg < bBeg
	}
	return aEnd <= bEnd
}

// buildConfig holds the options a BuildOption may set.
type buildConfig struct {
	fastScan bool
}

// BuildOption configures a call to Builder.Build.
type BuildOption func(*buildConfig)

// WithFastScan stores maxEnd only for subtrees at level >= 2 (saving ~75%
// of augmentation storage) and has the query engine scan the remaining
// shallow subtrees (<=7 entries) linearly instead of recursing into them.
// Query results are identical to the dense layout either way.
func WithFastScan() BuildOption {
	return func(c *buildConfig) { c.fastScan = true }
}

// Build freezes the accumulated intervals into an immutable *Index and
// resets the builder to empty.
func (b *Builder[K]) Build(opts ...BuildOption) *Index[K] {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(b.begBuf)
	beg := make([]K, n)
	end := make([]K, n)
	var perm []int32

	if b.sorted {
		copy(beg, b.begBuf)
		copy(end, b.endBuf)
	} else {
		order := make([]int32, n)
		for i := range order {
			order[i] = int32(i)
		}
		sort.SliceStable(order, func(i, j int) bool {
			oi, oj := order[i], order[j]
			if b.begBuf[oi] != b.begBuf[oj] {
				return b.begBuf[oi] < b.begBuf[oj]
			}
			return b.endBuf[oi] < b.endBuf[oj]
		})
		for sortedPos, orig := range order {
			beg[sortedPos] = b.begBuf[orig]
			end[sortedPos] = b.endBuf[orig]
		}
		perm = order
	}

	forestIdx := computeForestIdx(n)
	idx := &Index[K]{
		beg:       beg,
		end:       end,
		forestIdx: forestIdx,
		perm:      perm,
		fastScan:  cfg.fastScan,
	}
	if cfg.fastScan {
		idx.maxEnd, idx.sparseIdx = buildAugmentSparse(beg, end, forestIdx)
	} else {
		idx.maxEnd = buildAugmentDense(beg, end, forestIdx)
	}

	b.reset()
	return idx
}
