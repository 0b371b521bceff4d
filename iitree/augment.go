// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import (
	"math/bits"

	"github.com/mlin/iitj/internal/slicesx"
)

// buildAugmentDense computes one maxEnd entry per sorted position: for an
// index node, the maximum End across its whole slice; for a tree node, the
// maximum End across the subtree rooted at it.
func buildAugmentDense[K Key](beg, end []K, forestIdx []int32) []K {
	n := len(end)
	maxEnd := make([]K, n)
	for k := 0; k < numSlices(forestIdx); k++ {
		s := forestIdx[k]
		sz := forestIdx[k+1] - s
		if sz == 1 {
			maxEnd[s] = end[s]
			continue
		}
		p := bits.Len(uint(sz)) - 1
		root := int32(1<<(p-1)) - 1
		ofs := s + 1

		var rec func(node int32, lvl int) K
		rec = func(node int32, lvl int) K {
			m := end[ofs+node]
			if lvl > 0 {
				half := int32(1) << uint(lvl-1)
				if lv := rec(node-half, lvl-1); lv > m {
					m = lv
				}
				if rv := rec(node+half, lvl-1); rv > m {
					m = rv
				}
			}
			maxEnd[ofs+node] = m
			return m
		}
		treeMax := rec(root, p-1)
		maxEnd[s] = slicesx.Max(end[s], treeMax)
	}
	return maxEnd
}

// buildAugmentSparse computes the level->=2 partial-storage layout: one
// maxEnd array per slice of length 1+(sz-1)/4 (entry 0 is the slice
// summary, entry n/4+1 is the maxEnd of the tree node at position n),
// concatenated across all slices, plus the per-slice offsets into that
// concatenation (sparseIdx, parallel in shape to forestIdx).
func buildAugmentSparse[K Key](beg, end []K, forestIdx []int32) (maxEnd []K, sparseIdx []int32) {
	nSlices := numSlices(forestIdx)
	sparseIdx = make([]int32, nSlices+1)
	for k := 0; k < nSlices; k++ {
		sz := forestIdx[k+1] - forestIdx[k]
		sparseIdx[k+1] = sparseIdx[k] + 1 + (sz-1)/4
	}
	maxEnd = make([]K, sparseIdx[nSlices])

	for k := 0; k < nSlices; k++ {
		s := forestIdx[k]
		sz := forestIdx[k+1] - s
		base := sparseIdx[k]
		if sz == 1 {
			maxEnd[base] = end[s]
			continue
		}
		p := bits.Len(uint(sz)) - 1
		root := int32(1<<(p-1)) - 1
		ofs := s + 1

		var rec func(node int32, lvl int) K
		rec = func(node int32, lvl int) K {
			m := end[ofs+node]
			if lvl > 0 {
				half := int32(1) << uint(lvl-1)
				if lv := rec(node-half, lvl-1); lv > m {
					m = lv
				}
				if rv := rec(node+half, lvl-1); rv > m {
					m = rv
				}
			}
			if lvl >= 2 {
				maxEnd[base+1+node/4] = m
			}
			return m
		}
		treeMax := rec(root, p-1)
		maxEnd[base] = slicesx.Max(end[s], treeMax)
	}
	return maxEnd, sparseIdx
}
