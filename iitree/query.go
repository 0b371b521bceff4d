// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import (
	"math/bits"
	"sort"
)

// Walk invokes visit once, in the order described by the package's ordering
// contract, for every sorted position i such that beg[i] < qEnd && end[i] >
// qBeg. visit returns true to keep going, false to stop the walk
// immediately; Walk itself returns as soon as that happens, popping any
// pending recursion frames without further work.
//
// A degenerate query (qBeg >= qEnd) always matches nothing.
func (idx *Index[K]) Walk(qBeg, qEnd K, visit func(sortedPos int) bool) {
	if qBeg >= qEnd {
		return
	}
	for k := 0; k < numSlices(idx.forestIdx); k++ {
		i := idx.forestIdx[k]
		sz := idx.forestIdx[k+1] - i

		if idx.beg[i] >= qEnd {
			// Every later slice starts no earlier than this one.
			return
		}

		var summary K
		if idx.fastScan {
			summary = idx.maxEnd[idx.sparseIdx[k]]
		} else {
			summary = idx.maxEnd[i]
		}
		if summary <= qBeg {
			continue
		}

		if idx.end[i] > qBeg {
			if !visit(int(i)) {
				return
			}
		}

		if sz > 1 {
			p := bits.Len(uint(sz)) - 1
			root := int32(1<<(p-1)) - 1
			ofs := i + 1
			var cont bool
			if idx.fastScan {
				cont = idx.walkTreeSparse(ofs, root, p-1, idx.sparseIdx[k], qBeg, qEnd, visit)
			} else {
				cont = idx.walkTreeDense(ofs, root, p-1, qBeg, qEnd, visit)
			}
			if !cont {
				return
			}
		}
	}
}

// walkTreeDense is the recursive in-order traversal over a slice's perfect
// implicit tree, pruned by the densely stored maxEnd array. It returns
// false as soon as visit does, so callers must stop immediately too.
func (idx *Index[K]) walkTreeDense(ofs, node int32, lvl int, qBeg, qEnd K, visit func(int) bool) bool {
	j := ofs + node
	if idx.maxEnd[j] <= qBeg {
		return true
	}
	if lvl > 0 {
		half := int32(1) << uint(lvl-1)
		if !idx.walkTreeDense(ofs, node-half, lvl-1, qBeg, qEnd, visit) {
			return false
		}
	}
	if idx.beg[j] < qEnd {
		if idx.end[j] > qBeg {
			if !visit(int(j)) {
				return false
			}
		}
		if lvl > 0 {
			half := int32(1) << uint(lvl-1)
			if !idx.walkTreeDense(ofs, node+half, lvl-1, qBeg, qEnd, visit) {
				return false
			}
		}
	}
	return true
}

// walkTreeSparse is the fast-scan counterpart: it recurses only down to
// level 2 (pruning on the level>=2 stored maxEnd entries), then scans the
// remaining <=7-entry subtree linearly in sorted-position order.
func (idx *Index[K]) walkTreeSparse(ofs, node int32, lvl int, sparseBase int32, qBeg, qEnd K, visit func(int) bool) bool {
	if lvl >= 2 {
		sIdx := sparseBase + 1 + node/4
		if idx.maxEnd[sIdx] <= qBeg {
			return true
		}
	}
	if lvl <= 2 {
		lo := node - (int32(1) << uint(lvl)) + 1
		hi := node + (int32(1) << uint(lvl)) - 1
		for n := lo; n <= hi; n++ {
			j := ofs + n
			if idx.beg[j] >= qEnd {
				break
			}
			if idx.end[j] > qBeg {
				if !visit(int(j)) {
					return false
				}
			}
		}
		return true
	}

	half := int32(1) << uint(lvl-1)
	if !idx.walkTreeSparse(ofs, node-half, lvl-1, sparseBase, qBeg, qEnd, visit) {
		return false
	}
	j := ofs + node
	if idx.beg[j] < qEnd {
		if idx.end[j] > qBeg {
			if !visit(int(j)) {
				return false
			}
		}
		if !idx.walkTreeSparse(ofs, node+half, lvl-1, sparseBase, qBeg, qEnd, visit) {
			return false
		}
	}
	return true
}

// WalkExact invokes visit once for every sorted position whose (beg, end)
// equals exactly (qBeg, qEnd), in ascending sorted-position order. It
// locates the run with a binary search on the global (beg, end) ordering
// rather than a filtered overlap walk, per the package's resolution of the
// "binary search vs. filtered walk" design question.
func (idx *Index[K]) WalkExact(qBeg, qEnd K, visit func(sortedPos int) bool) {
	n := idx.Size()
	start := sort.Search(n, func(i int) bool {
		if idx.beg[i] != qBeg {
			return idx.beg[i] > qBeg
		}
		return idx.end[i] >= qEnd
	})
	for i := start; i < n && idx.beg[i] == qBeg && idx.end[i] == qEnd; i++ {
		if !visit(i) {
			return
		}
	}
}
