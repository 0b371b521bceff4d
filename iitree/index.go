// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import (
	"reflect"
)

// Index is an immutable, queryable interval forest built by Builder.Build.
// All of its fields are assigned exactly once at construction and never
// modified afterward; any number of goroutines may call its query methods
// concurrently without synchronization.
type Index[K Key] struct {
	beg, end  []K
	maxEnd    []K
	forestIdx []int32
	sparseIdx []int32 // non-nil iff fastScan
	perm      []int32 // nil iff intervals were inserted already sorted
	fastScan  bool
}

// Size returns N, the number of intervals in the index.
func (idx *Index[K]) Size() int {
	return len(idx.beg)
}

// id maps a sorted position to its stable insertion ID.
func (idx *Index[K]) id(sortedPos int) int {
	if idx.perm != nil {
		return int(idx.perm[sortedPos])
	}
	return sortedPos
}

// Validate runs the debug self-check described in the package's design
// invariants: sortedness, the beg<=end invariant, the maxEnd augmentation,
// forest-descriptor consistency, and the permutation's shape. It is meant
// for tests and diagnostics, not the query hot path.
func (idx *Index[K]) Validate() error {
	n := idx.Size()
	if len(idx.end) != n {
		return &InvariantError{Reason: "len(end) != len(beg)"}
	}
	for i := 0; i < n; i++ {
		if idx.beg[i] > idx.end[i] {
			return &InvariantError{Reason: "beg[i] > end[i]"}
		}
	}
	for i := 1; i < n; i++ {
		if idx.beg[i-1] > idx.beg[i] {
			return &InvariantError{Reason: "beg[] is not sorted"}
		}
		if idx.beg[i-1] == idx.beg[i] && idx.end[i-1] > idx.end[i] {
			return &InvariantError{Reason: "end[] is not sorted within equal beg[]"}
		}
	}
	if len(idx.forestIdx) == 0 || idx.forestIdx[0] != 0 {
		return &InvariantError{Reason: "forestIdx[0] != 0"}
	}
	if idx.forestIdx[len(idx.forestIdx)-1] != int32(n) {
		return &InvariantError{Reason: "forestIdx does not sum to N"}
	}
	for k := 0; k < numSlices(idx.forestIdx); k++ {
		sz := idx.forestIdx[k+1] - idx.forestIdx[k]
		if sz <= 0 || sz&(sz-1) != 0 {
			return &InvariantError{Reason: "slice size is not a power of two"}
		}
	}
	if idx.perm != nil && len(idx.perm) != n {
		return &InvariantError{Reason: "len(perm) != N"}
	}

	if idx.fastScan {
		wantMaxEnd, wantSparseIdx := buildAugmentSparse(idx.beg, idx.end, idx.forestIdx)
		if !reflect.DeepEqual(wantSparseIdx, idx.sparseIdx) || !reflect.DeepEqual(wantMaxEnd, idx.maxEnd) {
			return &InvariantError{Reason: "sparse maxEnd does not match recomputation"}
		}
	} else {
		wantMaxEnd := buildAugmentDense(idx.beg, idx.end, idx.forestIdx)
		if !reflect.DeepEqual(wantMaxEnd, idx.maxEnd) {
			return &InvariantError{Reason: "maxEnd does not match recomputation"}
		}
	}
	return nil
}
