// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

// RawIndex exposes an Index's arrays for a serialization collaborator (see
// package iitio) without widening the query surface itself. The slices
// returned by Raw share backing storage with the Index and must not be
// mutated by the caller.
type RawIndex[K Key] struct {
	N         int
	Beg, End  []K
	MaxEnd    []K
	ForestIdx []int32
	SparseIdx []int32 // nil unless FastScan
	Perm      []int32 // nil iff the index was built from already-sorted input
	FastScan  bool
}

// Raw returns a read-only snapshot of idx's backing arrays.
func (idx *Index[K]) Raw() RawIndex[K] {
	return RawIndex[K]{
		N:         idx.Size(),
		Beg:       idx.beg,
		End:       idx.end,
		MaxEnd:    idx.maxEnd,
		ForestIdx: idx.forestIdx,
		SparseIdx: idx.sparseIdx,
		Perm:      idx.perm,
		FastScan:  idx.fastScan,
	}
}

// FromRaw reconstructs an Index from a RawIndex, typically produced by
// iitio.Load. It does not re-derive the augmentation from beg/end; callers
// that do not trust the source should follow up with Validate.
func FromRaw[K Key](raw RawIndex[K]) *Index[K] {
	return &Index[K]{
		beg:       raw.Beg,
		end:       raw.End,
		maxEnd:    raw.MaxEnd,
		forestIdx: raw.ForestIdx,
		sparseIdx: raw.SparseIdx,
		perm:      raw.Perm,
		fastScan:  raw.FastScan,
	}
}
