// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

// HitAt materializes the Hit stored at sortedPos, as reported by Walk,
// WalkExact, or QueryAll.
func (idx *Index[K]) HitAt(sortedPos int) Hit[K] {
	return Hit[K]{Beg: idx.beg[sortedPos], End: idx.end[sortedPos], ID: idx.id(sortedPos)}
}

// QueryOverlap materializes every stored interval overlapping [qBeg, qEnd)
// in the Walk ordering contract.
func (idx *Index[K]) QueryOverlap(qBeg, qEnd K) []Hit[K] {
	var hits []Hit[K]
	idx.Walk(qBeg, qEnd, func(i int) bool {
		hits = append(hits, idx.HitAt(i))
		return true
	})
	return hits
}

// QueryOverlapPositions appends every sorted position overlapping [qBeg,
// qEnd) to buf (which may be nil or reused from a pool) and returns the
// result, letting a caller that wants to avoid an allocation per query
// avoid the []Hit[K] materialized by QueryOverlap and build hits from
// positions itself via HitAt.
func (idx *Index[K]) QueryOverlapPositions(qBeg, qEnd K, buf []int) []int {
	idx.Walk(qBeg, qEnd, func(i int) bool {
		buf = append(buf, i)
		return true
	})
	return buf
}

// QueryAnyOverlap returns the first stored interval overlapping [qBeg,
// qEnd), or false if none does.
func (idx *Index[K]) QueryAnyOverlap(qBeg, qEnd K) (Hit[K], bool) {
	var hit Hit[K]
	found := false
	idx.Walk(qBeg, qEnd, func(i int) bool {
		hit = idx.HitAt(i)
		found = true
		return false
	})
	return hit, found
}

// QueryOverlapExists reports whether any stored interval overlaps [qBeg,
// qEnd).
func (idx *Index[K]) QueryOverlapExists(qBeg, qEnd K) bool {
	_, ok := idx.QueryAnyOverlap(qBeg, qEnd)
	return ok
}

// QueryAll invokes visit once for every stored interval, in ascending
// sorted order, by iterating the sorted arrays directly rather than
// walking the overlap tree with an all-covering query.
func (idx *Index[K]) QueryAll(visit func(Hit[K]) bool) {
	for i := 0; i < idx.Size(); i++ {
		if !visit(idx.HitAt(i)) {
			return
		}
	}
}

// QueryExact materializes every stored interval equal to (qBeg, qEnd).
func (idx *Index[K]) QueryExact(qBeg, qEnd K) []Hit[K] {
	var hits []Hit[K]
	idx.WalkExact(qBeg, qEnd, func(i int) bool {
		hits = append(hits, idx.HitAt(i))
		return true
	})
	return hits
}
