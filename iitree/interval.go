// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package iitree is an in-memory, read-only index of half-open intervals
// [beg, end) over a totally ordered key type K, answering range-overlap
// queries.
//
// The index is built once from a Builder and is thereafter immutable: all
// of its arrays are allocated exactly once, and the query primitives (Walk
// and WalkExact) perform no heap allocation of their own; the sugar that
// materializes results (QueryOverlap, QueryExact) allocates its result
// slice.  Once built, an *Index is safe for any number of concurrent readers.
//
// The in-memory layout is a concatenation of implicit, perfect binary
// interval trees, one per set bit of N (see forest.go); this is the same
// layout cgranges uses, adapted to arbitrary ordered key types instead of a
// single numeric specialization.
package iitree

import "golang.org/x/exp/constraints"

// Key is the constraint satisfied by every type this package can index:
// anything with a total order and the usual comparison operators.
type Key = constraints.Ordered

// Interval is a half-open range [Beg, End) with Beg <= End.
type Interval[K Key] struct {
	Beg, End K
}

// Overlaps reports whether iv overlaps the half-open range [qBeg, qEnd).
func (iv Interval[K]) Overlaps(qBeg, qEnd K) bool {
	return iv.Beg < qEnd && iv.End > qBeg
}

// Hit is a stored interval reported by a query, paired with its stable
// insertion ID.
type Hit[K Key] struct {
	Beg, End K
	ID       int
}
