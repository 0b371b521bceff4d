// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import "iter"

// Seq returns the overlap query as a pull-based iter.Seq instead of a
// push-based visitor, for callers that prefer range-over-func. It is built
// directly on Walk, so it preserves the same ordering contract and the same
// early-termination behavior when the consumer stops ranging early.
func (idx *Index[K]) Seq(qBeg, qEnd K) iter.Seq[Hit[K]] {
	return func(yield func(Hit[K]) bool) {
		idx.Walk(qBeg, qEnd, func(i int) bool {
			return yield(idx.HitAt(i))
		})
	}
}

// All returns every stored interval as an iter.Seq, in ascending sorted
// order.
func (idx *Index[K]) All() iter.Seq[Hit[K]] {
	return func(yield func(Hit[K]) bool) {
		idx.QueryAll(yield)
	}
}
