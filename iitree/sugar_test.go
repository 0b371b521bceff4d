// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlin/iitj/iitree"
)

// TestQueryAnyOverlap reuses the S1 fixture: a query with hits returns the
// first one in Walk order, a query with none reports false.
func TestQueryAnyOverlap(t *testing.T) {
	pairs := []pair{{0, 23}, {12, 34}, {34, 56}}
	dense, fast := buildBoth(t, pairs)
	for _, idx := range []*iitree.Index[int]{dense, fast} {
		hit, ok := idx.QueryAnyOverlap(22, 25)
		require.True(t, ok)
		require.Equal(t, iitree.Hit[int]{Beg: 0, End: 23, ID: 0}, hit)

		_, ok = idx.QueryAnyOverlap(100, 200)
		require.False(t, ok)
	}
}

// TestQueryOverlapExists reuses the S2 abutment fixture to check the
// boundary cases line up with QueryOverlap.
func TestQueryOverlapExists(t *testing.T) {
	pairs := []pair{{0, 10}, {10, 20}}
	dense, fast := buildBoth(t, pairs)
	for _, idx := range []*iitree.Index[int]{dense, fast} {
		require.False(t, idx.QueryOverlapExists(10, 10))
		require.True(t, idx.QueryOverlapExists(9, 10))
		require.True(t, idx.QueryOverlapExists(10, 11))
		require.False(t, idx.QueryOverlapExists(100, 200))
	}
}

// TestQueryExact extends the S4 duplicates fixture with one non-matching
// interval: QueryExact returns exactly the three (5,7) entries, and nothing
// for an absent pair.
func TestQueryExact(t *testing.T) {
	pairs := []pair{{5, 7}, {5, 7}, {5, 7}, {6, 9}}
	dense, fast := buildBoth(t, pairs)
	for _, idx := range []*iitree.Index[int]{dense, fast} {
		hits := idx.QueryExact(5, 7)
		require.Equal(t, hitTuples(hits), [][3]int{{5, 7, 0}, {5, 7, 1}, {5, 7, 2}})

		require.Empty(t, idx.QueryExact(0, 1))
	}
}

// TestQueryOverlapPositions checks that the position-only, pool-friendly
// form returns the same sorted positions QueryOverlap builds its Hits from.
func TestQueryOverlapPositions(t *testing.T) {
	pairs := []pair{{50, 60}, {10, 20}, {30, 40}, {10, 15}}
	dense, fast := buildBoth(t, pairs)
	for _, idx := range []*iitree.Index[int]{dense, fast} {
		want := idx.QueryOverlap(12, 35)
		wantPos := make([]int, len(want))
		for i, h := range want {
			wantPos[i] = -1
			for pos := 0; pos < idx.Size(); pos++ {
				if idx.HitAt(pos) == h {
					wantPos[i] = pos
				}
			}
		}

		var buf []int
		got := idx.QueryOverlapPositions(12, 35, buf)
		require.Len(t, got, len(want))
		for i, pos := range got {
			require.Equal(t, want[i], idx.HitAt(pos))
		}

		// A reused, non-empty buffer is appended to starting from its
		// existing contents, same as append().
		reused := idx.QueryOverlapPositions(12, 35, []int{-1})
		require.Equal(t, -1, reused[0])
		require.Len(t, reused, 1+len(want))
	}
}

// TestSeq checks that the iter.Seq wrapper yields exactly what Walk does,
// and that returning false from the consumer's range stops it early.
func TestSeq(t *testing.T) {
	pairs := []pair{{0, 23}, {12, 34}, {34, 56}}
	dense, fast := buildBoth(t, pairs)
	for _, idx := range []*iitree.Index[int]{dense, fast} {
		var got []iitree.Hit[int]
		for h := range idx.Seq(22, 25) {
			got = append(got, h)
		}
		require.Equal(t, idx.QueryOverlap(22, 25), got)

		calls := 0
		for range idx.Seq(-1000, 1000) {
			calls++
			break
		}
		require.Equal(t, 1, calls)
	}
}

// TestAll checks that the All iterator yields every stored interval in
// ascending sorted order, matching QueryAll.
func TestAll(t *testing.T) {
	pairs := []pair{{50, 60}, {10, 20}, {30, 40}, {10, 15}}
	dense, fast := buildBoth(t, pairs)
	for _, idx := range []*iitree.Index[int]{dense, fast} {
		var want []iitree.Hit[int]
		idx.QueryAll(func(h iitree.Hit[int]) bool {
			want = append(want, h)
			return true
		})

		var got []iitree.Hit[int]
		for h := range idx.All() {
			got = append(got, h)
		}
		require.Equal(t, want, got)
		require.Len(t, got, len(pairs))
	}
}
