// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import "math/bits"

// computeForestIdx decomposes n into its binary representation and returns
// the slice-boundary array idx[]: idx[0] = 0, each idx[k+1]-idx[k] is one of
// n's set bits (highest bit first), and idx[len(idx)-1] == n.
//
// When n == 0 the result is the single-element slice [0] and there are no
// slices (len(idx)-1 == 0 == popcount(0)).
func computeForestIdx(n int) []int32 {
	idx := make([]int32, 1, bits.OnesCount(uint(n))+1)
	idx[0] = 0
	remaining := n
	for remaining > 0 {
		p := 1 << (bits.Len(uint(remaining)) - 1) // highest set bit of remaining
		remaining &^= p
		idx = append(idx, idx[len(idx)-1]+int32(p))
	}
	return idx
}

// numSlices returns popcount(n), the number of slices in the forest.
func numSlices(idx []int32) int {
	return len(idx) - 1
}
