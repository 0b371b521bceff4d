// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteSliceMax computes the maximum End over the whole slice [s, s+sz) by
// a linear scan -- used to double check the index-node summaries of
// buildAugmentDense independently of its recursive implementation.
func bruteSliceMax(end []int, s, sz int32) int {
	m := end[s]
	for i := s + 1; i < s+sz; i++ {
		if end[i] > m {
			m = end[i]
		}
	}
	return m
}

func TestBuildAugmentDenseSliceSummary(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(100)
		beg := make([]int, n)
		end := make([]int, n)
		for i := range beg {
			beg[i] = rng.Intn(50)
			end[i] = beg[i] + rng.Intn(20)
		}
		// beg must be sorted for this to be a valid index; sort manually.
		for i := 1; i < n; i++ {
			for j := i; j > 0 && beg[j-1] > beg[j]; j-- {
				beg[j-1], beg[j] = beg[j], beg[j-1]
				end[j-1], end[j] = end[j], end[j-1]
			}
		}
		forestIdx := computeForestIdx(n)
		maxEnd := buildAugmentDense(beg, end, forestIdx)
		for k := 0; k < numSlices(forestIdx); k++ {
			s, sz := forestIdx[k], forestIdx[k+1]-forestIdx[k]
			require.Equal(t, bruteSliceMax(end, s, sz), maxEnd[s], "trial=%d slice=%d", trial, k)
		}
	}
}

func TestValidateCatchesTamperedMaxEnd(t *testing.T) {
	b := NewBuilder[int]()
	for i := 0; i < 20; i++ {
		_, _ = b.Add(i, i+5)
	}
	idx := b.Build()
	require.NoError(t, idx.Validate())
	idx.maxEnd[0] = -1
	require.Error(t, idx.Validate())
}

func TestValidateFastScan(t *testing.T) {
	b := NewBuilder[int]()
	for i := 0; i < 37; i++ {
		_, _ = b.Add(i, i+3)
	}
	idx := b.Build(WithFastScan())
	require.NoError(t, idx.Validate())
	require.NotNil(t, idx.sparseIdx)
}
