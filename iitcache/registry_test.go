// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitcache_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlin/iitj/iitcache"
	"github.com/mlin/iitj/iitio"
	"github.com/mlin/iitj/iitree"
)

func sampleIndex(t *testing.T) *iitree.Index[int32] {
	t.Helper()
	b := iitree.NewBuilder[int32]()
	for _, p := range [][2]int32{{0, 5}, {3, 8}, {10, 20}} {
		_, err := b.Add(p[0], p[1])
		require.NoError(t, err)
	}
	return b.Build()
}

func TestRegistryPutGetDelete(t *testing.T) {
	var reg iitcache.Registry[int32]
	idx := sampleIndex(t)

	_, ok := reg.Get("chr1")
	require.False(t, ok)

	reg.Put("chr1", idx)
	got, ok := reg.Get("chr1")
	require.True(t, ok)
	require.Same(t, idx, got)

	require.Equal(t, []string{"chr1"}, reg.Names())
	require.Equal(t, 1, reg.Len())

	reg.Delete("chr1")
	_, ok = reg.Get("chr1")
	require.False(t, ok)
	require.Equal(t, 0, reg.Len())
}

func TestRegistryLoadFromBytes(t *testing.T) {
	idx := sampleIndex(t)
	bs, err := iitio.Bytes(idx)
	require.NoError(t, err)

	var reg iitcache.Registry[int32]
	loaded, err := reg.Load("chrX", bytes.NewReader(bs))
	require.NoError(t, err)
	require.Equal(t, idx.QueryOverlap(0, 100), loaded.QueryOverlap(0, 100))
}

// TestRegistrySharesPointer confirms concurrent readers observe the exact
// same *iitree.Index pointer rather than a copy, which is what makes
// Registry suitable as a broadcast payload across query goroutines.
func TestRegistrySharesPointer(t *testing.T) {
	var reg iitcache.Registry[int32]
	idx := sampleIndex(t)
	reg.Put("chr1", idx)

	const n = 32
	ptrs := make([]*iitree.Index[int32], n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			got, ok := reg.Get("chr1")
			require.True(t, ok)
			ptrs[i] = got
		}(i)
	}
	wg.Wait()

	for _, p := range ptrs {
		require.Same(t, idx, p)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	var reg iitcache.Registry[int32]
	idx := sampleIndex(t)
	reg.Put("chrX", idx)
	reg.Put("chr1", idx)
	reg.Put("chr10", idx)
	require.Equal(t, []string{"chr1", "chr10", "chrX"}, reg.Names())
}
