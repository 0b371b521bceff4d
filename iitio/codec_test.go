// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitio_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlin/iitj/iitio"
	"github.com/mlin/iitj/iitree"
)

func buildSample(t *testing.T, n int, fastScan, preSorted bool) *iitree.Index[int32] {
	t.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	type pr struct{ b, e int32 }
	pairs := make([]pr, n)
	for i := range pairs {
		b := int32(rng.Intn(500))
		pairs[i] = pr{b, b + int32(rng.Intn(50))}
	}
	if preSorted {
		for i := 1; i < n; i++ {
			for j := i; j > 0 && (pairs[j-1].b > pairs[j].b || (pairs[j-1].b == pairs[j].b && pairs[j-1].e > pairs[j].e)); j-- {
				pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			}
		}
	}
	b := iitree.NewBuilder[int32]()
	for _, p := range pairs {
		_, err := b.Add(p.b, p.e)
		require.NoError(t, err)
	}
	var opts []iitree.BuildOption
	if fastScan {
		opts = append(opts, iitree.WithFastScan())
	}
	idx := b.Build(opts...)
	require.NoError(t, idx.Validate())
	return idx
}

func TestRoundTrip(t *testing.T) {
	for _, fastScan := range []bool{false, true} {
		for _, preSorted := range []bool{false, true} {
			idx := buildSample(t, 137, fastScan, preSorted)

			var buf bytes.Buffer
			require.NoError(t, iitio.Save(&buf, idx))

			got, err := iitio.Load[int32](&buf)
			require.NoError(t, err)
			require.NoError(t, got.Validate())

			for qBeg := int32(0); qBeg < 550; qBeg += 17 {
				for qEnd := qBeg; qEnd < 550; qEnd += 23 {
					want := idx.QueryOverlap(qBeg, qEnd)
					have := got.QueryOverlap(qBeg, qEnd)
					require.Equal(t, want, have, "fastScan=%v preSorted=%v q=[%d,%d)", fastScan, preSorted, qBeg, qEnd)
				}
			}
		}
	}
}

func TestLoadRejectsWrongKeyType(t *testing.T) {
	idx := buildSample(t, 10, false, false)
	bs, err := iitio.Bytes(idx)
	require.NoError(t, err)

	_, err = iitio.Load[int64](bytes.NewReader(bs))
	require.Error(t, err)
	var formatErr *iitio.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestLoadRejectsTruncatedStream(t *testing.T) {
	idx := buildSample(t, 50, true, false)
	bs, err := iitio.Bytes(idx)
	require.NoError(t, err)

	_, err = iitio.Load[int32](bytes.NewReader(bs[:len(bs)/2]))
	require.Error(t, err)
}
