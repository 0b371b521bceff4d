// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitcache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlin/iitj/iitcache"
)

func TestHitBufferPoolReuse(t *testing.T) {
	var pool iitcache.HitBufferPool

	buf := pool.Get()
	require.Len(t, buf, 0)
	buf = append(buf, 1, 2, 3)
	pool.Put(buf)

	reused := pool.Get()
	require.Len(t, reused, 0)
	require.GreaterOrEqual(t, cap(reused), 3)
}

func TestHitBufferPoolPutNilNoop(t *testing.T) {
	var pool iitcache.HitBufferPool
	pool.Put(nil)
	buf := pool.Get()
	require.Len(t, buf, 0)
}
