// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package iitcache is the worker-side counterpart to package iitio: it lets
// a worker process load a named, versioned index once and hand out shared,
// read-only references to many query goroutines without synchronizing the
// hot path, concretizing the "broadcast payload" motivation noted in
// SPEC_FULL.md.
package iitcache

import (
	"io"
	"sync"

	"github.com/tidwall/btree"

	"github.com/mlin/iitj/iitio"
	"github.com/mlin/iitj/iitree"
)

// Registry is a mutex-guarded, name-ordered directory of loaded indexes.
// The ordering (rather than a plain map) exists so a worker can list its
// loaded indexes deterministically, e.g. for a "cmd/iitree list" style
// diagnostic.
//
// A zero Registry is ready to use.
type Registry[K iitio.Numeric] struct {
	mu   sync.Mutex
	tree btree.Map[string, *iitree.Index[K]]
}

// Load reads an index from r via iitio.Load and stores it under name,
// replacing any index already registered there.
func (reg *Registry[K]) Load(name string, r io.Reader) (*iitree.Index[K], error) {
	idx, err := iitio.Load[K](r)
	if err != nil {
		return nil, err
	}
	reg.Put(name, idx)
	return idx, nil
}

// Put registers idx under name directly, without going through iitio.
func (reg *Registry[K]) Put(name string, idx *iitree.Index[K]) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.tree.Set(name, idx)
}

// Get returns the index registered under name, if any. The returned
// pointer is shared; callers must treat it as read-only, which is safe
// because *iitree.Index is immutable after Build.
func (reg *Registry[K]) Get(name string) (*iitree.Index[K], bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	iter := reg.tree.Iter()
	if !iter.Seek(name) || iter.Key() != name {
		return nil, false
	}
	return iter.Value(), true
}

// Delete removes the index registered under name, if any.
func (reg *Registry[K]) Delete(name string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.tree.Delete(name)
}

// Names returns the registered names in ascending order.
func (reg *Registry[K]) Names() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	names := make([]string, 0, reg.tree.Len())
	iter := reg.tree.Iter()
	for more := iter.First(); more; more = iter.Next() {
		names = append(names, iter.Key())
	}
	return names
}

// Len returns the number of registered indexes.
func (reg *Registry[K]) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.tree.Len()
}
