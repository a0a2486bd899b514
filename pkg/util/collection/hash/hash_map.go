// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Map defines a generic map implementation backed by a Go map.  This is a true
// hashtable in that collisions are handled gracefully using buckets, rather
// than simply discarding them.  Furthermore, entries are iterated in the order
// in which they were first inserted.  Observe that an uninitialised Map is not
// usable; use NewMap instead.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to the indices of entries with that hashcode.
	buckets map[uint64][]uint
	// keys holds the keys of all entries in insertion order.
	keys []K
	// values holds the values of all entries in insertion order.
	values []V
}

// NewMap creates a new HashMap with a given underlying capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	return &Map[K, V]{
		buckets: make(map[uint64][]uint, size),
		keys:    make([]K, 0, size),
		values:  make([]V, 0, size),
	}
}

// Size returns the number of unique items stored in this HashMap.
func (p *Map[K, V]) Size() uint {
	return uint(len(p.keys))
}

// Insert a new item into this map, returning true if it was already contained
// (in which case its value is updated in place) and false otherwise.
func (p *Map[K, V]) Insert(key K, value V) bool {
	hash := key.Hash()
	// Look for existing entry
	if index, ok := p.find(hash, key); ok {
		p.values[index] = value
		return true
	}
	// Append new entry
	p.buckets[hash] = append(p.buckets[hash], uint(len(p.keys)))
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
	//
	return false
}

// ContainsKey checks whether the given item is contained within this map, or
// not.
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.find(key.Hash(), key)
	return ok
}

// Get item from bucket, or return false otherwise.
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	//
	if index, ok := p.find(key.Hash(), key); ok {
		return p.values[index], true
	}
	//
	return empty, false
}

// Remove a given key from this map, returning true if it was contained and
// false otherwise.  The relative order of all remaining entries is preserved.
func (p *Map[K, V]) Remove(key K) bool {
	var (
		hash      = key.Hash()
		index, ok = p.find(hash, key)
	)
	//
	if !ok {
		return false
	}
	// Drop entry
	p.keys = slices.Delete(p.keys, int(index), int(index)+1)
	p.values = slices.Delete(p.values, int(index), int(index)+1)
	// Drop from bucket
	if bucket := slices.DeleteFunc(p.buckets[hash], func(i uint) bool { return i == index }); len(bucket) == 0 {
		delete(p.buckets, hash)
	} else {
		p.buckets[hash] = bucket
	}
	// Shift indices of all later entries down by one.
	for _, b := range p.buckets {
		for i, j := range b {
			if j > index {
				b[i] = j - 1
			}
		}
	}
	//
	return true
}

// Keys returns an iterator over the keys of this map, in insertion order.
func (p *Map[K, V]) Keys() iter.Seq[K] {
	return slices.Values(p.keys)
}

// All returns an iterator over all key-value pairs stored in this map, in
// insertion order.
func (p *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range p.keys {
			if !yield(k, p.values[i]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of this map.  That is, keys and values are
// copied by value.
func (p *Map[K, V]) Clone() *Map[K, V] {
	buckets := make(map[uint64][]uint, len(p.buckets))
	//
	for h, b := range p.buckets {
		buckets[h] = slices.Clone(b)
	}
	//
	return &Map[K, V]{buckets, slices.Clone(p.keys), slices.Clone(p.values)}
}

//nolint:revive
func (p *Map[K, V]) String() string {
	var r strings.Builder
	// Write opening brace
	r.WriteString("{")
	//
	for i, k := range p.keys {
		if i != 0 {
			r.WriteString(",")
		}
		//
		r.WriteString(fmt.Sprintf("%v:=%v", any(k), any(p.values[i])))
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// Determine the index of the entry for a given key (if it exists).
func (p *Map[K, V]) find(hash uint64, key K) (uint, bool) {
	for _, i := range p.buckets[hash] {
		if key.Equals(p.keys[i]) {
			return i, true
		}
	}
	//
	return 0, false
}
