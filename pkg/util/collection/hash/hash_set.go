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
	"strings"
)

// Set defines a generic set implementation backed by a Map.  As for Map,
// collisions are handled gracefully and items are iterated in the order they
// were first inserted.
type Set[T Hasher[T]] struct {
	items *Map[T, struct{}]
}

// NewSet creates a new HashSet with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	return &Set[T]{NewMap[T, struct{}](size)}
}

// Size returns the number of unique items stored in this HashSet.
func (p *Set[T]) Size() uint {
	return p.items.Size()
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	if p.items.ContainsKey(item) {
		return true
	}
	//
	p.items.Insert(item, struct{}{})
	//
	return false
}

// Contains checks whether the given item is contained within this set, or not.
func (p *Set[T]) Contains(item T) bool {
	return p.items.ContainsKey(item)
}

// Items returns an iterator over the items of this set in insertion order.
func (p *Set[T]) Items() iter.Seq[T] {
	return p.items.Keys()
}

//nolint:revive
func (p *Set[T]) String() string {
	var r strings.Builder
	//
	first := true
	// Write opening brace
	r.WriteString("{")
	//
	for i := range p.items.Keys() {
		if !first {
			r.WriteString(",")
		}

		first = false

		r.WriteString(fmt.Sprintf("%v", any(i)))
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}
