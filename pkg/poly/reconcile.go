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
package poly

import (
	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

// reconciler aligns the slots of one or more polynomials into a single result
// coordinate system.  Slots are allocated in the order they are first
// referenced, and a slot equal to one already allocated reuses its index.
type reconciler[T algebra.Coefficient[T]] struct {
	slots []Slot[T]
	index *hash.Map[Slot[T], uint]
}

func newReconciler[T algebra.Coefficient[T]](capacity uint) *reconciler[T] {
	return &reconciler[T]{
		slots: make([]Slot[T], 0, capacity),
		index: hash.NewMap[Slot[T], uint](capacity),
	}
}

// intern returns the result index for a given slot, allocating (a copy of) it
// if it has not been seen before.
func (r *reconciler[T]) intern(slot Slot[T]) uint {
	if i, ok := r.index.Get(slot); ok {
		return i
	}
	//
	i := uint(len(r.slots))
	slot = slot.Clone()
	r.slots = append(r.slots, slot)
	r.index.Insert(slot, i)
	//
	return i
}

// translate an exponent vector over a given set of source slots into the
// result coordinate system.  Only slots with a non-zero exponent are
// allocated.
func (r *reconciler[T]) translate(slots []Slot[T], d Degrees) Degrees {
	var exps []uint
	//
	for i := range d.Len() {
		e := d.Get(i)
		//
		if e == 0 {
			continue
		}
		//
		j := r.intern(slots[i])
		//
		if j >= uint(len(exps)) {
			exps = append(exps, make([]uint, j+1-uint(len(exps)))...)
		}
		//
		exps[j] += e
	}
	//
	return Degrees{exps}
}

// translateAll translates every term of a given polynomial into the result
// coordinate system, preserving the order of terms.
func (r *reconciler[T]) translateAll(p *Polynomial[T]) []term[T] {
	terms := make([]term[T], 0, p.Len())
	//
	for d, c := range p.Terms() {
		terms = append(terms, term[T]{r.translate(p.slots, d), c})
	}
	//
	return terms
}

// build a polynomial from a given set of terms over the result slots.
func (r *reconciler[T]) build(terms *hash.Map[Degrees, T]) *Polynomial[T] {
	var slots []Slot[T]
	//
	if len(r.slots) > 0 {
		slots = r.slots
	}
	//
	return &Polynomial[T]{slots, terms}
}

// term is a single exponent vector / coefficient pair.
type term[T any] struct {
	degrees Degrees
	coeff   T
}

// accumulate adds a given term into a map of terms, combining it with any
// existing term with the same exponents.  Terms whose coefficient becomes the
// additive unity are removed.
func accumulate[T any](terms *hash.Map[Degrees, T], d Degrees, c T, monoid algebra.Monoid[T]) {
	if old, ok := terms.Get(d); ok {
		c = monoid.Add(old, c)
	}
	//
	if monoid.IsAdditiveUnity(c) {
		terms.Remove(d)
	} else {
		terms.Insert(d, c)
	}
}
