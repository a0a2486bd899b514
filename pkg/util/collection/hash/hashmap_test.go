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
	"math/rand"
	"testing"
)

func Test_HashMap_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashMap(t, items)
}

func Test_HashMap_02(t *testing.T) {
	items := generateRandomUints(10, 32)
	check_HashMap(t, items)
}

func Test_HashMap_03(t *testing.T) {
	items := generateRandomUints(100, 32)
	check_HashMap(t, items)
}

func Test_HashMap_04(t *testing.T) {
	items := generateRandomUints(1000, 32)
	check_HashMap(t, items)
}

func Test_HashMap_05(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashMapRemove(t, items, 2)
}

func Test_HashMap_06(t *testing.T) {
	items := generateRandomUints(100, 64)
	check_HashMapRemove(t, items, items[0], items[50], items[99])
}

func Test_HashMap_07(t *testing.T) {
	var (
		hmap  = NewMap[testKey, uint](0)
		order = []uint{17, 1, 33, 2, 49}
	)
	// All but one of these collide on the same bucket
	for i, k := range order {
		hmap.Insert(testKey{k}, uint(i))
	}
	//
	hmap.Remove(testKey{33})
	//
	expected := []uint{17, 1, 2, 49}
	i := 0
	//
	for k, v := range hmap.All() {
		if k.value != expected[i] {
			t.Errorf("expected key %d at position %d, got %d", expected[i], i, k.value)
		} else if w, _ := hmap.Get(k); w != v {
			t.Errorf("inconsistent value for key %d: %d vs %d", k.value, w, v)
		}
		//
		i++
	}
}

func Test_HashMap_08(t *testing.T) {
	hmap := NewMap[testKey, uint](0)
	hmap.Insert(testKey{1}, 1)
	clone := hmap.Clone()
	clone.Insert(testKey{2}, 2)
	clone.Remove(testKey{1})
	//
	if hmap.Size() != 1 || !hmap.ContainsKey(testKey{1}) {
		t.Errorf("clone modified original: %s", hmap.String())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_HashMap(t *testing.T, items []uint) {
	gmap := initGoMap(items)
	hmap := NewMap[testKey, uint](0)
	// Insert items
	for key, val := range gmap {
		hmap.Insert(testKey{key}, val)
	}
	// Sanity check number of unique items
	if hmap.Size() != uint(len(gmap)) {
		t.Errorf("expected %d items, got %d: %s", len(gmap), hmap.Size(), hmap.String())
	}
	// Sanity check containership
	for key, val := range gmap {
		if !hmap.ContainsKey(testKey{key}) {
			t.Errorf("missing key %d: %s", key, hmap.String())
		} else if v, ok := hmap.Get(testKey{key}); !ok {
			t.Errorf("missing item %d=>%d: %s", key, val, hmap.String())
		} else if v != val {
			t.Errorf("expecting %d=>%d, got %d=>%d: %s", key, val, key, v, hmap.String())
		}
	}
}

func check_HashMapRemove(t *testing.T, items []uint, removals ...uint) {
	gmap := initGoMap(items)
	hmap := NewMap[testKey, uint](0)
	//
	for _, item := range items {
		hmap.Insert(testKey{item}, gmap[item])
	}
	//
	for _, r := range removals {
		_, contained := gmap[r]
		//
		if hmap.Remove(testKey{r}) != contained {
			t.Errorf("unexpected removal outcome for %d: %s", r, hmap.String())
		}
		//
		delete(gmap, r)
	}
	//
	if hmap.Size() != uint(len(gmap)) {
		t.Errorf("expected %d items, got %d: %s", len(gmap), hmap.Size(), hmap.String())
	}
	//
	for key, val := range gmap {
		if v, ok := hmap.Get(testKey{key}); !ok || v != val {
			t.Errorf("expecting %d=>%d: %s", key, val, hmap.String())
		}
	}
	//
	for _, r := range removals {
		if hmap.ContainsKey(testKey{r}) {
			t.Errorf("removed key %d still present: %s", r, hmap.String())
		}
	}
}

func initGoMap(items []uint) map[uint]uint {
	gmap := make(map[uint]uint)
	//
	for _, v := range items {
		if w, ok := gmap[v]; ok {
			gmap[v] = w + 1
		} else {
			gmap[v] = 1
		}
	}
	//
	return gmap
}

func generateRandomUints(n uint, m uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = uint(rand.Int63n(int64(m)))
	}
	//
	return items
}

// A simple wrapper around a uint64.  This is deliberately broken to ensure a
// relatively limited spread of hash values.  This helps to ensure that we get
// some collisions.
type testKey struct {
	value uint
}

// Equals compares two testKeys to check whether they represent the same
// underlying value (or not).
func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

// Hash generates a 64-bit hashcode from the underlying value.
func (p testKey) Hash() uint64 {
	// This is a deliberate act to limit the quality of this hash function.
	return uint64(p.value % 16)
}

func (p testKey) String() string {
	return fmt.Sprintf("%d", p.value)
}
