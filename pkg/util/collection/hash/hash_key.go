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
	"hash/fnv"
)

// A reasonably simple hashmap implementation which permits collisions.  Keys
// are free to define their own notion of equality (e.g. exponent vectors which
// ignore trailing zeros), provided the hash function respects it.  Hash codes
// are never assumed to uniquely identify a key.

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashmap.  This is similar to the Hasher interface provided in
// go-set, except that it additionally includes equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// ============================================================================
// StringKey Implementation
// ============================================================================

var _ Hasher[StringKey] = StringKey("")

// StringKey wraps a string as something which can be safely placed into a
// hash map or set.
type StringKey string

// Equals compares two StringKeys.
func (p StringKey) Equals(other StringKey) bool {
	return p == other
}

// Hash generates a 64-bit hashcode from the underlying string.
func (p StringKey) Hash() uint64 {
	return String(string(p))
}

// ============================================================================
// Helpers
// ============================================================================

// String computes the FNV1a hash of a given string.
func String(s string) uint64 {
	hash := fnv.New64a()
	// Writing to an fnv hash never fails
	_, _ = hash.Write([]byte(s))
	// Done
	return hash.Sum64()
}

// Uints computes the FNV1a hash of a sequence of unsigned values.
func Uints(values ...uint) uint64 {
	hash := offset64
	//
	for _, c := range values {
		hash ^= uint64(c)
		hash *= prime64
	}
	//
	return hash
}

// Combine mixes two hashcodes together such that the order of arguments
// matters.
func Combine(left, right uint64) uint64 {
	hash := offset64
	hash ^= left
	hash *= prime64
	hash ^= right
	hash *= prime64
	//
	return hash
}
