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
package algebra

import (
	"math/big"

	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

var _ Ring[Integer] = Integers{}

// Integer is an arbitrary precision integer used as a polynomial coefficient.
// The zero value represents 0.  Integers are immutable.
type Integer struct {
	val big.Int
}

// NewInteger constructs an integer from a machine word.
func NewInteger(val int64) Integer {
	var res Integer
	res.val.SetInt64(val)
	//
	return res
}

// IntegerOf constructs an integer from a given big.Int, which is copied.
func IntegerOf(val *big.Int) Integer {
	var res Integer
	res.val.Set(val)
	//
	return res
}

// ParseInteger parses a decimal integer.
func ParseInteger(s string) (Integer, error) {
	var res Integer
	//
	if _, ok := res.val.SetString(s, 10); !ok {
		return res, DomainError("invalid integer \"%s\"", s)
	}
	//
	return res, nil
}

// BigInt returns a copy of the underlying value.
func (x Integer) BigInt() *big.Int {
	return new(big.Int).Set(&x.val)
}

// Cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
func (x Integer) Cmp(y Integer) int {
	return x.val.Cmp(&y.val)
}

// Equals implementation for the Hasher interface.
func (x Integer) Equals(y Integer) bool {
	return x.val.Cmp(&y.val) == 0
}

// Hash implementation for the Hasher interface.
func (x Integer) Hash() uint64 {
	return hash.Combine(uint64(x.val.Sign()+1), hash.String(string(x.val.Bytes())))
}

func (x Integer) String() string {
	return x.val.String()
}

// Integers is the ring of integers.
type Integers struct{}

// AdditiveUnity implementation for the Ring interface.
func (Integers) AdditiveUnity() Integer {
	return Integer{}
}

// MultiplicativeUnity implementation for the Ring interface.
func (Integers) MultiplicativeUnity() Integer {
	return NewInteger(1)
}

// Add implementation for the Ring interface.
func (Integers) Add(a, b Integer) Integer {
	var res Integer
	res.val.Add(&a.val, &b.val)
	//
	return res
}

// AdditiveInverse implementation for the Ring interface.
func (Integers) AdditiveInverse(a Integer) Integer {
	var res Integer
	res.val.Neg(&a.val)
	//
	return res
}

// Multiply implementation for the Ring interface.
func (Integers) Multiply(a, b Integer) Integer {
	var res Integer
	res.val.Mul(&a.val, &b.val)
	//
	return res
}

// AddRepeated implementation for the Ring interface.
func (Integers) AddRepeated(a Integer, n uint) Integer {
	var res Integer
	res.val.SetUint64(uint64(n))
	res.val.Mul(&res.val, &a.val)
	//
	return res
}

// IsAdditiveUnity implementation for the Ring interface.
func (Integers) IsAdditiveUnity(a Integer) bool {
	return a.val.Sign() == 0
}

// IsMultiplicativeUnity implementation for the Ring interface.
func (Integers) IsMultiplicativeUnity(a Integer) bool {
	return a.val.IsInt64() && a.val.Int64() == 1
}
